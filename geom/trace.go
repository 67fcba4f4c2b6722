package geom

// traceMask converts a [row][col] inside/outside mask over g's coordinate
// grid into zero or more rectilinear polygons (with holes), by walking the
// boundary between inside and outside cells.
//
// Each maximal unit boundary edge is emitted oriented so that the inside
// region is on the walker's left (a standard raster contour-tracing
// convention); edges are then chained tail-to-head into closed loops.
// Loops with positive signed area are shells, loops with negative signed
// area are holes; each hole is assigned to the first shell whose outer ring
// contains the hole's first vertex.
func traceMask(g grid, mask [][]bool) []Polygon {
	edges := boundaryEdges(g, mask)
	if len(edges) == 0 {
		return nil
	}
	loops := chainLoops(edges)

	var shells, holes []Ring
	for _, loop := range loops {
		ring := simplifyCollinear(loop)
		if len(ring) < 3 {
			continue
		}
		if ring.SignedArea() >= 0 {
			shells = append(shells, ring)
		} else {
			holes = append(holes, ring)
		}
	}

	polys := make([]Polygon, len(shells))
	for i, s := range shells {
		polys[i] = Polygon{Outer: s}
	}
	for _, h := range holes {
		owner := -1
		for i, poly := range polys {
			if len(h) > 0 && PointInPolygon(h[0], Polygon{Outer: poly.Outer}) {
				owner = i
				break
			}
		}
		if owner >= 0 {
			polys[owner].Holes = append(polys[owner].Holes, h)
		}
	}
	return polys
}

type directedEdge struct {
	from, to Point
}

func boundaryEdges(g grid, mask [][]bool) []directedEdge {
	var edges []directedEdge
	rows, cols := g.rows(), g.cols()

	inside := func(r, c int) bool {
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return false
		}
		return mask[r][c]
	}

	// Horizontal grid lines, one per row boundary r = 0..rows.
	for r := 0; r <= rows; r++ {
		for c := 0; c < cols; c++ {
			below := inside(r-1, c)
			above := inside(r, c)
			if below == above {
				continue
			}
			y := g.ys[r]
			x0, x1 := g.xs[c], g.xs[c+1]
			if above {
				edges = append(edges, directedEdge{from: Point{x0, y}, to: Point{x1, y}})
			} else {
				edges = append(edges, directedEdge{from: Point{x1, y}, to: Point{x0, y}})
			}
		}
	}
	// Vertical grid lines, one per column boundary c = 0..cols.
	for c := 0; c <= cols; c++ {
		for r := 0; r < rows; r++ {
			left := inside(r, c-1)
			right := inside(r, c)
			if left == right {
				continue
			}
			x := g.xs[c]
			y0, y1 := g.ys[r], g.ys[r+1]
			if right {
				edges = append(edges, directedEdge{from: Point{x, y1}, to: Point{x, y0}})
			} else {
				edges = append(edges, directedEdge{from: Point{x, y0}, to: Point{x, y1}})
			}
		}
	}
	return edges
}

// chainLoops links directed unit edges sharing endpoints into closed loops.
// At most one outgoing edge starts at any given point for the mask shapes
// this kernel produces (axis-aligned regions without diagonal-only
// touching); a point with more than one candidate simply takes the first
// unvisited one, which keeps the tracer total even on the pathological
// checkerboard-touch case instead of failing outright.
func chainLoops(edges []directedEdge) []Ring {
	byFrom := make(map[Point][]int, len(edges))
	for i, e := range edges {
		byFrom[e.from] = append(byFrom[e.from], i)
	}
	visited := make([]bool, len(edges))

	var loops []Ring
	for start := range edges {
		if visited[start] {
			continue
		}
		var ring Ring
		cur := start
		for {
			visited[cur] = true
			ring = append(ring, edges[cur].from)
			next := -1
			for _, cand := range byFrom[edges[cur].to] {
				if !visited[cand] {
					next = cand
					break
				}
			}
			if next < 0 {
				break
			}
			cur = next
			if cur == start {
				break
			}
		}
		if len(ring) >= 3 {
			loops = append(loops, ring)
		}
	}
	return loops
}

// simplifyCollinear drops vertices that don't change direction, so a
// traced boundary reads as a normal rectilinear ring instead of one vertex
// per grid cell.
func simplifyCollinear(ring Ring) Ring {
	n := len(ring)
	if n < 3 {
		return ring
	}
	out := make(Ring, 0, n)
	for i := 0; i < n; i++ {
		prev := ring[(i-1+n)%n]
		cur := ring[i]
		next := ring[(i+1)%n]
		d1x, d1y := cur.X-prev.X, cur.Y-prev.Y
		d2x, d2y := next.X-cur.X, next.Y-cur.Y
		// Collinear iff the two direction vectors are parallel.
		if d1x*d2y-d1y*d2x == 0 && (d1x*d2x >= 0 && d1y*d2y >= 0) {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return ring
	}
	return out
}
