package geom

// grid is a coordinate-compressed raster over a shared set of X/Y
// breakpoints: cell (r, c) covers [xs[c], xs[c+1]] x [ys[r], ys[r+1]].
//
// This is the "restricted kernel" design notes §9 sanctions in place of a
// general polygon-boolean library: since every input is rectilinear, union,
// intersection and half-plane split all reduce to classifying grid cells
// as inside/outside and re-tracing the boundary of the selected cell set
// (trace.go). It is conceptually the same shape as the teacher's Vatti
// scanline engine (CWBudde-Go-Clipper2/port/vatti_engine.go: classify
// regions while sweeping, then build output paths) but classifies whole
// cells against a compressed grid instead of tracking an active-edge list,
// which is sufficient and much simpler for axis-aligned geometry.
type grid struct {
	xs, ys []float64
}

func (g grid) rows() int { return len(g.ys) - 1 }
func (g grid) cols() int { return len(g.xs) - 1 }

func buildGrid(tol float64, polys ...Polygon) grid {
	var xs, ys []float64
	for _, p := range polys {
		for _, ring := range p.AllRings() {
			for _, pt := range ring {
				xs = append(xs, pt.X)
				ys = append(ys, pt.Y)
			}
		}
	}
	return grid{xs: UniqueSortedCoords(xs, tol), ys: UniqueSortedCoords(ys, tol)}
}

// classify returns a [row][col] inside/outside mask for p against g.
func (g grid) classify(p Polygon) [][]bool {
	mask := make([][]bool, g.rows())
	for r := 0; r < g.rows(); r++ {
		mask[r] = make([]bool, g.cols())
		cy := (g.ys[r] + g.ys[r+1]) / 2
		for c := 0; c < g.cols(); c++ {
			cx := (g.xs[c] + g.xs[c+1]) / 2
			mask[r][c] = PointInPolygon(Point{X: cx, Y: cy}, p)
		}
	}
	return mask
}

func andMask(a, b [][]bool) [][]bool  { return combineMask(a, b, func(x, y bool) bool { return x && y }) }
func orMask(a, b [][]bool) [][]bool   { return combineMask(a, b, func(x, y bool) bool { return x || y }) }
func notMask(a [][]bool) [][]bool {
	out := make([][]bool, len(a))
	for r := range a {
		out[r] = make([]bool, len(a[r]))
		for c := range a[r] {
			out[r][c] = !a[r][c]
		}
	}
	return out
}

func combineMask(a, b [][]bool, f func(bool, bool) bool) [][]bool {
	out := make([][]bool, len(a))
	for r := range a {
		out[r] = make([]bool, len(a[r]))
		for c := range a[r] {
			out[r][c] = f(a[r][c], b[r][c])
		}
	}
	return out
}

// Union returns the set union of a and b as zero or more disjoint
// polygons. An empty result means both inputs were empty.
func Union(a, b Polygon, tol float64) []Polygon {
	if a.IsEmpty() {
		return nonEmpty(b)
	}
	if b.IsEmpty() {
		return nonEmpty(a)
	}
	g := buildGrid(tol, a, b)
	mask := orMask(g.classify(a), g.classify(b))
	return traceMask(g, mask)
}

// Intersect returns the set intersection of a and b as zero or more
// disjoint polygons.
func Intersect(a, b Polygon, tol float64) []Polygon {
	if a.IsEmpty() || b.IsEmpty() {
		return nil
	}
	g := buildGrid(tol, a, b)
	mask := andMask(g.classify(a), g.classify(b))
	return traceMask(g, mask)
}

// SplitByLine splits p by the infinite line x = coord (axis==Vertical cut,
// i.e. a vertical cutting line dividing left/right) or y = coord
// (axis==Horizontal cut, dividing top/bottom) into zero or more pieces;
// each side may itself fall apart into several polygons when p is not
// convex. A single returned piece means the line missed the polygon's
// interior entirely (it passed exactly along an edge or outside the
// polygon); callers implement the documented axis-fallback for that case.
func SplitByLine(p Polygon, axis Axis, coord, tol float64) []Polygon {
	if p.IsEmpty() {
		return nil
	}
	g := buildGridWithExtra(tol, p, axis, coord)
	base := g.classify(p)

	var sideA, sideB [][]bool
	switch axis {
	case Vertical:
		sideA = maskWhereX(g, base, func(cx float64) bool { return cx < coord })
		sideB = maskWhereX(g, base, func(cx float64) bool { return cx >= coord })
	case Horizontal:
		sideA = maskWhereY(g, base, func(cy float64) bool { return cy < coord })
		sideB = maskWhereY(g, base, func(cy float64) bool { return cy >= coord })
	}

	out := traceMask(g, sideA)
	out = append(out, traceMask(g, sideB)...)
	return out
}

// Axis identifies which coordinate a cut line or sweep bins/runs along.
type Axis int

const (
	// Horizontal is the axis of a horizontal cut/sweep line (y = const).
	Horizontal Axis = iota
	// Vertical is the axis of a vertical cut/sweep line (x = const).
	Vertical
)

func buildGridWithExtra(tol float64, p Polygon, axis Axis, coord float64) grid {
	g := buildGrid(tol, p)
	switch axis {
	case Vertical:
		g.xs = UniqueSortedCoords(append(append([]float64{}, g.xs...), coord), tol)
	case Horizontal:
		g.ys = UniqueSortedCoords(append(append([]float64{}, g.ys...), coord), tol)
	}
	return g
}

func maskWhereX(g grid, base [][]bool, keep func(cx float64) bool) [][]bool {
	out := make([][]bool, g.rows())
	for r := 0; r < g.rows(); r++ {
		out[r] = make([]bool, g.cols())
		for c := 0; c < g.cols(); c++ {
			cx := (g.xs[c] + g.xs[c+1]) / 2
			out[r][c] = base[r][c] && keep(cx)
		}
	}
	return out
}

func maskWhereY(g grid, base [][]bool, keep func(cy float64) bool) [][]bool {
	out := make([][]bool, g.rows())
	for r := 0; r < g.rows(); r++ {
		out[r] = make([]bool, g.cols())
		cy := (g.ys[r] + g.ys[r+1]) / 2
		for c := 0; c < g.cols(); c++ {
			out[r][c] = base[r][c] && keep(cy)
		}
	}
	return out
}

func nonEmpty(p Polygon) []Polygon {
	if p.IsEmpty() {
		return nil
	}
	return []Polygon{p}
}
