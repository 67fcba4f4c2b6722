package geom

import "sort"

// HorizontalCrossings returns the sorted X coordinates at which the
// infinite horizontal line y = yc intersects the polygon boundary (outer
// ring union all hole rings). A horizontal edge lying exactly on yc
// "grazes" the sweep: per spec §4.1 it contributes both of its endpoints
// rather than being skipped, since the sweep cannot tell a grazed edge from
// a pair of crossings without that convention.
func (p Polygon) HorizontalCrossings(yc float64) []float64 {
	var xs []float64
	for _, ring := range p.AllRings() {
		n := len(ring)
		for i := 0; i < n; i++ {
			a, b := ring[i], ring[(i+1)%n]
			if a.Y == b.Y {
				if a.Y == yc {
					xs = append(xs, a.X, b.X)
				}
				continue
			}
			// Vertical edge: crosses yc iff yc lies in its half-open Y span.
			lo, hi := a.Y, b.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			if yc >= lo && yc < hi {
				xs = append(xs, a.X)
			}
		}
	}
	sort.Float64s(xs)
	return xs
}

// VerticalCrossings returns the sorted Y coordinates at which the infinite
// vertical line x = xc intersects the polygon boundary. Mirrors
// HorizontalCrossings across axes.
func (p Polygon) VerticalCrossings(xc float64) []float64 {
	var ys []float64
	for _, ring := range p.AllRings() {
		n := len(ring)
		for i := 0; i < n; i++ {
			a, b := ring[i], ring[(i+1)%n]
			if a.X == b.X {
				if a.X == xc {
					ys = append(ys, a.Y, b.Y)
				}
				continue
			}
			lo, hi := a.X, b.X
			if lo > hi {
				lo, hi = hi, lo
			}
			if xc >= lo && xc < hi {
				ys = append(ys, a.Y)
			}
		}
	}
	sort.Float64s(ys)
	return ys
}

// HorizontalSpans returns the X-intervals of the polygon's interior at
// y = yc, derived from HorizontalCrossings under the even-odd / alternating
// in-out rule: [pts[0],pts[1]], [pts[2],pts[3]], ...
func (p Polygon) HorizontalSpans(yc float64) [][2]float64 {
	pts := p.HorizontalCrossings(yc)
	var spans [][2]float64
	for i := 0; i+1 < len(pts); i += 2 {
		spans = append(spans, [2]float64{pts[i], pts[i+1]})
	}
	return spans
}

// PointInPolygon reports whether pt lies in the interior of p, using the
// even-odd rule applied to the combined edge set of the outer ring and all
// holes (a ray crossing a hole boundary flips parity exactly as a crossing
// of the outer boundary does, so holes need no special casing).
//
// Adapted from the teacher's PointInPolygon/WindingNumber
// (CWBudde-Go-Clipper2/port/geometry.go): that implementation carries a
// FillRule parameter for general self-intersecting polygons over int64
// coordinates; this one is specialized to the even-odd rule over float64
// rectilinear rings, which is all this system ever needs.
func PointInPolygon(pt Point, p Polygon) bool {
	inside := false
	for _, ring := range p.AllRings() {
		n := len(ring)
		for i := 0; i < n; i++ {
			a, b := ring[i], ring[(i+1)%n]
			if (a.Y > pt.Y) != (b.Y > pt.Y) {
				xCross := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
				if pt.X < xCross {
					inside = !inside
				}
			}
		}
	}
	return inside
}
