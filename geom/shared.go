package geom

import "math"

// SharedBoundaryLength returns the total length of the boundary a and b
// have in common: for each pair of collinear, overlapping edges (one from
// a, one from b) it sums the overlap length. Rectilinear edges only ever
// overlap other edges on the same axis at the same fixed coordinate, so
// this needs no general segment-intersection machinery.
func SharedBoundaryLength(a, b Polygon) float64 {
	edgesA := allEdges(a)
	edgesB := allEdges(b)

	var total float64
	for _, ea := range edgesA {
		for _, eb := range edgesB {
			total += overlapLength(ea, eb)
		}
	}
	return total
}

type edge struct{ a, b Point }

func allEdges(p Polygon) []edge {
	var out []edge
	for _, ring := range p.AllRings() {
		n := len(ring)
		for i := 0; i < n; i++ {
			out = append(out, edge{a: ring[i], b: ring[(i+1)%n]})
		}
	}
	return out
}

func overlapLength(e1, e2 edge) float64 {
	h1 := e1.a.Y == e1.b.Y
	h2 := e2.a.Y == e2.b.Y
	if h1 && h2 {
		if e1.a.Y != e2.a.Y {
			return 0
		}
		return intervalOverlap(e1.a.X, e1.b.X, e2.a.X, e2.b.X)
	}
	v1 := e1.a.X == e1.b.X
	v2 := e2.a.X == e2.b.X
	if v1 && v2 {
		if e1.a.X != e2.a.X {
			return 0
		}
		return intervalOverlap(e1.a.Y, e1.b.Y, e2.a.Y, e2.b.Y)
	}
	return 0
}

func intervalOverlap(a0, a1, b0, b1 float64) float64 {
	if a0 > a1 {
		a0, a1 = a1, a0
	}
	if b0 > b1 {
		b0, b1 = b1, b0
	}
	lo := math.Max(a0, b0)
	hi := math.Min(a1, b1)
	if hi > lo {
		return hi - lo
	}
	return 0
}
