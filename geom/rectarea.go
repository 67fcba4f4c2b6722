package geom

// IntersectionAreaWithRect computes the exact area of p ∩ r for an
// axis-aligned rectangle r, by slabbing the rectangle's Y-extent at every
// unique Y coordinate of p that falls inside it and intersecting the
// resulting horizontal spans with [r.MinX, r.MaxX].
//
// This sidesteps building a general polygon-polygon intersection (the
// restricted kernel design notes §9 allow for axis-aligned inputs: "all
// required operations reduce to interval arithmetic") for the one place
// the pipeline needs polygon/rectangle area overlap: assigning rasterized
// cells to partitions by maximum area (§4.4).
func (p Polygon) IntersectionAreaWithRect(r Bounds) float64 {
	if r.IsZero() || p.IsEmpty() {
		return 0
	}
	pb := p.Bounds()
	loY, hiY := r.MinY, r.MaxY
	if pb.MinY > loY {
		loY = pb.MinY
	}
	if pb.MaxY < hiY {
		hiY = pb.MaxY
	}
	if loY >= hiY {
		return 0
	}

	ys := UniqueYCoords(p, 0)
	slabs := slabBoundaries(ys, loY, hiY)

	var area float64
	for i := 0; i+1 < len(slabs); i++ {
		y0, y1 := slabs[i], slabs[i+1]
		if y1 <= y0 {
			continue
		}
		mid := (y0 + y1) / 2
		for _, span := range p.HorizontalSpans(mid) {
			lo, hi := span[0], span[1]
			if lo < r.MinX {
				lo = r.MinX
			}
			if hi > r.MaxX {
				hi = r.MaxX
			}
			if hi > lo {
				area += (hi - lo) * (y1 - y0)
			}
		}
	}
	return area
}

// slabBoundaries returns the sorted list of Y breakpoints within [lo, hi],
// including lo and hi themselves, formed from the polygon's own unique Y
// coordinates that fall strictly between them.
func slabBoundaries(ys []float64, lo, hi float64) []float64 {
	out := []float64{lo}
	for _, y := range ys {
		if y > lo && y < hi {
			out = append(out, y)
		}
	}
	out = append(out, hi)
	return out
}
