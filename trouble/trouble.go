// Package trouble detects whether a rectilinear polygon is monotone in the
// horizontal and/or vertical direction, and quantifies how severe the
// non-monotonicity ("trouble") is per axis — the signal the greedy
// partitioner (package partition) uses to decide where, and whether, to
// cut.
package trouble

import (
	"math"

	"github.com/arl/covplan/geom"
)

// Source selects which rings contribute coordinates to the sweep-line
// sampling used by QuantifyGaps.
type Source int

const (
	// AllRings samples the outer ring and every hole ring (the default:
	// holes can introduce trouble bands of their own).
	AllRings Source = iota
	// ExteriorOnly samples only the outer ring.
	ExteriorOnly
)

// IsTroublesome reports whether p is non-monotone in the horizontal
// direction (hTrouble), the vertical direction (vTrouble), or both.
//
// A rectilinear polygon is monotone in axis a iff every sweep line
// orthogonal to a, placed between consecutive coordinate values, crosses
// the boundary in exactly two points. More crossings indicate a concavity
// or a hole piercing the sweep.
func IsTroublesome(p geom.Polygon, tol float64) (hTrouble, vTrouble bool) {
	ys := geom.UniqueYCoords(p, tol)
	for i := 0; i+1 < len(ys); i++ {
		mid := (ys[i] + ys[i+1]) / 2
		if len(p.HorizontalCrossings(mid)) > 2 {
			hTrouble = true
			break
		}
	}

	xs := geom.UniqueXCoords(p, tol)
	for i := 0; i+1 < len(xs); i++ {
		mid := (xs[i] + xs[i+1]) / 2
		if len(p.VerticalCrossings(mid)) > 2 {
			vTrouble = true
			break
		}
	}
	return hTrouble, vTrouble
}

// GapMetrics aggregates the severity of non-monotonicity per axis.
type GapMetrics struct {
	MaxHGap      float64
	TotalHGap    float64
	MaxVGap      float64
	TotalVGap    float64
	CombinedGap  float64
}

// GapDetails carries the bounding-box "union" of every troublesome band per
// axis, which is all the greedy partitioner (package partition) needs to
// choose a cut line: the midline of these bounds. Representing the union by
// its bounds rather than an exact unioned polygon is a deliberate
// simplification, since no downstream consumer queries anything about
// these unions besides their bounds.
type GapDetails struct {
	HasHorizontalUnion bool
	HorizontalUnion    geom.Bounds
	HasVerticalUnion   bool
	VerticalUnion      geom.Bounds
}

// QuantifyGaps samples sweep lines between every consecutive pair of unique
// coordinates along both axes (per source) and, for bands with more than
// two boundary crossings, accumulates the width of every interior gap (an
// "outside" interval nested between crossings) into the returned metrics
// and details.
func QuantifyGaps(p geom.Polygon, tol float64, source Source) (GapMetrics, GapDetails) {
	var metrics GapMetrics
	var details GapDetails

	bounds := p.Bounds()

	ys := uniqueCoordsForSource(p, tol, source, false)
	for i := 0; i+1 < len(ys); i++ {
		y0, y1 := ys[i], ys[i+1]
		mid := (y0 + y1) / 2
		pts := p.HorizontalCrossings(mid)
		if len(pts) <= 2 {
			continue
		}
		troublesome := false
		for j := 1; j+1 < len(pts); j += 2 {
			width := pts[j+1] - pts[j]
			if width <= 0 {
				continue
			}
			troublesome = true
			metrics.TotalHGap += width
			metrics.MaxHGap = math.Max(metrics.MaxHGap, width)
		}
		if troublesome {
			b := geom.Bounds{MinX: bounds.MinX, MaxX: bounds.MaxX, MinY: y0, MaxY: y1}
			if !details.HasHorizontalUnion {
				details.HorizontalUnion = b
				details.HasHorizontalUnion = true
			} else {
				details.HorizontalUnion = unionBounds(details.HorizontalUnion, b)
			}
		}
	}

	xs := uniqueCoordsForSource(p, tol, source, true)
	for i := 0; i+1 < len(xs); i++ {
		x0, x1 := xs[i], xs[i+1]
		mid := (x0 + x1) / 2
		pts := p.VerticalCrossings(mid)
		if len(pts) <= 2 {
			continue
		}
		troublesome := false
		for j := 1; j+1 < len(pts); j += 2 {
			width := pts[j+1] - pts[j]
			if width <= 0 {
				continue
			}
			troublesome = true
			metrics.TotalVGap += width
			metrics.MaxVGap = math.Max(metrics.MaxVGap, width)
		}
		if troublesome {
			b := geom.Bounds{MinX: x0, MaxX: x1, MinY: bounds.MinY, MaxY: bounds.MaxY}
			if !details.HasVerticalUnion {
				details.VerticalUnion = b
				details.HasVerticalUnion = true
			} else {
				details.VerticalUnion = unionBounds(details.VerticalUnion, b)
			}
		}
	}

	metrics.CombinedGap = metrics.TotalHGap + metrics.TotalVGap
	return metrics, details
}

func unionBounds(acc, next geom.Bounds) geom.Bounds {
	out := acc
	out.MinX = math.Min(out.MinX, next.MinX)
	out.MaxX = math.Max(out.MaxX, next.MaxX)
	out.MinY = math.Min(out.MinY, next.MinY)
	out.MaxY = math.Max(out.MaxY, next.MaxY)
	return out
}

func uniqueCoordsForSource(p geom.Polygon, tol float64, source Source, xAxis bool) []float64 {
	rings := p.AllRings()
	if source == ExteriorOnly {
		rings = []geom.Ring{p.Outer}
	}
	var values []float64
	for _, ring := range rings {
		for _, pt := range ring {
			if xAxis {
				values = append(values, pt.X)
			} else {
				values = append(values, pt.Y)
			}
		}
	}
	return geom.UniqueSortedCoords(values, tol)
}
