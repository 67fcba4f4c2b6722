// Package partition recursively decomposes a troublesome rectilinear
// polygon into pieces that are each monotone in at least one axis
// (GreedyPartition), then greedily re-merges adjacent pieces whenever their
// union stays monotone in at least one axis (MergePartitions).
package partition

import (
	assert "github.com/arl/assertgo"
	"github.com/arl/covplan/geom"
	"github.com/arl/covplan/trouble"
)

// PassRecord is a diagnostic snapshot of one recursion step of
// GreedyPartition: which polygon was examined, what cut line (if any) was
// chosen, and the gap metrics that drove the decision. It is always
// populated (not gated behind a debug flag) since the (out-of-scope)
// visualizer is the only consumer and the cost of building it is tiny next
// to the geometry work it annotates.
type PassRecord struct {
	Depth      int
	Subject    geom.Polygon
	CutAxis    geom.Axis
	CutCoord   float64
	HasCut     bool
	Metrics    trouble.GapMetrics
	EmittedAsIs bool
}

// GreedyPartition recursively splits p along a chosen horizontal or
// vertical line until every leaf piece is monotone in at least one axis, or
// maxDepth recursions have been spent on a branch.
func GreedyPartition(p geom.Polygon, maxDepth int, tol float64) ([]geom.Polygon, []PassRecord) {
	return partitionAt(p, 0, maxDepth, tol)
}

func partitionAt(p geom.Polygon, depth, maxDepth int, tol float64) ([]geom.Polygon, []PassRecord) {
	hTrouble, vTrouble := trouble.IsTroublesome(p, tol)

	if depth >= maxDepth || !(hTrouble && vTrouble) {
		record := PassRecord{Depth: depth, Subject: p, EmittedAsIs: true}
		return []geom.Polygon{p}, []PassRecord{record}
	}

	metrics, details := trouble.QuantifyGaps(p, tol, trouble.AllRings)

	axis, coord, ok := chooseCut(metrics, details)
	if !ok {
		record := PassRecord{Depth: depth, Subject: p, Metrics: metrics, EmittedAsIs: true}
		return []geom.Polygon{p}, []PassRecord{record}
	}

	pieces := geom.SplitByLine(p, axis, coord, tol)
	if len(pieces) < 2 {
		// The chosen cut missed the interior (ran along a vertex/edge).
		// Fall back to the other axis's union midline, if one exists.
		altAxis, altCoord, altOK := chooseFallbackCut(axis, details)
		if altOK {
			pieces = geom.SplitByLine(p, altAxis, altCoord, tol)
			axis, coord = altAxis, altCoord
		}
	}

	if len(pieces) < 2 {
		record := PassRecord{Depth: depth, Subject: p, Metrics: metrics, EmittedAsIs: true}
		return []geom.Polygon{p}, []PassRecord{record}
	}

	record := PassRecord{Depth: depth, Subject: p, CutAxis: axis, CutCoord: coord, HasCut: true, Metrics: metrics}
	results := []PassRecord{record}

	var out []geom.Polygon
	for _, piece := range pieces {
		if piece.IsEmpty() {
			continue
		}
		subPieces, subRecords := partitionAt(piece, depth+1, maxDepth, tol)
		out = append(out, subPieces...)
		results = append(results, subRecords...)
	}

	assert.True(len(out) > 0, "greedy partition produced zero pieces for a non-empty polygon")
	return out, results
}

// chooseCut implements spec §4.2 step 3: prefer the axis with the larger
// total gap when both unions exist; otherwise use whichever union exists;
// otherwise there is nothing actionable.
//
// A horizontal cut (a horizontal line, y = const) is positioned at the
// vertical midline of horizontal_union's bounds — i.e. the midpoint of its
// narrow Y-extent, which is exactly where the troublesome horizontal bands
// accumulated. A vertical cut mirrors this using vertical_union's X-extent.
func chooseCut(metrics trouble.GapMetrics, details trouble.GapDetails) (axis geom.Axis, coord float64, ok bool) {
	switch {
	case details.HasHorizontalUnion && details.HasVerticalUnion:
		if metrics.TotalHGap >= metrics.TotalVGap {
			return geom.Horizontal, details.HorizontalUnion.MidY(), true
		}
		return geom.Vertical, details.VerticalUnion.MidX(), true
	case details.HasHorizontalUnion:
		return geom.Horizontal, details.HorizontalUnion.MidY(), true
	case details.HasVerticalUnion:
		return geom.Vertical, details.VerticalUnion.MidX(), true
	default:
		return 0, 0, false
	}
}

func chooseFallbackCut(tried geom.Axis, details trouble.GapDetails) (geom.Axis, float64, bool) {
	if tried == geom.Horizontal && details.HasVerticalUnion {
		return geom.Vertical, details.VerticalUnion.MidX(), true
	}
	if tried == geom.Vertical && details.HasHorizontalUnion {
		return geom.Horizontal, details.HorizontalUnion.MidY(), true
	}
	return 0, 0, false
}
