package partition

import (
	"testing"

	"github.com/arl/covplan/geom"
	"github.com/arl/covplan/trouble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 float64) geom.Ring {
	return geom.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestGreedyPartitionConvexRectangleIsOnePiece(t *testing.T) {
	p := geom.Polygon{Outer: rect(0, 0, 10, 4)}
	pieces, passes := GreedyPartition(p, 40, 1)
	require.Len(t, pieces, 1)
	require.Len(t, passes, 1)
	assert.True(t, passes[0].EmittedAsIs)
}

func TestGreedyPartitionUShapeIsOnePiece(t *testing.T) {
	outer := geom.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 6, Y: 10}, {X: 6, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 10}, {X: 0, Y: 10}}
	p := geom.Polygon{Outer: outer}
	pieces, _ := GreedyPartition(p, 40, 1)
	require.Len(t, pieces, 1)

	h, v := trouble.IsTroublesome(pieces[0], 1)
	assert.True(t, h)
	assert.False(t, v)
}

func TestGreedyPartitionPlusShapeSplitsIntoMonotonePieces(t *testing.T) {
	outer := geom.Ring{
		{X: -1, Y: -3}, {X: 1, Y: -3}, {X: 1, Y: -1}, {X: 7, Y: -1}, {X: 7, Y: 1}, {X: 1, Y: 1},
		{X: 1, Y: 7}, {X: -1, Y: 7}, {X: -1, Y: 1}, {X: -7, Y: 1}, {X: -7, Y: -1}, {X: -1, Y: -1},
	}
	p := geom.Polygon{Outer: outer}
	hBefore, vBefore := trouble.IsTroublesome(p, 1)
	require.True(t, hBefore)
	require.True(t, vBefore)

	pieces, _ := GreedyPartition(p, 40, 1)
	require.True(t, len(pieces) > 1)

	var total float64
	for _, piece := range pieces {
		h, v := trouble.IsTroublesome(piece, 1)
		assert.False(t, h && v, "every leaf piece must be monotone in at least one axis")
		total += piece.Area()
	}
	assert.InDelta(t, p.Area(), total, 1e-6)
}

func TestMergePartitionsIdempotent(t *testing.T) {
	a := geom.Polygon{Outer: rect(0, 0, 5, 5)}
	b := geom.Polygon{Outer: rect(5, 0, 10, 5)}

	once := MergePartitions([]geom.Polygon{a, b}, 1)
	twice := MergePartitions(once, 1)

	require.Len(t, once, len(twice))
	var areaOnce, areaTwice float64
	for i := range once {
		areaOnce += once[i].Area()
		areaTwice += twice[i].Area()
	}
	assert.InDelta(t, areaOnce, areaTwice, 1e-6)
}

func TestMergePartitionsMergesAdjacentRectangles(t *testing.T) {
	a := geom.Polygon{Outer: rect(0, 0, 5, 5)}
	b := geom.Polygon{Outer: rect(5, 0, 10, 5)}

	merged := MergePartitions([]geom.Polygon{a, b}, 1)
	require.Len(t, merged, 1)
	assert.InDelta(t, 50, merged[0].Area(), 1e-6)
}

func TestMergePartitionsDeclinesWhenResultWouldBeTroublesome(t *testing.T) {
	// Two pieces of a plus-shape that would recreate both-axis trouble if merged.
	left := geom.Polygon{Outer: rect(-7, -1, -1, 1)}
	center := geom.Polygon{Outer: geom.Ring{
		{X: -1, Y: -3}, {X: 1, Y: -3}, {X: 1, Y: -1}, {X: 7, Y: -1}, {X: 7, Y: 1}, {X: 1, Y: 1},
		{X: 1, Y: 7}, {X: -1, Y: 7}, {X: -1, Y: 1}, {X: -1, Y: -1},
	}}

	merged := MergePartitions([]geom.Polygon{left, center}, 1)
	require.Len(t, merged, 2, "union would be both-axis troublesome, so it must be declined")
}
