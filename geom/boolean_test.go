package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionOfOverlappingRectangles(t *testing.T) {
	a := Polygon{Outer: rect(0, 0, 10, 10)}
	b := Polygon{Outer: rect(5, 5, 15, 15)}

	result := Union(a, b, 1)
	require.Len(t, result, 1)
	assert.InDelta(t, 175, result[0].Area(), 1e-6)
}

func TestUnionDisjointProducesTwoPolygons(t *testing.T) {
	a := Polygon{Outer: rect(0, 0, 5, 5)}
	b := Polygon{Outer: rect(10, 10, 15, 15)}

	result := Union(a, b, 1)
	require.Len(t, result, 2)
}

func TestIntersectOverlappingRectangles(t *testing.T) {
	a := Polygon{Outer: rect(0, 0, 10, 10)}
	b := Polygon{Outer: rect(5, 5, 15, 15)}

	result := Intersect(a, b, 1)
	require.Len(t, result, 1)
	assert.InDelta(t, 25, result[0].Area(), 1e-6)
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	a := Polygon{Outer: rect(0, 0, 5, 5)}
	b := Polygon{Outer: rect(10, 10, 15, 15)}

	result := Intersect(a, b, 1)
	assert.Empty(t, result)
}

func TestSplitByLineVertical(t *testing.T) {
	p := Polygon{Outer: rect(0, 0, 10, 4)}
	pieces := SplitByLine(p, Vertical, 5, 1)
	require.Len(t, pieces, 2)
	total := pieces[0].Area() + pieces[1].Area()
	assert.InDelta(t, p.Area(), total, 1e-6)
}

func TestSplitByLineMissPolygonReturnsOnePiece(t *testing.T) {
	p := Polygon{Outer: rect(0, 0, 10, 4)}
	pieces := SplitByLine(p, Vertical, 50, 1)
	require.Len(t, pieces, 1)
	assert.InDelta(t, p.Area(), pieces[0].Area(), 1e-6)
}

func TestUnionWithSelfKeepsHole(t *testing.T) {
	// Union of a holed square with itself returns the same area and keeps
	// its one hole (idempotence).
	a := Polygon{Outer: rect(0, 0, 10, 10), Holes: []Ring{rect(4, 4, 6, 6)}}
	result := Union(a, a, 1)
	require.Len(t, result, 1)
	assert.InDelta(t, a.Area(), result[0].Area(), 1e-6)
	assert.Len(t, result[0].Holes, 1)
}
