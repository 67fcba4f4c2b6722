package candidate

import (
	"math"
	"testing"

	"github.com/arl/covplan/geom"
	"github.com/arl/covplan/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 float64) geom.Ring {
	return geom.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestGenerateSingleCellIsZeroCostZeroTurns(t *testing.T) {
	cells := []raster.CellID{{Row: 0, Col: 0}}
	options := Generate(cells, 1, 1, nil)
	require.Len(t, options, 1)
	assert.Equal(t, 0.0, options[0].Cost)
	assert.Equal(t, 0, options[0].Turns)
}

func TestGenerateRectangleS1BestCandidate(t *testing.T) {
	p := geom.Polygon{Outer: rect(0, 0, 10, 4)}
	cells, err := raster.Rasterize(p, 1)
	require.NoError(t, err)
	require.Len(t, cells, 40)

	options := Generate(cells, 1, 1, &p)
	require.NotEmpty(t, options)

	// Column lanes cost 39 too (10 lanes of 3 steps plus 9 connectors) but
	// turn 18 times, so equal costs are ranked by fewer turns.
	best := options[0]
	for _, o := range options[1:] {
		if o.Cost < best.Cost-1e-9 || (math.Abs(o.Cost-best.Cost) <= 1e-9 && o.Turns < best.Turns) {
			best = o
		}
	}
	// 4 row-lanes of 10 cells each: 9 unit steps per lane plus a unit
	// connector between lanes, 4*9 + 3 = 39; each of the 3 lane changes
	// turns twice (into the connector, then back into the sweep).
	assert.InDelta(t, 39.0, best.Cost, 1e-9)
	assert.Equal(t, 6, best.Turns)
}

func TestGenerateEmptyCellsReturnsNil(t *testing.T) {
	options := Generate(nil, 1, 1, nil)
	assert.Nil(t, options)
}

func TestGenerateAxisEligibilityExcludesTroublesomeAxis(t *testing.T) {
	// A U-shape is horizontally troublesome but not vertically troublesome,
	// so only the vertical-axis (bin by y) candidates should appear.
	outer := geom.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 6, Y: 10},
		{X: 6, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 10}, {X: 0, Y: 10},
	}
	p := geom.Polygon{Outer: outer}
	cells, err := raster.Rasterize(p, 1)
	require.NoError(t, err)

	options := Generate(cells, 1, 1, &p)
	require.NotEmpty(t, options)
	assert.LessOrEqual(t, len(options), 4)
}
