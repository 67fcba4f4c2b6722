package pipeline

import (
	"context"
	"testing"

	"github.com/arl/covplan/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 float64) geom.Ring {
	return geom.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestRunPipelineRectangleS1(t *testing.T) {
	p := geom.Polygon{Outer: rect(0, 0, 10, 4)}
	result, err := RunPipeline(context.Background(), p, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics.MergedPartitions, 1)
	totalCells := 0
	for _, cells := range result.Diagnostics.CellAssignments {
		totalCells += len(cells)
	}
	assert.Equal(t, 40, totalCells)
	assert.NotEmpty(t, result.GlobalPath)
	assert.Empty(t, result.Diagnostics.Connectors, "single partition has no inter-partition connectors")
}

func TestRunPipelineRejectsEmptyPolygon(t *testing.T) {
	_, err := RunPipeline(context.Background(), geom.Polygon{}, DefaultConfig())
	assert.ErrorIs(t, err, geom.ErrEmptyPolygon)
}

func TestRunPipelineRejectsNonPositiveCellSize(t *testing.T) {
	p := geom.Polygon{Outer: rect(0, 0, 10, 4)}
	cfg := DefaultConfig()
	cfg.CellSize = 0
	_, err := RunPipeline(context.Background(), p, cfg)
	assert.ErrorIs(t, err, geom.ErrNonPositiveCellSize)
}

func TestRunPipelineRejectsNonPositiveTolerance(t *testing.T) {
	p := geom.Polygon{Outer: rect(0, 0, 10, 4)}
	cfg := DefaultConfig()
	cfg.Tolerance = 0
	_, err := RunPipeline(context.Background(), p, cfg)
	assert.ErrorIs(t, err, geom.ErrNonPositiveTolerance)
}

func TestRunPipelineHonorsCancellation(t *testing.T) {
	p := geom.Polygon{Outer: rect(0, 0, 10, 4)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunPipeline(ctx, p, DefaultConfig())
	assert.Error(t, err)
}

func TestRunPipelinePlusShapeProducesMultiplePartitions(t *testing.T) {
	outer := geom.Ring{
		{X: -1, Y: -3}, {X: 1, Y: -3}, {X: 1, Y: -1}, {X: 7, Y: -1}, {X: 7, Y: 1}, {X: 1, Y: 1},
		{X: 1, Y: 7}, {X: -1, Y: 7}, {X: -1, Y: 1}, {X: -7, Y: 1}, {X: -7, Y: -1}, {X: -1, Y: -1},
	}
	p := geom.Polygon{Outer: outer}
	result, err := RunPipeline(context.Background(), p, DefaultConfig())
	require.NoError(t, err)
	assert.Greater(t, len(result.Diagnostics.MergedPartitions), 1)
	assert.NotEmpty(t, result.GlobalPath)
}
