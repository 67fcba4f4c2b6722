// Package pipeline wires the geometry kernel, trouble analyzer,
// partitioner, rasterizer, candidate generator, combiner and assembler
// into the single entry point external callers use.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/arl/covplan/assembly"
	"github.com/arl/covplan/candidate"
	"github.com/arl/covplan/combiner"
	"github.com/arl/covplan/geom"
	"github.com/arl/covplan/partition"
	"github.com/arl/covplan/raster"
)

// Config controls one pipeline run. The zero value is invalid; use
// DefaultConfig as a starting point.
type Config struct {
	CellSize    float64
	Tolerance   float64
	MaxDepth    int
	TurnPenalty float64

	// Logger receives pipeline diagnostics (e.g. a partition dropped for
	// lacking candidates). Defaults to a discarding logger so library use
	// stays silent unless a caller opts in; the CLI wires its own logger to
	// stderr at the main boundary.
	Logger *log.Logger
}

// DefaultConfig returns the parameter defaults named in the pipeline's
// external interface.
func DefaultConfig() Config {
	return Config{
		CellSize:    1.0,
		Tolerance:   1.0,
		MaxDepth:    40,
		TurnPenalty: combiner.DefaultTurnPenalty,
		Logger:      log.New(io.Discard, "", 0),
	}
}

// Diagnostics is the side-channel record the optional visualizer consumes:
// every intermediate artifact the pipeline produced on its way to the
// global path.
type Diagnostics struct {
	PassRecords       []partition.PassRecord
	MergedPartitions  []geom.Polygon
	CellAssignments   map[int][]raster.CellID
	PerPartitionPaths [][]geom.Point
	Connectors        []assembly.Connector
	DroppedPartitions []int
}

// Result is a full pipeline run's output.
type Result struct {
	GlobalPath  []geom.Point
	Diagnostics Diagnostics
}

// RunPipeline decomposes polygon, rasterizes and distributes its cells,
// generates sweep candidates per partition, and returns the globally
// combined coverage path. ctx is checked between partitions and before
// the combiner's DP; cancellation is cooperative and yields no partial
// result.
func RunPipeline(ctx context.Context, polygon geom.Polygon, cfg Config) (Result, error) {
	if polygon.IsEmpty() {
		return Result{}, geom.ErrEmptyPolygon
	}
	if cfg.CellSize <= 0 {
		return Result{}, geom.ErrNonPositiveCellSize
	}
	if cfg.Tolerance <= 0 {
		return Result{}, geom.ErrNonPositiveTolerance
	}
	if err := polygon.Validate(); err != nil {
		return Result{}, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	pieces, passRecords := partition.GreedyPartition(polygon, cfg.MaxDepth, cfg.Tolerance)
	merged := partition.MergePartitions(pieces, cfg.Tolerance)

	cells, err := raster.Rasterize(polygon, cfg.CellSize)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: rasterizing: %w", err)
	}
	assignments := raster.DistributeCells(cells, cfg.CellSize, merged)

	options := make([][]candidate.Option, len(merged))
	perPartitionPaths := make([][]geom.Point, len(merged))
	for i := range merged {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("pipeline: cancelled during candidate generation: %w", err)
		}
		part := merged[i]
		opts := candidate.Generate(assignments[i], cfg.CellSize, cfg.Tolerance, &part)
		options[i] = opts
		if len(opts) == 0 {
			logger.Printf("pipeline: partition %d has no candidates, omitting from tour", i)
			continue
		}
	}

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("pipeline: cancelled before combining: %w", err)
	}

	combined := combiner.Combine(options, cfg.TurnPenalty)
	assembled := assembly.Assemble(combined.Chosen, options)

	for _, a := range combined.Chosen {
		perPartitionPaths[a.PartitionIndex] = options[a.PartitionIndex][a.CandidateIndex].Path
	}

	return Result{
		GlobalPath: assembled.Path,
		Diagnostics: Diagnostics{
			PassRecords:       passRecords,
			MergedPartitions:  merged,
			CellAssignments:   assignments,
			PerPartitionPaths: perPartitionPaths,
			Connectors:        assembled.Connectors,
			DroppedPartitions: combined.Dropped,
		},
	}, nil
}
