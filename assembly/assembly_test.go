package assembly

import (
	"testing"

	"github.com/arl/covplan/candidate"
	"github.com/arl/covplan/combiner"
	"github.com/arl/covplan/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleConcatenatesAndDedupes(t *testing.T) {
	options := [][]candidate.Option{
		{{
			Entry: geom.Point{X: 0, Y: 0},
			Exit:  geom.Point{X: 2, Y: 0},
			Path:  []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
			Cost:  2,
		}},
		{{
			Entry: geom.Point{X: 2, Y: 0}, // coincides with previous exit
			Exit:  geom.Point{X: 2, Y: 2},
			Path:  []geom.Point{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
			Cost:  2,
		}},
	}
	chosen := []combiner.Assignment{{PartitionIndex: 0, CandidateIndex: 0}, {PartitionIndex: 1, CandidateIndex: 0}}

	result := Assemble(chosen, options)
	require.Len(t, result.Path, 5)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, result.Path[0])
	assert.Equal(t, geom.Point{X: 2, Y: 2}, result.Path[4])
	require.Len(t, result.Connectors, 1)
	assert.Equal(t, geom.Point{X: 2, Y: 0}, result.Connectors[0].From)
	assert.Equal(t, geom.Point{X: 2, Y: 0}, result.Connectors[0].To)
}

func TestAssembleKeepsLeadingWaypointWhenDistinct(t *testing.T) {
	options := [][]candidate.Option{
		{{Entry: geom.Point{X: 0}, Exit: geom.Point{X: 1}, Path: []geom.Point{{X: 0}, {X: 1}}}},
		{{Entry: geom.Point{X: 5}, Exit: geom.Point{X: 6}, Path: []geom.Point{{X: 5}, {X: 6}}}},
	}
	chosen := []combiner.Assignment{{PartitionIndex: 0, CandidateIndex: 0}, {PartitionIndex: 1, CandidateIndex: 0}}

	result := Assemble(chosen, options)
	require.Len(t, result.Path, 4)
	require.Len(t, result.Connectors, 1)
	assert.Equal(t, geom.Point{X: 1}, result.Connectors[0].From)
	assert.Equal(t, geom.Point{X: 5}, result.Connectors[0].To)
}

func TestAssembleEmptyChosen(t *testing.T) {
	result := Assemble(nil, nil)
	assert.Empty(t, result.Path)
	assert.Empty(t, result.Connectors)
}
