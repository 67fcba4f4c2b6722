// Package assembly concatenates the combiner's chosen per-partition
// candidates into one global path and records the connectors between
// them for diagnostic and visualization use.
package assembly

import (
	"github.com/arl/covplan/candidate"
	"github.com/arl/covplan/combiner"
	"github.com/arl/covplan/geom"
)

// Connector is a straight hop the sweeper makes between the exit of one
// partition's chosen candidate and the entry of the next.
type Connector struct {
	From geom.Point
	To   geom.Point
}

// Result is the assembled global path plus its inter-partition connectors.
type Result struct {
	Path       []geom.Point
	Connectors []Connector
}

// Assemble concatenates candidate[p_t][k_t].path for each chosen
// assignment in visit order, deduplicating a leading waypoint when it
// coincides with the previous candidate's exit point.
func Assemble(chosen []combiner.Assignment, options [][]candidate.Option) Result {
	var result Result
	var prevExit geom.Point
	havePrev := false

	for _, a := range chosen {
		opt := options[a.PartitionIndex][a.CandidateIndex]

		if havePrev {
			result.Connectors = append(result.Connectors, Connector{From: prevExit, To: opt.Entry})
		}

		path := opt.Path
		if havePrev && len(path) > 0 && path[0] == prevExit {
			path = path[1:]
		}
		result.Path = append(result.Path, path...)

		prevExit = opt.Exit
		havePrev = true
	}

	return result
}
