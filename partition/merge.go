package partition

import (
	assert "github.com/arl/assertgo"
	"github.com/arl/covplan/geom"
	"github.com/arl/covplan/trouble"
)

// MergePartitions greedily unions adjacent pieces whenever the union
// remains monotone in at least one axis, iterating passes in lexicographic
// (i, j) order until a full pass merges nothing.
//
// Declining a union for any reason documented in spec.md §7 ("union
// produces a multi-part or collection geometry") is not an error: the pair
// is simply skipped and both pieces survive the pass unmerged.
func MergePartitions(pieces []geom.Polygon, tol float64) []geom.Polygon {
	current := append([]geom.Polygon{}, pieces...)

	for {
		merged, changed := mergePass(current, tol)
		current = merged
		if !changed {
			return current
		}
	}
}

func mergePass(pieces []geom.Polygon, tol float64) ([]geom.Polygon, bool) {
	n := len(pieces)
	absorbed := make([]bool, n)
	result := append([]geom.Polygon{}, pieces...)
	changed := false

	for i := 0; i < n; i++ {
		if absorbed[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if absorbed[j] {
				continue
			}
			shared := geom.SharedBoundaryLength(result[i], result[j])
			if shared < tol {
				continue
			}

			unioned := geom.Union(result[i], result[j], tol)
			if len(unioned) != 1 {
				continue
			}
			candidate := unioned[0]

			hTrouble, vTrouble := trouble.IsTroublesome(candidate, tol)
			if hTrouble && vTrouble {
				continue
			}

			result[i] = candidate
			absorbed[j] = true
			changed = true
		}
	}

	if !changed {
		return result, false
	}

	out := make([]geom.Polygon, 0, n)
	for i, p := range result {
		if !absorbed[i] {
			out = append(out, p)
		}
	}
	assert.True(len(out) > 0, "merge pass absorbed every partition")
	return out, true
}
