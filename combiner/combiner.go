// Package combiner chooses a visiting order over partitions and one
// sweep candidate per partition, minimizing total candidate cost plus
// inter-partition connector length, via a Held-Karp bitmask DP.
package combiner

import (
	"math"

	"github.com/arl/covplan/candidate"
	"github.com/arl/covplan/geom"
)

// DefaultTurnPenalty is the per-excess-turn cost added during the
// turn-penalty adjustment when the caller has no opinion of its own.
const DefaultTurnPenalty = 1.0

const costEqualityTol = 1e-7

// Assignment names the chosen candidate for one partition, visited in
// the order it appears in Result.Chosen.
type Assignment struct {
	PartitionIndex int // index into the slice passed to Combine
	CandidateIndex int
}

// Result is the outcome of Combine.
type Result struct {
	Chosen  []Assignment
	Cost    float64
	Dropped []int // partition indices omitted for having no candidates
}

// Combine runs the Held-Karp DP over options, indexed by partition. A
// partition with no candidates is dropped rather than failing the call
// (the combiner never fails, per the pipeline's error-handling policy).
func Combine(options [][]candidate.Option, penalty float64) Result {
	type active struct {
		originalIndex int
		candidates    []candidate.Option
		adjusted      []float64
	}

	var actives []active
	var dropped []int
	for i, opts := range options {
		if len(opts) == 0 {
			dropped = append(dropped, i)
			continue
		}
		actives = append(actives, active{
			originalIndex: i,
			candidates:    opts,
			adjusted:      adjustedCosts(opts, penalty),
		})
	}

	m := len(actives)
	if m == 0 {
		return Result{Dropped: dropped}
	}

	full := (1 << uint(m)) - 1

	type stateKey struct{ mask, last, lastCand int }
	type stateVal struct {
		cost              float64
		nextPart, nextCand int
	}
	memo := make(map[stateKey]stateVal)

	var solve func(mask, last, lastCand int) stateVal
	solve = func(mask, last, lastCand int) stateVal {
		if mask == full {
			return stateVal{cost: 0, nextPart: -1, nextCand: -1}
		}
		key := stateKey{mask, last, lastCand}
		if v, ok := memo[key]; ok {
			return v
		}
		best := stateVal{cost: math.Inf(1), nextPart: -1, nextCand: -1}
		lastExit := actives[last].candidates[lastCand].Exit
		for j := 0; j < m; j++ {
			if mask&(1<<uint(j)) != 0 {
				continue
			}
			for k, opt := range actives[j].candidates {
				connector := euclidean(lastExit, opt.Entry)
				rest := solve(mask|(1<<uint(j)), j, k)
				total := connector + actives[j].adjusted[k] + rest.cost
				if total < best.cost-1e-12 {
					best = stateVal{cost: total, nextPart: j, nextCand: k}
				}
			}
		}
		memo[key] = best
		return best
	}

	bestTotal := math.Inf(1)
	bestStartPart, bestStartCand := -1, -1
	for i := 0; i < m; i++ {
		for k := range actives[i].candidates {
			rest := solve(1<<uint(i), i, k)
			total := actives[i].adjusted[k] + rest.cost
			if total < bestTotal-1e-12 {
				bestTotal = total
				bestStartPart, bestStartCand = i, k
			}
		}
	}

	chosen := make([]Assignment, 0, m)
	mask := 1 << uint(bestStartPart)
	last, lastCand := bestStartPart, bestStartCand
	chosen = append(chosen, Assignment{
		PartitionIndex: actives[last].originalIndex,
		CandidateIndex: lastCand,
	})
	for mask != full {
		v := memo[stateKey{mask, last, lastCand}]
		mask |= 1 << uint(v.nextPart)
		last, lastCand = v.nextPart, v.nextCand
		chosen = append(chosen, Assignment{
			PartitionIndex: actives[last].originalIndex,
			CandidateIndex: lastCand,
		})
	}

	return Result{Chosen: chosen, Cost: bestTotal, Dropped: dropped}
}

// adjustedCosts replaces each candidate's cost with cost plus
// penalty * max(0, turns - t*), where t* is the minimum turn count among
// candidates within costEqualityTol of the partition's minimum cost.
func adjustedCosts(opts []candidate.Option, penalty float64) []float64 {
	cStar := math.Inf(1)
	for _, o := range opts {
		if o.Cost < cStar {
			cStar = o.Cost
		}
	}
	tStar := math.MaxInt32
	for _, o := range opts {
		if math.Abs(o.Cost-cStar) < costEqualityTol && o.Turns < tStar {
			tStar = o.Turns
		}
	}
	adjusted := make([]float64, len(opts))
	for i, o := range opts {
		excess := o.Turns - tStar
		if excess < 0 {
			excess = 0
		}
		adjusted[i] = o.Cost + penalty*float64(excess)
	}
	return adjusted
}

func euclidean(a, b geom.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
