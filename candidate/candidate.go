// Package candidate enumerates up to eight boustrophedon ("lawn-mower")
// sweep paths per partition — two bin axes times four corner starts — each
// costed by path length and annotated with its turn count, for the global combiner
// (package combiner) to choose among.
package candidate

import (
	"math"
	"sort"
	"strconv"

	"github.com/arl/covplan/geom"
	"github.com/arl/covplan/raster"
	"github.com/arl/covplan/trouble"
)

// Option is one candidate sweep path through a partition's assigned cells.
type Option struct {
	Entry geom.Point
	Exit  geom.Point
	Cost  float64
	Turns int
	Path  []geom.Point
}

// Generate enumerates the eligible boustrophedon candidates for the given
// cells. poly may be nil (generate both axes unconditionally); when
// supplied it drives axis eligibility via trouble.IsTroublesome.
func Generate(cells []raster.CellID, cellSize, tol float64, poly *geom.Polygon) []Option {
	waypoints := make([]geom.Point, len(cells))
	for i, c := range cells {
		waypoints[i] = c.Center(cellSize)
	}
	if len(waypoints) == 0 {
		return nil
	}

	horizontalOK, verticalOK := true, true
	if poly != nil {
		hTrouble, vTrouble := trouble.IsTroublesome(*poly, tol)
		bothTrouble := hTrouble && vTrouble
		horizontalOK = !hTrouble || bothTrouble
		verticalOK = !vTrouble || bothTrouble
	}

	var options []Option
	seen := make(map[string]bool)
	addIfNew := func(binAxis int, reverseBin, reverseLane bool) {
		path := boustrophedon(waypoints, binAxis, reverseBin, reverseLane)
		key := pathKey(path)
		if seen[key] {
			return
		}
		seen[key] = true
		options = append(options, buildOption(path))
	}

	if horizontalOK {
		for _, reverseBin := range []bool{false, true} {
			for _, reverseLane := range []bool{false, true} {
				addIfNew(0, reverseBin, reverseLane)
			}
		}
	}
	if verticalOK {
		for _, reverseBin := range []bool{false, true} {
			for _, reverseLane := range []bool{false, true} {
				addIfNew(1, reverseBin, reverseLane)
			}
		}
	}
	return options
}

func buildOption(path []geom.Point) Option {
	return Option{
		Entry: path[0],
		Exit:  path[len(path)-1],
		Cost:  pathCost(path),
		Turns: pathTurns(path),
		Path:  path,
	}
}

func pathKey(path []geom.Point) string {
	b := make([]byte, 0, len(path)*16)
	for _, p := range path {
		b = append(b, []byte(formatPoint(p))...)
	}
	return string(b)
}

func formatPoint(p geom.Point) string {
	return floatKey(p.X) + "," + floatKey(p.Y) + ";"
}

func floatKey(v float64) string {
	// Fixed precision is enough: waypoints are cell centers at a known grid
	// spacing, never the result of unbounded floating-point accumulation.
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func pathCost(path []geom.Point) float64 {
	var cost float64
	for i := 1; i < len(path); i++ {
		cost += dist(path[i-1], path[i])
	}
	return cost
}

func dist(a, b geom.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// pathTurns counts consecutive triples whose heading changes by more than
// 1e-7 radians (orientation normalized to (-pi, pi]).
func pathTurns(path []geom.Point) int {
	turns := 0
	for i := 2; i < len(path); i++ {
		a, b, c := path[i-2], path[i-1], path[i]
		h1 := math.Atan2(b.Y-a.Y, b.X-a.X)
		h2 := math.Atan2(c.Y-b.Y, c.X-b.X)
		delta := normalizeAngle(h2 - h1)
		if math.Abs(delta) > 1e-7 {
			turns++
		}
	}
	return turns
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// boustrophedon lanes waypoints along binAxis (0 = X, 1 = Y), sorting
// within each lane by the other axis and alternating ascending/descending
// per lane to produce the back-and-forth sweep. reverseBin selects which
// end of the bin axis processing starts from; reverseLane flips which
// parity (ascending-first vs descending-first) the alternation begins at.
// Together the two flags produce the four corner starts per axis.
func boustrophedon(waypoints []geom.Point, binAxis int, reverseBin, reverseLane bool) []geom.Point {
	sortAxis := 1 - binAxis
	coordOf := func(p geom.Point, axis int) float64 {
		if axis == 0 {
			return p.X
		}
		return p.Y
	}

	binVals := make([]float64, len(waypoints))
	for i, p := range waypoints {
		binVals[i] = coordOf(p, binAxis)
	}
	sortedVals := append([]float64{}, binVals...)
	sort.Float64s(sortedVals)

	var positiveDiffs []float64
	for i := 1; i < len(sortedVals); i++ {
		d := sortedVals[i] - sortedVals[i-1]
		if d > 0 {
			positiveDiffs = append(positiveDiffs, d)
		}
	}
	spacing := median(positiveDiffs)
	minCoord := sortedVals[0]

	lanes := make(map[int][]geom.Point)
	for _, p := range waypoints {
		var key int
		if spacing <= 0 {
			key = 0
		} else {
			key = int(math.Round((coordOf(p, binAxis) - minCoord) / spacing))
		}
		lanes[key] = append(lanes[key], p)
	}

	keys := make([]int, 0, len(lanes))
	for k := range lanes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	if reverseBin {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	var path []geom.Point
	for i, k := range keys {
		lane := append([]geom.Point{}, lanes[k]...)
		sort.Slice(lane, func(a, b int) bool { return coordOf(lane[a], sortAxis) < coordOf(lane[b], sortAxis) })

		ascending := i%2 == 0
		if reverseLane {
			ascending = !ascending
		}
		if !ascending {
			for a, b := 0, len(lane)-1; a < b; a, b = a+1, b-1 {
				lane[a], lane[b] = lane[b], lane[a]
			}
		}
		path = append(path, lane...)
	}
	return path
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
