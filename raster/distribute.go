package raster

import "github.com/arl/covplan/geom"

// DistributeCells assigns each cell to the partition whose polygon has the
// largest area overlap with that cell's square. Ties are broken by lowest
// partition index. Cells with zero overlap with every partition are
// dropped silently (spec §7: "not an error").
func DistributeCells(cells []CellID, cellSize float64, partitions []geom.Polygon) map[int][]CellID {
	out := make(map[int][]CellID)
	for _, cell := range cells {
		bounds := cell.Bounds(cellSize)
		best := -1
		bestArea := 0.0
		for idx, part := range partitions {
			area := part.IntersectionAreaWithRect(bounds)
			if area > bestArea {
				bestArea = area
				best = idx
			}
		}
		if best < 0 {
			continue
		}
		out[best] = append(out[best], cell)
	}
	return out
}
