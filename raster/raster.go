// Package raster builds a regular square grid over a polygon's bounding
// box, keeps the cells that touch the polygon, and assigns each kept cell
// to the partition with the largest area overlap.
package raster

import (
	"math"
	"sort"

	"github.com/arl/covplan/geom"
)

// CellID identifies the unit cell [Col*s, (Col+1)*s] x [Row*s, (Row+1)*s]
// at the grid spacing s used to produce it.
type CellID struct {
	Row, Col int
}

// Bounds returns the square cell's bounds at the given spacing.
func (c CellID) Bounds(cellSize float64) geom.Bounds {
	return geom.Bounds{
		MinX: float64(c.Col) * cellSize,
		MaxX: float64(c.Col+1) * cellSize,
		MinY: float64(c.Row) * cellSize,
		MaxY: float64(c.Row+1) * cellSize,
	}
}

// Center returns the waypoint at the cell's center.
func (c CellID) Center(cellSize float64) geom.Point {
	return geom.Point{
		X: (float64(c.Col) + 0.5) * cellSize,
		Y: (float64(c.Row) + 0.5) * cellSize,
	}
}

// Rasterize enumerates every integer (row, col) cell whose square overlaps
// p's bounding box and keeps those whose square has non-empty intersection
// with p (zero-area boundary contact is included, per spec §4.4).
func Rasterize(p geom.Polygon, cellSize float64) ([]CellID, error) {
	if cellSize <= 0 {
		return nil, geom.ErrNonPositiveCellSize
	}
	if p.IsEmpty() {
		return nil, geom.ErrEmptyPolygon
	}

	b := p.Bounds()
	colMin := int(math.Floor(b.MinX / cellSize))
	colMax := int(math.Ceil(b.MaxX / cellSize))
	rowMin := int(math.Floor(b.MinY / cellSize))
	rowMax := int(math.Ceil(b.MaxY / cellSize))

	var cells []CellID
	for row := rowMin; row < rowMax; row++ {
		for col := colMin; col < colMax; col++ {
			cell := CellID{Row: row, Col: col}
			if cellTouchesPolygon(cell, cellSize, p) {
				cells = append(cells, cell)
			}
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells, nil
}

func cellTouchesPolygon(cell CellID, cellSize float64, p geom.Polygon) bool {
	b := cell.Bounds(cellSize)
	if p.IntersectionAreaWithRect(b) > 0 {
		return true
	}
	// Zero-area contact: the cell's center or a corner tests inside p, or a
	// boundary edge of p touches the closed cell square (e.g. the cell abuts
	// the polygon along a single edge or at a single vertex).
	corners := []geom.Point{
		{X: b.MinX, Y: b.MinY}, {X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY}, {X: b.MinX, Y: b.MaxY},
		cell.Center(cellSize),
	}
	for _, c := range corners {
		if geom.PointInPolygon(c, p) {
			return true
		}
	}
	for _, ring := range p.AllRings() {
		n := len(ring)
		for i := 0; i < n; i++ {
			e0, e1 := ring[i], ring[(i+1)%n]
			if math.Min(e0.X, e1.X) <= b.MaxX && math.Max(e0.X, e1.X) >= b.MinX &&
				math.Min(e0.Y, e1.Y) <= b.MaxY && math.Max(e0.Y, e1.Y) >= b.MinY {
				return true
			}
		}
	}
	return false
}
