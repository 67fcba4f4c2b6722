package store

import "github.com/arl/covplan/geom"

// Catalog returns the built-in reference polygons used throughout the
// test suite and the CLI's default run: the same shapes named in the
// scenarios this system is specified against (rectangle, U-shape,
// plus-shape, holed rectangle, and two adjoining boxes).
func Catalog() MemoryProvider {
	return MemoryProvider{
		"rectangle":       rectangle(),
		"u_shape":         uShape(),
		"plus_shape":      plusShape(),
		"holed_rectangle": holedRectangle(),
		"l_shape":         lShape(),
	}
}

func rectangle() geom.Polygon {
	return geom.Polygon{Outer: geom.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 0, Y: 4},
	}}
}

func uShape() geom.Polygon {
	return geom.Polygon{Outer: geom.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 6, Y: 10},
		{X: 6, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 10}, {X: 0, Y: 10},
	}}
}

func plusShape() geom.Polygon {
	return geom.Polygon{Outer: geom.Ring{
		{X: -1, Y: -3}, {X: 1, Y: -3}, {X: 1, Y: -1}, {X: 7, Y: -1}, {X: 7, Y: 1}, {X: 1, Y: 1},
		{X: 1, Y: 7}, {X: -1, Y: 7}, {X: -1, Y: 1}, {X: -7, Y: 1}, {X: -7, Y: -1}, {X: -1, Y: -1},
	}}
}

func holedRectangle() geom.Polygon {
	return geom.Polygon{
		Outer: geom.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Holes: []geom.Ring{{
			{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6},
		}},
	}
}

func lShape() geom.Polygon {
	// A 10x5 box with a 5x5 box standing on the left half of its top edge:
	// monotone in both axes, so the partitioner keeps it as one piece.
	return geom.Polygon{Outer: geom.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10},
	}}
}
