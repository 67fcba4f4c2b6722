// Package store provides polygon providers for the CLI and pipeline: a
// fixed in-memory catalog of named reference shapes, and a YAML-backed
// loader for user-supplied polygon files.
package store

import (
	"fmt"
	"io/ioutil"
	"sort"

	yaml "gopkg.in/yaml.v2"

	"github.com/arl/covplan/geom"
)

// Provider resolves a polygon by name. The core never interprets the
// provider's storage format; it only consumes the resulting geom.Polygon.
type Provider interface {
	Polygon(name string) (geom.Polygon, bool)
	Names() []string
}

// MemoryProvider is a Provider backed by an in-memory map.
type MemoryProvider map[string]geom.Polygon

// Polygon implements Provider.
func (m MemoryProvider) Polygon(name string) (geom.Polygon, bool) {
	p, ok := m[name]
	return p, ok
}

// Names implements Provider, returning names in sorted order.
func (m MemoryProvider) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PointSpec is a single (x, y) pair as it appears in a YAML polygon file.
type PointSpec [2]float64

// RingSpec is an ordered list of points, open (no repeated closing vertex).
type RingSpec []PointSpec

// PolygonSpec is the on-disk YAML representation of one named polygon.
type PolygonSpec struct {
	Name  string     `yaml:"name"`
	Outer RingSpec   `yaml:"outer"`
	Holes []RingSpec `yaml:"holes,omitempty"`
}

func (r RingSpec) toRing() geom.Ring {
	ring := make(geom.Ring, len(r))
	for i, pt := range r {
		ring[i] = geom.Point{X: pt[0], Y: pt[1]}
	}
	return ring
}

// ToPolygon converts the YAML spec into a geom.Polygon.
func (s PolygonSpec) ToPolygon() geom.Polygon {
	holes := make([]geom.Ring, len(s.Holes))
	for i, h := range s.Holes {
		holes[i] = h.toRing()
	}
	return geom.Polygon{Outer: s.Outer.toRing(), Holes: holes}
}

// LoadYAMLFile reads a list of PolygonSpec from path and returns them as a
// MemoryProvider keyed by name.
func LoadYAMLFile(path string) (MemoryProvider, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", path, err)
	}
	var specs []PolygonSpec
	if err := yaml.Unmarshal(buf, &specs); err != nil {
		return nil, fmt.Errorf("store: parsing %s: %w", path, err)
	}
	out := make(MemoryProvider, len(specs))
	for _, spec := range specs {
		out[spec.Name] = spec.ToPolygon()
	}
	return out, nil
}
