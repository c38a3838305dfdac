package day03

import "github.com/specialistvlad/adventgrid/internal/registry"

const day = 3

// Module implements the registry.Module interface for "Gear Ratios".
type Module struct{}

// Register registers the solvers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.Register(registry.Key{Day: day, Part: 1}, registry.Func(Part1))
	r.Register(registry.Key{Day: day, Part: 2}, registry.Func(Part2))
}
