package day25

import "github.com/specialistvlad/adventgrid/internal/registry"

const day = 25

// Module implements the registry.Module interface for "Snowverload".
type Module struct{}

// Register registers the solvers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.Register(registry.Key{Day: day, Part: 1}, registry.Func(Part1))
}
