package day16

import "github.com/specialistvlad/adventgrid/internal/registry"

const day = 16

// Module implements the registry.Module interface for "The Floor Will Be Lava".
type Module struct{}

// Register registers the solvers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.Register(registry.Key{Day: day, Part: 1}, registry.Func(Part1))
	r.Register(registry.Key{Day: day, Part: 2}, registry.FuncCtx(Part2))
}
