package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/specialistvlad/adventgrid/internal/ctxlog"
)

// ErrNotRegistered is returned when no solver exists for a key.
var ErrNotRegistered = errors.New("solver not registered")

// Module is the interface that every day module implements to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the solvers registered for a single application instance.
type Registry struct {
	solvers map[Key]Solver
}

// New creates an empty Registry and registers the given modules into it.
func New(modules ...Module) *Registry {
	r := &Registry{solvers: make(map[Key]Solver)}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register adds a solver for key. It panics if key is invalid or taken.
func (r *Registry) Register(key Key, solver Solver) {
	if err := key.Validate(); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	if solver == nil {
		panic(fmt.Sprintf("registry: nil solver for %s", key))
	}
	if _, exists := r.solvers[key]; exists {
		panic(fmt.Sprintf("solver for '%s' already registered", key))
	}
	slog.Debug("Registering solver.", "key", key.String())
	r.solvers[key] = solver
}

// Lookup returns the solver for key.
func (r *Registry) Lookup(key Key) (Solver, bool) {
	s, ok := r.solvers[key]
	return s, ok
}

// Keys returns every registered key in (day, part) order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.solvers))
	for k := range r.solvers {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Key.Compare)
	return keys
}

// Parts returns the registered parts of day in ascending order.
func (r *Registry) Parts(day int) []int {
	var parts []int
	for _, k := range r.Keys() {
		if k.Day == day {
			parts = append(parts, k.Part)
		}
	}
	return parts
}

// Len is the number of registered solvers.
func (r *Registry) Len() int { return len(r.solvers) }

// Solve runs the solver registered for key against input.
func (r *Registry) Solve(ctx context.Context, key Key, input string) (string, error) {
	s, ok := r.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrNotRegistered)
	}
	ctxlog.FromContext(ctx).Debug("Dispatching solver.", "key", key.String(), "input_bytes", len(input))
	answer, err := s(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return answer, nil
}
