package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/config"
	"github.com/specialistvlad/adventgrid/internal/ctxlog"
	"github.com/specialistvlad/adventgrid/internal/registry"
)

// job is one (day, part) to solve against one input.
type job struct {
	name   string
	key    registry.Key
	input  string
	expect string // empty when there is no expectation
}

// buildJobs expands the manifest, or the single day selection, into jobs
// ordered by (day, part, name).
func (a *App) buildJobs(ctx context.Context) ([]job, error) {
	var puzzles []*config.Puzzle
	if a.config.ManifestPath != "" {
		m, err := a.loadManifest(ctx, a.config.ManifestPath)
		if err != nil {
			return nil, err
		}
		puzzles = m.Puzzles
	} else {
		puzzles = []*config.Puzzle{a.selection()}
	}

	var jobs []job
	for _, p := range puzzles {
		input, err := readInput(p)
		if err != nil {
			return nil, err
		}
		parts := p.Parts
		if len(parts) == 0 {
			parts = a.registry.Parts(p.Day)
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("puzzle %q: day %d: %w", p.Name, p.Day, registry.ErrNotRegistered)
		}
		for _, part := range parts {
			jobs = append(jobs, job{
				name:   p.Name,
				key:    registry.Key{Day: p.Day, Part: part},
				input:  input,
				expect: p.Expect[part],
			})
		}
	}

	slices.SortStableFunc(jobs, func(x, y job) int {
		if c := x.key.Compare(y.key); c != 0 {
			return c
		}
		return strings.Compare(x.name, y.name)
	})
	ctxlog.FromContext(ctx).Debug("Jobs built.", "puzzles", len(puzzles), "jobs", len(jobs))
	return jobs, nil
}

// selection turns the -day/-part/-input flags into a puzzle. Without an input
// path the input is read from dayNN.txt in the input directory.
func (a *App) selection() *config.Puzzle {
	path := a.config.InputPath
	if path == "" {
		path = filepath.Join(a.config.InputDir, fmt.Sprintf("day%02d.txt", a.config.Day))
	}
	p := &config.Puzzle{
		Name:      filepath.Base(path),
		Day:       a.config.Day,
		InputPath: path,
	}
	if a.config.Part != 0 {
		p.Parts = []int{a.config.Part}
	}
	return p
}

func readInput(p *config.Puzzle) (string, error) {
	if p.InputPath == "" {
		return p.Input, nil
	}
	b, err := os.ReadFile(p.InputPath)
	if err != nil {
		return "", fmt.Errorf("puzzle %q: failed to read input: %w", p.Name, err)
	}
	return string(b), nil
}
