package day16

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/specialistvlad/adventgrid/internal/aoc"
	"github.com/specialistvlad/adventgrid/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// Beam is a light beam entering a tile.
type Beam struct {
	Pos aoc.Pt
	Dir aoc.Dir
}

// Parse reads the contraption layout.
func Parse(input string) (aoc.Grid[byte], error) {
	return aoc.ParseGrid(input, func(b byte) (byte, error) {
		switch b {
		case '.', '/', '\\', '|', '-':
			return b, nil
		}
		return 0, fmt.Errorf("unexpected %q", b)
	})
}

// next returns the directions a beam leaves tile c in after entering it
// heading d.
func next(c byte, d aoc.Dir) []aoc.Dir {
	horizontal := d == aoc.Left || d == aoc.Right
	switch c {
	case '/':
		// Right<->Up, Left<->Down.
		return []aoc.Dir{d.Turn(!horizontal)}
	case '\\':
		return []aoc.Dir{d.Turn(horizontal)}
	case '|':
		if horizontal {
			return []aoc.Dir{aoc.Up, aoc.Down}
		}
	case '-':
		if !horizontal {
			return []aoc.Dir{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Dir{d}
}

// Energize counts the tiles a beam starting at start passes through.
func Energize(g aoc.Grid[byte], start Beam) int {
	seen := aoc.MakeGrid[uint8](g.Width(), g.Height())
	stack := []Beam{start}
	count := 0
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !g.In(b.Pos) {
			continue
		}
		mask := seen.At(b.Pos)
		if mask&(1<<b.Dir) != 0 {
			continue
		}
		if mask == 0 {
			count++
		}
		seen.Set(b.Pos, mask|1<<b.Dir)
		for _, d := range next(g.At(b.Pos), b.Dir) {
			stack = append(stack, Beam{b.Pos.Add(d.Delta()), d})
		}
	}
	return count
}

// Edges lists every beam that enters the grid from outside.
func Edges(g aoc.Grid[byte]) []Beam {
	w, h := g.Width(), g.Height()
	var out []Beam
	for x := range w {
		out = append(out, Beam{aoc.Pt{X: x, Y: 0}, aoc.Down}, Beam{aoc.Pt{X: x, Y: h - 1}, aoc.Up})
	}
	for y := range h {
		out = append(out, Beam{aoc.Pt{X: 0, Y: y}, aoc.Right}, Beam{aoc.Pt{X: w - 1, Y: y}, aoc.Left})
	}
	return out
}

// Part1 starts the beam in the top-left corner heading right.
func Part1(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Energize(g, Beam{aoc.Pt{}, aoc.Right}), nil
}

// Part2 tries every edge entry concurrently and returns the best.
func Part2(ctx context.Context, input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	edges := Edges(g)
	counts := make([]int, len(edges))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, b := range edges {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[i] = Energize(g, b)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	ctxlog.FromContext(ctx).Debug("Energized all edge entries.", "entries", len(edges))
	return slices.Max(counts), nil
}
