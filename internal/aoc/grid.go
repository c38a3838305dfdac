package aoc

import (
	"fmt"
	"strings"

	"tailscale.com/util/deephash"
)

// Grid is a rectangular, row-major 2D array.
type Grid[T any] [][]T

// ParseGrid builds a grid from the lines of input, mapping each byte through
// cell. All rows must have the same width.
func ParseGrid[T any](input string, cell func(b byte) (T, error)) (Grid[T], error) {
	lines, err := Lines(input)
	if err != nil {
		return nil, err
	}
	width := len(strings.TrimSpace(lines[0]))
	g := make(Grid[T], len(lines))
	for y, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) != width {
			return nil, LineError(y, fmt.Errorf("ragged row: width %d, want %d", len(l), width))
		}
		g[y] = make([]T, len(l))
		for x := range len(l) {
			v, err := cell(l[x])
			if err != nil {
				return nil, LineError(y, fmt.Errorf("column %d: %w", x+1, err))
			}
			g[y][x] = v
		}
	}
	return g, nil
}

// ByteGrid parses input into a grid of raw bytes.
func ByteGrid(input string) (Grid[byte], error) {
	return ParseGrid(input, func(b byte) (byte, error) { return b, nil })
}

// MakeGrid allocates a w x h grid of zero values.
func MakeGrid[T any](w, h int) Grid[T] {
	g := make(Grid[T], h)
	for i := range g {
		g[i] = make([]T, w)
	}
	return g
}

// Width is the number of columns.
func (g Grid[T]) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height is the number of rows.
func (g Grid[T]) Height() int { return len(g) }

// In reports whether p lies inside the grid.
func (g Grid[T]) In(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.Y < len(g) && p.X < len(g[p.Y])
}

// At returns the cell at p. It panics outside the grid.
func (g Grid[T]) At(p Pt) T { return g[p.Y][p.X] }

// Set stores v at p.
func (g Grid[T]) Set(p Pt, v T) { g[p.Y][p.X] = v }

// AtOk returns the cell at p and whether p was inside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Find returns the first point whose cell satisfies match, scanning rows top
// to bottom.
func (g Grid[T]) Find(match func(T) bool) (Pt, bool) {
	for y, row := range g {
		for x, v := range row {
			if match(v) {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for i, row := range g {
		out[i] = append([]T(nil), row...)
	}
	return out
}

// Transpose returns g flipped over its main diagonal.
func (g Grid[T]) Transpose() Grid[T] {
	out := MakeGrid[T](g.Height(), g.Width())
	for y, row := range g {
		for x, v := range row {
			out[x][y] = v
		}
	}
	return out
}

// Hash returns a content hash of g, suitable as a map key for cycle
// detection.
func (g Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g)
}
