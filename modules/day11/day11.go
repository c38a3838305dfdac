package day11

import (
	"slices"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Solve sums the Manhattan distances between every pair of galaxies after
// each empty row and column has been replaced by factor empty ones.
func Solve(g aoc.Grid[byte], factor int) int {
	var xs, ys []int
	for y := range g {
		for x, c := range g[y] {
			if c == '#' {
				xs = append(xs, x)
				ys = append(ys, y)
			}
		}
	}
	return axis(xs, g.Width(), factor) + axis(ys, g.Height(), factor)
}

// axis expands one coordinate axis and returns the pairwise distance sum
// along it.
func axis(coords []int, size, factor int) int {
	used := make([]bool, size)
	for _, c := range coords {
		used[c] = true
	}
	shifted := make([]int, size)
	offset := 0
	for i := range size {
		shifted[i] = i + offset
		if !used[i] {
			offset += factor - 1
		}
	}
	expanded := make([]int, len(coords))
	for i, c := range coords {
		expanded[i] = shifted[c]
	}
	slices.Sort(expanded)

	total, prefix := 0, 0
	for i, v := range expanded {
		total += v*i - prefix
		prefix += v
	}
	return total
}

// Part1 doubles every empty row and column.
func Part1(input string) (int, error) {
	g, err := aoc.ByteGrid(input)
	if err != nil {
		return 0, err
	}
	return Solve(g, 2), nil
}

// Part2 expands every empty row and column a million times.
func Part2(input string) (int, error) {
	g, err := aoc.ByteGrid(input)
	if err != nil {
		return 0, err
	}
	return Solve(g, 1_000_000), nil
}
