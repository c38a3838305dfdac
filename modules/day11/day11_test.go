package day11

import (
	"testing"

	"github.com/specialistvlad/adventgrid/internal/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....`

func TestSolve(t *testing.T) {
	g, err := aoc.ByteGrid(example)
	require.NoError(t, err)

	testCases := []struct {
		factor int
		want   int
	}{
		{factor: 2, want: 374},
		{factor: 10, want: 1030},
		{factor: 100, want: 8410},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Solve(g, tc.factor), "factor %d", tc.factor)
	}
}

func TestPart1(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 374, got)
}
