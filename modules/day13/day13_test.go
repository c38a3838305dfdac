package day13

import (
	"testing"

	"github.com/specialistvlad/adventgrid/internal/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#`

func TestSummary(t *testing.T) {
	patterns, err := Parse(example)
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	assert.Equal(t, 5, patterns[0].Summary(0))
	assert.Equal(t, 400, patterns[1].Summary(0))
	assert.Equal(t, 300, patterns[0].Summary(1))
	assert.Equal(t, 100, patterns[1].Summary(1))
}

func TestParts(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 405, got)

	got, err = Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 400, got)
}

func TestParse_Ragged(t *testing.T) {
	_, err := Parse("#.#\n##\n")
	require.Error(t, err)
}

func TestParts_WhitespaceInput(t *testing.T) {
	for _, part := range []func(string) (int, error){Part1, Part2} {
		_, err := part("\t\n")
		require.ErrorIs(t, err, aoc.ErrEmptyInput)
	}
}
