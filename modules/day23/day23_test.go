package day23

import (
	"testing"

	"github.com/specialistvlad/adventgrid/internal/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#`

func TestParts(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 94, got)

	got, err = Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 154, got)
}

func TestLongest_UphillOnly(t *testing.T) {
	got, err := Part1(`
#.#
#^#
#.#`)
	require.ErrorIs(t, err, aoc.ErrNoSolution)
	assert.Zero(t, got)
}

func TestNewTrails_NoOpening(t *testing.T) {
	g, err := Parse("###\n#.#\n#.#")
	require.NoError(t, err)
	_, err = NewTrails(g, false)
	require.Error(t, err)
}
