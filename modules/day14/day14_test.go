package day14

import (
	"testing"

	"github.com/specialistvlad/adventgrid/internal/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....`

func TestTilt(t *testing.T) {
	g, err := Parse(example)
	require.NoError(t, err)
	Tilt(g, aoc.Up)

	want, err := Parse(`
OOOO.#.O..
OO..#....#
OO..O##..O
O..#.OO...
........#.
..#....#.#
..O..#.O.O
..O.......
#....###..
#....#....`)
	require.NoError(t, err)
	assert.Equal(t, want, g)
}

func TestSpin(t *testing.T) {
	g, err := Parse(example)
	require.NoError(t, err)
	Spin(g)

	want, err := Parse(`
.....#....
....#...O#
...OO##...
.OO#......
.....OOO#.
.O#...O#.#
....O#....
......OOOO
#...O###..
#..OO#....`)
	require.NoError(t, err)
	assert.Equal(t, want, g)
}

func TestParts(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 136, got)

	got, err = Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 64, got)
}
