package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func TestParse(t *testing.T) {
	s, err := Parse(example)
	require.NoError(t, err)
	require.Len(t, s.numbers, 10)
	assert.Equal(t, number{value: 467, row: 0, from: 0, to: 2}, s.numbers[0])
	assert.Equal(t, number{value: 598, row: 9, from: 5, to: 7}, s.numbers[9])
}

func TestPart1(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 4361, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 467835, got)
}

func TestPart1_NumberAtRowEnd(t *testing.T) {
	got, err := Part1("..12\n...#")
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}
