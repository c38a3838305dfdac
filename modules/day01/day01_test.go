package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`

const example2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen`

func TestPart1(t *testing.T) {
	got, err := Part1(example1)
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(example2)
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestPart2_OverlappingWords(t *testing.T) {
	got, err := Part2("eightwo")
	require.NoError(t, err)
	assert.Equal(t, 82, got)
}

func TestPart1_LineWithoutDigit(t *testing.T) {
	_, err := Part1(example2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
