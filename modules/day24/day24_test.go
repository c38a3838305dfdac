package day24

import (
	"testing"

	"github.com/specialistvlad/adventgrid/internal/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3`

func TestCountIntersections(t *testing.T) {
	hs, err := Parse(example)
	require.NoError(t, err)
	assert.Equal(t, 2, CountIntersections(hs, 7, 27))
}

func TestCrossXY(t *testing.T) {
	hs, err := Parse(example)
	require.NoError(t, err)
	lo, hi := rat(7), rat(27)

	testCases := []struct {
		name string
		a, b int
		want bool
	}{
		{name: "inside", a: 0, b: 1, want: true},
		{name: "outside", a: 0, b: 3, want: false},
		{name: "in the past", a: 0, b: 4, want: false},
		{name: "parallel", a: 1, b: 2, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, crossXY(hs[tc.a], hs[tc.b], lo, hi))
		})
	}
}

func TestRock(t *testing.T) {
	hs, err := Parse(example)
	require.NoError(t, err)

	pos, vel, err := Rock(hs)
	require.NoError(t, err)
	assert.Equal(t, Vec3{24, 13, 10}, pos)
	assert.Equal(t, Vec3{-3, 1, 2}, vel)

	got, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, int64(47), got)
}

func TestRock_TooFewHailstones(t *testing.T) {
	hs, err := Parse("19, 13, 30 @ -2, 1, -2")
	require.NoError(t, err)
	_, _, err = Rock(hs)
	require.ErrorIs(t, err, aoc.ErrNoSolution)
}
