package day25

import (
	"testing"

	"github.com/specialistvlad/adventgrid/internal/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr`

func TestPart1(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 54, got)
}

func TestMinCut(t *testing.T) {
	g, err := Parse(example)
	require.NoError(t, err)
	assert.Equal(t, 15, g.Len())

	cut, side := g.MinCut(0)
	assert.Equal(t, 3, cut)
	assert.Contains(t, []int{6, 9}, side)
}

func TestPart1_NoThreeWireCut(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "bridge", input: "a: b c\nb: c\nc: d\nd: e f\ne: f"},
		{name: "single component", input: "a:"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Part1(tc.input)
			require.ErrorIs(t, err, aoc.ErrNoSolution)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("jqt rhn")
	require.Error(t, err)

	_, err = Parse("a: a")
	require.Error(t, err)
}
