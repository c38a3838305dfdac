package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483`

func TestKind(t *testing.T) {
	testCases := []struct {
		name   string
		cards  string
		jokers bool
		want   int
	}{
		{name: "one pair", cards: "32T3K", want: OnePair},
		{name: "three of a kind", cards: "T55J5", want: ThreeOfAKind},
		{name: "two pair", cards: "KK677", want: TwoPair},
		{name: "joker four", cards: "T55J5", jokers: true, want: FourOfAKind},
		{name: "joker two pair to four", cards: "KTJJT", jokers: true, want: FourOfAKind},
		{name: "all jokers", cards: "JJJJJ", jokers: true, want: FiveOfAKind},
		{name: "joker full house", cards: "2233J", jokers: true, want: FullHouse},
		{name: "high card", cards: "23456", want: HighCard},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, kind(tc.cards, tc.jokers))
		})
	}
}

func TestPart1(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 6440, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 5905, got)
}

func TestParse_UnknownCard(t *testing.T) {
	_, err := Parse("32X3K 765")
	require.Error(t, err)
}
