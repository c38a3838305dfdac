package day07

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Hand types, weakest first.
const (
	HighCard = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Hand is five cards and the bid placed on them.
type Hand struct {
	Cards string
	Bid   int
}

// Parse reads "32T3K 765" lines.
func Parse(input string) ([]Hand, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	hands := make([]Hand, 0, len(lines))
	for i, l := range lines {
		cards, bid, ok := strings.Cut(strings.TrimSpace(l), " ")
		if !ok || len(cards) != 5 {
			return nil, aoc.LineError(i, fmt.Errorf("malformed hand %q", l))
		}
		for _, c := range []byte(cards) {
			if strings.IndexByte(order, c) < 0 {
				return nil, aoc.LineError(i, fmt.Errorf("unknown card %q", c))
			}
		}
		b, err := aoc.Atoi(bid)
		if err != nil {
			return nil, aoc.LineError(i, err)
		}
		hands = append(hands, Hand{Cards: cards, Bid: b})
	}
	return hands, nil
}

// kind classifies cards. With jokers, every J joins the largest group.
func kind(cards string, jokers bool) int {
	counts := make(map[byte]int, 5)
	for _, c := range []byte(cards) {
		counts[c]++
	}
	j := 0
	if jokers {
		j = counts['J']
		delete(counts, 'J')
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	top, snd := 0, 0
	if len(groups) > 0 {
		top = groups[0]
	}
	if len(groups) > 1 {
		snd = groups[1]
	}
	top += j
	switch {
	case top == 5:
		return FiveOfAKind
	case top == 4:
		return FourOfAKind
	case top == 3 && snd == 2:
		return FullHouse
	case top == 3:
		return ThreeOfAKind
	case top == 2 && snd == 2:
		return TwoPair
	case top == 2:
		return OnePair
	}
	return HighCard
}

// strength packs the hand type and the card values into one comparable
// integer: type first, then each card in order.
func strength(cards string, jokers bool) int {
	ranks := order
	if jokers {
		ranks = jokerOrder
	}
	s := kind(cards, jokers)
	for _, c := range []byte(cards) {
		s = s*len(ranks) + strings.IndexByte(ranks, c)
	}
	return s
}

// Winnings ranks the hands weakest to strongest and sums bid*rank.
func Winnings(hands []Hand, jokers bool) int {
	type scored struct {
		strength, bid int
	}
	s := make([]scored, len(hands))
	for i, h := range hands {
		s[i] = scored{strength(h.Cards, jokers), h.Bid}
	}
	slices.SortFunc(s, func(a, b scored) int { return cmp.Compare(a.strength, b.strength) })
	total := 0
	for i, h := range s {
		total += (i + 1) * h.bid
	}
	return total
}

// Part1 returns the total winnings under the standard rules.
func Part1(input string) (int, error) {
	hands, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, false), nil
}

// Part2 returns the total winnings with J as a wildcard that ranks lowest.
func Part2(input string) (int, error) {
	hands, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, true), nil
}
