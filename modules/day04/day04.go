package day04

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Card is a scratchcard: the winning numbers and the numbers you have.
type Card struct {
	Winning []int
	Have    []int
}

// Matches counts how many of the numbers you have are winning numbers.
func (c Card) Matches() int {
	win := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = true
	}
	m := 0
	for _, n := range c.Have {
		if win[n] {
			m++
		}
	}
	return m
}

// Parse reads "Card 1: 41 48 83 | 83 86  6" lines.
func Parse(input string) ([]Card, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, 0, len(lines))
	for i, l := range lines {
		_, body, ok := strings.Cut(l, ":")
		if !ok {
			return nil, aoc.LineError(i, fmt.Errorf("missing ':' in %q", l))
		}
		win, have, ok := strings.Cut(body, "|")
		if !ok {
			return nil, aoc.LineError(i, fmt.Errorf("missing '|' in %q", l))
		}
		var c Card
		if c.Winning, err = aoc.Fields(win); err != nil {
			return nil, aoc.LineError(i, err)
		}
		if c.Have, err = aoc.Fields(have); err != nil {
			return nil, aoc.LineError(i, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Part1 scores each card 2^(matches-1) and sums the scores.
func Part1(input string) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range cards {
		if m := c.Matches(); m > 0 {
			total += 1 << (m - 1)
		}
	}
	return total, nil
}

// Part2 counts the cards you end up with when each card with m matches wins a
// copy of each of the next m cards.
func Part2(input string) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...), nil
}
