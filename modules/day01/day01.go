// Package day01 recovers calibration values from lines of text.
package day01

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Part1 sums the two-digit values formed by the first and last digit of
// every line.
func Part1(input string) (int, error) {
	return calibrate(input, false)
}

// Part2 is Part1 with spelled-out digits counted as digits. Words may
// overlap, so "eightwo" contributes 8 and 2.
func Part2(input string) (int, error) {
	return calibrate(input, true)
}

func calibrate(input string, spelled bool) (int, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, l := range lines {
		first, last := -1, -1
		for j := range len(l) {
			d, ok := digitAt(l, j, spelled)
			if !ok {
				continue
			}
			if first < 0 {
				first = d
			}
			last = d
		}
		if first < 0 {
			return 0, aoc.LineError(i, fmt.Errorf("no digit in %q", l))
		}
		total += first*10 + last
	}
	return total, nil
}

func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}
