package day09

import "github.com/specialistvlad/adventgrid/internal/aoc"

// Parse reads one history of integers per line.
func Parse(input string) ([][]int, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(lines))
	for i, l := range lines {
		if out[i], err = aoc.Fields(l); err != nil {
			return nil, aoc.LineError(i, err)
		}
	}
	return out, nil
}

func solve(input string, forward bool) (int, error) {
	histories, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, h := range histories {
		sum += aoc.Extrapolate(h, forward)
	}
	return sum, nil
}

// Part1 sums the next value of every history.
func Part1(input string) (int, error) { return solve(input, true) }

// Part2 sums the value preceding every history.
func Part2(input string) (int, error) { return solve(input, false) }
