package day06

import (
	"fmt"
	"math"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Race is one race: its duration and the record distance to beat.
type Race struct {
	Time, Distance int
}

// Parse reads the "Time:" and "Distance:" lines as separate races.
func Parse(input string) ([]Race, error) {
	times, dists, err := fields(input)
	if err != nil {
		return nil, err
	}
	ts, err := aoc.Fields(times)
	if err != nil {
		return nil, fmt.Errorf("times: %w", err)
	}
	ds, err := aoc.Fields(dists)
	if err != nil {
		return nil, fmt.Errorf("distances: %w", err)
	}
	if len(ts) != len(ds) {
		return nil, fmt.Errorf("%d times but %d distances", len(ts), len(ds))
	}
	races := make([]Race, len(ts))
	for i := range ts {
		races[i] = Race{ts[i], ds[i]}
	}
	return races, nil
}

// ParseKerned reads both lines ignoring the spaces between numbers, giving a
// single long race.
func ParseKerned(input string) (Race, error) {
	times, dists, err := fields(input)
	if err != nil {
		return Race{}, err
	}
	t, err := aoc.Atoi(strings.ReplaceAll(times, " ", ""))
	if err != nil {
		return Race{}, err
	}
	d, err := aoc.Atoi(strings.ReplaceAll(dists, " ", ""))
	if err != nil {
		return Race{}, err
	}
	return Race{t, d}, nil
}

func fields(input string) (times, dists string, err error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return "", "", err
	}
	if len(lines) != 2 {
		return "", "", fmt.Errorf("want 2 lines, got %d", len(lines))
	}
	times, ok1 := strings.CutPrefix(lines[0], "Time:")
	dists, ok2 := strings.CutPrefix(lines[1], "Distance:")
	if !ok1 || !ok2 {
		return "", "", fmt.Errorf("want Time: and Distance: lines")
	}
	return times, dists, nil
}

// Ways counts the hold times h in [0, Time] with h*(Time-h) > Distance.
// The winning holds are symmetric around Time/2, so only the lower bound is
// searched for, starting just below the smaller root of h^2 - T*h + D.
func (r Race) Ways() int {
	t, d := r.Time, r.Distance
	disc := t*t - 4*d
	if disc <= 0 {
		return 0
	}
	lo := max(0, int((float64(t)-math.Sqrt(float64(disc)))/2)-1)
	for lo*(t-lo) <= d {
		lo++
		if 2*lo > t {
			return 0
		}
	}
	return t - 2*lo + 1
}

// Part1 multiplies together the number of ways to win each race.
func Part1(input string) (int, error) {
	races, err := Parse(input)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, r := range races {
		product *= r.Ways()
	}
	return product, nil
}

// Part2 counts the ways to win the single kerned race.
func Part2(input string) (int, error) {
	r, err := ParseKerned(input)
	if err != nil {
		return 0, err
	}
	return r.Ways(), nil
}
