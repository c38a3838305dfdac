package day05

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Rule maps [Src, Src+Len) onto [Dst, Dst+Len).
type Rule struct {
	Dst, Src, Len int
}

// Layer is one "x-to-y map" section. Values matched by no rule pass through.
type Layer []Rule

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds  []int
	Layers []Layer
}

// span is a half-open interval [lo, hi).
type span struct{ lo, hi int }

// Parse reads the seeds line followed by blank-line separated map sections.
func Parse(input string) (*Almanac, error) {
	blocks, err := aoc.Blocks(input)
	if err != nil {
		return nil, err
	}
	head, ok := strings.CutPrefix(blocks[0][0], "seeds:")
	if !ok {
		return nil, fmt.Errorf("missing seeds line, got %q", blocks[0][0])
	}
	a := &Almanac{}
	if a.Seeds, err = aoc.Fields(head); err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}
	for _, b := range blocks[1:] {
		var layer Layer
		for _, l := range b[1:] {
			nums, err := aoc.Fields(l)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b[0], err)
			}
			if len(nums) != 3 {
				return nil, fmt.Errorf("%s: want 3 numbers, got %q", b[0], l)
			}
			layer = append(layer, Rule{Dst: nums[0], Src: nums[1], Len: nums[2]})
		}
		a.Layers = append(a.Layers, layer)
	}
	return a, nil
}

func (l Layer) apply(x int) int {
	for _, r := range l {
		if x >= r.Src && x < r.Src+r.Len {
			return x + r.Dst - r.Src
		}
	}
	return x
}

// applySpans maps whole intervals through the layer, splitting them where
// they straddle rule boundaries.
func (l Layer) applySpans(in []span) []span {
	var out []span
	pending := in
	for _, r := range l {
		var rest []span
		shift := r.Dst - r.Src
		for _, s := range pending {
			lo, hi := max(s.lo, r.Src), min(s.hi, r.Src+r.Len)
			if lo >= hi {
				rest = append(rest, s)
				continue
			}
			out = append(out, span{lo + shift, hi + shift})
			if s.lo < lo {
				rest = append(rest, span{s.lo, lo})
			}
			if hi < s.hi {
				rest = append(rest, span{hi, s.hi})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

// Location follows seed through every layer.
func (a *Almanac) Location(seed int) int {
	for _, l := range a.Layers {
		seed = l.apply(seed)
	}
	return seed
}

// Part1 returns the lowest location of any listed seed.
func Part1(input string) (int, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, aoc.ErrNoSolution
	}
	best := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		best = min(best, a.Location(s))
	}
	return best, nil
}

// Part2 reads the seeds as (start, length) pairs and returns the lowest
// location over all seeds in all ranges.
func Part2(input string) (int, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return 0, fmt.Errorf("seed ranges need an even count, got %d", len(a.Seeds))
	}
	var spans []span
	for i := 0; i < len(a.Seeds); i += 2 {
		spans = append(spans, span{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}
	for _, l := range a.Layers {
		spans = l.applySpans(spans)
	}
	return slices.MinFunc(spans, func(x, y span) int { return x.lo - y.lo }).lo, nil
}
