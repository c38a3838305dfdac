package day15

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Hash is the holiday ASCII string helper algorithm.
func Hash(s string) int {
	h := 0
	for i := range len(s) {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

// Step is one initialisation instruction. Focal is 0 for a removal.
type Step struct {
	Raw   string
	Label string
	Focal int
}

// Parse splits the comma separated sequence. Newlines are ignored.
func Parse(input string) ([]Step, error) {
	input = strings.ReplaceAll(strings.ReplaceAll(input, "\r", ""), "\n", "")
	if strings.TrimSpace(input) == "" {
		return nil, aoc.ErrEmptyInput
	}
	raw := strings.Split(input, ",")
	steps := make([]Step, 0, len(raw))
	for i, r := range raw {
		s := Step{Raw: r}
		if label, ok := strings.CutSuffix(r, "-"); ok {
			s.Label = label
		} else {
			label, focal, ok := strings.Cut(r, "=")
			if !ok {
				return nil, fmt.Errorf("step %d: %q has no operation", i+1, r)
			}
			n, err := aoc.Atoi(focal)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			if n < 1 || n > 9 {
				return nil, fmt.Errorf("step %d: focal length %d out of range", i+1, n)
			}
			s.Label, s.Focal = label, n
		}
		if s.Label == "" {
			return nil, fmt.Errorf("step %d: empty label", i+1)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

type lens struct {
	label string
	focal int
}

// FocusingPower arranges the lenses in the 256 boxes and scores the result.
func FocusingPower(steps []Step) int {
	var boxes [256][]lens
	for _, s := range steps {
		b := &boxes[Hash(s.Label)]
		i := slices.IndexFunc(*b, func(l lens) bool { return l.label == s.Label })
		switch {
		case s.Focal == 0 && i >= 0:
			*b = slices.Delete(*b, i, i+1)
		case s.Focal == 0:
		case i >= 0:
			(*b)[i].focal = s.Focal
		default:
			*b = append(*b, lens{s.Label, s.Focal})
		}
	}
	total := 0
	for n, b := range boxes {
		for slot, l := range b {
			total += (n + 1) * (slot + 1) * l.focal
		}
	}
	return total
}

// Part1 sums the hash of every step.
func Part1(input string) (int, error) {
	steps, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range steps {
		total += Hash(s.Raw)
	}
	return total, nil
}

// Part2 runs the HASHMAP procedure.
func Part2(input string) (int, error) {
	steps, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return FocusingPower(steps), nil
}
