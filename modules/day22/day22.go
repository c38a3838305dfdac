package day22

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Brick spans the inclusive box From..To.
type Brick struct {
	From, To [3]int
}

// Parse reads lines like "1,0,1~1,2,1".
func Parse(input string) ([]Brick, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	bricks := make([]Brick, 0, len(lines))
	for i, line := range lines {
		v, err := aoc.Ints(line)
		if err != nil {
			return nil, aoc.LineError(i, err)
		}
		if len(v) != 6 {
			return nil, aoc.LineError(i, fmt.Errorf("want 6 coordinates, got %d", len(v)))
		}
		var b Brick
		for k := range 3 {
			b.From[k], b.To[k] = min(v[k], v[k+3]), max(v[k], v[k+3])
		}
		if b.From[2] < 1 {
			return nil, aoc.LineError(i, fmt.Errorf("brick below the ground"))
		}
		bricks = append(bricks, b)
	}
	return bricks, nil
}

// Stack is a settled pile of bricks. Bricks are ordered bottom first, and
// Below[i] and Above[i] hold the indices of the bricks touching brick i.
type Stack struct {
	Bricks []Brick
	Below  [][]int
	Above  [][]int
}

type top struct {
	z, id int
}

// Settle lets every brick fall until it rests on the ground or another
// brick.
func Settle(bricks []Brick) *Stack {
	bricks = slices.Clone(bricks)
	slices.SortFunc(bricks, func(a, b Brick) int { return a.From[2] - b.From[2] })

	s := &Stack{
		Bricks: bricks,
		Below:  make([][]int, len(bricks)),
		Above:  make([][]int, len(bricks)),
	}
	heights := make(map[[2]int]top)
	for i := range bricks {
		b := &bricks[i]
		rest := 0
		for x := b.From[0]; x <= b.To[0]; x++ {
			for y := b.From[1]; y <= b.To[1]; y++ {
				if t, ok := heights[[2]int{x, y}]; ok {
					rest = max(rest, t.z)
				}
			}
		}
		drop := b.From[2] - rest - 1
		b.From[2] -= drop
		b.To[2] -= drop

		for x := b.From[0]; x <= b.To[0]; x++ {
			for y := b.From[1]; y <= b.To[1]; y++ {
				c := [2]int{x, y}
				if t, ok := heights[c]; ok && t.z == rest && !slices.Contains(s.Below[i], t.id) {
					s.Below[i] = append(s.Below[i], t.id)
					s.Above[t.id] = append(s.Above[t.id], i)
				}
				heights[c] = top{b.To[2], i}
			}
		}
	}
	return s
}

// Safe reports whether brick i can be removed without any other brick
// falling.
func (s *Stack) Safe(i int) bool {
	for _, j := range s.Above[i] {
		if len(s.Below[j]) == 1 {
			return false
		}
	}
	return true
}

// Falls counts the other bricks that fall when brick i is removed.
func (s *Stack) Falls(i int) int {
	falling := map[int]bool{i: true}
	// Bricks are ordered by height, so a single upward sweep sees every
	// supporter before the brick it supports.
	for j := i + 1; j < len(s.Bricks); j++ {
		if len(s.Below[j]) == 0 {
			continue
		}
		all := true
		for _, k := range s.Below[j] {
			if !falling[k] {
				all = false
				break
			}
		}
		if all {
			falling[j] = true
		}
	}
	return len(falling) - 1
}

// Part1 counts the bricks that are safe to disintegrate.
func Part1(input string) (int, error) {
	bricks, err := Parse(input)
	if err != nil {
		return 0, err
	}
	s := Settle(bricks)
	total := 0
	for i := range s.Bricks {
		if s.Safe(i) {
			total++
		}
	}
	return total, nil
}

// Part2 sums, over every brick, the number of others that would fall.
func Part2(input string) (int, error) {
	bricks, err := Parse(input)
	if err != nil {
		return 0, err
	}
	s := Settle(bricks)
	total := 0
	for i := range s.Bricks {
		total += s.Falls(i)
	}
	return total, nil
}
