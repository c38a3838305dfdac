package day17

import (
	"fmt"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Parse reads the city block heat-loss map.
func Parse(input string) (aoc.Grid[int], error) {
	return aoc.ParseGrid(input, func(b byte) (int, error) {
		if b < '1' || b > '9' {
			return 0, fmt.Errorf("unexpected %q", b)
		}
		return int(b - '0'), nil
	})
}

type state struct {
	pos        aoc.Pt
	horizontal bool // the axis of the next leg
}

// MinHeatLoss finds the cheapest path from the top-left to the bottom-right
// block when the crucible must move between lo and hi blocks in a straight
// line before turning, including the final leg.
func MinHeatLoss(g aoc.Grid[int], lo, hi int) (int, error) {
	target := aoc.Pt{X: g.Width() - 1, Y: g.Height() - 1}
	var q aoc.PQ[state]
	q.Push(state{aoc.Pt{}, true}, 0)
	q.Push(state{aoc.Pt{}, false}, 0)
	done := make(map[state]bool)

	for q.Len() > 0 {
		s, cost := q.Pop()
		if s.pos == target {
			return cost, nil
		}
		if done[s] {
			continue
		}
		done[s] = true

		dirs := [2]aoc.Dir{aoc.Up, aoc.Down}
		if s.horizontal {
			dirs = [2]aoc.Dir{aoc.Left, aoc.Right}
		}
		for _, d := range dirs {
			p, c := s.pos, cost
			for k := 1; k <= hi; k++ {
				p = p.Add(d.Delta())
				if !g.In(p) {
					break
				}
				c += g.At(p)
				if k >= lo {
					q.Push(state{p, !s.horizontal}, c)
				}
			}
		}
	}
	return 0, aoc.ErrNoSolution
}

// Part1 drives a normal crucible: at most three blocks per leg.
func Part1(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return MinHeatLoss(g, 1, 3)
}

// Part2 drives an ultra crucible: four to ten blocks per leg.
func Part2(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return MinHeatLoss(g, 4, 10)
}
