package day21

import (
	"fmt"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

const (
	shortWalk = 64
	longWalk  = 26501365
)

// Garden is the map with the start tile located.
type Garden struct {
	Grid  aoc.Grid[byte]
	Start aoc.Pt
}

// Parse reads the map: 'S' start, '.' garden plot, '#' rock.
func Parse(input string) (*Garden, error) {
	g, err := aoc.ParseGrid(input, func(b byte) (byte, error) {
		switch b {
		case 'S', '.', '#':
			return b, nil
		}
		return 0, fmt.Errorf("unexpected %q", b)
	})
	if err != nil {
		return nil, err
	}
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		return nil, fmt.Errorf("no start tile")
	}
	return &Garden{Grid: g, Start: start}, nil
}

// wrap maps p into the grid as if the map were tiled infinitely.
func (g *Garden) wrap(p aoc.Pt) aoc.Pt {
	w, h := g.Grid.Width(), g.Grid.Height()
	return aoc.Pt{X: ((p.X % w) + w) % w, Y: ((p.Y % h) + h) % h}
}

// count runs a breadth-first search up to n steps and counts the plots whose
// distance has the same parity as n: the elf can step back and forth to
// waste any even number of steps.
func (g *Garden) count(n int, infinite bool) int {
	dist := map[aoc.Pt]int{g.Start: 0}
	frontier := []aoc.Pt{g.Start}
	for step := 1; step <= n && len(frontier) > 0; step++ {
		var next []aoc.Pt
		for _, p := range frontier {
			for _, q := range p.Neighbors4() {
				if _, seen := dist[q]; seen {
					continue
				}
				at := q
				if infinite {
					at = g.wrap(q)
				} else if !g.Grid.In(q) {
					continue
				}
				if g.Grid.At(at) == '#' {
					continue
				}
				dist[q] = step
				next = append(next, q)
			}
		}
		frontier = next
	}
	total := 0
	for _, d := range dist {
		if d%2 == n%2 {
			total++
		}
	}
	return total
}

// Reachable counts the plots the elf can end on after exactly n steps
// within the map.
func Reachable(g *Garden, n int) int { return g.count(n, false) }

// ReachableInfinite counts the plots reachable in exactly n steps when the
// map repeats in every direction.
func ReachableInfinite(g *Garden, n int) int { return g.count(n, true) }

// ReachableQuadratic computes ReachableInfinite for large n. With a square
// map, the start in its centre and clear lanes out of it, the count grows
// quadratically in the number of whole map widths walked, so three samples
// spaced one width apart determine it.
func ReachableQuadratic(g *Garden, n int) (int, error) {
	w, h := g.Grid.Width(), g.Grid.Height()
	if w != h {
		return 0, fmt.Errorf("map is %dx%d, want a square", w, h)
	}
	if w%2 == 0 || g.Start != (aoc.Pt{X: w / 2, Y: h / 2}) {
		return 0, fmt.Errorf("start %v is not at the centre of the map", g.Start)
	}
	rem, x := n%w, n/w
	var f [3]int
	for i := range f {
		f[i] = ReachableInfinite(g, rem+i*w)
	}
	// Newton forward differences.
	d1 := f[1] - f[0]
	d2 := f[2] - 2*f[1] + f[0]
	return f[0] + x*d1 + x*(x-1)/2*d2, nil
}

// Part1 counts the plots reachable in 64 steps.
func Part1(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Reachable(g, shortWalk), nil
}

// Part2 counts the plots reachable in 26501365 steps on the infinite map.
func Part2(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return ReachableQuadratic(g, longWalk)
}
