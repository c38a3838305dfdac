package day23

import (
	"fmt"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Parse reads the hiking map: '#' forest, '.' path, and slopes '^>v<'.
func Parse(input string) (aoc.Grid[byte], error) {
	return aoc.ParseGrid(input, func(b byte) (byte, error) {
		switch b {
		case '#', '.', '^', '>', 'v', '<':
			return b, nil
		}
		return 0, fmt.Errorf("unexpected %q", b)
	})
}

type edge struct {
	to, length int
}

// Trails is the map compressed to its junctions: the start, the end and
// every tile with more than two open neighbours.
type Trails struct {
	nodes map[aoc.Pt]int
	adj   [][]edge
	start int
	end   int
}

func moves(g aoc.Grid[byte], p aoc.Pt, slippery bool) []aoc.Pt {
	dirs := aoc.Dirs[:]
	if d, ok := aoc.DirFromByte(g.At(p)); ok && slippery {
		dirs = []aoc.Dir{d}
	}
	var out []aoc.Pt
	for _, d := range dirs {
		q := p.Add(d.Delta())
		if c, ok := g.AtOk(q); ok && c != '#' {
			out = append(out, q)
		}
	}
	return out
}

func openIn(row []byte) (int, error) {
	x := -1
	for i, c := range row {
		if c == '.' {
			if x >= 0 {
				return 0, fmt.Errorf("more than one opening")
			}
			x = i
		}
	}
	if x < 0 {
		return 0, fmt.Errorf("no opening")
	}
	return x, nil
}

// NewTrails finds the junctions of g and the corridor lengths between them.
// On slippery slopes a corridor can only be walked downhill.
func NewTrails(g aoc.Grid[byte], slippery bool) (*Trails, error) {
	sx, err := openIn(g[0])
	if err != nil {
		return nil, fmt.Errorf("top row: %w", err)
	}
	ex, err := openIn(g[g.Height()-1])
	if err != nil {
		return nil, fmt.Errorf("bottom row: %w", err)
	}
	start, end := aoc.Pt{X: sx, Y: 0}, aoc.Pt{X: ex, Y: g.Height() - 1}

	t := &Trails{nodes: map[aoc.Pt]int{start: 0, end: 1}, start: 0, end: 1}
	order := []aoc.Pt{start, end}
	for y := range g {
		for x := range g[y] {
			p := aoc.Pt{X: x, Y: y}
			if g.At(p) != '#' && len(moves(g, p, false)) > 2 {
				t.nodes[p] = len(order)
				order = append(order, p)
			}
		}
	}
	t.adj = make([][]edge, len(order))
	for i, n := range order {
		for _, q := range moves(g, n, slippery) {
			prev, cur, length := n, q, 1
			ok := true
			for {
				if _, junction := t.nodes[cur]; junction {
					break
				}
				var next []aoc.Pt
				for _, r := range moves(g, cur, slippery) {
					if r != prev {
						next = append(next, r)
					}
				}
				if len(next) == 0 {
					ok = false
					break
				}
				prev, cur = cur, next[0]
				length++
			}
			if ok {
				t.adj[i] = append(t.adj[i], edge{t.nodes[cur], length})
			}
		}
	}
	return t, nil
}

// Longest returns the length of the longest path from start to end that
// visits no tile twice.
func (t *Trails) Longest() (int, error) {
	seen := make([]bool, len(t.adj))
	best := -1
	var walk func(n, dist int)
	walk = func(n, dist int) {
		if n == t.end {
			best = max(best, dist)
			return
		}
		seen[n] = true
		for _, e := range t.adj[n] {
			if !seen[e.to] {
				walk(e.to, dist+e.length)
			}
		}
		seen[n] = false
	}
	walk(t.start, 0)
	if best < 0 {
		return 0, aoc.ErrNoSolution
	}
	return best, nil
}

func solve(input string, slippery bool) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	t, err := NewTrails(g, slippery)
	if err != nil {
		return 0, err
	}
	return t.Longest()
}

// Part1 walks the longest hike where slopes force the direction.
func Part1(input string) (int, error) { return solve(input, true) }

// Part2 walks the longest hike treating slopes as ordinary paths.
func Part2(input string) (int, error) { return solve(input, false) }
