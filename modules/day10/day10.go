package day10

import (
	"fmt"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// pipes lists the two directions each pipe opens towards.
var pipes = map[byte][2]aoc.Dir{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Left, aoc.Right},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Down, aoc.Left},
	'F': {aoc.Down, aoc.Right},
}

func opens(c byte, d aoc.Dir) bool {
	p, ok := pipes[c]
	return ok && (p[0] == d || p[1] == d)
}

// Loop returns the tiles of the main loop in walking order, starting at S.
func Loop(g aoc.Grid[byte]) ([]aoc.Pt, error) {
	start, ok := g.Find(func(c byte) bool { return c == 'S' })
	if !ok {
		return nil, fmt.Errorf("no start tile")
	}
	var heading aoc.Dir
	found := false
	for _, d := range aoc.Dirs {
		if c, ok := g.AtOk(start.Add(d.Delta())); ok && opens(c, d.Reverse()) {
			heading, found = d, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("start tile %v connects to nothing", start)
	}
	loop := []aoc.Pt{start}
	cur := start.Add(heading.Delta())
	for cur != start {
		c, ok := g.AtOk(cur)
		if !ok {
			return nil, fmt.Errorf("loop leaves the grid at %v", cur)
		}
		p, isPipe := pipes[c]
		if !isPipe || !opens(c, heading.Reverse()) {
			return nil, fmt.Errorf("loop broken at %v (%q)", cur, c)
		}
		loop = append(loop, cur)
		if p[0] == heading.Reverse() {
			heading = p[1]
		} else {
			heading = p[0]
		}
		cur = cur.Add(heading.Delta())
	}
	return loop, nil
}

func parse(input string) ([]aoc.Pt, error) {
	g, err := aoc.ByteGrid(input)
	if err != nil {
		return nil, err
	}
	return Loop(g)
}

// Part1 returns the number of steps to the point of the loop farthest from S.
func Part1(input string) (int, error) {
	loop, err := parse(input)
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

// Part2 counts the tiles enclosed by the loop. The loop is a lattice polygon
// whose vertices are all its tiles, so Pick's theorem gives the interior
// count from the shoelace area and the boundary length.
func Part2(input string) (int, error) {
	loop, err := parse(input)
	if err != nil {
		return 0, err
	}
	return aoc.Interior(aoc.ShoelaceArea(loop), len(loop)), nil
}
