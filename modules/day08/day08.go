package day08

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Network is the left/right instruction string and the node map.
type Network struct {
	Turns string
	Nodes map[string][2]string
}

// Parse reads the instruction line then "AAA = (BBB, CCC)" lines.
func Parse(input string) (*Network, error) {
	blocks, err := aoc.Blocks(input)
	if err != nil {
		return nil, err
	}
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("want an instruction line and a node block")
	}
	n := &Network{Turns: strings.TrimSpace(blocks[0][0]), Nodes: make(map[string][2]string)}
	if strings.Trim(n.Turns, "LR") != "" {
		return nil, fmt.Errorf("instructions must be L or R, got %q", n.Turns)
	}
	for i, l := range blocks[1] {
		name, rest, ok := strings.Cut(l, " = ")
		if !ok {
			return nil, aoc.LineError(i+2, fmt.Errorf("malformed node %q", l))
		}
		rest = strings.Trim(rest, "() ")
		left, right, ok := strings.Cut(rest, ", ")
		if !ok {
			return nil, aoc.LineError(i+2, fmt.Errorf("malformed node %q", l))
		}
		n.Nodes[strings.TrimSpace(name)] = [2]string{left, right}
	}
	return n, nil
}

// Walk counts steps from start until done reports true. It fails if a
// (node, instruction) state repeats first, since the walk would then loop
// forever.
func (n *Network) Walk(start string, done func(string) bool) (int, error) {
	cur := start
	limit := len(n.Turns)*len(n.Nodes) + 1
	for steps := 0; steps <= limit; steps++ {
		if done(cur) {
			return steps, nil
		}
		next, ok := n.Nodes[cur]
		if !ok {
			return 0, fmt.Errorf("unknown node %q", cur)
		}
		if n.Turns[steps%len(n.Turns)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
	}
	return 0, fmt.Errorf("walk from %s: %w", start, aoc.ErrNoSolution)
}

// Part1 counts the steps from AAA to ZZZ.
func Part1(input string) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return n.Walk("AAA", func(s string) bool { return s == "ZZZ" })
}

// Part2 walks every node ending in A at once and counts the steps until all
// of them stand on nodes ending in Z. Each ghost runs a cycle whose length
// equals the steps to its first Z, so the answer is the LCM of those.
func Part2(input string) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var cycles []int
	for name := range n.Nodes {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		steps, err := n.Walk(name, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		cycles = append(cycles, steps)
	}
	if len(cycles) == 0 {
		return 0, fmt.Errorf("no start nodes: %w", aoc.ErrNoSolution)
	}
	return aoc.LCM(cycles...), nil
}
