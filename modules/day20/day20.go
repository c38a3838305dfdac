package day20

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

const (
	broadcaster = "broadcaster"
	button      = "button"
	sink        = "rx"

	// maxPresses bounds the search for the presses at which each input
	// of the module feeding rx first sends a high pulse.
	maxPresses = 1 << 16
)

// Kind is a module type.
type Kind byte

const (
	Broadcast   Kind = 'b'
	FlipFlop    Kind = '%'
	Conjunction Kind = '&'
)

// Node is one module of the configuration.
type Node struct {
	Kind    Kind
	Outputs []string
}

// Pulse travels from one module to another.
type Pulse struct {
	From, To string
	High     bool
}

// Parse reads lines like "%a -> inv, con".
func Parse(input string) (map[string]Node, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	mods := make(map[string]Node, len(lines))
	for i, line := range lines {
		name, outs, ok := strings.Cut(line, " -> ")
		if !ok {
			return nil, aoc.LineError(i, fmt.Errorf("malformed module %q", line))
		}
		m := Node{Kind: Broadcast}
		switch {
		case name == broadcaster:
		case strings.HasPrefix(name, "%"), strings.HasPrefix(name, "&"):
			m.Kind = Kind(name[0])
			name = name[1:]
		default:
			return nil, aoc.LineError(i, fmt.Errorf("unknown module type %q", name))
		}
		if _, dup := mods[name]; dup {
			return nil, aoc.LineError(i, fmt.Errorf("module %q declared twice", name))
		}
		for _, o := range strings.Split(outs, ",") {
			m.Outputs = append(m.Outputs, strings.TrimSpace(o))
		}
		mods[name] = m
	}
	if _, ok := mods[broadcaster]; !ok {
		return nil, fmt.Errorf("no %s module", broadcaster)
	}
	return mods, nil
}

// Network is the live state of the modules.
type Network struct {
	mods   map[string]Node
	on     map[string]bool
	memory map[string]map[string]bool
}

// NewNetwork starts every flip-flop off and every conjunction remembering a
// low pulse from each input.
func NewNetwork(mods map[string]Node) *Network {
	n := &Network{
		mods:   mods,
		on:     make(map[string]bool),
		memory: make(map[string]map[string]bool),
	}
	for name, m := range mods {
		if m.Kind == Conjunction {
			n.memory[name] = make(map[string]bool)
		}
	}
	for name, m := range mods {
		for _, o := range m.Outputs {
			if mem, ok := n.memory[o]; ok {
				mem[name] = false
			}
		}
	}
	return n
}

// Press pushes the button once, calling observe for every pulse in the
// order it is delivered.
func (n *Network) Press(observe func(Pulse)) {
	queue := []Pulse{{From: button, To: broadcaster}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		observe(p)

		m, ok := n.mods[p.To]
		if !ok {
			continue
		}
		out := p.High
		switch m.Kind {
		case FlipFlop:
			if p.High {
				continue
			}
			n.on[p.To] = !n.on[p.To]
			out = n.on[p.To]
		case Conjunction:
			mem := n.memory[p.To]
			mem[p.From] = p.High
			out = false
			for _, h := range mem {
				if !h {
					out = true
					break
				}
			}
		}
		for _, o := range m.Outputs {
			queue = append(queue, Pulse{From: p.To, To: o, High: out})
		}
	}
}

// Part1 multiplies the low and high pulse counts after 1000 presses.
func Part1(input string) (int, error) {
	mods, err := Parse(input)
	if err != nil {
		return 0, err
	}
	n := NewNetwork(mods)
	var low, high int
	for range 1000 {
		n.Press(func(p Pulse) {
			if p.High {
				high++
			} else {
				low++
			}
		})
	}
	return low * high, nil
}

// Part2 finds the fewest presses that deliver a low pulse to rx. rx is fed
// by a single conjunction, which sends low only once all its inputs are
// high in the same press; each input does so periodically, so the answer
// is the LCM of the first press at which each sends high.
func Part2(input string) (int, error) {
	mods, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var hub string
	for name, m := range mods {
		for _, o := range m.Outputs {
			if o == sink {
				if hub != "" {
					return 0, fmt.Errorf("%s has more than one input", sink)
				}
				hub = name
			}
		}
	}
	if hub == "" {
		return 0, fmt.Errorf("no module feeds %s", sink)
	}
	if mods[hub].Kind != Conjunction {
		return 0, fmt.Errorf("%s is fed by %q, which is not a conjunction", sink, hub)
	}

	n := NewNetwork(mods)
	first := make(map[string]int, len(n.memory[hub]))
	for press := 1; press <= maxPresses && len(first) < len(n.memory[hub]); press++ {
		n.Press(func(p Pulse) {
			if p.To == hub && p.High {
				if _, seen := first[p.From]; !seen {
					first[p.From] = press
				}
			}
		})
	}
	if len(first) < len(n.memory[hub]) {
		return 0, aoc.ErrNoSolution
	}
	cycles := make([]int, 0, len(first))
	for _, c := range first {
		cycles = append(cycles, c)
	}
	return aoc.LCM(cycles...), nil
}
