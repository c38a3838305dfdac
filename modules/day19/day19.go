package day19

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

const (
	accept = "A"
	reject = "R"
	entry  = "in"
)

// Part is a machine part's x, m, a and s ratings.
type Part [4]int

// Rule sends a part to Target when its rating in category Cat compares to
// Value with Op ('<' or '>').
type Rule struct {
	Cat    int
	Op     byte
	Value  int
	Target string
}

func (r Rule) match(v int) bool {
	if r.Op == '<' {
		return v < r.Value
	}
	return v > r.Value
}

// Workflow is a named list of rules ending in a fallback target.
type Workflow struct {
	Rules    []Rule
	Fallback string
}

// System holds the workflows and the parts to sort.
type System struct {
	Workflows map[string]Workflow
	Parts     []Part
}

func category(c byte) (int, error) {
	if i := strings.IndexByte("xmas", c); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("unknown category %q", c)
}

// Parse reads the workflow block and the part ratings block.
func Parse(input string) (*System, error) {
	blocks, err := aoc.Blocks(input)
	if err != nil {
		return nil, err
	}
	if len(blocks) != 2 {
		return nil, fmt.Errorf("want workflows and parts, got %d blocks", len(blocks))
	}
	s := &System{Workflows: make(map[string]Workflow)}
	for _, line := range blocks[0] {
		name, body, ok := strings.Cut(strings.TrimSuffix(line, "}"), "{")
		if !ok {
			return nil, fmt.Errorf("malformed workflow %q", line)
		}
		w, err := parseWorkflow(body)
		if err != nil {
			return nil, fmt.Errorf("workflow %s: %w", name, err)
		}
		s.Workflows[name] = w
	}
	for _, line := range blocks[1] {
		vals, err := aoc.Ints(line)
		if err != nil || len(vals) != 4 {
			return nil, fmt.Errorf("malformed part %q", line)
		}
		s.Parts = append(s.Parts, Part(vals))
	}
	return s, s.validate()
}

func parseWorkflow(body string) (Workflow, error) {
	var w Workflow
	steps := strings.Split(body, ",")
	for _, step := range steps[:len(steps)-1] {
		cond, target, ok := strings.Cut(step, ":")
		if !ok || len(cond) < 3 || (cond[1] != '<' && cond[1] != '>') {
			return w, fmt.Errorf("malformed rule %q", step)
		}
		cat, err := category(cond[0])
		if err != nil {
			return w, err
		}
		v, err := aoc.Atoi(cond[2:])
		if err != nil {
			return w, err
		}
		w.Rules = append(w.Rules, Rule{Cat: cat, Op: cond[1], Value: v, Target: target})
	}
	w.Fallback = steps[len(steps)-1]
	return w, nil
}

func (s *System) known(name string) bool {
	_, ok := s.Workflows[name]
	return ok || name == accept || name == reject
}

func (s *System) validate() error {
	if _, ok := s.Workflows[entry]; !ok {
		return fmt.Errorf("no %q workflow", entry)
	}
	for name, w := range s.Workflows {
		for _, r := range w.Rules {
			if !s.known(r.Target) {
				return fmt.Errorf("workflow %s: unknown target %q", name, r.Target)
			}
		}
		if !s.known(w.Fallback) {
			return fmt.Errorf("workflow %s: unknown target %q", name, w.Fallback)
		}
	}
	return nil
}

// Accepts runs p through the workflows starting at "in".
func (s *System) Accepts(p Part) (bool, error) {
	cur := entry
	for range len(s.Workflows) + 1 {
		if cur == accept || cur == reject {
			return cur == accept, nil
		}
		w := s.Workflows[cur]
		cur = w.Fallback
		for _, r := range w.Rules {
			if r.match(p[r.Cat]) {
				cur = r.Target
				break
			}
		}
	}
	return false, fmt.Errorf("part %v loops through the workflows", p)
}

// span is a half-open rating range [lo, hi).
type span struct{ lo, hi int }

// Combinations counts the rating combinations with every category in
// 1..4000 that end up accepted.
func (s *System) Combinations() (int, error) {
	var all [4]span
	for i := range all {
		all[i] = span{1, 4001}
	}
	return s.count(entry, all, map[string]bool{})
}

func (s *System) count(name string, r [4]span, path map[string]bool) (int, error) {
	switch name {
	case reject:
		return 0, nil
	case accept:
		n := 1
		for _, sp := range r {
			n *= sp.hi - sp.lo
		}
		return n, nil
	}
	if path[name] {
		return 0, fmt.Errorf("workflow %s is part of a loop", name)
	}
	path[name] = true
	defer delete(path, name)

	total := 0
	w := s.Workflows[name]
	for _, rule := range w.Rules {
		cur := r[rule.Cat]
		yes, no := cur, cur
		if rule.Op == '<' {
			yes.hi, no.lo = min(cur.hi, rule.Value), max(cur.lo, rule.Value)
		} else {
			yes.lo, no.hi = max(cur.lo, rule.Value+1), min(cur.hi, rule.Value+1)
		}
		if yes.lo < yes.hi {
			sub := r
			sub[rule.Cat] = yes
			n, err := s.count(rule.Target, sub, path)
			if err != nil {
				return 0, err
			}
			total += n
		}
		if no.lo >= no.hi {
			return total, nil
		}
		r[rule.Cat] = no
	}
	n, err := s.count(w.Fallback, r, path)
	return total + n, err
}

// Part1 sums the ratings of every accepted part.
func Part1(input string) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range s.Parts {
		ok, err := s.Accepts(p)
		if err != nil {
			return 0, err
		}
		if ok {
			total += aoc.Sum(p[:]...)
		}
	}
	return total, nil
}

// Part2 counts the accepted rating combinations.
func Part2(input string) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return s.Combinations()
}
