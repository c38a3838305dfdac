package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

const (
	firstDay = 1
	lastDay  = 25
	maxPart  = 2
)

// Manifest is the unified, format-agnostic list of puzzles to solve.
type Manifest struct {
	Puzzles []*Puzzle
}

// Puzzle is one day's input together with the parts to run and, optionally,
// the answers they must produce.
type Puzzle struct {
	Name string
	Day  int
	// Parts to run. Empty means every registered part.
	Parts []int
	// Exactly one of InputPath and Input is set.
	InputPath string
	Input     string
	// Expect maps a part to its expected answer.
	Expect map[int]string
}

// Merge appends the puzzles of other to m.
func (m *Manifest) Merge(other *Manifest) {
	if other == nil {
		return
	}
	m.Puzzles = append(m.Puzzles, other.Puzzles...)
}

// Validate checks every puzzle and rejects duplicate names. All problems are
// reported together.
func (m *Manifest) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(m.Puzzles))
	for _, p := range m.Puzzles {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("puzzle %q declared more than once", p.Name))
		}
		seen[p.Name] = true
	}
	return errors.Join(errs...)
}

// Validate checks the day, the parts, the input source and the expectations.
func (p *Puzzle) Validate() error {
	if p.Name == "" {
		return errors.New("puzzle without a name")
	}
	if p.Day < firstDay || p.Day > lastDay {
		return fmt.Errorf("puzzle %q: day %d out of range %d..%d", p.Name, p.Day, firstDay, lastDay)
	}
	for i, part := range p.Parts {
		if part < 1 || part > maxPart {
			return fmt.Errorf("puzzle %q: part %d out of range 1..%d", p.Name, part, maxPart)
		}
		if slices.Contains(p.Parts[:i], part) {
			return fmt.Errorf("puzzle %q: part %d listed more than once", p.Name, part)
		}
	}
	switch {
	case p.InputPath == "" && p.Input == "":
		return fmt.Errorf("puzzle %q: missing input", p.Name)
	case p.InputPath != "" && p.Input != "":
		return fmt.Errorf("puzzle %q: both an input file and inline input given", p.Name)
	}
	for part := range p.Expect {
		if part < 1 || part > maxPart {
			return fmt.Errorf("puzzle %q: expectation for part %d out of range 1..%d", p.Name, part, maxPart)
		}
		if len(p.Parts) > 0 && !slices.Contains(p.Parts, part) {
			return fmt.Errorf("puzzle %q: expectation for part %d, which is not run", p.Name, part)
		}
	}
	return nil
}

// ParsePartKey maps an expectation key such as "part1" to its part number.
func ParsePartKey(key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(key, "part"))
	if err != nil || !strings.HasPrefix(key, "part") {
		return 0, fmt.Errorf("invalid expectation key %q, want part1 or part2", key)
	}
	return n, nil
}

// ResolvePath joins a relative input path to the directory of the manifest
// file that declared it.
func ResolvePath(manifestPath, inputPath string) string {
	if inputPath == "" || filepath.IsAbs(inputPath) {
		return inputPath
	}
	return filepath.Join(filepath.Dir(manifestPath), inputPath)
}
