package day18

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Step is one instruction of the dig plan.
type Step struct {
	Dir    aoc.Dir
	Meters int
}

// hexDirs maps the last hex digit of a colour code to a direction.
var hexDirs = [4]aoc.Dir{aoc.Right, aoc.Down, aoc.Left, aoc.Up}

// Parse reads lines like "R 6 (#70c710)". It returns the plain plan and the
// plan hidden in the colour codes.
func Parse(input string) (plain, decoded []Step, err error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, nil, err
	}
	for i, line := range lines {
		f := strings.Fields(line)
		if len(f) != 3 || len(f[0]) != 1 {
			return nil, nil, aoc.LineError(i, fmt.Errorf("malformed step %q", line))
		}
		d, ok := aoc.DirFromByte(f[0][0])
		if !ok {
			return nil, nil, aoc.LineError(i, fmt.Errorf("unknown direction %q", f[0]))
		}
		n, err := aoc.Atoi(f[1])
		if err != nil {
			return nil, nil, aoc.LineError(i, err)
		}
		plain = append(plain, Step{d, n})

		hex := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
		if len(hex) != 6 {
			return nil, nil, aoc.LineError(i, fmt.Errorf("malformed colour %q", f[2]))
		}
		dist, err := strconv.ParseInt(hex[:5], 16, 64)
		if err != nil {
			return nil, nil, aoc.LineError(i, err)
		}
		dd := hex[5] - '0'
		if dd > 3 {
			return nil, nil, aoc.LineError(i, fmt.Errorf("colour direction digit %q", hex[5]))
		}
		decoded = append(decoded, Step{hexDirs[dd], int(dist)})
	}
	return plain, decoded, nil
}

// Volume is the number of cubic meters the lagoon holds: the trench itself
// plus everything it encloses.
func Volume(plan []Step) int {
	pos := aoc.Pt{}
	pts := make([]aoc.Pt, 0, len(plan))
	boundary := 0
	for _, s := range plan {
		pos = pos.Add(s.Dir.Delta().Mul(s.Meters))
		pts = append(pts, pos)
		boundary += s.Meters
	}
	return aoc.Interior(aoc.ShoelaceArea(pts), boundary) + boundary
}

// Part1 follows the plain plan.
func Part1(input string) (int, error) {
	plan, _, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Volume(plan), nil
}

// Part2 follows the plan decoded from the colour codes.
func Part2(input string) (int, error) {
	_, plan, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Volume(plan), nil
}
