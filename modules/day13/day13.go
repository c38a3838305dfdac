package day13

import (
	"fmt"
	"math/bits"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Pattern holds a block of ash and rock as row and column bitmasks.
type Pattern struct {
	Rows []uint64
	Cols []uint64
}

// Parse splits the input into blank-line separated patterns.
func Parse(input string) ([]Pattern, error) {
	blocks, err := aoc.Blocks(input)
	if err != nil {
		return nil, err
	}
	patterns := make([]Pattern, 0, len(blocks))
	for n, block := range blocks {
		w := len(block[0])
		if w > 64 || len(block) > 64 {
			return nil, fmt.Errorf("pattern %d: %dx%d exceeds 64x64", n+1, w, len(block))
		}
		p := Pattern{Rows: make([]uint64, len(block)), Cols: make([]uint64, w)}
		for y, line := range block {
			if len(line) != w {
				return nil, fmt.Errorf("pattern %d: row %d has width %d, want %d", n+1, y+1, len(line), w)
			}
			for x := range w {
				var bit uint64
				switch line[x] {
				case '#':
					bit = 1
				case '.':
				default:
					return nil, fmt.Errorf("pattern %d: unexpected %q", n+1, line[x])
				}
				p.Rows[y] = p.Rows[y]<<1 | bit
				p.Cols[x] = p.Cols[x]<<1 | bit
			}
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// mirror returns the number of lines before the first reflection whose
// two sides differ in exactly smudges cells, or 0 if there is none.
func mirror(lines []uint64, smudges int) int {
	for i := 1; i < len(lines); i++ {
		diff := 0
		for a, b := i-1, i; a >= 0 && b < len(lines) && diff <= smudges; a, b = a-1, b+1 {
			diff += bits.OnesCount64(lines[a] ^ lines[b])
		}
		if diff == smudges {
			return i
		}
	}
	return 0
}

// Summary is 100 times the rows above a horizontal mirror plus the columns
// left of a vertical one.
func (p Pattern) Summary(smudges int) int {
	return 100*mirror(p.Rows, smudges) + mirror(p.Cols, smudges)
}

func solve(input string, smudges int) (int, error) {
	patterns, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range patterns {
		total += p.Summary(smudges)
	}
	return total, nil
}

// Part1 summarises the exact reflections.
func Part1(input string) (int, error) { return solve(input, 0) }

// Part2 summarises the reflections that hold after fixing one smudge.
func Part2(input string) (int, error) { return solve(input, 1) }
