package day14

import (
	"fmt"

	"github.com/specialistvlad/adventgrid/internal/aoc"
	"tailscale.com/util/deephash"
)

const spins = 1_000_000_000

// Parse reads the platform: 'O' rounded rocks, '#' cube rocks, '.' empty.
func Parse(input string) (aoc.Grid[byte], error) {
	return aoc.ParseGrid(input, func(b byte) (byte, error) {
		switch b {
		case 'O', '#', '.':
			return b, nil
		}
		return 0, fmt.Errorf("unexpected %q", b)
	})
}

// Tilt rolls every rounded rock as far as it goes towards d.
func Tilt(g aoc.Grid[byte], d aoc.Dir) {
	w, h := g.Width(), g.Height()
	// Walk the lines parallel to d, starting from the edge it points at.
	var starts []aoc.Pt
	switch d {
	case aoc.Up:
		for x := range w {
			starts = append(starts, aoc.Pt{X: x, Y: 0})
		}
	case aoc.Down:
		for x := range w {
			starts = append(starts, aoc.Pt{X: x, Y: h - 1})
		}
	case aoc.Left:
		for y := range h {
			starts = append(starts, aoc.Pt{X: 0, Y: y})
		}
	case aoc.Right:
		for y := range h {
			starts = append(starts, aoc.Pt{X: w - 1, Y: y})
		}
	}
	back := d.Reverse().Delta()
	for _, s := range starts {
		free := s
		for p := s; g.In(p); p = p.Add(back) {
			switch g.At(p) {
			case '#':
				free = p.Add(back)
			case 'O':
				g.Set(p, '.')
				g.Set(free, 'O')
				free = free.Add(back)
			}
		}
	}
}

// Spin tilts north, west, south and then east.
func Spin(g aoc.Grid[byte]) {
	for _, d := range []aoc.Dir{aoc.Up, aoc.Left, aoc.Down, aoc.Right} {
		Tilt(g, d)
	}
}

// Load is the total load on the north support beams.
func Load(g aoc.Grid[byte]) int {
	total := 0
	for y, row := range g {
		for _, c := range row {
			if c == 'O' {
				total += len(g) - y
			}
		}
	}
	return total
}

// Part1 tilts the platform north once.
func Part1(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	Tilt(g, aoc.Up)
	return Load(g), nil
}

// Part2 runs a billion spin cycles. The platform falls into a loop, so only
// the first repeat and the remainder within the loop are simulated.
func Part2(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	seen := map[deephash.Sum]int{g.Hash(): 0}
	for i := 1; i <= spins; i++ {
		Spin(g)
		h := g.Hash()
		if first, ok := seen[h]; ok {
			for range (spins - i) % (i - first) {
				Spin(g)
			}
			break
		}
		seen[h] = i
	}
	return Load(g), nil
}
