package day03

import (
	"github.com/specialistvlad/adventgrid/internal/aoc"
)

type number struct {
	value int
	row   int
	from  int // first column
	to    int // last column, inclusive
}

// Schematic is an engine schematic: digits, '.' for blank, anything else is a
// symbol.
type Schematic struct {
	grid    aoc.Grid[byte]
	numbers []number
}

// Parse reads the schematic and locates every horizontal run of digits.
func Parse(input string) (*Schematic, error) {
	g, err := aoc.ByteGrid(input)
	if err != nil {
		return nil, err
	}
	s := &Schematic{grid: g}
	for y, row := range g {
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			n := number{row: y, from: x}
			for x < len(row) && isDigit(row[x]) {
				n.value = n.value*10 + int(row[x]-'0')
				x++
			}
			n.to = x - 1
			s.numbers = append(s.numbers, n)
		}
	}
	return s, nil
}

// neighbours calls fn for every in-grid cell touching n, diagonals included.
func (s *Schematic) neighbours(n number, fn func(p aoc.Pt, c byte)) {
	for y := n.row - 1; y <= n.row+1; y++ {
		for x := n.from - 1; x <= n.to+1; x++ {
			if y == n.row && x >= n.from && x <= n.to {
				continue
			}
			p := aoc.Pt{X: x, Y: y}
			if c, ok := s.grid.AtOk(p); ok {
				fn(p, c)
			}
		}
	}
}

// Part1 sums every number adjacent to a symbol.
func Part1(input string) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, n := range s.numbers {
		part := false
		s.neighbours(n, func(_ aoc.Pt, c byte) {
			if isSymbol(c) {
				part = true
			}
		})
		if part {
			sum += n.value
		}
	}
	return sum, nil
}

// Part2 sums the gear ratios: the product of the two numbers around each '*'
// that touches exactly two numbers.
func Part2(input string) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	gears := make(map[aoc.Pt][]int)
	for _, n := range s.numbers {
		s.neighbours(n, func(p aoc.Pt, c byte) {
			if c == '*' {
				gears[p] = append(gears[p], n.value)
			}
		})
	}
	sum := 0
	for _, nums := range gears {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}
	return sum, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSymbol(c byte) bool { return c != '.' && !isDigit(c) }
