package day24

import (
	"fmt"
	"math/big"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

const (
	areaMin = 200_000_000_000_000
	areaMax = 400_000_000_000_000
)

// Vec3 is an integer 3D vector.
type Vec3 [3]int64

func (a Vec3) sub(b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func (a Vec3) cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Hailstone has a position and a per-nanosecond velocity.
type Hailstone struct {
	Pos, Vel Vec3
}

// Parse reads lines like "19, 13, 30 @ -2,  1, -2".
func Parse(input string) ([]Hailstone, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	hs := make([]Hailstone, 0, len(lines))
	for i, line := range lines {
		v, err := aoc.Ints(line)
		if err != nil {
			return nil, aoc.LineError(i, err)
		}
		if len(v) != 6 {
			return nil, aoc.LineError(i, fmt.Errorf("want 6 numbers, got %d", len(v)))
		}
		var h Hailstone
		for k := range 3 {
			h.Pos[k], h.Vel[k] = int64(v[k]), int64(v[k+3])
		}
		hs = append(hs, h)
	}
	return hs, nil
}

func rat(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// crossXY reports whether the XY paths of a and b cross at a time in the
// future for both, inside the square [lo, hi] on each axis.
func crossXY(a, b Hailstone, lo, hi *big.Rat) bool {
	det := b.Vel[0]*a.Vel[1] - a.Vel[0]*b.Vel[1]
	if det == 0 {
		return false
	}
	dx, dy := b.Pos[0]-a.Pos[0], b.Pos[1]-a.Pos[1]
	// Crossing times along a and along b.
	ta := new(big.Rat).Sub(new(big.Rat).Mul(rat(b.Vel[0]), rat(dy)), new(big.Rat).Mul(rat(b.Vel[1]), rat(dx)))
	tb := new(big.Rat).Sub(new(big.Rat).Mul(rat(a.Vel[0]), rat(dy)), new(big.Rat).Mul(rat(a.Vel[1]), rat(dx)))
	d := rat(det)
	ta.Quo(ta, d)
	tb.Quo(tb, d)
	if ta.Sign() < 0 || tb.Sign() < 0 {
		return false
	}
	for k := range 2 {
		c := new(big.Rat).Mul(rat(a.Vel[k]), ta)
		c.Add(c, rat(a.Pos[k]))
		if c.Cmp(lo) < 0 || c.Cmp(hi) > 0 {
			return false
		}
	}
	return true
}

// CountIntersections counts the pairs of hailstones whose future XY paths
// cross inside the test area [lo, hi].
func CountIntersections(hs []Hailstone, lo, hi int64) int {
	l, h := rat(lo), rat(hi)
	n := 0
	for i := range hs {
		for j := i + 1; j < len(hs); j++ {
			if crossXY(hs[i], hs[j], l, h) {
				n++
			}
		}
	}
	return n
}

// equations builds three rows of the rock system from hailstones a and b.
// For a rock at P moving at V, (P - p) x (V - v) = 0 for every hailstone;
// subtracting that identity for two hailstones cancels the P x V term,
// leaving P x (vb - va) + (pb - pa) x V = pb x vb - pa x va.
func equations(a, b Hailstone) [3][7]int64 {
	w := b.Vel.sub(a.Vel)
	d := b.Pos.sub(a.Pos)
	r := b.Pos.cross(b.Vel).sub(a.Pos.cross(a.Vel))
	return [3][7]int64{
		{0, w[2], -w[1], 0, -d[2], d[1], r[0]},
		{-w[2], 0, w[0], d[2], 0, -d[0], r[1]},
		{w[1], -w[0], 0, -d[1], d[0], 0, r[2]},
	}
}

// solve runs Gauss-Jordan elimination on the augmented matrix m. It returns
// false when the system is singular.
func solve(m [][]*big.Rat) ([]*big.Rat, bool) {
	n := len(m)
	for c := range n {
		p := -1
		for r := c; r < n; r++ {
			if m[r][c].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			return nil, false
		}
		m[c], m[p] = m[p], m[c]
		for r := range n {
			if r == c || m[r][c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(m[r][c], m[c][c])
			for k := c; k <= n; k++ {
				m[r][k].Sub(m[r][k], new(big.Rat).Mul(f, m[c][k]))
			}
		}
	}
	x := make([]*big.Rat, n)
	for i := range n {
		x[i] = new(big.Rat).Quo(m[i][n], m[i][i])
	}
	return x, true
}

// Rock finds the position and velocity of a rock thrown so that it hits
// every hailstone. Only three hailstones in general position are needed.
func Rock(hs []Hailstone) (pos, vel Vec3, err error) {
	for j := 1; j < len(hs); j++ {
		for k := j + 1; k < len(hs); k++ {
			m := make([][]*big.Rat, 0, 6)
			first, second := equations(hs[0], hs[j]), equations(hs[0], hs[k])
			for _, row := range append(first[:], second[:]...) {
				r := make([]*big.Rat, len(row))
				for i, v := range row {
					r[i] = rat(v)
				}
				m = append(m, r)
			}
			x, ok := solve(m)
			if !ok {
				continue
			}
			for i, v := range x {
				if !v.IsInt() || !v.Num().IsInt64() {
					return pos, vel, fmt.Errorf("rock coordinate %s is not an integer: %w", v.RatString(), aoc.ErrNoSolution)
				}
				if i < 3 {
					pos[i] = v.Num().Int64()
				} else {
					vel[i-3] = v.Num().Int64()
				}
			}
			return pos, vel, nil
		}
	}
	return pos, vel, aoc.ErrNoSolution
}

// Part1 counts the crossings inside the real test area.
func Part1(input string) (int, error) {
	hs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return CountIntersections(hs, areaMin, areaMax), nil
}

// Part2 sums the coordinates of the rock's starting position.
func Part2(input string) (int64, error) {
	hs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	pos, _, err := Rock(hs)
	if err != nil {
		return 0, err
	}
	return pos[0] + pos[1] + pos[2], nil
}
