package aoc

import "golang.org/x/exp/constraints"

// Number is any built-in integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns |x|.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |x-y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	return Abs(x - y)
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of all values. It returns 0 for no
// values.
func LCM[T constraints.Integer](values ...T) T {
	if len(values) == 0 {
		return 0
	}
	out := values[0]
	for _, v := range values[1:] {
		out = out / GCD(out, v) * v
	}
	return out
}

// Sum adds up nums.
func Sum[T Number](nums ...T) T {
	var s T
	for _, v := range nums {
		s += v
	}
	return s
}

// Extrapolate returns the value that continues the polynomial sequence xs one
// step forward, or one step backward when forward is false, using repeated
// finite differences.
func Extrapolate[T constraints.Signed](xs []T, forward bool) T {
	if len(xs) == 0 {
		return 0
	}
	diffs := make([]T, 0, len(xs)-1)
	allZero := true
	for i := 1; i < len(xs); i++ {
		d := xs[i] - xs[i-1]
		if d != 0 {
			allZero = false
		}
		diffs = append(diffs, d)
	}
	if forward {
		if allZero {
			return xs[len(xs)-1]
		}
		return xs[len(xs)-1] + Extrapolate(diffs, true)
	}
	if allZero {
		return xs[0]
	}
	return xs[0] - Extrapolate(diffs, false)
}

// ShoelaceArea returns twice the signed area of the closed polygon through
// pts. The last point connects back to the first.
func ShoelaceArea[T constraints.Signed](pts []Pt2[T]) T {
	var a T
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

// Interior applies Pick's theorem: given twice the polygon area and the number
// of lattice points on its boundary, it returns the number of strictly
// interior lattice points.
func Interior[T constraints.Signed](twiceArea, boundary T) T {
	return (Abs(twiceArea)-boundary)/2 + 1
}
