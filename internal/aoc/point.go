package aoc

import "golang.org/x/exp/constraints"

// Pt2 is a point on an integer lattice. X grows to the right, Y grows down.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt is the point type most grids use.
type Pt = Pt2[int]

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + d.X, p.Y + d.Y}
}

// Mul scales p by k.
func (p Pt2[T]) Mul(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

// MDist returns the manhattan distance between p and q.
func (p Pt2[T]) MDist(q Pt2[T]) T {
	return AbsDiff(p.X, q.X) + AbsDiff(p.Y, q.Y)
}

// Neighbors4 returns the four orthogonal neighbours of p, clockwise from up.
func (p Pt2[T]) Neighbors4() [4]Pt2[T] {
	return [4]Pt2[T]{
		{p.X, p.Y - 1},
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y},
	}
}

// Neighbors8 returns the eight surrounding points of p.
func (p Pt2[T]) Neighbors8() []Pt2[T] {
	out := make([]Pt2[T], 0, 8)
	for dy := T(-1); dy <= 1; dy++ {
		for dx := T(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Pt2[T]{p.X + dx, p.Y + dy})
		}
	}
	return out
}

// Dir is one of the four grid directions.
type Dir int

const (
	Up Dir = iota
	Right
	Down
	Left
)

// Dirs lists all directions clockwise from Up.
var Dirs = [4]Dir{Up, Right, Down, Left}

var deltas = [4]Pt{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta is the unit step in direction d.
func (d Dir) Delta() Pt { return deltas[d&3] }

// Turn rotates d a quarter turn clockwise when right is true, else
// counter-clockwise.
func (d Dir) Turn(right bool) Dir {
	if right {
		return (d + 1) & 3
	}
	return (d + 3) & 3
}

// Reverse returns the opposite direction.
func (d Dir) Reverse() Dir { return (d + 2) & 3 }

func (d Dir) String() string {
	return [4]string{"^", ">", "v", "<"}[d&3]
}

// DirFromByte maps U/R/D/L (and ^ > v <) to a direction.
func DirFromByte(b byte) (Dir, bool) {
	switch b {
	case 'U', '^':
		return Up, true
	case 'R', '>':
		return Right, true
	case 'D', 'v':
		return Down, true
	case 'L', '<':
		return Left, true
	}
	return 0, false
}
