package geom

import (
	"fmt"
	"math"
)

type Int2 struct {
	X, Y int32
}

func (i Int2) Add(other Int2) Int2 {
	return Int2{i.X + other.X, i.Y + other.Y}
}

func (i Int2) Sub(other Int2) Int2 {
	return Int2{i.X - other.X, i.Y - other.Y}
}

func (i Int2) Mul(factor int32) Int2 {
	i.X *= factor
	i.Y *= factor
	return i
}

// Sgn returns the componentwise sign, i.e. the king-move step towards i.
func (i Int2) Sgn() Int2 {
	return Int2{sgn(i.X), sgn(i.Y)}
}

// Rdist is the Chebyshev length of i.
func (i Int2) Rdist() int32 {
	return max32(Abs(i.X), Abs(i.Y))
}

// Abs is the squared euclidean length. Reach checks compare it against small constants.
func (i Int2) Abs() int32 {
	return i.X*i.X + i.Y*i.Y
}

func (i Int2) DistanceFrom(other Int2) int32 {
	return i.Sub(other).Rdist()
}

func (i Int2) IsZero() bool {
	return i.X == 0 && i.Y == 0
}

func (i Int2) ToString() string {
	return fmt.Sprintf("(%d, %d)", i.X, i.Y)
}

func (i Int2) String() string {
	return i.ToString()
}

// Neighbors8 lists the king-move neighbours: orthogonals first, then diagonals, clockwise from north.
func (i Int2) Neighbors8() []Int2 {
	result := make([]Int2, 0, 8)
	for _, offset := range Offsets8 {
		result = append(result, i.Add(offset))
	}
	return result
}

var Offsets8 = [8]Int2{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// Ring returns the cells at exactly Chebyshev distance d from the centre, in row-major order.
func Ring(center Int2, d int32) []Int2 {
	if d == 0 {
		return []Int2{center}
	}
	result := make([]Int2, 0, 8*d)
	for y := -d; y <= d; y++ {
		for x := -d; x <= d; x++ {
			if Abs(x) != d && Abs(y) != d {
				continue
			}
			result = append(result, Int2{center.X + x, center.Y + y})
		}
	}
	return result
}

func Rdist(a, b Int2) int32 {
	return a.Sub(b).Rdist()
}

func Abs(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}

func sgn(i int32) int32 {
	if i < 0 {
		return -1
	}
	if i > 0 {
		return 1
	}
	return 0
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func FloorToInt32(f float64) int32 {
	return int32(math.Floor(f))
}

// compass lists the king-move directions clockwise from north.
var compass = [8]Int2{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// RotateAdjacent turns a unit king-move vector by steps eighths of a circle, clockwise on screen.
// Other vectors are returned unchanged.
func RotateAdjacent(v Int2, steps int) Int2 {
	for i, dir := range compass {
		if dir == v {
			return compass[((i+steps)%8+8)%8]
		}
	}
	return v
}
