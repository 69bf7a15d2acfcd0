package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRdist(t *testing.T) {
	tests := []struct {
		a, b Int2
		want int32
	}{
		{Int2{0, 0}, Int2{3, 0}, 3},
		{Int2{0, 0}, Int2{-2, 5}, 5},
		{Int2{4, 4}, Int2{1, 2}, 3},
		{Int2{1, 1}, Int2{1, 1}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rdist(tt.a, tt.b), "%v -> %v", tt.a, tt.b)
	}
}

func TestSgnAndAbs(t *testing.T) {
	assert.Equal(t, Int2{1, -1}, Int2{7, -3}.Sgn())
	assert.Equal(t, Int2{0, 1}, Int2{0, 2}.Sgn())
	assert.Equal(t, int32(5), Int2{1, 2}.Abs())
}

func TestRing(t *testing.T) {
	assert.Equal(t, []Int2{{2, 2}}, Ring(Int2{2, 2}, 0))
	ring := Ring(Int2{0, 0}, 2)
	assert.Len(t, ring, 16)
	for _, p := range ring {
		assert.Equal(t, int32(2), p.Rdist())
	}
}

func TestNeighborsOrder(t *testing.T) {
	n := Int2{5, 5}.Neighbors8()
	require.Len(t, n, 8)
	assert.Equal(t, Int2{5, 4}, n[0])
	assert.Equal(t, Int2{6, 5}, n[1])
	assert.Equal(t, Int2{4, 4}, n[7])
	for _, p := range n {
		assert.Equal(t, int32(1), Rdist(Int2{5, 5}, p))
	}
}

func TestStraightRay(t *testing.T) {
	ray, ok := FindRay(Int2{0, 0}, Int2{3, 0}, nil)
	require.True(t, ok)
	var cells []Int2
	ray.Trace(5, func(p Int2) bool {
		cells = append(cells, p)
		return true
	})
	assert.Equal(t, []Int2{{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}, cells)
}

func TestRayStepsAreKingMoves(t *testing.T) {
	ray := NewCellRay(Int2{0, 0}, Int2{5, 2})
	prev := ray.Pos()
	ray.Trace(10, func(p Int2) bool {
		assert.Equal(t, int32(1), Rdist(prev, p))
		prev = p
		return true
	})
	assert.Equal(t, int32(10), prev.X)
}

func TestFindRayAvoidsOpaqueCells(t *testing.T) {
	wall := Int2{1, 1}
	opaque := func(p Int2) bool { return p == wall }
	ray, ok := FindRay(Int2{0, 0}, Int2{2, 2}, opaque)
	assert.False(t, ok)
	assert.False(t, ray.IsDegenerate())

	ray, ok = FindRay(Int2{0, 0}, Int2{3, 1}, func(p Int2) bool { return p == Int2{1, 0} })
	require.True(t, ok)
	ray.Trace(3, func(p Int2) bool {
		assert.NotEqual(t, Int2{1, 0}, p)
		return p != Int2{3, 1}
	})
}

func TestFindRaySameCell(t *testing.T) {
	ray, ok := FindRay(Int2{2, 2}, Int2{2, 2}, nil)
	assert.True(t, ok)
	assert.True(t, ray.IsDegenerate())
}

func TestReflect(t *testing.T) {
	ray := NewCellRay(Int2{0, 0}, Int2{3, 3})
	bounced := ray.Reflect(Int2{2, 2}, true, false)
	assert.InDelta(t, -1.0, bounced.Direction().X(), 1e-9)
	assert.InDelta(t, 1.0, bounced.Direction().Y(), 1e-9)
	assert.Equal(t, Int2{2, 2}, bounced.Pos())
}

func TestRotateRoundedIsSymmetric(t *testing.T) {
	north := mgl64.Vec2{0, -4}
	left := RotateRounded(north, DegToRad(45))
	right := RotateRounded(north, -DegToRad(45))
	assert.Equal(t, left.X(), -right.X())
	assert.Equal(t, left.Y(), right.Y())
	assert.InDelta(t, math.Pi/4, DegToRad(45), 1e-12)
}

func TestLeftOf(t *testing.T) {
	assert.True(t, LeftOf(Int2{1, 0}, Int2{0, 1}))
	assert.False(t, LeftOf(Int2{0, 1}, Int2{1, 0}))
	assert.False(t, LeftOf(Int2{2, 2}, Int2{1, 1}))
	assert.False(t, LeftOf(Int2{1, 1}, Int2{2, 2}))
}

func TestBetween(t *testing.T) {
	a := mgl64.Vec2{1, -1}
	b := mgl64.Vec2{1, 1}
	assert.True(t, Between(a, b, mgl64.Vec2{1, 0}))
	assert.True(t, Between(b, a, mgl64.Vec2{1, 0}))
	assert.True(t, Between(a, b, mgl64.Vec2{2, 2}))
	assert.False(t, Between(a, b, mgl64.Vec2{0, 1}))
	assert.False(t, Between(a, b, mgl64.Vec2{-1, 0}))
}

func TestRotateAdjacent(t *testing.T) {
	assert.Equal(t, Int2{1, -1}, RotateAdjacent(Int2{0, -1}, 1))
	assert.Equal(t, Int2{-1, -1}, RotateAdjacent(Int2{0, -1}, -1))
	assert.Equal(t, Int2{0, -1}, RotateAdjacent(Int2{0, -1}, 8))
	assert.Equal(t, Int2{2, 0}, RotateAdjacent(Int2{2, 0}, 1))
}
