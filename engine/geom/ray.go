package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray walks the grid in king moves. The direction is scaled so that every
// Advance moves exactly one cell along the major axis.
type Ray struct {
	start mgl64.Vec2
	dir   mgl64.Vec2
	steps int
}

const rayEpsilon = 1e-9

func NewRay(start, direction mgl64.Vec2) Ray {
	major := math.Max(math.Abs(direction.X()), math.Abs(direction.Y()))
	if major > 0 {
		direction = direction.Mul(1 / major)
	}
	return Ray{start: start, dir: direction}
}

// NewCellRay starts in the centre of a cell and points at the centre of another.
func NewCellRay(from, to Int2) Ray {
	return NewRay(CellCenter(from), CellCenter(to).Sub(CellCenter(from)))
}

func CellCenter(cell Int2) mgl64.Vec2 {
	return mgl64.Vec2{float64(cell.X) + 0.5, float64(cell.Y) + 0.5}
}

func (r *Ray) Pos() Int2 {
	p := r.start.Add(r.dir.Mul(float64(r.steps)))
	return Int2{FloorToInt32(p.X() + rayEpsilon), FloorToInt32(p.Y() + rayEpsilon)}
}

func (r *Ray) Advance() {
	r.steps++
}

func (r *Ray) Steps() int {
	return r.steps
}

func (r Ray) Start() mgl64.Vec2 {
	return r.start
}

func (r Ray) Direction() mgl64.Vec2 {
	return r.dir
}

func (r Ray) IsDegenerate() bool {
	return r.dir.X() == 0 && r.dir.Y() == 0
}

// WithDirection keeps the start point and restarts the ray along a new direction.
func (r Ray) WithDirection(direction mgl64.Vec2) Ray {
	return NewRay(r.start, direction)
}

// Reflect restarts the ray from the centre of cell, mirroring the given axes.
func (r Ray) Reflect(cell Int2, flipX, flipY bool) Ray {
	dir := r.dir
	if flipX {
		dir = mgl64.Vec2{-dir.X(), dir.Y()}
	}
	if flipY {
		dir = mgl64.Vec2{dir.X(), -dir.Y()}
	}
	return NewRay(CellCenter(cell), dir)
}

// rayOffsets are the sub-cell points tried by FindRay, centre first. The set is
// mirror symmetric on both axes.
var rayOffsets = []mgl64.Vec2{
	{0.5, 0.5},
	{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75},
	{0.5, 0.25}, {0.5, 0.75}, {0.25, 0.5}, {0.75, 0.5},
}

// FindRay looks for a ray from one cell to another that crosses no opaque cell
// in between. The endpoints themselves are never tested.
func FindRay(from, to Int2, opaque func(Int2) bool) (Ray, bool) {
	if from == to {
		return NewRay(CellCenter(from), mgl64.Vec2{}), true
	}
	origin := mgl64.Vec2{float64(from.X), float64(from.Y)}
	target := mgl64.Vec2{float64(to.X), float64(to.Y)}
	for _, startOffset := range rayOffsets {
		for _, endOffset := range rayOffsets {
			start := origin.Add(startOffset)
			ray := NewRay(start, target.Add(endOffset).Sub(start))
			if rayReaches(ray, from, to, opaque) {
				return ray, true
			}
		}
	}
	return NewCellRay(from, to), false
}

// MakeRay is FindRay with a fallback to the centre-to-centre ray.
func MakeRay(from, to Int2, opaque func(Int2) bool) Ray {
	ray, _ := FindRay(from, to, opaque)
	return ray
}

func rayReaches(ray Ray, from, to Int2, opaque func(Int2) bool) bool {
	limit := int(Rdist(from, to)) + 1
	for ray.Steps() <= limit {
		p := ray.Pos()
		if p == to {
			return true
		}
		if p != from && opaque != nil && opaque(p) {
			return false
		}
		ray.Advance()
	}
	return false
}

// Trace follows the ray from its current position, calling visit for every
// cell after the start cell until visit returns false or maxSteps is reached.
func (r *Ray) Trace(maxSteps int, visit func(p Int2) bool) {
	startCell := r.Pos()
	for i := 0; i < maxSteps; i++ {
		r.Advance()
		p := r.Pos()
		if p == startCell {
			continue
		}
		if !visit(p) {
			return
		}
	}
}
