package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// boundaryPrecision keeps rotated boundary vectors exactly mirror symmetric;
// sin(pi/4) and cos(pi/4) differ in the last bit otherwise.
const boundaryPrecision = 9

func ToVec2(i Int2) mgl64.Vec2 {
	return mgl64.Vec2{float64(i.X), float64(i.Y)}
}

// Rotate turns v by angle radians (counter-clockwise for y up, clockwise on screen).
func Rotate(v mgl64.Vec2, angle float64) mgl64.Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

func RotateRounded(v mgl64.Vec2, angle float64) mgl64.Vec2 {
	r := Rotate(v, angle)
	return mgl64.Vec2{mgl64.Round(r.X(), boundaryPrecision), mgl64.Round(r.Y(), boundaryPrecision)}
}

func DegToRad(angle float64) float64 {
	return mgl64.DegToRad(angle)
}

// LeftOf is the strict cross product test a × b > 0.
func LeftOf(a, b Int2) bool {
	return int64(a.X)*int64(b.Y) > int64(a.Y)*int64(b.X)
}

func LeftOfVec(a, b mgl64.Vec2) bool {
	return a.X()*b.Y() > a.Y()*b.X()
}

func LeftOfEqVec(a, b mgl64.Vec2) bool {
	return a.X()*b.Y() >= a.Y()*b.X()
}

// Between reports whether v lies in the sector swept from a to b, both edges included.
// The pair is reordered so that the sector is the smaller one.
func Between(a, b, v mgl64.Vec2) bool {
	if LeftOfVec(b, a) {
		a, b = b, a
	}
	return LeftOfEqVec(a, v) && LeftOfEqVec(v, b)
}
