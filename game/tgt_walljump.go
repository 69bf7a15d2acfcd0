package game

import (
	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
)

const (
	msgWallJumpNoWall  = "There's no wall there to jump off."
	msgWallJumpTooFar  = "You need to stand next to the wall."
	msgWallJumpNoSpace = "There's no room to land there."
)

// WallJumpTargeter aims an adjacent wall; the agent kicks off it and lands two cells the other way.
type WallJumpTargeter struct {
	*SmiteTargeter
}

func NewWallJumpTargeter(agent Actor, world World) *WallJumpTargeter {
	return &WallJumpTargeter{
		SmiteTargeter: NewSmiteTargeter(agent, world, SmiteConfig{Range: grid.LOSRadius, MinExplosion: 1, MaxExplosion: 1}),
	}
}

// Landing is where a jump off the wall at a ends.
func (t *WallJumpTargeter) Landing(a geom.Int2) geom.Int2 {
	dir := t.origin.Sub(a).Sgn()
	return t.origin.Add(dir.Mul(2))
}

func (t *WallJumpTargeter) ValidAim(a geom.Int2) (bool, string) {
	if geom.Rdist(t.origin, a) != 1 {
		return false, msgWallJumpTooFar
	}
	if !t.world.IsSolid(a) {
		return false, msgWallJumpNoWall
	}
	middle := t.origin.Add(t.origin.Sub(a).Sgn())
	landing := t.Landing(a)
	if !t.world.InBounds(landing) || t.world.IsSolid(middle) || t.world.IsSolid(landing) {
		return false, msgWallJumpNoSpace
	}
	if t.anyoneThere(landing) {
		return false, msgSomethingInWay
	}
	return true, ""
}

func (t *WallJumpTargeter) SetAim(a geom.Int2) bool {
	if !t.setSmiteAim(a) {
		return false
	}
	t.aimValid, _ = t.ValidAim(a)
	return true
}

func (t *WallJumpTargeter) IsAffected(loc geom.Int2) AffType {
	if !t.aimValid {
		return AffNo
	}
	landing := t.Landing(t.aim)
	if loc == landing {
		return AffYes
	}
	if geom.Rdist(loc, landing) == 1 && t.anyoneThere(loc) {
		return AffYes
	}
	return AffNo
}
