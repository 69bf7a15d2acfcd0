package game

import (
	"fmt"

	"github.com/memmaker/targeter/engine/geom"
)

type SmiteConfig struct {
	Range        int
	MinExplosion int
	MaxExplosion int
	WallsOK      bool
	// AffectsPos restricts the cells the effect can touch at all. Nil allows every cell.
	AffectsPos func(p geom.Int2) bool
}

// SmiteTargeter hits the aimed cell directly, with an optional explosion around it.
type SmiteTargeter struct {
	targeterBase
	rng          int
	minExplosion int
	maxExplosion int
	wallsOK      bool
	affectsPos   func(p geom.Int2) bool
	// explosions stop at walls unless the smite itself shatters walls
	stopAtWalls bool

	explosion *ExplosionMap
	aimValid  bool
}

func NewSmiteTargeter(agent Actor, world World, config SmiteConfig) *SmiteTargeter {
	if config.MinExplosion < 0 || config.MaxExplosion < 0 || config.MinExplosion > config.MaxExplosion {
		panic(fmt.Sprintf("invalid smite explosion radii %d..%d", config.MinExplosion, config.MaxExplosion))
	}
	return &SmiteTargeter{
		targeterBase: newTargeterBase(agent, world),
		rng:          config.Range,
		minExplosion: config.MinExplosion,
		maxExplosion: config.MaxExplosion,
		wallsOK:      config.WallsOK,
		affectsPos:   config.AffectsPos,
		stopAtWalls:  true,
	}
}

func (t *SmiteTargeter) ValidAim(a geom.Int2) (bool, string) {
	if ok, reason := t.checkLOS(a); !ok {
		return false, reason
	}
	if !t.inRange(a, t.rng) {
		return false, msgOutOfRange
	}
	if !t.wallsOK && t.world.IsSolid(a) {
		return false, t.wallMessage(a)
	}
	return true, ""
}

func (t *SmiteTargeter) SetAim(a geom.Int2) bool {
	if !t.setSmiteAim(a) {
		return false
	}
	t.aimValid, _ = t.ValidAim(a)
	return true
}

func (t *SmiteTargeter) setSmiteAim(a geom.Int2) bool {
	t.explosion = nil
	t.aimValid = false
	if !t.setAim(a, false) {
		return false
	}
	if t.maxExplosion > 0 {
		t.explosion = BuildExplosionMap(t.world, a, t.minExplosion, t.maxExplosion, t.stopAtWalls)
	}
	return true
}

func (t *SmiteTargeter) CanAffectOutsideRange() bool {
	return t.maxExplosion > 0
}

func (t *SmiteTargeter) CanAffectWalls() bool {
	return t.wallsOK
}

func (t *SmiteTargeter) IsAffected(loc geom.Int2) AffType {
	if !t.aimValid {
		return AffNo
	}
	if t.affectsPos != nil && !t.affectsPos(loc) {
		return AffNo
	}
	if loc == t.aim {
		return AffYes
	}
	if t.maxExplosion <= 0 || t.explosion == nil {
		return AffNo
	}
	return t.explosion.Aff(loc)
}
