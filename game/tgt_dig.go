package game

import (
	"github.com/memmaker/targeter/engine/geom"
)

const (
	msgDigDirection = "Please select a direction to dig."
	msgDigNoWalls   = "Digging in that direction won't affect any walls."
)

// DigTargeter previews a digging bolt. It passes through diggable rock and
// stops at the first wall it cannot dig.
type DigTargeter struct {
	*BeamTargeter
	// aimTestCache counts the cells each aim could dig, unseen cells included.
	aimTestCache map[geom.Int2]int
}

func NewDigTargeter(agent Actor, world World, rng int) *DigTargeter {
	t := &DigTargeter{
		BeamTargeter: NewBeamTargeter(agent, world, BeamConfig{Range: rng, Flavour: FlavourDigging}),
		aimTestCache: make(map[geom.Int2]int),
	}
	t.bolt.AimedAtSpot = false
	return t
}

func (t *DigTargeter) SetAim(a geom.Int2) bool {
	if !t.setBeamAim(a, true) {
		return false
	}
	t.aimValid, _ = t.ValidAim(a)
	return true
}

func (t *DigTargeter) ValidAim(a geom.Int2) (bool, string) {
	if a == t.origin {
		return false, msgDigDirection
	}
	if !t.inRange(a, t.rng) || !t.world.InBounds(a) {
		return false, msgOutOfRange
	}
	possible, cached := t.aimTestCache[a]
	if !cached {
		possible = 0
		for _, p := range t.fire(a) {
			if t.bolt.CanAffectWall(t.world, p) || t.world.InBounds(p) && !t.world.IsKnown(p) {
				possible++
			}
		}
		t.aimTestCache[a] = possible
	}
	if possible == 0 {
		return false, msgDigNoWalls
	}
	return true, ""
}

func (t *DigTargeter) CanAffectUnseen() bool {
	return true
}

func (t *DigTargeter) CanAffectWalls() bool {
	return true
}

func (t *DigTargeter) AffectsMonster(MonsterInfo) bool {
	return false
}

// IsAffected shows known floor and the blocking wall as tracer; diggable and unseen cells read YES.
func (t *DigTargeter) IsAffected(loc geom.Int2) AffType {
	hitBarrier := false
	for _, pc := range t.pathTaken {
		if hitBarrier {
			return AffNo
		}
		current := AffYes
		if t.world.InBounds(pc) && t.world.IsKnown(pc) {
			if !t.world.IsSolid(pc) {
				current = AffTracer
			} else if !t.bolt.CanAffectWall(t.world, pc) {
				current = AffTracer
				hitBarrier = true
			}
		}
		if pc == loc {
			if loc == t.aim && !t.aimValid && current.Affects() {
				return AffTracer
			}
			return current
		}
	}
	return AffNo
}
