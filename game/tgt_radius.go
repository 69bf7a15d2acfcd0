package game

import (
	"fmt"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
)

const msgEffectBlocked = "The effect is blocked."

// RadiusTargeter covers every cell between rangeMin and rangeMax of the agent
// that the agent can see under the given LOS mode.
type RadiusTargeter struct {
	targeterBase
	mode     grid.LOSMode
	rng      int
	rangeMax int
	rangeMin int
}

// NewRadiusTargeter uses rng as the outer radius when rangeMax is 0.
func NewRadiusTargeter(agent Actor, world World, mode grid.LOSMode, rng, rangeMax, rangeMin int) *RadiusTargeter {
	if rangeMax == 0 {
		rangeMax = rng
	}
	if rangeMax < rng {
		panic(fmt.Sprintf("radius outer range %d below range %d", rangeMax, rng))
	}
	return &RadiusTargeter{
		targeterBase: newTargeterBase(agent, world),
		mode:         mode,
		rng:          rng,
		rangeMax:     rangeMax,
		rangeMin:     rangeMin,
	}
}

func (t *RadiusTargeter) inBand(loc geom.Int2) bool {
	d := int(geom.Rdist(loc, t.origin))
	return d >= t.rangeMin && d <= t.rangeMax
}

func (t *RadiusTargeter) ValidAim(a geom.Int2) (bool, string) {
	if !t.inBand(a) {
		return false, msgOutOfRange
	}
	if !t.IsAffected(a).Affects() {
		return false, msgEffectBlocked
	}
	return true, ""
}

func (t *RadiusTargeter) IsAffected(loc geom.Int2) AffType {
	if !t.inBand(loc) {
		return AffNo
	}
	if !t.world.CanSeeCell(loc, t.origin, t.mode) {
		return AffNo
	}
	return AffYes
}
