package game

import (
	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
)

const (
	msgCantGetThrough = "You can't get through."
	msgReachTooFar    = "You can't reach that far!"
)

// ReachTargeter is a polearm attack: the aimed cell is hit, the cell halfway
// there is only passed over.
type ReachTargeter struct {
	targeterBase
	reach int
}

func NewReachTargeter(agent Actor, world World, reach int) *ReachTargeter {
	return &ReachTargeter{
		targeterBase: newTargeterBase(agent, world),
		reach:        reach,
	}
}

func (t *ReachTargeter) ValidAim(a geom.Int2) (bool, string) {
	if !t.world.CanSeeCell(t.origin, a, grid.LOSDefault) {
		return false, msgCannotSee
	}
	if !t.world.CanSeeCell(t.origin, a, grid.LOSNoTrans) {
		return false, msgCantGetThrough
	}
	if !t.inRange(a, t.reach) {
		return false, msgReachTooFar
	}
	return true, ""
}

func (t *ReachTargeter) IsAffected(loc geom.Int2) AffType {
	if ok, _ := t.ValidAim(loc); !ok {
		return AffNo
	}
	if loc == t.aim {
		return AffYes
	}
	// loc lies on the midpoint between the agent and the aim
	mid := loc.Sub(t.origin).Mul(2).Sub(t.aim.Sub(t.origin))
	if mid.Abs() <= 1 && t.world.FeatureAt(loc).IsReachablePast() {
		return AffTracer
	}
	return AffNo
}
