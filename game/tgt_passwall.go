package game

import (
	"github.com/memmaker/targeter/engine/geom"
)

// PasswallTargeter previews walking through a wall. Walls the agent has never
// seen are fair game.
type PasswallTargeter struct {
	targeterBase
	rng      int
	curPath  *PasswallPath
	aimValid bool
}

func NewPasswallTargeter(agent Actor, world World, rng int) *PasswallTargeter {
	return &PasswallTargeter{
		targeterBase: newTargeterBase(agent, world),
		rng:          rng,
	}
}

func (t *PasswallTargeter) ValidAim(a geom.Int2) (bool, string) {
	tmp := NewPasswallPath(t.agent, t.world, a.Sub(t.origin), t.rng)
	_, reason := tmp.IsValid()
	if !tmp.SpellSucceeds() {
		return false, reason
	}
	return true, ""
}

func (t *PasswallTargeter) SetAim(a geom.Int2) bool {
	t.curPath = nil
	t.aimValid = false
	if !t.setAim(a, true) {
		return false
	}
	t.curPath = NewPasswallPath(t.agent, t.world, a.Sub(t.origin), t.rng)
	t.aimValid, _ = t.ValidAim(a)
	return true
}

// Path is the walk for the current aim, nil before the first aim.
func (t *PasswallTargeter) Path() *PasswallPath {
	return t.curPath
}

func (t *PasswallTargeter) IsAffected(loc geom.Int2) AffType {
	if t.curPath == nil {
		return AffNo
	}
	if !t.curPath.Contains(loc) {
		return AffNo
	}
	// an unusable walk is still drawn, but only as a trace
	if !t.aimValid {
		return AffTracer
	}
	return AffYes
}

func (t *PasswallTargeter) CanAffectOutsideRange() bool {
	return true
}

func (t *PasswallTargeter) CanAffectUnseen() bool {
	return true
}

func (t *PasswallTargeter) AffectsMonster(MonsterInfo) bool {
	return false
}
