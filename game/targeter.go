package game

import (
	"fmt"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
	"github.com/memmaker/targeter/engine/util"
)

// Targeter answers which cells a pending action will affect, and how certainly.
// SetAim rebuilds all cached state; IsAffected only reads it.
type Targeter interface {
	Origin() geom.Int2
	Aim() geom.Int2
	SetAim(a geom.Int2) bool
	ValidAim(a geom.Int2) (bool, string)
	IsAffected(loc geom.Int2) AffType
	CanAffectOutsideRange() bool
	CanAffectUnseen() bool
	CanAffectWalls() bool
	AffectsMonster(mon MonsterInfo) bool
	HasAdditionalSites(a geom.Int2) bool
}

const (
	msgOutOfRange     = "Out of range."
	msgSomethingInWay = "There's something in the way."
	msgCannotSee      = "You cannot see that place."
	msgTargetSelf     = "You cannot target yourself."
)

type targeterBase struct {
	agent  Actor
	world  World
	origin geom.Int2
	aim    geom.Int2
}

func newTargeterBase(agent Actor, world World) targeterBase {
	if agent == nil {
		panic("targeter without agent")
	}
	if world == nil {
		panic("targeter without world")
	}
	return targeterBase{agent: agent, world: world, origin: agent.Pos(), aim: agent.Pos()}
}

func (t *targeterBase) Origin() geom.Int2 {
	return t.origin
}

func (t *targeterBase) Aim() geom.Int2 {
	return t.aim
}

func (t *targeterBase) SetAim(a geom.Int2) bool {
	return t.setAim(a, false)
}

// setAim is the default aim check: the cell must be on the map and, unless the
// effect works on unseen cells, visible to the agent.
func (t *targeterBase) setAim(a geom.Int2, canAffectUnseen bool) bool {
	if !t.world.Contains(a) {
		util.LogTargetDebug(fmt.Sprintf("[Targeter] aim %s is off the map", a.ToString()))
		return false
	}
	if !canAffectUnseen && !t.agentSeesCell(a) {
		util.LogTargetDebug(fmt.Sprintf("[Targeter] aim %s is not visible from %s", a.ToString(), t.agent.Pos().ToString()))
		return false
	}
	t.aim = a
	return true
}

func (t *targeterBase) CanAffectOutsideRange() bool {
	return false
}

func (t *targeterBase) CanAffectUnseen() bool {
	return false
}

func (t *targeterBase) CanAffectWalls() bool {
	return false
}

func (t *targeterBase) AffectsMonster(MonsterInfo) bool {
	return true
}

func (t *targeterBase) HasAdditionalSites(geom.Int2) bool {
	return false
}

// anyoneThere reports an occupant the agent knows about. Players only know what they see.
func (t *targeterBase) anyoneThere(loc geom.Int2) bool {
	if !t.world.Contains(loc) {
		return false
	}
	actor := t.world.ActorAt(loc)
	if actor == nil {
		return false
	}
	if t.agent.IsPlayer() {
		return t.canSee(actor)
	}
	return true
}

func (t *targeterBase) agentSeesCell(p geom.Int2) bool {
	return t.world.CanSeeCell(t.agent.Pos(), p, grid.LOSDefault)
}

func (t *targeterBase) canSee(other Actor) bool {
	if other.UnitID() == t.agent.UnitID() {
		return true
	}
	return t.agentSeesCell(other.Pos()) && !other.Info().Invisible
}

func (t *targeterBase) isHabitable(p geom.Int2) bool {
	return t.world.Contains(p) && !t.world.IsSolid(p)
}

// blocksRay is the opacity used for every ray: anything solid stops it, glass included.
func (t *targeterBase) blocksRay(p geom.Int2) bool {
	return !t.world.Contains(p) || t.world.IsSolid(p) || t.world.FeatureAt(p).IsOpaque()
}

// checkLOS is the shared "can the effect get there" test of most variants.
func (t *targeterBase) checkLOS(a geom.Int2) (bool, string) {
	if a == t.origin || t.world.CanSeeCell(t.origin, a, grid.LOSNoTrans) {
		return true, ""
	}
	if t.agentSeesCell(a) {
		return false, msgSomethingInWay
	}
	return false, msgCannotSee
}

func (t *targeterBase) inRange(a geom.Int2, rng int) bool {
	return int(geom.Rdist(t.origin, a)) <= rng
}

func (t *targeterBase) wallMessage(a geom.Int2) string {
	return fmt.Sprintf("There is %s there.", t.world.FeatureAt(a).WithArticle())
}
