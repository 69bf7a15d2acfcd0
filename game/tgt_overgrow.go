package game

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
)

const msgCannotGrow = "You cannot grow anything here."

// OvergrowTargeter turns the aimed wall, and the visible walls, doors and trees around it, into plants.
type OvergrowTargeter struct {
	targeterBase
	affectedPositions mapset.Set[geom.Int2]
}

func NewOvergrowTargeter(agent Actor, world World) *OvergrowTargeter {
	return &OvergrowTargeter{
		targeterBase:      newTargeterBase(agent, world),
		affectedPositions: mapset.New[geom.Int2](),
	}
}

func (t *OvergrowTargeter) affectsPos(p geom.Int2) bool {
	if !t.world.InBounds(p) {
		return false
	}
	f := t.world.FeatureAt(p)
	if f.IsOpenDoor() {
		// a visible monster keeps the door open
		return !t.anyoneThere(p)
	}
	return f.IsDiggable() || f.IsClosedDoor() || f.IsTree() || f.IsWall() && !f.IsPermarock()
}

func (t *OvergrowTargeter) ValidAim(a geom.Int2) (bool, string) {
	if ok, reason := t.checkLOS(a); !ok {
		return false, reason
	}
	if !t.affectsPos(a) {
		return false, msgCannotGrow
	}
	return true, ""
}

func (t *OvergrowTargeter) SetAim(a geom.Int2) bool {
	t.affectedPositions = mapset.New[geom.Int2]()
	if !t.setAim(a, false) {
		return false
	}
	if ok, _ := t.ValidAim(a); !ok {
		return false
	}
	t.affectedPositions.Put(a)
	for _, n := range a.Neighbors8() {
		if t.affectsPos(n) && t.world.CanSeeCell(t.origin, n, grid.LOSNoTrans) {
			t.affectedPositions.Put(n)
		}
	}
	return true
}

func (t *OvergrowTargeter) CanAffectWalls() bool {
	return true
}

func (t *OvergrowTargeter) IsAffected(loc geom.Int2) AffType {
	if t.affectedPositions.Has(loc) {
		return AffYes
	}
	return AffNo
}
