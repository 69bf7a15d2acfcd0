package game

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/memmaker/targeter/engine/geom"
)

// CleaveTargeter hits the target and every hostile actor around the agent.
type CleaveTargeter struct {
	targeterBase
	targets mapset.Set[geom.Int2]
}

func NewCleaveTargeter(agent Actor, world World, target geom.Int2) *CleaveTargeter {
	t := &CleaveTargeter{
		targeterBase: newTargeterBase(agent, world),
		targets:      mapset.New[geom.Int2](),
	}
	t.aim = target
	t.collectTargets()
	return t
}

func (t *CleaveTargeter) ValidAim(a geom.Int2) (bool, string) {
	switch geom.Rdist(t.origin, a) {
	case 0:
		return false, msgTargetSelf
	case 1:
		return true, ""
	}
	return false, msgReachTooFar
}

func (t *CleaveTargeter) SetAim(a geom.Int2) bool {
	if !t.setAim(a, false) {
		return false
	}
	t.collectTargets()
	return true
}

// collectTargets sweeps once around the agent, starting from the target.
func (t *CleaveTargeter) collectTargets() {
	t.targets = mapset.New[geom.Int2]()
	if ok, _ := t.ValidAim(t.aim); !ok {
		return
	}
	if t.world.ActorAt(t.aim) != nil {
		t.targets.Put(t.aim)
	}
	dir := t.aim.Sub(t.origin)
	for i := 0; i < 7; i++ {
		dir = geom.RotateAdjacent(dir, 1)
		p := t.origin.Add(dir)
		if !t.anyoneThere(p) {
			continue
		}
		if isFriendly(t.world.ActorAt(p)) != isFriendly(t.agent) {
			t.targets.Put(p)
		}
	}
}

// Targets returns the cells that would be hit.
func (t *CleaveTargeter) Targets() []geom.Int2 {
	result := make([]geom.Int2, 0, t.targets.Size())
	t.targets.Each(func(p geom.Int2) {
		result = append(result, p)
	})
	sortCells(result)
	return result
}

func (t *CleaveTargeter) IsAffected(loc geom.Int2) AffType {
	if t.targets.Has(loc) {
		return AffYes
	}
	return AffNo
}
