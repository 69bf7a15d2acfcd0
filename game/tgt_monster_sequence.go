package game

import (
	"fmt"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/util"
)

const (
	msgNoTargets   = "There is nobody there."
	msgBrokenChain = "You need an unbroken line of targets."
)

// MonsterSequenceTargeter needs a chain of occupants starting next to the agent.
// Every link of the chain is hit; the rest of the path is shown as tracer.
type MonsterSequenceTargeter struct {
	*BeamTargeter
	chain []*ExplosionMap
}

func NewMonsterSequenceTargeter(agent Actor, world World, rng int) *MonsterSequenceTargeter {
	t := &MonsterSequenceTargeter{
		BeamTargeter: NewBeamTargeter(agent, world, BeamConfig{
			Range:   rng,
			Flavour: FlavourDebugging,
			Pierce:  true,
		}),
	}
	t.bolt.AimedAtSpot = true
	return t
}

func (t *MonsterSequenceTargeter) SetAim(a geom.Int2) bool {
	t.chain = nil
	if !t.BeamTargeter.SetAim(a) {
		return false
	}
	var chain []*ExplosionMap
	lastCellHasMonster := true
	for _, c := range t.pathTaken {
		if !lastCellHasMonster {
			util.LogTargetDebug(fmt.Sprintf("[Sequence] chain to %s is broken", a.ToString()))
			t.clear()
			return false
		}
		if t.world.IsSolid(c) {
			break
		}
		if t.anyoneThere(c) {
			chain = append(chain, BuildExplosionMap(t.world, c, 0, 0, true))
		} else {
			lastCellHasMonster = false
		}
	}
	if len(chain) == 0 {
		t.clear()
		return false
	}
	t.chain = chain
	return true
}

// clear drops the preview of a rejected aim.
func (t *MonsterSequenceTargeter) clear() {
	t.chain = nil
	t.pathTaken = nil
	t.explosion = nil
	t.aimValid = false
}

func (t *MonsterSequenceTargeter) ValidAim(a geom.Int2) (bool, string) {
	if ok, reason := t.BeamTargeter.ValidAim(a); !ok {
		return false, reason
	}
	lastCellHasMonster := true
	passedThroughMonster := false
	for _, c := range t.fire(a) {
		if !lastCellHasMonster {
			return false, msgBrokenChain
		}
		if t.world.IsSolid(c) {
			return false, msgSomethingInWay
		}
		if t.anyoneThere(c) {
			passedThroughMonster = true
		} else {
			lastCellHasMonster = false
		}
	}
	if !passedThroughMonster {
		return false, msgNoTargets
	}
	return true, ""
}

func (t *MonsterSequenceTargeter) IsAffected(loc geom.Int2) AffType {
	onPath := false
	for _, c := range t.pathTaken {
		if t.world.IsSolid(c) {
			break
		}
		if c == loc {
			onPath = true
		}
	}
	if !t.world.IsSolid(loc) {
		for _, link := range t.chain {
			if link.InMin(loc) {
				return AffYes
			}
		}
	}
	if onPath {
		return AffTracer
	}
	return AffNo
}
