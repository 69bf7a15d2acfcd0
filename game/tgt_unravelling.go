package game

import (
	"github.com/memmaker/targeter/engine/geom"
)

// UnravellingTargeter is a beam that only bursts when it strikes something that can be debuffed.
type UnravellingTargeter struct {
	*BeamTargeter
}

func NewUnravellingTargeter(agent Actor, world World, rng int) *UnravellingTargeter {
	return &UnravellingTargeter{
		BeamTargeter: NewBeamTargeter(agent, world, BeamConfig{
			Range:        rng,
			Flavour:      FlavourUnravelling,
			MinExplosion: 1,
			MaxExplosion: 1,
		}),
	}
}

func (t *UnravellingTargeter) SetAim(a geom.Int2) bool {
	t.pathTaken = nil
	t.explosion = nil
	t.aimValid = false
	if !t.setAim(a, false) {
		return false
	}
	t.pathTaken = t.fire(a)
	if t.explodesAt(t.explosionTarget()) {
		t.minExplosion = 1
	} else {
		t.minExplosion = 0
	}
	t.setExplosionAim()
	t.aimValid, _ = t.ValidAim(a)
	return true
}

func (t *UnravellingTargeter) explodesAt(c geom.Int2) bool {
	if c == t.agent.Pos() {
		return t.agent.Info().Debuffable
	}
	if !t.anyoneThere(c) {
		return false
	}
	return t.world.ActorAt(c).Info().Debuffable
}
