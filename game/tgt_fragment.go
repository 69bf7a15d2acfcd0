package game

import (
	"fmt"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
	"github.com/memmaker/targeter/engine/util"
)

const (
	msgCannotAffect = "You cannot affect that."
	msgNoTransfer   = "You can't transfer that."
)

// FragmentTargeter shatters the aimed feature; the blast size depends on what it is made of.
type FragmentTargeter struct {
	*SmiteTargeter
}

func NewFragmentTargeter(agent Actor, world World, rng int) *FragmentTargeter {
	t := &FragmentTargeter{
		SmiteTargeter: NewSmiteTargeter(agent, world, SmiteConfig{Range: rng, MinExplosion: 1, MaxExplosion: 1, WallsOK: true}),
	}
	t.stopAtWalls = false
	return t
}

func (t *FragmentTargeter) ValidAim(a geom.Int2) (bool, string) {
	if ok, reason := t.SmiteTargeter.ValidAim(a); !ok {
		return false, reason
	}
	if t.world.FeatureAt(a).FragmentRadius() <= 0 {
		return false, msgCannotAffect
	}
	return true, ""
}

func (t *FragmentTargeter) SetAim(a geom.Int2) bool {
	radius := util.Clamp(t.world.FeatureAt(a).FragmentRadius(), 0, ExplosionMapRadius)
	t.minExplosion, t.maxExplosion = radius, radius
	if radius <= 0 {
		t.explosion = nil
		t.aimValid = false
		util.LogTargetDebug(fmt.Sprintf("[Fragment] nothing to shatter at %s", a.ToString()))
		return false
	}
	if !t.setSmiteAim(a) {
		return false
	}
	t.aimValid, _ = t.ValidAim(a)
	return true
}

// TransferenceTargeter swaps places with whatever stands at the aim; some things cannot be moved.
type TransferenceTargeter struct {
	*SmiteTargeter
}

func NewTransferenceTargeter(agent Actor, world World, aoe int) *TransferenceTargeter {
	return &TransferenceTargeter{
		SmiteTargeter: NewSmiteTargeter(agent, world, SmiteConfig{Range: grid.LOSRadius, MinExplosion: aoe, MaxExplosion: aoe}),
	}
}

func (t *TransferenceTargeter) ValidAim(a geom.Int2) (bool, string) {
	if ok, reason := t.SmiteTargeter.ValidAim(a); !ok {
		return false, reason
	}
	victim := t.world.ActorAt(a)
	if victim != nil && t.canSee(victim) && victim.Info().Stationary {
		return false, msgNoTransfer
	}
	return true, ""
}

func (t *TransferenceTargeter) SetAim(a geom.Int2) bool {
	if !t.setSmiteAim(a) {
		return false
	}
	t.aimValid, _ = t.ValidAim(a)
	return true
}
