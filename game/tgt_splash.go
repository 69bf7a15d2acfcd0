package game

import (
	"github.com/memmaker/targeter/engine/geom"
)

// SplashTargeter is a spit attack: the hit cell is certain, and when it hits
// someone the cells around it get splashed.
type SplashTargeter struct {
	targeterBase
	rng int
}

func NewSplashTargeter(agent Actor, world World, rng int) *SplashTargeter {
	return &SplashTargeter{
		targeterBase: newTargeterBase(agent, world),
		rng:          rng,
	}
}

func (t *SplashTargeter) ValidAim(a geom.Int2) (bool, string) {
	if !t.inRange(a, t.rng) {
		return false, msgOutOfRange
	}
	return true, ""
}

func (t *SplashTargeter) IsAffected(loc geom.Int2) AffType {
	if ok, _ := t.ValidAim(t.aim); !ok {
		return AffNo
	}
	if ok, _ := t.ValidAim(loc); !ok {
		return AffNo
	}
	if loc == t.aim {
		return AffYes
	}
	// spitting at yourself does not splash
	if t.aim == t.origin {
		return AffNo
	}
	if !t.anyoneThere(t.aim) {
		return AffNo
	}
	if geom.Rdist(loc, t.aim) > 1 || loc == t.origin {
		return AffNo
	}
	if t.anyoneThere(loc) {
		return AffYes
	}
	return AffMaybe
}
