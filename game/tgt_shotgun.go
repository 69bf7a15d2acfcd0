package game

import (
	"math"

	"github.com/memmaker/targeter/engine/geom"
)

// ShotgunTargeter fans a number of rays around the aim. A cell every ray reaches
// is certain, a cell only some rays reach is likely.
type ShotgunTargeter struct {
	targeterBase
	numBeams   int
	rng        int
	usesClouds bool
	rays       []geom.Ray
	zapped     map[geom.Int2]int
}

func NewShotgunTargeter(agent Actor, world World, numBeams, rng int, usesClouds bool) *ShotgunTargeter {
	if numBeams < 1 {
		panic("shotgun needs at least one beam")
	}
	return &ShotgunTargeter{
		targeterBase: newTargeterBase(agent, world),
		numBeams:     numBeams,
		rng:          rng,
		usesClouds:   usesClouds,
		zapped:       make(map[geom.Int2]int),
	}
}

func (t *ShotgunTargeter) ValidAim(a geom.Int2) (bool, string) {
	if ok, reason := t.checkLOS(a); !ok {
		return false, reason
	}
	if !t.inRange(a, t.rng) {
		return false, msgOutOfRange
	}
	return true, ""
}

// SetAim lets monsters aim anywhere; a confused monster may aim through a wall.
func (t *ShotgunTargeter) SetAim(a geom.Int2) bool {
	t.zapped = make(map[geom.Int2]int)
	t.rays = nil
	if isMonster(t.agent) {
		t.aim = a
	} else if !t.setAim(a, false) {
		return false
	}
	if a == t.origin {
		return false
	}

	origRay := geom.MakeRay(t.origin, a, t.blocksRay)
	spreadRange := float64(t.numBeams-1) * math.Pi / 40
	for i := 0; i < t.numBeams; i++ {
		spread := 0.0
		if t.numBeams > 1 {
			spread = -spreadRange/2 + spreadRange*float64(i)/float64(t.numBeams-1)
		}
		ray := origRay.WithDirection(geom.Rotate(origRay.Direction(), -spread))
		t.rays = append(t.rays, ray)
		for p := ray.Pos(); t.inRange(p, t.rng) && !t.blocksRay(p); p = ray.Pos() {
			if p != t.origin && !t.cloudBlocked(p) {
				t.zapped[p]++
			}
			ray.Advance()
		}
	}
	delete(t.zapped, t.origin)
	return true
}

func (t *ShotgunTargeter) cloudBlocked(p geom.Int2) bool {
	return t.usesClouds && (t.world.CloudAt(p) || t.world.IsSanctuary(p))
}

// Rays returns the rays of the last aim, one per beam.
func (t *ShotgunTargeter) Rays() []geom.Ray {
	return append([]geom.Ray(nil), t.rays...)
}

func (t *ShotgunTargeter) IsAffected(loc geom.Int2) AffType {
	if !t.inRange(loc, t.rng) || t.world.Contains(loc) && t.cloudBlocked(loc) {
		return AffNo
	}
	hits := t.zapped[loc]
	if hits >= t.numBeams {
		return AffYes
	}
	if hits > 0 {
		return AffMaybe
	}
	return AffNo
}
