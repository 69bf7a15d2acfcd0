package game

import (
	"fmt"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
	"github.com/memmaker/targeter/engine/util"
)

// ConeTargeter covers a quarter circle around the line from the agent to the aim.
// Cells are grouped into bands by distance so that a sweep can be drawn outwards.
type ConeTargeter struct {
	targeterBase
	rng    int
	zapped map[geom.Int2]AffType
	// sweep[d] holds the cells at distance d, in row-major order.
	sweep [][]geom.Int2
}

func NewConeTargeter(agent Actor, world World, rng int) *ConeTargeter {
	if rng < 2 || rng > grid.LOSRadius {
		panic(fmt.Sprintf("cone range %d outside 2..%d", rng, grid.LOSRadius))
	}
	return &ConeTargeter{
		targeterBase: newTargeterBase(agent, world),
		rng:          rng,
		zapped:       make(map[geom.Int2]AffType),
	}
}

func (t *ConeTargeter) ValidAim(a geom.Int2) (bool, string) {
	if ok, reason := t.checkLOS(a); !ok {
		return false, reason
	}
	if !t.inRange(a, t.rng) {
		return false, msgOutOfRange
	}
	return true, ""
}

func (t *ConeTargeter) SetAim(a geom.Int2) bool {
	t.zapped = make(map[geom.Int2]AffType)
	t.sweep = nil
	if a == t.origin {
		t.aim = a
		return false
	}
	if !t.setAim(a, false) {
		return false
	}
	delta := geom.ToVec2(a.Sub(t.origin))
	left := geom.RotateRounded(delta, -geom.DegToRad(45))
	right := geom.RotateRounded(delta, geom.DegToRad(45))

	t.sweep = make([][]geom.Int2, t.rng+1)
	for d := 1; d <= t.rng; d++ {
		for _, p := range geom.Ring(t.origin, int32(d)) {
			if !geom.Between(left, right, geom.ToVec2(p.Sub(t.origin))) {
				continue
			}
			if t.blocksRay(p) || !t.world.CanSeeCell(t.origin, p, grid.LOSNoTrans) {
				continue
			}
			t.zapped[p] = AffYes
			t.sweep[d] = append(t.sweep[d], p)
		}
	}
	util.LogTargetDebug(fmt.Sprintf("[Cone] %d cells towards %s", len(t.zapped), a.ToString()))
	return true
}

// Sweep returns the affected cells at distance d from the agent.
func (t *ConeTargeter) Sweep(d int) []geom.Int2 {
	if d <= 0 || d >= len(t.sweep) {
		return nil
	}
	return append([]geom.Int2(nil), t.sweep[d]...)
}

// SweepBands is the number of distance bands, the agent's own cell included.
func (t *ConeTargeter) SweepBands() int {
	return len(t.sweep)
}

func (t *ConeTargeter) IsAffected(loc geom.Int2) AffType {
	if loc == t.aim {
		if t.zapped[loc] == AffYes {
			return AffYes
		}
		return AffTracer
	}
	if !t.inRange(loc, t.rng) {
		return AffNo
	}
	return t.zapped[loc]
}
