package game

import (
	"fmt"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
)

// ThunderboltTargeter draws the arc between the previous aim and the current one.
// The current ray is certain; the previous ray and everything between the two read MAYBE.
type ThunderboltTargeter struct {
	targeterBase
	rng       int
	prev      *geom.Int2
	zapped    map[geom.Int2]AffType
	arcLength []int
}

// NewThunderboltTargeter takes the aim of the previous cast, or nil for the first one.
// A previous aim on the agent's own cell counts as no previous aim.
func NewThunderboltTargeter(agent Actor, world World, rng int, prev *geom.Int2) *ThunderboltTargeter {
	if rng < 2 || rng > grid.LOSRadius {
		panic(fmt.Sprintf("thunderbolt range %d outside 2..%d", rng, grid.LOSRadius))
	}
	t := &ThunderboltTargeter{
		targeterBase: newTargeterBase(agent, world),
		rng:          rng,
		zapped:       make(map[geom.Int2]AffType),
		arcLength:    make([]int, grid.LOSRadius+1),
	}
	if prev != nil && *prev != t.origin {
		p := *prev
		t.prev = &p
		t.aim = p
	}
	return t
}

func (t *ThunderboltTargeter) ValidAim(a geom.Int2) (bool, string) {
	if ok, reason := t.checkLOS(a); !ok {
		return false, reason
	}
	if !t.inRange(a, t.rng) {
		return false, msgOutOfRange
	}
	return true, ""
}

func (t *ThunderboltTargeter) SetAim(a geom.Int2) bool {
	t.zapped = make(map[geom.Int2]AffType)
	t.arcLength = make([]int, grid.LOSRadius+1)
	if a == t.origin {
		t.aim = a
		return false
	}
	if !t.setAim(a, false) {
		return false
	}

	t.traceArc(a, AffYes)
	if t.prev == nil {
		return true
	}
	t.traceArc(*t.prev, AffMaybe)

	a1 := t.prev.Sub(t.origin)
	a2 := a.Sub(t.origin)
	if geom.LeftOf(a2, a1) {
		a1, a2 = a2, a1
	}
	r := int32(t.rng)
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			q := geom.Int2{X: x, Y: y}
			if !geom.LeftOf(a1, q) || !geom.LeftOf(q, a2) {
				continue
			}
			p := t.origin.Add(q)
			aff, seen := t.zapped[p]
			if !seen {
				t.arcLength[q.Rdist()]++
			}
			if aff <= AffNo && t.world.CanSeeCell(t.origin, p, grid.LOSNoTrans) {
				aff = AffMaybe
			}
			t.zapped[p] = aff
		}
	}
	t.zapped[t.origin] = AffNo
	return true
}

// traceArc marks the cells of one ray that are not marked yet.
func (t *ThunderboltTargeter) traceArc(target geom.Int2, aff AffType) {
	ray := geom.MakeRay(t.origin, target, t.blocksRay)
	if ray.IsDegenerate() {
		return
	}
	ray.Trace(t.rng+1, func(p geom.Int2) bool {
		if !t.inRange(p, t.rng) || t.blocksRay(p) {
			return false
		}
		if p != t.origin && t.zapped[p] <= AffNo {
			t.zapped[p] = aff
			t.arcLength[geom.Rdist(t.origin, p)]++
		}
		return true
	})
}

// ArcLength is the number of cells at distance d the arc passes over.
func (t *ThunderboltTargeter) ArcLength(d int) int {
	if d < 0 || d >= len(t.arcLength) {
		return 0
	}
	return t.arcLength[d]
}

func (t *ThunderboltTargeter) IsAffected(loc geom.Int2) AffType {
	if loc == t.aim {
		if t.zapped[loc] > AffNo {
			return AffYes
		}
		return AffTracer
	}
	if !t.inRange(loc, t.rng) {
		return AffNo
	}
	return t.zapped[loc]
}
