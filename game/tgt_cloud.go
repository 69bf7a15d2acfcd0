package game

import (
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/util"
)

const (
	msgCloudThere     = "There's already a cloud there."
	msgCloudSanctuary = "You can't place clouds in a sanctuary."
)

// CloudTargeter spreads a cloud of cntMin to cntMax cells from the aim,
// filling the nearest free cells first.
type CloudTargeter struct {
	targeterBase
	rng         int
	cntMin      int
	cntMax      int
	avoidClouds bool

	seen     map[geom.Int2]AffType
	aimValid bool
}

func NewCloudTargeter(agent Actor, world World, rng, cntMin, cntMax int) *CloudTargeter {
	if cntMin <= 0 || cntMax <= 0 || cntMin > cntMax {
		panic(fmt.Sprintf("invalid cloud size %d..%d", cntMin, cntMax))
	}
	return &CloudTargeter{
		targeterBase: newTargeterBase(agent, world),
		rng:          rng,
		cntMin:       cntMin,
		cntMax:       cntMax,
		avoidClouds:  true,
		seen:         make(map[geom.Int2]AffType),
	}
}

func (t *CloudTargeter) cloudable(p geom.Int2) bool {
	if !t.world.InBounds(p) || t.world.IsSolid(p) {
		return false
	}
	return !(t.avoidClouds && (t.world.CloudAt(p) || t.world.IsSanctuary(p)))
}

func (t *CloudTargeter) ValidAim(a geom.Int2) (bool, string) {
	if !t.inRange(a, t.rng) {
		return false, msgOutOfRange
	}
	if !t.world.Contains(a) {
		return false, msgCannotSee
	}
	if ok, reason := t.checkLOS(a); !ok {
		return false, reason
	}
	if t.world.IsSolid(a) {
		return false, t.wallMessage(a)
	}
	if t.avoidClouds && t.world.CloudAt(a) {
		return false, msgCloudThere
	}
	if t.world.IsSanctuary(a) {
		return false, msgCloudSanctuary
	}
	return true, ""
}

// SetAim floods outwards from the aim one cell at a time. The first cntMin
// cells are certain, the rest up to cntMax are likely.
func (t *CloudTargeter) SetAim(a geom.Int2) bool {
	t.seen = make(map[geom.Int2]AffType)
	t.aimValid = false
	if !t.setAim(a, false) {
		return false
	}
	t.aimValid, _ = t.ValidAim(a)

	placed := 0
	q := queue.New[geom.Int2]()
	q.Enqueue(a)
	// AffTracer marks cells waiting in the queue.
	t.seen[a] = AffTracer
	for !q.Empty() && placed < t.cntMax {
		c := q.Dequeue()
		placed++
		if placed <= t.cntMin {
			t.seen[c] = AffYes
		} else {
			t.seen[c] = AffMaybe
		}
		for _, n := range c.Neighbors8() {
			if _, ok := t.seen[n]; ok || !t.cloudable(n) {
				continue
			}
			t.seen[n] = AffTracer
			q.Enqueue(n)
		}
	}
	util.LogTargetDebug(fmt.Sprintf("[Cloud] %d cells placed around %s", placed, a.ToString()))
	return true
}

func (t *CloudTargeter) CanAffectOutsideRange() bool {
	return true
}

func (t *CloudTargeter) IsAffected(loc geom.Int2) AffType {
	if !t.aimValid {
		return AffNo
	}
	if aff := t.seen[loc]; aff > AffNo {
		return aff
	}
	return AffNo
}
