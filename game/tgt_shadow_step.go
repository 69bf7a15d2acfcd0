package game

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/util"
)

const (
	msgNoSafePlace = "There is no safe place near that location."
	msgNoShadow    = "There isn't a shadow there."
)

// ShadowStepBlocked tells why no landing site was found.
type ShadowStepBlocked int

const (
	StepBlockedNone ShadowStepBlocked = iota
	StepBlockedMove
	StepBlockedOccupied
	StepBlockedPath
	StepBlockedNoTarget
)

// ShadowStepTargeter aims at an umbraed monster and lands next to it.
// Every possible landing cell reads LANDING.
type ShadowStepTargeter struct {
	targeterBase
	rng int

	additionalSites mapset.Set[geom.Int2]
	tempSites       mapset.Set[geom.Int2]
	landingSite     geom.Int2
	hasLanding      bool
	stepIsBlocked   bool
	aimValid        bool

	noLandingReason      ShadowStepBlocked
	blockedLandingReason ShadowStepBlocked
}

func NewShadowStepTargeter(agent Actor, world World, rng int) *ShadowStepTargeter {
	return &ShadowStepTargeter{
		targeterBase:    newTargeterBase(agent, world),
		rng:             rng,
		additionalSites: mapset.New[geom.Int2](),
		tempSites:       mapset.New[geom.Int2](),
	}
}

func (t *ShadowStepTargeter) ValidAim(a geom.Int2) (bool, string) {
	if a == t.origin {
		return false, msgTargetSelf
	}
	if !t.inRange(a, t.rng) {
		return false, msgOutOfRange
	}
	if ok, reason := t.checkLOS(a); !ok {
		return false, reason
	}
	if t.world.IsSolid(a) {
		return false, msgSomethingInWay
	}
	if _, ok := geom.FindRay(t.agent.Pos(), a, t.blocksRay); !ok {
		return false, msgSomethingInWay
	}
	if !t.HasAdditionalSites(a) {
		switch t.noLandingReason {
		case StepBlockedMove, StepBlockedOccupied:
			return false, msgNoSafePlace
		case StepBlockedPath:
			return false, msgSomethingInWay
		case StepBlockedNoTarget:
			return false, msgNoShadow
		}
		panic("shadow step without landing sites or a reason")
	}
	return true, ""
}

// validLanding checks one landing cell. With checkInvis only occupants the
// agent can see count.
func (t *ShadowStepTargeter) validLanding(a geom.Int2, checkInvis bool) bool {
	if !t.isHabitable(a) {
		t.blockedLandingReason = StepBlockedMove
		return false
	}
	if _, ok := geom.FindRay(t.agent.Pos(), a, t.blocksRay); !ok {
		t.blockedLandingReason = StepBlockedPath
		return false
	}
	if occupant := t.world.ActorAt(a); occupant != nil && (!checkInvis || t.canSee(occupant)) {
		t.blockedLandingReason = StepBlockedOccupied
		return false
	}
	return true
}

// SetAim picks the first landing site row by row. An unseen occupant there
// marks the step as blocked, but the aim is still usable. An aim the agent
// cannot step to keeps no landing sites.
func (t *ShadowStepTargeter) SetAim(a geom.Int2) bool {
	if a == t.origin {
		return false
	}
	if !t.setAim(a, false) {
		return false
	}
	t.stepIsBlocked = false
	t.hasLanding = false
	t.aimValid = false

	t.getAdditionalSites(a)
	t.additionalSites = t.tempSites
	t.tempSites = mapset.New[geom.Int2]()
	if t.additionalSites.Size() == 0 {
		return false
	}
	t.landingSite = t.AdditionalSites()[0]
	t.hasLanding = true
	if !t.validLanding(t.landingSite, false) {
		t.stepIsBlocked = true
		util.LogTargetDebug(fmt.Sprintf("[ShadowStep] landing at %s is blocked", t.landingSite.ToString()))
	}
	t.aimValid, _ = t.ValidAim(a)
	if !t.aimValid {
		t.additionalSites = mapset.New[geom.Int2]()
		t.hasLanding = false
		t.stepIsBlocked = false
		return false
	}
	return true
}

func (t *ShadowStepTargeter) getAdditionalSites(a geom.Int2) {
	agentAdjacent := geom.Rdist(a, t.agent.Pos()) == 1
	t.tempSites = mapset.New[geom.Int2]()

	victim := t.world.ActorAt(a)
	if victim == nil || victim.IsPlayer() || isFriendly(victim) || !t.canSee(victim) {
		t.noLandingReason = StepBlockedNoTarget
		return
	}
	if info := victim.Info(); info.Firewood || !info.Umbraed {
		t.noLandingReason = StepBlockedNoTarget
		return
	}

	t.noLandingReason = StepBlockedNone
	for _, n := range a.Neighbors8() {
		if agentAdjacent && geom.Rdist(t.agent.Pos(), n) <= 1 {
			continue
		}
		if t.validLanding(n, true) {
			t.tempSites.Put(n)
			t.noLandingReason = StepBlockedNone
		} else {
			t.noLandingReason = t.blockedLandingReason
		}
	}
}

func (t *ShadowStepTargeter) HasAdditionalSites(a geom.Int2) bool {
	t.getAdditionalSites(a)
	return t.tempSites.Size() > 0
}

// AdditionalSites lists the landing cells of the current aim row by row.
func (t *ShadowStepTargeter) AdditionalSites() []geom.Int2 {
	result := make([]geom.Int2, 0, t.additionalSites.Size())
	t.additionalSites.Each(func(p geom.Int2) {
		result = append(result, p)
	})
	sortCells(result)
	return result
}

func (t *ShadowStepTargeter) LandingSite() (geom.Int2, bool) {
	return t.landingSite, t.hasLanding
}

// StepIsBlocked reports an occupant the agent cannot see at the chosen landing site.
func (t *ShadowStepTargeter) StepIsBlocked() bool {
	return t.stepIsBlocked
}

func (t *ShadowStepTargeter) IsAffected(loc geom.Int2) AffType {
	if loc == t.aim {
		if !t.aimValid {
			return AffNo
		}
		return AffYes
	}
	if t.additionalSites.Has(loc) {
		return AffLanding
	}
	return AffNo
}
