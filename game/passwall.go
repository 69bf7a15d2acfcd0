package game

import (
	"github.com/memmaker/targeter/engine/geom"
)

const (
	msgNotPassable  = "That's not a passable wall."
	msgTooMuchRock  = "You sense an overwhelming volume of rock."
	msgTooFarToPass = "You are too far from the other side of the wall."
)

// PasswallPath is the straight walk through a wall: every wall cell in the
// aimed direction, then the cell on the other side.
type PasswallPath struct {
	Start geom.Int2
	Dir   geom.Int2
	Range int
	// Path holds the wall cells followed by the exit, when there is one.
	Path []geom.Int2
	// Dest is the exit cell; HasDest is false when rock or the map edge came first.
	Dest    geom.Int2
	HasDest bool

	world  World
	viewer targeterBase
}

func NewPasswallPath(agent Actor, world World, delta geom.Int2, rng int) *PasswallPath {
	pp := &PasswallPath{
		Start:  agent.Pos(),
		Dir:    delta.Sgn(),
		Range:  rng,
		world:  world,
		viewer: newTargeterBase(agent, world),
	}
	if pp.Dir.IsZero() {
		return pp
	}
	for p := pp.Start.Add(pp.Dir); world.Contains(p); p = p.Add(pp.Dir) {
		f := world.FeatureAt(p)
		if f.IsPermarock() {
			break
		}
		pp.Path = append(pp.Path, p)
		if !f.IsWall() {
			pp.Dest = p
			pp.HasDest = true
			break
		}
	}
	return pp
}

// checkShape covers everything except occupants.
func (pp *PasswallPath) checkShape() (bool, string) {
	if pp.Dir.IsZero() || len(pp.Path) == 0 || !pp.world.FeatureAt(pp.Path[0]).IsWall() {
		return false, msgNotPassable
	}
	if !pp.HasDest {
		return false, msgTooMuchRock
	}
	if int(geom.Rdist(pp.Start, pp.Dest)) > pp.Range {
		return false, msgTooFarToPass
	}
	if pp.world.IsSolid(pp.Dest) {
		return false, msgSomethingInWay
	}
	return true, ""
}

// IsValid reports whether the agent would come out on the other side, unseen
// occupants of the exit included.
func (pp *PasswallPath) IsValid() (bool, string) {
	if ok, reason := pp.checkShape(); !ok {
		return false, reason
	}
	if pp.world.ActorAt(pp.Dest) != nil {
		return false, msgSomethingInWay
	}
	return true, ""
}

// SpellSucceeds is IsValid from the agent's point of view: an unseen occupant
// at the exit does not stop the casting.
func (pp *PasswallPath) SpellSucceeds() bool {
	if ok, _ := pp.checkShape(); !ok {
		return false
	}
	return !pp.viewer.anyoneThere(pp.Dest)
}

// Contains reports whether p is part of the walk.
func (pp *PasswallPath) Contains(p geom.Int2) bool {
	for _, c := range pp.Path {
		if c == p {
			return true
		}
	}
	return false
}

// WallCount is the number of walls the agent would pass through.
func (pp *PasswallPath) WallCount() int {
	if pp.HasDest {
		return len(pp.Path) - 1
	}
	return len(pp.Path)
}
