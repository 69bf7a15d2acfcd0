package game

import (
	"github.com/memmaker/targeter/engine/geom"
)

// ViewTargeter only looks at a cell.
type ViewTargeter struct {
	targeterBase
}

func NewViewTargeter(agent Actor, world World) *ViewTargeter {
	return &ViewTargeter{targeterBase: newTargeterBase(agent, world)}
}

// ValidAim accepts anything so that looking around does not reveal the map bounds.
func (t *ViewTargeter) ValidAim(geom.Int2) (bool, string) {
	return true, ""
}

func (t *ViewTargeter) IsAffected(loc geom.Int2) AffType {
	if loc == t.aim {
		return AffYes
	}
	return AffNo
}
