package grid

import (
	"github.com/memmaker/targeter/engine/geom"
)

type LOSMode int

const (
	// LOSDefault is blocked by opaque features only.
	LOSDefault LOSMode = iota
	// LOSNoTrans is also blocked by see-through solids: glass, grates, statues.
	LOSNoTrans
)

const LOSRadius = 7

func (m *Map) BlocksSight(p geom.Int2, mode LOSMode) bool {
	if !m.Contains(p) {
		return true
	}
	f := m.FeatureAt(p)
	if mode == LOSNoTrans {
		return f.IsSolid() || f.IsOpaque()
	}
	return f.IsOpaque()
}

// CanSeeCell tests line of sight within LOSRadius. The result does not depend on the direction of the query.
func (m *Map) CanSeeCell(from, to geom.Int2, mode LOSMode) bool {
	if !m.Contains(from) || !m.Contains(to) {
		return false
	}
	if geom.Rdist(from, to) > LOSRadius {
		return false
	}
	if from == to {
		return true
	}
	opaque := func(p geom.Int2) bool { return m.BlocksSight(p, mode) }
	if _, ok := geom.FindRay(from, to, opaque); ok {
		return true
	}
	_, ok := geom.FindRay(to, from, opaque)
	return ok
}

// VisibleCells lists every cell visible from the given cell, the cell itself included.
func (m *Map) VisibleCells(from geom.Int2, mode LOSMode) []geom.Int2 {
	var result []geom.Int2
	for y := from.Y - LOSRadius; y <= from.Y+LOSRadius; y++ {
		for x := from.X - LOSRadius; x <= from.X+LOSRadius; x++ {
			p := geom.Int2{X: x, Y: y}
			if m.CanSeeCell(from, p, mode) {
				result = append(result, p)
			}
		}
	}
	return result
}
