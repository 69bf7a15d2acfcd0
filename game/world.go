package game

//go:generate mockgen -destination=mock/mock_world.go -package=mockgame -source=world.go

import (
	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
)

type Visibility interface {
	CanSeeCell(from, to geom.Int2, mode grid.LOSMode) bool
}

type Terrain interface {
	Contains(p geom.Int2) bool
	InBounds(p geom.Int2) bool
	IsSolid(p geom.Int2) bool
	FeatureAt(p geom.Int2) grid.Feature
	IsKnown(p geom.Int2) bool
	CloudAt(p geom.Int2) bool
	IsSanctuary(p geom.Int2) bool
}

type Occupancy interface {
	// ActorAt returns nil for empty cells.
	ActorAt(p geom.Int2) Actor
}

type World interface {
	Visibility
	Terrain
	Occupancy
}

// MapWorld answers world queries from a grid map.
type MapWorld struct {
	*grid.Map
}

func NewMapWorld(m *grid.Map) *MapWorld {
	return &MapWorld{Map: m}
}

func (w *MapWorld) ActorAt(p geom.Int2) Actor {
	if actor, ok := w.GetMapObjectAt(p).(Actor); ok {
		return actor
	}
	return nil
}

// PlaceUnit puts the unit on the map and updates its position.
func (w *MapWorld) PlaceUnit(u *Unit, pos geom.Int2) bool {
	if !w.SetUnit(u, pos) {
		return false
	}
	u.SetPos(pos)
	return true
}
