package grid

import (
	"fmt"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/util"
)

type Map struct {
	cells              []Cell
	width              int32
	height             int32
	knownUnitPositions map[uint64]geom.Int2
}

// NewMap creates an all floor, fully known map.
func NewMap(width, height int32) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid map size %dx%d", width, height))
	}
	m := &Map{
		cells:              make([]Cell, width*height),
		width:              width,
		height:             height,
		knownUnitPositions: make(map[uint64]geom.Int2),
	}
	for i := range m.cells {
		m.cells[i].Known = true
	}
	return m
}

func (m *Map) Width() int32 {
	return m.width
}

func (m *Map) Height() int32 {
	return m.height
}

// Contains checks the map bounds.
func (m *Map) Contains(p geom.Int2) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// InBounds excludes the outermost ring of cells.
func (m *Map) InBounds(p geom.Int2) bool {
	return p.X >= 1 && p.X < m.width-1 && p.Y >= 1 && p.Y < m.height-1
}

func (m *Map) GetCell(p geom.Int2) *Cell {
	if !m.Contains(p) {
		return nil
	}
	return &m.cells[p.X+p.Y*m.width]
}

// FeatureAt treats everything outside the map as permanent rock.
func (m *Map) FeatureAt(p geom.Int2) Feature {
	cell := m.GetCell(p)
	if cell == nil {
		return PermaRock
	}
	return cell.Feature
}

func (m *Map) SetFeature(p geom.Int2, f Feature) {
	if cell := m.GetCell(p); cell != nil {
		cell.Feature = f
	}
}

func (m *Map) IsSolid(p geom.Int2) bool {
	return m.FeatureAt(p).IsSolid()
}

func (m *Map) IsOpaque(p geom.Int2) bool {
	return m.FeatureAt(p).IsOpaque()
}

func (m *Map) IsKnown(p geom.Int2) bool {
	cell := m.GetCell(p)
	return cell != nil && cell.Known
}

func (m *Map) SetKnown(p geom.Int2, known bool) {
	if cell := m.GetCell(p); cell != nil {
		cell.Known = known
	}
}

func (m *Map) KnownFeatureAt(p geom.Int2) Feature {
	cell := m.GetCell(p)
	if cell == nil {
		return Unseen
	}
	return cell.KnownFeature()
}

func (m *Map) CloudAt(p geom.Int2) bool {
	cell := m.GetCell(p)
	return cell != nil && cell.Cloud
}

func (m *Map) SetCloud(p geom.Int2, cloud bool) {
	if cell := m.GetCell(p); cell != nil {
		cell.Cloud = cloud
	}
}

func (m *Map) IsSanctuary(p geom.Int2) bool {
	cell := m.GetCell(p)
	return cell != nil && cell.Sanctuary
}

func (m *Map) SetSanctuary(p geom.Int2, sanctuary bool) {
	if cell := m.GetCell(p); cell != nil {
		cell.Sanctuary = sanctuary
	}
}

func (m *Map) IsUnitPlaceable(unit MapObject, pos geom.Int2) (bool, string) {
	if !m.Contains(pos) {
		return false, "Outside of world"
	}
	if m.IsSolid(pos) {
		return false, "Wall"
	}
	if m.IsOccupiedExcept(pos, unit) {
		blockingUnit := m.GetCell(pos).GetOccupant()
		return false, fmt.Sprintf("Unit %s(%d) is blocking", blockingUnit.GetName(), blockingUnit.UnitID())
	}
	return true, ""
}

func (m *Map) RemoveUnit(unit MapObject) {
	currentPos, isOnMap := m.knownUnitPositions[unit.UnitID()]
	if !isOnMap {
		return
	}
	if cell := m.GetCell(currentPos); cell != nil && cell.IsOccupied() {
		cell.RemoveUnit(unit)
	}
	delete(m.knownUnitPositions, unit.UnitID())
}

func (m *Map) SetUnit(unit MapObject, pos geom.Int2) bool {
	_, isOnMap := m.knownUnitPositions[unit.UnitID()]
	if isOnMap {
		m.RemoveUnit(unit)
	}
	ok, reason := m.IsUnitPlaceable(unit, pos)
	if !ok {
		util.LogGridError(fmt.Sprintf("[Map] Failed to place %s(%d): %s (%s)", unit.GetName(), unit.UnitID(), pos.ToString(), reason))
		return false
	}
	m.GetCell(pos).AddUnit(unit)
	m.knownUnitPositions[unit.UnitID()] = pos
	return true
}

func (m *Map) UnitPosition(unit MapObject) (geom.Int2, bool) {
	pos, ok := m.knownUnitPositions[unit.UnitID()]
	return pos, ok
}

func (m *Map) IsOccupied(pos geom.Int2) bool {
	return m.GetCell(pos).IsOccupied()
}

func (m *Map) IsOccupiedExcept(pos geom.Int2, unit MapObject) bool {
	cell := m.GetCell(pos)
	return cell.IsOccupied() && cell.GetOccupant().UnitID() != unit.UnitID()
}

func (m *Map) GetMapObjectAt(pos geom.Int2) MapObject {
	cell := m.GetCell(pos)
	if cell == nil {
		return nil
	}
	return cell.GetOccupant()
}
