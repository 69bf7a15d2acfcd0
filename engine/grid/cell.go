package grid

type MapObject interface {
	UnitID() uint64
	GetName() string
}

type Cell struct {
	Feature   Feature
	Known     bool
	Cloud     bool
	Sanctuary bool
	occupant  MapObject
}

func (c *Cell) RemoveUnit(unit MapObject) {
	if c.occupant != nil && c.occupant.UnitID() == unit.UnitID() {
		c.occupant = nil
	}
}

func (c *Cell) AddUnit(unit MapObject) {
	c.occupant = unit
}

func (c *Cell) IsOccupied() bool {
	if c == nil {
		return false
	}
	return c.occupant != nil
}

func (c *Cell) GetOccupant() MapObject {
	return c.occupant
}

// KnownFeature is the feature as far as map knowledge goes.
func (c *Cell) KnownFeature() Feature {
	if !c.Known {
		return Unseen
	}
	return c.Feature
}
