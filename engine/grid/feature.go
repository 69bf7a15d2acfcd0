package grid

import "strings"

type Feature byte

const (
	Floor Feature = iota
	RockWall
	StoneWall
	MetalWall
	CrystalWall
	ClearRockWall
	ClearStoneWall
	PermaRock
	Tree
	ClosedDoor
	OpenDoor
	Grate
	Statue
	// Unseen only appears in map knowledge, never on the map itself.
	Unseen
)

type featureInfo struct {
	name           string
	solid          bool
	opaque         bool
	wall           bool
	diggable       bool
	permarock      bool
	door           bool
	tree           bool
	fragmentRadius int
}

var features = [...]featureInfo{
	Floor:          {name: "floor"},
	RockWall:       {name: "rock wall", solid: true, opaque: true, wall: true, diggable: true, fragmentRadius: 1},
	StoneWall:      {name: "stone wall", solid: true, opaque: true, wall: true, fragmentRadius: 1},
	MetalWall:      {name: "metal wall", solid: true, opaque: true, wall: true},
	CrystalWall:    {name: "crystal wall", solid: true, opaque: true, wall: true, fragmentRadius: 2},
	ClearRockWall:  {name: "translucent rock wall", solid: true, wall: true, diggable: true, fragmentRadius: 1},
	ClearStoneWall: {name: "translucent stone wall", solid: true, wall: true, fragmentRadius: 1},
	PermaRock:      {name: "permanent rock wall", solid: true, opaque: true, wall: true, permarock: true},
	Tree:           {name: "tree", solid: true, opaque: true, tree: true},
	ClosedDoor:     {name: "closed door", solid: true, opaque: true, door: true},
	OpenDoor:       {name: "open door", door: true},
	Grate:          {name: "iron grate", solid: true, fragmentRadius: 1},
	Statue:         {name: "granite statue", solid: true, fragmentRadius: 2},
	Unseen:         {name: "unknown terrain", solid: true, opaque: true},
}

func (f Feature) info() featureInfo {
	if int(f) >= len(features) {
		return features[Unseen]
	}
	return features[f]
}

func (f Feature) IsSolid() bool      { return f.info().solid }
func (f Feature) IsOpaque() bool     { return f.info().opaque }
func (f Feature) IsWall() bool       { return f.info().wall }
func (f Feature) IsDiggable() bool   { return f.info().diggable }
func (f Feature) IsPermarock() bool  { return f.info().permarock }
func (f Feature) IsDoor() bool       { return f.info().door }
func (f Feature) IsClosedDoor() bool { return f == ClosedDoor }
func (f Feature) IsOpenDoor() bool   { return f == OpenDoor }
func (f Feature) IsTree() bool       { return f.info().tree }

// IsReachablePast reports whether a reaching weapon can strike over this cell.
func (f Feature) IsReachablePast() bool {
	return !f.IsSolid() || f == Grate
}

// FragmentRadius is the blast radius when the feature is shattered; 0 means it cannot be.
func (f Feature) FragmentRadius() int {
	return f.info().fragmentRadius
}

func (f Feature) Name() string {
	return f.info().name
}

func (f Feature) String() string {
	return f.Name()
}

// WithArticle prefixes the name with "a" or "an".
func (f Feature) WithArticle() string {
	name := f.Name()
	if strings.ContainsRune("aeiou", rune(name[0])) {
		return "an " + name
	}
	return "a " + name
}
