package game

import (
	"github.com/memmaker/targeter/engine/geom"
)

type Attitude int

const (
	AttHostile Attitude = iota
	AttNeutral
	AttFriendly
)

func (a Attitude) String() string {
	switch a {
	case AttHostile:
		return "hostile"
	case AttNeutral:
		return "neutral"
	case AttFriendly:
		return "friendly"
	}
	return "unknown"
}

// Traits are the monster facts targeters care about.
type Traits struct {
	MagicImmune bool `json:"magic_immune"`
	Summoned    bool `json:"summoned"`
	Illusion    bool `json:"illusion"`
	Debuffable  bool `json:"debuffable"`
	Umbraed     bool `json:"umbraed"`
	Firewood    bool `json:"firewood"`
	Stationary  bool `json:"stationary"`
	Invisible   bool `json:"invisible"`
}

// MonsterInfo is what the caller knows about a monster when asking AffectsMonster.
type MonsterInfo struct {
	Pos      geom.Int2
	Name     string
	Attitude Attitude
	Traits
}

type Actor interface {
	UnitID() uint64
	GetName() string
	Pos() geom.Int2
	IsPlayer() bool
	Attitude() Attitude
	Info() MonsterInfo
}

type Unit struct {
	id       uint64
	name     string
	pos      geom.Int2
	player   bool
	attitude Attitude
	traits   Traits
}

func NewMonster(id uint64, name string, attitude Attitude, traits Traits) *Unit {
	return &Unit{id: id, name: name, attitude: attitude, traits: traits}
}

// NewPlayer creates the player character. Players are friendly to their allies.
func NewPlayer(id uint64, name string) *Unit {
	return &Unit{id: id, name: name, player: true, attitude: AttFriendly}
}

func (u *Unit) UnitID() uint64 {
	return u.id
}

func (u *Unit) GetName() string {
	return u.name
}

func (u *Unit) Pos() geom.Int2 {
	return u.pos
}

func (u *Unit) SetPos(pos geom.Int2) {
	u.pos = pos
}

func (u *Unit) IsPlayer() bool {
	return u.player
}

func (u *Unit) Attitude() Attitude {
	return u.attitude
}

func (u *Unit) Traits() Traits {
	return u.traits
}

func (u *Unit) Info() MonsterInfo {
	return MonsterInfo{Pos: u.pos, Name: u.name, Attitude: u.attitude, Traits: u.traits}
}

func isFriendly(a Actor) bool {
	return a.Attitude() == AttFriendly
}

func isMonster(a Actor) bool {
	return !a.IsPlayer()
}
