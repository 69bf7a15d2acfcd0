package game

import (
	"github.com/memmaker/targeter/engine/geom"
)

type Flavour int

const (
	FlavourMagic Flavour = iota
	FlavourFire
	FlavourCold
	FlavourSlow
	FlavourHaste
	FlavourHealing
	FlavourBeckoning
	FlavourInnerFlame
	FlavourUnravelling
	FlavourDigging
	FlavourDebugging
)

var flavourNames = map[Flavour]string{
	FlavourMagic:       "magic",
	FlavourFire:        "fire",
	FlavourCold:        "cold",
	FlavourSlow:        "slow",
	FlavourHaste:       "haste",
	FlavourHealing:     "healing",
	FlavourBeckoning:   "beckoning",
	FlavourInnerFlame:  "inner flame",
	FlavourUnravelling: "unravelling",
	FlavourDigging:     "digging",
	FlavourDebugging:   "debugging",
}

func (f Flavour) String() string {
	if name, ok := flavourNames[f]; ok {
		return name
	}
	return "unknown"
}

func ParseFlavour(name string) (Flavour, bool) {
	for f, n := range flavourNames {
		if n == name {
			return f, true
		}
	}
	return FlavourMagic, false
}

// Bolt traces the cells a beam passes. Tracing never stops at monsters.
type Bolt struct {
	Source  geom.Int2
	Target  geom.Int2
	Range   int
	Flavour Flavour
	Pierce  bool
	// AimedAtSpot stops the bolt at its target.
	AimedAtSpot bool
	Bounces     int

	PathTaken []geom.Int2
}

func (b *Bolt) IsEnchantment() bool {
	switch b.Flavour {
	case FlavourSlow, FlavourHaste, FlavourHealing, FlavourBeckoning, FlavourInnerFlame, FlavourUnravelling:
		return true
	}
	return false
}

func (b *Bolt) HasSavingThrow() bool {
	switch b.Flavour {
	case FlavourSlow, FlavourBeckoning, FlavourInnerFlame:
		return true
	}
	return false
}

func (b *Bolt) IsHarmless(Actor) bool {
	switch b.Flavour {
	case FlavourHaste, FlavourHealing, FlavourDigging, FlavourDebugging:
		return true
	}
	return false
}

func (b *Bolt) NiceTo(MonsterInfo) bool {
	return b.Flavour == FlavourHaste || b.Flavour == FlavourHealing
}

// IgnoresMonster reports bolts that pass monsters without interacting.
func (b *Bolt) IgnoresMonster(a Actor) bool {
	if b.Flavour == FlavourDigging {
		return true
	}
	return a != nil && a.Info().Firewood && b.IsEnchantment()
}

func (b *Bolt) CanAffectWall(terrain Terrain, p geom.Int2) bool {
	f := terrain.FeatureAt(p)
	switch b.Flavour {
	case FlavourDigging:
		return f.IsDiggable()
	case FlavourFire:
		return f.IsTree()
	}
	return false
}

// Fire fills PathTaken. The path ends at the range limit, at the target when
// AimedAtSpot is set, or on a solid cell the bolt cannot affect. That cell is
// recorded unless the bolt bounces off it.
func (b *Bolt) Fire(terrain Terrain) {
	b.PathTaken = nil
	if b.Source == b.Target || b.Range <= 0 {
		return
	}
	blocked := func(p geom.Int2) bool {
		return !terrain.Contains(p) || terrain.IsSolid(p)
	}
	ray := geom.MakeRay(b.Source, b.Target, blocked)
	bounces := b.Bounces
	prev := b.Source
	for steps := 0; steps < b.Range; {
		ray.Advance()
		p := ray.Pos()
		if p == prev {
			continue
		}
		if !terrain.Contains(p) {
			return
		}
		if terrain.IsSolid(p) && !b.CanAffectWall(terrain, p) {
			if bounces > 0 {
				bounces--
				flipX, flipY := bounceAxes(terrain, prev, p)
				ray = ray.Reflect(prev, flipX, flipY)
				continue
			}
			b.PathTaken = append(b.PathTaken, p)
			return
		}
		b.PathTaken = append(b.PathTaken, p)
		steps++
		prev = p
		if b.AimedAtSpot && p == b.Target {
			return
		}
	}
}

// bounceAxes picks the mirror axes for a bolt moving from prev into the wall at p.
func bounceAxes(terrain Terrain, prev, p geom.Int2) (flipX, flipY bool) {
	d := p.Sub(prev)
	if d.X == 0 || d.Y == 0 {
		return d.X != 0, d.Y != 0
	}
	xSide := terrain.IsSolid(geom.Int2{X: prev.X + d.X, Y: prev.Y})
	ySide := terrain.IsSolid(geom.Int2{X: prev.X, Y: prev.Y + d.Y})
	switch {
	case xSide && !ySide:
		return true, false
	case ySide && !xSide:
		return false, true
	}
	return true, true
}
