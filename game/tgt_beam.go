package game

import (
	"fmt"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/util"
)

type BeamConfig struct {
	Range        int
	Flavour      Flavour
	Pierce       bool
	MinExplosion int
	MaxExplosion int
	Bounces      int
}

// BeamTargeter previews a bolt, optionally exploding where it stops.
type BeamTargeter struct {
	targeterBase
	bolt         Bolt
	rng          int
	pierce       bool
	minExplosion int
	maxExplosion int

	pathTaken []geom.Int2
	explosion *ExplosionMap
	aimValid  bool
}

func NewBeamTargeter(agent Actor, world World, config BeamConfig) *BeamTargeter {
	if config.MinExplosion < 0 || config.MaxExplosion < 0 || config.MinExplosion > config.MaxExplosion {
		panic(fmt.Sprintf("invalid beam explosion radii %d..%d", config.MinExplosion, config.MaxExplosion))
	}
	t := &BeamTargeter{
		targeterBase: newTargeterBase(agent, world),
		rng:          config.Range,
		pierce:       config.Pierce,
		minExplosion: config.MinExplosion,
		maxExplosion: config.MaxExplosion,
	}
	t.bolt = Bolt{
		Source:      t.origin,
		Target:      t.origin,
		Range:       config.Range,
		Flavour:     config.Flavour,
		Pierce:      config.Pierce,
		AimedAtSpot: !config.Pierce,
		Bounces:     config.Bounces,
	}
	return t
}

func (t *BeamTargeter) SetAim(a geom.Int2) bool {
	return t.setBeamAim(a, false)
}

func (t *BeamTargeter) setBeamAim(a geom.Int2, canAffectUnseen bool) bool {
	t.pathTaken = nil
	t.explosion = nil
	t.aimValid = false
	if !t.setAim(a, canAffectUnseen) {
		return false
	}
	t.pathTaken = t.fire(a)
	if t.maxExplosion > 0 {
		t.setExplosionAim()
	}
	t.aimValid, _ = t.ValidAim(a)
	return true
}

func (t *BeamTargeter) fire(target geom.Int2) []geom.Int2 {
	bolt := t.bolt
	bolt.Target = target
	bolt.Fire(t.world)
	return bolt.PathTaken
}

func (t *BeamTargeter) setExplosionAim() {
	center := t.explosionTarget()
	t.explosion = BuildExplosionMap(t.world, center, t.minExplosion, t.maxExplosion, true)
	util.LogTargetDebug(fmt.Sprintf("[Beam] explosion at %s, radius %d..%d", center.ToString(), t.minExplosion, t.maxExplosion))
}

// explosionTarget walks the path in order: the explosion happens on the last cell
// before a wall the bolt cannot affect, or on the first monster it would hit.
func (t *BeamTargeter) explosionTarget() geom.Int2 {
	target := t.origin
	for _, c := range t.pathTaken {
		if t.world.IsSolid(c) && !t.bolt.CanAffectWall(t.world, c) {
			break
		}
		target = c
		if t.stopsAt(c) {
			break
		}
	}
	return target
}

func (t *BeamTargeter) stopsAt(c geom.Int2) bool {
	return t.anyoneThere(c) && !t.bolt.IgnoresMonster(t.world.ActorAt(c))
}

func (t *BeamTargeter) ValidAim(a geom.Int2) (bool, string) {
	if ok, reason := t.checkLOS(a); !ok {
		return false, reason
	}
	if !t.inRange(a, t.rng) {
		return false, msgOutOfRange
	}
	return true, ""
}

func (t *BeamTargeter) CanAffectOutsideRange() bool {
	return t.maxExplosion > 0
}

// PathTaken is the path of the last traced bolt.
func (t *BeamTargeter) PathTaken() []geom.Int2 {
	return append([]geom.Int2(nil), t.pathTaken...)
}

// ExplosionCenter returns the explosion centre for exploding beams.
func (t *BeamTargeter) ExplosionCenter() (geom.Int2, bool) {
	if t.explosion == nil {
		return geom.Int2{}, false
	}
	return t.explosion.Center(), true
}

func (t *BeamTargeter) IsAffected(loc geom.Int2) AffType {
	aff, onPath := t.affected(loc)
	if loc == t.aim && !t.aimValid && aff.Affects() {
		if onPath {
			return AffTracer
		}
		return AffNo
	}
	return aff
}

func (t *BeamTargeter) affected(loc geom.Int2) (AffType, bool) {
	exploding := t.maxExplosion > 0
	onPath := false
	visits := 0
	current := AffYes
	visitAff := AffNo
	for _, pc := range t.pathTaken {
		solid := t.world.IsSolid(pc)
		if solid && !t.bolt.CanAffectWall(t.world, pc) && exploding {
			break
		}
		if pc == loc {
			onPath = true
			visits++
			if !exploding {
				if solid {
					if t.bolt.CanAffectWall(t.world, pc) {
						return current, true
					}
					return AffNo, true
				}
				if visits == 1 {
					visitAff = current
				}
				continue
			}
		}
		if t.stopsAt(pc) && !t.pierce {
			if exploding {
				break
			}
			current = AffMaybe
		}
	}
	if exploding {
		if t.explosion != nil {
			if aff := t.explosion.Aff(loc); aff != AffNo {
				if t.world.IsSolid(loc) && !t.bolt.CanAffectWall(t.world, loc) {
					return AffNo, onPath
				}
				return aff, onPath
			}
		}
		if onPath {
			return AffTracer, true
		}
		return AffNo, false
	}
	switch visits {
	case 0:
		return AffNo, false
	case 1:
		return visitAff, true
	}
	return AffMultiple, true
}

func (t *BeamTargeter) AffectsMonster(mon MonsterInfo) bool {
	m := t.world.ActorAt(mon.Pos)
	if m == nil {
		return false
	}
	if t.bolt.IsEnchantment() && t.bolt.HasSavingThrow() && mon.MagicImmune {
		return false
	}
	if t.bolt.Flavour == FlavourBeckoning {
		return geom.Rdist(mon.Pos, t.agent.Pos()) > 1
	}
	info := m.Info()
	if t.bolt.Flavour == FlavourInnerFlame && info.Summoned && !info.Illusion {
		return false
	}
	return !t.bolt.IsHarmless(m) || t.bolt.NiceTo(mon) ||
		t.bolt.Flavour == FlavourInnerFlame && !info.Summoned
}
