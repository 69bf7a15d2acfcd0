package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memmaker/targeter/engine/geom"
)

func TestBoltStopsAtTarget(t *testing.T) {
	w := openWorld(8, 3)
	b := Bolt{Source: at(0, 0), Target: at(3, 0), Range: 5, AimedAtSpot: true}
	b.Fire(w)
	assert.Equal(t, []geom.Int2{at(1, 0), at(2, 0), at(3, 0)}, b.PathTaken)
}

func TestBoltRunsToRange(t *testing.T) {
	w := openWorld(8, 3)
	b := Bolt{Source: at(0, 0), Target: at(3, 0), Range: 5}
	b.Fire(w)
	assert.Equal(t, []geom.Int2{at(1, 0), at(2, 0), at(3, 0), at(4, 0), at(5, 0)}, b.PathTaken)
}

func TestBoltRecordsBlockingWall(t *testing.T) {
	w := asciiWorld(t, `
		..#.....
		........
	`)
	b := Bolt{Source: at(0, 0), Target: at(5, 0), Range: 7}
	b.Fire(w)
	assert.Equal(t, []geom.Int2{at(1, 0), at(2, 0)}, b.PathTaken)
}

func TestDiggingBoltPassesRock(t *testing.T) {
	w := asciiWorld(t, `
		#######
		#..##=#
		#######
	`)
	b := Bolt{Source: at(1, 1), Target: at(4, 1), Range: 6, Flavour: FlavourDigging}
	b.Fire(w)
	assert.Equal(t, []geom.Int2{at(2, 1), at(3, 1), at(4, 1), at(5, 1)}, b.PathTaken)
}

func TestBoltBounces(t *testing.T) {
	w := asciiWorld(t, `
		#####
		#...#
		#####
	`)
	b := Bolt{Source: at(1, 1), Target: at(3, 1), Range: 6, Pierce: true, Bounces: 1}
	b.Fire(w)
	assert.Equal(t, []geom.Int2{at(2, 1), at(3, 1), at(2, 1), at(1, 1), at(0, 1)}, b.PathTaken)
}

func TestBoltFlavours(t *testing.T) {
	f, ok := ParseFlavour("inner flame")
	assert.True(t, ok)
	assert.Equal(t, FlavourInnerFlame, f)
	_, ok = ParseFlavour("lightning")
	assert.False(t, ok)
	assert.Equal(t, "digging", FlavourDigging.String())

	slow := Bolt{Flavour: FlavourSlow}
	assert.True(t, slow.IsEnchantment())
	assert.True(t, slow.HasSavingThrow())
	assert.False(t, slow.IsHarmless(nil))

	haste := Bolt{Flavour: FlavourHaste}
	assert.True(t, haste.IsHarmless(nil))
	assert.True(t, haste.NiceTo(MonsterInfo{}))

	firewood := NewMonster(7, "plant", AttNeutral, Traits{Firewood: true})
	assert.True(t, slow.IgnoresMonster(firewood))
	assert.False(t, (&Bolt{Flavour: FlavourFire}).IgnoresMonster(firewood))
	assert.True(t, (&Bolt{Flavour: FlavourDigging}).IgnoresMonster(nil))
}

func TestBoltCanAffectWall(t *testing.T) {
	w := asciiWorld(t, `
		#=T.
	`)
	dig := Bolt{Flavour: FlavourDigging}
	fire := Bolt{Flavour: FlavourFire}
	assert.True(t, dig.CanAffectWall(w, at(0, 0)))
	assert.False(t, dig.CanAffectWall(w, at(1, 0)))
	assert.True(t, fire.CanAffectWall(w, at(2, 0)))
	assert.False(t, fire.CanAffectWall(w, at(0, 0)))
}
