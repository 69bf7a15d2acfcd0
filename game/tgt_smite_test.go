package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memmaker/targeter/engine/geom"
)

func TestSmiteExplosionGrading(t *testing.T) {
	w := openWorld(11, 11)
	player := placePlayer(t, w, at(1, 5))
	tg := NewSmiteTargeter(player, w, SmiteConfig{Range: 6, MinExplosion: 1, MaxExplosion: 2})

	center := at(5, 5)
	require.True(t, tg.SetAim(center))
	for y := int32(0); y < 11; y++ {
		for x := int32(0); x < 11; x++ {
			p := at(x, y)
			want := AffNo
			switch d := geom.Rdist(p, center); {
			case d <= 1:
				want = AffYes
			case d == 2:
				want = AffMaybe
			}
			assert.Equal(t, want, tg.IsAffected(p), "cell %s", p)
		}
	}
}

func TestSmiteValidAim(t *testing.T) {
	w := asciiWorld(t, `
		.........
		...#.....
		.........
		.O.......
		.........
	`)
	player := placePlayer(t, w, at(1, 1))
	tg := NewSmiteTargeter(player, w, SmiteConfig{Range: 6})

	tests := []struct {
		name   string
		aim    geom.Int2
		valid  bool
		reason string
	}{
		{"open floor", at(2, 0), true, ""},
		{"wall", at(3, 1), false, "There is a rock wall there."},
		{"behind rock", at(5, 1), false, "You cannot see that place."},
		{"behind glass", at(1, 4), false, "There's something in the way."},
		{"too far", at(8, 0), false, "Out of range."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, reason := tg.ValidAim(tt.aim)
			assert.Equal(t, tt.valid, valid)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestSmiteAffectsPos(t *testing.T) {
	w := openWorld(9, 9)
	player := placePlayer(t, w, at(1, 4))
	tg := NewSmiteTargeter(player, w, SmiteConfig{
		Range:        6,
		MinExplosion: 1,
		MaxExplosion: 1,
		AffectsPos: func(p geom.Int2) bool {
			return p.X != 5
		},
	})
	require.True(t, tg.SetAim(at(4, 4)))
	assert.Equal(t, AffYes, tg.IsAffected(at(4, 4)))
	assert.Equal(t, AffYes, tg.IsAffected(at(3, 3)))
	assert.Equal(t, AffNo, tg.IsAffected(at(5, 4)))
	assert.True(t, tg.CanAffectOutsideRange())
	assert.False(t, tg.CanAffectWalls())
}

func TestFragmentRadiusFromFeature(t *testing.T) {
	w := asciiWorld(t, `
		.........
		.........
		....C....
		.........
		.........
	`)
	player := placePlayer(t, w, at(1, 2))
	tg := NewFragmentTargeter(player, w, 5)

	require.True(t, tg.SetAim(at(4, 2)))
	assert.Equal(t, AffYes, tg.IsAffected(at(4, 2)))
	assert.Equal(t, AffYes, tg.IsAffected(at(6, 4)))
	assert.Equal(t, AffNo, tg.IsAffected(at(7, 2)))
	assert.True(t, tg.CanAffectWalls())

	valid, reason := tg.ValidAim(at(4, 0))
	assert.False(t, valid)
	assert.Equal(t, "You cannot affect that.", reason)
	assert.False(t, tg.SetAim(at(4, 0)))
	assert.Equal(t, AffNo, tg.IsAffected(at(4, 0)))
}

func TestTransferenceRejectsStationary(t *testing.T) {
	w := openWorld(9, 5)
	player := placePlayer(t, w, at(1, 2))
	placeMonster(t, w, at(4, 2), AttHostile, Traits{Stationary: true})
	placeMonster(t, w, at(4, 1), AttHostile, Traits{})
	tg := NewTransferenceTargeter(player, w, 1)

	valid, reason := tg.ValidAim(at(4, 2))
	assert.False(t, valid)
	assert.Equal(t, "You can't transfer that.", reason)

	require.True(t, tg.SetAim(at(4, 1)))
	assert.Equal(t, AffYes, tg.IsAffected(at(4, 1)))
	assert.Equal(t, AffYes, tg.IsAffected(at(5, 0)))
}

func TestWallJump(t *testing.T) {
	w := asciiWorld(t, `
		.......
		.#.....
		.......
	`)
	player := placePlayer(t, w, at(2, 1))
	placeMonster(t, w, at(5, 2), AttHostile, Traits{})
	tg := NewWallJumpTargeter(player, w)

	require.True(t, tg.SetAim(at(1, 1)))
	assert.Equal(t, at(4, 1), tg.Landing(at(1, 1)))
	assert.Equal(t, AffYes, tg.IsAffected(at(4, 1)))
	assert.Equal(t, AffYes, tg.IsAffected(at(5, 2)))
	assert.Equal(t, AffNo, tg.IsAffected(at(3, 1)))
	assert.Equal(t, AffNo, tg.IsAffected(at(1, 1)))

	valid, reason := tg.ValidAim(at(3, 1))
	assert.False(t, valid)
	assert.Equal(t, "There's no wall there to jump off.", reason)

	valid, reason = tg.ValidAim(at(5, 1))
	assert.False(t, valid)
	assert.Equal(t, "You need to stand next to the wall.", reason)
}
