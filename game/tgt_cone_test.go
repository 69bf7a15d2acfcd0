package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memmaker/targeter/engine/geom"
)

func TestConeNorthIsMirrorSymmetric(t *testing.T) {
	w := openWorld(15, 15)
	player := placePlayer(t, w, at(7, 7))
	tg := NewConeTargeter(player, w, 4)

	require.True(t, tg.SetAim(at(7, 3)))
	for y := int32(0); y < 15; y++ {
		for x := int32(0); x < 15; x++ {
			assert.Equal(t, tg.IsAffected(at(x, y)), tg.IsAffected(at(14-x, y)), "cell %d,%d", x, y)
		}
	}
	assert.Len(t, cellsWith(tg, w, AffYes), 24)
	assert.Equal(t, AffYes, tg.IsAffected(at(7, 3)))
	assert.Equal(t, AffYes, tg.IsAffected(at(3, 3)))
	assert.Equal(t, AffNo, tg.IsAffected(at(7, 8)))
	assert.Equal(t, AffNo, tg.IsAffected(at(7, 7)))
}

func TestConeSweepBands(t *testing.T) {
	w := openWorld(15, 15)
	player := placePlayer(t, w, at(7, 7))
	tg := NewConeTargeter(player, w, 4)

	require.True(t, tg.SetAim(at(7, 3)))
	assert.Equal(t, 5, tg.SweepBands())
	assert.Empty(t, tg.Sweep(0))
	assert.Equal(t, []geom.Int2{at(6, 6), at(7, 6), at(8, 6)}, tg.Sweep(1))
	for d := 1; d <= 4; d++ {
		assert.Len(t, tg.Sweep(d), 2*d+1, "band %d", d)
		for _, p := range tg.Sweep(d) {
			assert.Equal(t, int32(d), geom.Rdist(p, at(7, 7)))
		}
	}
}

func TestConeStopsAtWalls(t *testing.T) {
	w := asciiWorld(t, `
		.........
		.........
		.........
		....#....
		.........
		.........
	`)
	player := placePlayer(t, w, at(4, 5))
	tg := NewConeTargeter(player, w, 4)

	require.True(t, tg.SetAim(at(2, 2)))
	assert.Equal(t, AffNo, tg.IsAffected(at(4, 3)))
	assert.Equal(t, AffNo, tg.IsAffected(at(4, 2)))
	assert.Equal(t, AffYes, tg.IsAffected(at(3, 3)))
}

func TestConeAimingAtSelf(t *testing.T) {
	w := openWorld(9, 9)
	player := placePlayer(t, w, at(4, 4))
	tg := NewConeTargeter(player, w, 3)

	assert.False(t, tg.SetAim(at(4, 4)))
	assert.Equal(t, AffTracer, tg.IsAffected(at(4, 4)))
	assert.Empty(t, cellsWith(tg, w, AffYes))
	assert.Panics(t, func() { NewConeTargeter(player, w, 1) })
}

func TestShotgunSingleBeamIsARay(t *testing.T) {
	w := openWorld(12, 12)
	player := placePlayer(t, w, at(2, 5))
	aim := at(5, 6)
	shotgun := NewShotgunTargeter(player, w, 1, 5, false)
	beam := NewBeamTargeter(player, w, BeamConfig{Range: 5})
	piercing := NewBeamTargeter(player, w, BeamConfig{Range: 5, Pierce: true})

	require.True(t, shotgun.SetAim(aim))
	require.True(t, beam.SetAim(aim))
	require.True(t, piercing.SetAim(aim))
	assert.Empty(t, cellsWith(shotgun, w, AffMaybe))
	assert.Len(t, shotgun.Rays(), 1)

	// up to the aim the single ray is the plain beam, after it the pellets fly on to range
	var upToAim []geom.Int2
	for _, p := range cellsWith(shotgun, w, AffYes) {
		if geom.Rdist(player.Pos(), p) <= geom.Rdist(player.Pos(), aim) {
			upToAim = append(upToAim, p)
		}
	}
	assert.Equal(t, []geom.Int2{at(3, 5), at(4, 6), at(5, 6)}, cellsWith(beam, w, AffYes))
	assert.Equal(t, cellsWith(beam, w, AffYes), upToAim)
	assert.Equal(t, cellsWith(piercing, w, AffYes), cellsWith(shotgun, w, AffYes))
}

func TestShotgunSpread(t *testing.T) {
	w := openWorld(15, 15)
	player := placePlayer(t, w, at(7, 7))
	tg := NewShotgunTargeter(player, w, 3, 7, false)

	require.True(t, tg.SetAim(at(7, 2)))
	for y := int32(1); y <= 6; y++ {
		assert.Equal(t, AffYes, tg.IsAffected(at(7, y)), "y=%d", y)
	}
	assert.Equal(t, AffMaybe, tg.IsAffected(at(7, 0)))
	assert.Equal(t, AffMaybe, tg.IsAffected(at(6, 0)))
	assert.Equal(t, AffMaybe, tg.IsAffected(at(8, 0)))
	assert.Equal(t, AffNo, tg.IsAffected(at(7, 7)))
}

func TestShotgunAvoidsClouds(t *testing.T) {
	w := openWorld(12, 5)
	player := placePlayer(t, w, at(1, 2))
	w.SetCloud(at(3, 2), true)
	tg := NewShotgunTargeter(player, w, 1, 5, true)

	require.True(t, tg.SetAim(at(4, 2)))
	assert.Equal(t, AffYes, tg.IsAffected(at(2, 2)))
	assert.Equal(t, AffNo, tg.IsAffected(at(3, 2)))
	assert.Equal(t, AffYes, tg.IsAffected(at(4, 2)))
}

func TestThunderboltArc(t *testing.T) {
	w := openWorld(15, 15)
	player := placePlayer(t, w, at(7, 7))

	first := NewThunderboltTargeter(player, w, 3, nil)
	require.True(t, first.SetAim(at(7, 4)))
	assert.Equal(t, []geom.Int2{at(7, 4), at(7, 5), at(7, 6)}, cellsWith(first, w, AffYes))
	assert.Equal(t, 1, first.ArcLength(1))
	assert.Empty(t, cellsWith(first, w, AffMaybe))

	prev := at(10, 7)
	second := NewThunderboltTargeter(player, w, 3, &prev)
	assert.Equal(t, prev, second.Aim())
	require.True(t, second.SetAim(at(7, 4)))
	assert.Equal(t, AffYes, second.IsAffected(at(7, 5)))
	assert.Equal(t, AffMaybe, second.IsAffected(at(9, 7)))
	assert.Equal(t, AffMaybe, second.IsAffected(at(8, 6)))
	assert.Equal(t, AffMaybe, second.IsAffected(at(10, 4)))
	assert.Equal(t, AffNo, second.IsAffected(at(6, 6)))
	assert.Equal(t, AffNo, second.IsAffected(at(7, 7)))
	assert.Equal(t, 3, second.ArcLength(1))
}

func TestThunderboltPreviousAimOnAgent(t *testing.T) {
	w := openWorld(15, 15)
	player := placePlayer(t, w, at(7, 7))
	prev := player.Pos()
	tg := NewThunderboltTargeter(player, w, 3, &prev)
	assert.Equal(t, player.Pos(), tg.Aim())

	done := make(chan bool, 1)
	go func() {
		done <- tg.SetAim(at(7, 4))
	}()
	select {
	case ok := <-done:
		require.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("SetAim did not return")
	}
	assert.Equal(t, []geom.Int2{at(7, 4), at(7, 5), at(7, 6)}, cellsWith(tg, w, AffYes))
	assert.Empty(t, cellsWith(tg, w, AffMaybe))
}
