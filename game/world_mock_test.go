package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
	"github.com/memmaker/targeter/game"
	mockgame "github.com/memmaker/targeter/game/mock"
)

func playerAt(x, y int32) *game.Unit {
	u := game.NewPlayer(1, "Player")
	u.SetPos(geom.Int2{X: x, Y: y})
	return u
}

func TestReachThroughGrate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	player := playerAt(1, 1)
	aim := geom.Int2{X: 3, Y: 1}
	world := mockgame.NewMockWorld(ctrl)
	world.EXPECT().CanSeeCell(player.Pos(), aim, grid.LOSDefault).Return(true).Times(2)
	world.EXPECT().CanSeeCell(player.Pos(), aim, grid.LOSNoTrans).Return(false).Times(2)

	tg := game.NewReachTargeter(player, world, 2)
	ok, reason := tg.ValidAim(aim)
	assert.False(t, ok)
	assert.Equal(t, "You can't get through.", reason)
	assert.Equal(t, game.AffNo, tg.IsAffected(aim))
}

func TestSmiteReasons(t *testing.T) {
	player := playerAt(1, 1)
	aim := geom.Int2{X: 3, Y: 1}

	t.Run("blocked but visible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		world := mockgame.NewMockWorld(ctrl)
		world.EXPECT().CanSeeCell(player.Pos(), aim, grid.LOSNoTrans).Return(false)
		world.EXPECT().CanSeeCell(player.Pos(), aim, grid.LOSDefault).Return(true)

		tg := game.NewSmiteTargeter(player, world, game.SmiteConfig{Range: 4})
		ok, reason := tg.ValidAim(aim)
		assert.False(t, ok)
		assert.Equal(t, "There's something in the way.", reason)
	})

	t.Run("not visible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		world := mockgame.NewMockWorld(ctrl)
		world.EXPECT().CanSeeCell(player.Pos(), aim, gomock.Any()).Return(false).Times(2)

		tg := game.NewSmiteTargeter(player, world, game.SmiteConfig{Range: 4})
		ok, reason := tg.ValidAim(aim)
		assert.False(t, ok)
		assert.Equal(t, "You cannot see that place.", reason)
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		world := mockgame.NewMockWorld(ctrl)
		world.EXPECT().CanSeeCell(player.Pos(), aim, grid.LOSNoTrans).Return(true)

		tg := game.NewSmiteTargeter(player, world, game.SmiteConfig{Range: 1})
		ok, reason := tg.ValidAim(aim)
		assert.False(t, ok)
		assert.Equal(t, "Out of range.", reason)
	})

	t.Run("wall", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		world := mockgame.NewMockWorld(ctrl)
		world.EXPECT().CanSeeCell(player.Pos(), aim, grid.LOSNoTrans).Return(true)
		world.EXPECT().IsSolid(aim).Return(true)
		world.EXPECT().FeatureAt(aim).Return(grid.RockWall)

		tg := game.NewSmiteTargeter(player, world, game.SmiteConfig{Range: 4})
		ok, reason := tg.ValidAim(aim)
		assert.False(t, ok)
		assert.Equal(t, "There is a rock wall there.", reason)
	})
}

func TestCloudRefusesSanctuary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	player := playerAt(1, 1)
	aim := geom.Int2{X: 3, Y: 2}
	world := mockgame.NewMockWorld(ctrl)
	world.EXPECT().Contains(aim).Return(true)
	world.EXPECT().CanSeeCell(player.Pos(), aim, grid.LOSNoTrans).Return(true)
	world.EXPECT().IsSolid(aim).Return(false)
	world.EXPECT().CloudAt(aim).Return(false)
	world.EXPECT().IsSanctuary(aim).Return(true)

	tg := game.NewCloudTargeter(player, world, 5, 1, 3)
	ok, reason := tg.ValidAim(aim)
	assert.False(t, ok)
	assert.Equal(t, "You can't place clouds in a sanctuary.", reason)
}

func TestViewOffMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	player := playerAt(0, 0)
	world := mockgame.NewMockWorld(ctrl)
	world.EXPECT().Contains(geom.Int2{X: -1, Y: 0}).Return(false)

	tg := game.NewViewTargeter(player, world)
	assert.False(t, tg.SetAim(geom.Int2{X: -1, Y: 0}))
	assert.Equal(t, player.Pos(), tg.Aim())
}

func TestCleaveAsksOccupancy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	player := playerAt(3, 3)
	east := geom.Int2{X: 4, Y: 3}
	north := geom.Int2{X: 3, Y: 2}
	west := geom.Int2{X: 2, Y: 3}
	orc := game.NewMonster(2, "orc", game.AttHostile, game.Traits{})
	orc.SetPos(east)
	troll := game.NewMonster(3, "troll", game.AttHostile, game.Traits{})
	troll.SetPos(north)
	dog := game.NewMonster(4, "dog", game.AttFriendly, game.Traits{})
	dog.SetPos(west)

	world := mockgame.NewMockWorld(ctrl)
	world.EXPECT().Contains(gomock.Any()).Return(true).AnyTimes()
	world.EXPECT().CanSeeCell(gomock.Any(), gomock.Any(), grid.LOSDefault).Return(true).AnyTimes()
	world.EXPECT().ActorAt(east).Return(orc).AnyTimes()
	world.EXPECT().ActorAt(north).Return(troll).AnyTimes()
	world.EXPECT().ActorAt(west).Return(dog).AnyTimes()
	world.EXPECT().ActorAt(gomock.Any()).Return(nil).AnyTimes()

	tg := game.NewCleaveTargeter(player, world, east)
	require.Equal(t, []geom.Int2{north, east}, tg.Targets())
	assert.Equal(t, game.AffYes, tg.IsAffected(north))
	assert.Equal(t, game.AffNo, tg.IsAffected(west))
}
