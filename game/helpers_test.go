package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
)

func asciiWorld(t *testing.T, ascii string) *MapWorld {
	t.Helper()
	m, err := grid.ParseASCII(ascii)
	require.NoError(t, err)
	return NewMapWorld(m)
}

func openWorld(width, height int32) *MapWorld {
	return NewMapWorld(grid.NewMap(width, height))
}

func placePlayer(t *testing.T, w *MapWorld, pos geom.Int2) *Unit {
	t.Helper()
	u := NewPlayer(1, "Player")
	require.True(t, w.PlaceUnit(u, pos))
	return u
}

var nextMonsterID uint64 = 100

func placeMonster(t *testing.T, w *MapWorld, pos geom.Int2, attitude Attitude, traits Traits) *Unit {
	t.Helper()
	nextMonsterID++
	u := NewMonster(nextMonsterID, "goblin", attitude, traits)
	require.True(t, w.PlaceUnit(u, pos))
	return u
}

func at(x, y int32) geom.Int2 {
	return geom.Int2{X: x, Y: y}
}

// affectedMap snapshots IsAffected for every cell of the map.
func affectedMap(tg Targeter, w *MapWorld) map[geom.Int2]AffType {
	result := make(map[geom.Int2]AffType)
	for y := int32(0); y < w.Height(); y++ {
		for x := int32(0); x < w.Width(); x++ {
			result[at(x, y)] = tg.IsAffected(at(x, y))
		}
	}
	return result
}

// cellsWith lists the cells with the given grade, row by row.
func cellsWith(tg Targeter, w *MapWorld, aff AffType) []geom.Int2 {
	var result []geom.Int2
	for y := int32(0); y < w.Height(); y++ {
		for x := int32(0); x < w.Width(); x++ {
			if tg.IsAffected(at(x, y)) == aff {
				result = append(result, at(x, y))
			}
		}
	}
	return result
}
