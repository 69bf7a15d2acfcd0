package grid

import (
	"testing"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/stretchr/testify/assert"
)

func TestLineOfSight(t *testing.T) {
	m := MustParseASCII(`
		...........
		...#.......
		...%.......
		...........
	`)
	tests := []struct {
		name     string
		from, to geom.Int2
		mode     LOSMode
		want     bool
	}{
		{"open row", geom.Int2{X: 1, Y: 0}, geom.Int2{X: 5, Y: 0}, LOSDefault, true},
		{"rock blocks", geom.Int2{X: 1, Y: 1}, geom.Int2{X: 5, Y: 1}, LOSDefault, false},
		{"grate is transparent", geom.Int2{X: 1, Y: 2}, geom.Int2{X: 5, Y: 2}, LOSDefault, true},
		{"grate blocks without transparency", geom.Int2{X: 1, Y: 2}, geom.Int2{X: 5, Y: 2}, LOSNoTrans, false},
		{"same cell", geom.Int2{X: 2, Y: 2}, geom.Int2{X: 2, Y: 2}, LOSNoTrans, true},
		{"beyond radius", geom.Int2{X: 0, Y: 3}, geom.Int2{X: 8, Y: 3}, LOSDefault, false},
		{"outside map", geom.Int2{X: 0, Y: 3}, geom.Int2{X: -1, Y: 3}, LOSDefault, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.CanSeeCell(tt.from, tt.to, tt.mode))
			assert.Equal(t, tt.want, m.CanSeeCell(tt.to, tt.from, tt.mode))
		})
	}
}

func TestVisibleCells(t *testing.T) {
	m := MustParseASCII(`
		#####
		#...#
		#####
	`)
	cells := m.VisibleCells(geom.Int2{X: 2, Y: 1}, LOSDefault)
	assert.Len(t, cells, 15)
	assert.Contains(t, cells, geom.Int2{X: 0, Y: 0})
}
