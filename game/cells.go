package game

import (
	"sort"

	"github.com/memmaker/targeter/engine/geom"
)

// sortCells orders cells row by row.
func sortCells(cells []geom.Int2) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}
