package game

import (
	"fmt"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/memmaker/targeter/engine/grid"
	"github.com/memmaker/targeter/engine/path"
)

// ExplosionMapRadius bounds every explosion: offsets up to 9 in each direction.
const ExplosionMapRadius = 9

const explosionMapSize = 2*ExplosionMapRadius + 1

type explosionReach byte

const (
	unreached explosionReach = iota
	reachedMin
	reachedMax
)

// ExplosionMap records which offsets around a centre an explosion reaches with
// its minimum radius and which only with its maximum radius.
type ExplosionMap struct {
	center geom.Int2
	reach  [explosionMapSize][explosionMapSize]explosionReach
}

// explosionFlood is the graph the flood fill walks: king moves inside the window,
// only to cells in line of sight from the centre. Solid cells are never expanded.
type explosionFlood struct {
	world       World
	center      geom.Int2
	stopAtWalls bool
}

func (f explosionFlood) GetNeighbors(node geom.Int2) []geom.Int2 {
	if node != f.center && f.world.IsSolid(node) {
		return nil
	}
	result := make([]geom.Int2, 0, 8)
	for _, n := range node.Neighbors8() {
		if geom.Rdist(n, f.center) > ExplosionMapRadius || !f.world.Contains(n) {
			continue
		}
		if f.stopAtWalls && f.world.IsSolid(n) {
			continue
		}
		if !f.world.CanSeeCell(f.center, n, grid.LOSNoTrans) {
			continue
		}
		result = append(result, n)
	}
	return result
}

func (f explosionFlood) GetCost(geom.Int2, geom.Int2) int {
	return 1
}

func BuildExplosionMap(world World, center geom.Int2, minRadius, maxRadius int, stopAtWalls bool) *ExplosionMap {
	if minRadius < 0 || minRadius > maxRadius || maxRadius > ExplosionMapRadius {
		panic(fmt.Sprintf("invalid explosion radii %d..%d", minRadius, maxRadius))
	}
	e := &ExplosionMap{center: center}
	dist, _ := path.Dijkstra[geom.Int2](center, maxRadius, explosionFlood{world: world, center: center, stopAtWalls: stopAtWalls})
	for cell, d := range dist {
		x, y := e.index(cell)
		if d <= minRadius {
			e.reach[y][x] = reachedMin
		} else {
			e.reach[y][x] = reachedMax
		}
	}
	return e
}

func (e *ExplosionMap) Center() geom.Int2 {
	return e.center
}

func (e *ExplosionMap) index(p geom.Int2) (int, int) {
	offset := p.Sub(e.center)
	return int(offset.X) + ExplosionMapRadius, int(offset.Y) + ExplosionMapRadius
}

func (e *ExplosionMap) get(p geom.Int2) explosionReach {
	if e == nil || geom.Rdist(p, e.center) > ExplosionMapRadius {
		return unreached
	}
	x, y := e.index(p)
	return e.reach[y][x]
}

// InMin reports cells reached with the minimum radius.
func (e *ExplosionMap) InMin(p geom.Int2) bool {
	return e.get(p) == reachedMin
}

// InMax reports cells reached with the maximum radius, which includes the minimum.
func (e *ExplosionMap) InMax(p geom.Int2) bool {
	return e.get(p) != unreached
}

func (e *ExplosionMap) Aff(p geom.Int2) AffType {
	switch e.get(p) {
	case reachedMin:
		return AffYes
	case reachedMax:
		return AffMaybe
	}
	return AffNo
}

// Cells lists every reached cell in row-major order.
func (e *ExplosionMap) Cells() []geom.Int2 {
	var result []geom.Int2
	for y := 0; y < explosionMapSize; y++ {
		for x := 0; x < explosionMapSize; x++ {
			if e.reach[y][x] != unreached {
				result = append(result, geom.Int2{X: e.center.X + int32(x) - ExplosionMapRadius, Y: e.center.Y + int32(y) - ExplosionMapRadius})
			}
		}
	}
	return result
}
