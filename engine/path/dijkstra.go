package path

import (
	"math"
)

/*
function Dijkstra(Graph, source):
2      dist[source] ← 0                           // Initialization
3
4      create vertex priority queue Q
5
6      for each vertex v in Graph.Vertices:
7          if v ≠ source
8              dist[v] ← INFINITY                 // Unknown distance from source to v
9              prev[v] ← UNDEFINED                // Predecessor of v
10
11         Q.add_with_priority(v, dist[v])
12
13
14     while Q is not empty:                      // The main loop
15         u ← Q.extract_min()                    // Remove and return best vertex
16         for each neighbor v of u:              // Go through all v neighbors of u
17             alt ← dist[u] + Graph.Edges(u, v)
18             if alt < dist[v]:
19                 dist[v] ← alt
20                 prev[v] ← u
21                 Q.decrease_priority(v, alt)
22
23     return dist, prev
*/

type DijkstraSource[T any] interface {
	GetNeighbors(node T) []T
	GetCost(currentNode T, neighbor T) int
}

// Dijkstra explores from source until every reachable node costs more than maxCost.
// Nodes beyond maxCost are neither recorded nor expanded.
func Dijkstra[T comparable](source T, maxCost int, dataSource DijkstraSource[T]) (dist map[T]int, prev map[T]T) {
	dist = make(map[T]int)
	prev = make(map[T]T)
	queued := make(map[T]PathNode[T])
	dist[source] = 0
	getDist := func(n T) int {
		if d, ok := dist[n]; ok {
			return d
		}
		return math.MaxInt
	}
	sourceNode := NewNode(source)
	queued[source] = sourceNode
	Q := NewPriorityQueue([]PathNode[T]{sourceNode})
	for !Q.IsEmpty() {
		currentNode := Q.PopNode()
		current := currentNode.GetValue()
		for _, neighbor := range dataSource.GetNeighbors(current) {
			cost := dataSource.GetCost(current, neighbor)
			if cost < 0 {
				continue
			}
			neighborDist := getDist(current) + cost
			if neighborDist > maxCost || neighborDist >= getDist(neighbor) {
				continue
			}
			dist[neighbor] = neighborDist
			prev[neighbor] = current
			if existingNode, ok := queued[neighbor]; ok && existingNode.GetIndex() >= 0 {
				Q.update(existingNode, neighborDist)
				continue
			}
			neighborNode := NewNode(neighbor)
			neighborNode.SetPriority(neighborDist)
			queued[neighbor] = neighborNode
			Q.PushNode(neighborNode)
		}
	}
	return
}

// PathTo walks prev back from target to the source. The source itself is not part of the result.
func PathTo[T comparable](prev map[T]T, source, target T) []T {
	var reversed []T
	current := target
	for current != source {
		reversed = append(reversed, current)
		p, ok := prev[current]
		if !ok {
			return nil
		}
		current = p
	}
	result := make([]T, len(reversed))
	for i, n := range reversed {
		result[len(reversed)-1-i] = n
	}
	return result
}
