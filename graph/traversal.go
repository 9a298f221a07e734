// Package graph: breadth-first and depth-first traversal.
//
// Both traversals sort neighbor candidates ascending before expanding
// them, so the visit order depends only on the graph's shape, not on
// edge insertion order. Given that shared policy, BFS and DFS produce
// the same relative ordering among siblings.
package graph

import (
	"slices"

	"github.com/lvlup/dsakit/queue"
)

// BFS returns the vertices reachable from start in breadth-first order,
// visiting each exactly once. An absent start vertex yields an empty
// slice — never an error.
// Complexity: O(V + E) plus O(d log d) neighbor sorting per vertex.
func (g *Graph) BFS(start int64) []int64 {
	if !g.HasVertex(start) {
		return []int64{}
	}

	order := make([]int64, 0, g.vertexCount)
	visited := make(map[int64]bool, g.vertexCount)

	frontier := queue.New[int64]()
	frontier.Enqueue(start)
	visited[start] = true

	for !frontier.IsEmpty() {
		cur, _ := frontier.Dequeue()
		order = append(order, cur)

		for _, nbr := range g.sortedNeighbors(cur) {
			if !visited[nbr] {
				visited[nbr] = true
				frontier.Enqueue(nbr)
			}
		}
	}

	return order
}

// DFS returns the vertices reachable from start in depth-first
// (pre-order) sequence, visiting each exactly once. An absent start
// vertex yields an empty slice — never an error.
// Complexity: O(V + E) plus O(d log d) neighbor sorting per vertex.
func (g *Graph) DFS(start int64) []int64 {
	if !g.HasVertex(start) {
		return []int64{}
	}

	order := make([]int64, 0, g.vertexCount)
	visited := make(map[int64]bool, g.vertexCount)
	g.dfsVisit(start, visited, &order)

	return order
}

// dfsVisit records the vertex and recurses into its unvisited neighbors
// in ascending order.
func (g *Graph) dfsVisit(id int64, visited map[int64]bool, order *[]int64) {
	visited[id] = true
	*order = append(*order, id)

	for _, nbr := range g.sortedNeighbors(id) {
		if !visited[nbr] {
			g.dfsVisit(nbr, visited, order)
		}
	}
}

// sortedNeighbors returns the adjacency list copied and sorted ascending.
func (g *Graph) sortedNeighbors(id int64) []int64 {
	nbrs := g.Neighbors(id)
	slices.Sort(nbrs)

	return nbrs
}
