// Package graph: adjacency-list storage and mutation primitives.
package graph

import "slices"

// NotFound is returned by Degree for an absent vertex.
const NotFound = -1

// Option configures a Graph before creation.
type Option func(*Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an in-memory adjacency-list graph over int64 vertex IDs.
//
// Each adjacency list keeps its neighbors in insertion order. The vertex
// and edge counters are updated incrementally on every mutation.
// A Graph instance is owned by a single goroutine; it performs no
// internal locking.
type Graph struct {
	directed    bool
	adjacency   map[int64][]int64
	vertexCount int
	edgeCount   int
}

// New creates an empty Graph with the given options.
// By default the Graph is undirected.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{adjacency: make(map[int64][]int64)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the graph's default edge directedness.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of logical edges (an undirected edge
// counts once even though it stores two adjacency entries).
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// IsEmpty reports whether the graph has no vertices.
// Complexity: O(1).
func (g *Graph) IsEmpty() bool { return g.vertexCount == 0 }

// AddVertex inserts the vertex if absent.
// Returns false (no-op) when the vertex already exists — idempotent.
// Complexity: O(1).
func (g *Graph) AddVertex(id int64) bool {
	if _, exists := g.adjacency[id]; exists {
		return false
	}
	g.adjacency[id] = nil
	g.vertexCount++

	return true
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	_, exists := g.adjacency[id]
	return exists
}

// AddEdge inserts an edge u→v using the graph's default directedness.
// See AddEdgeDirected for the full contract.
func (g *Graph) AddEdge(u, v int64) bool {
	return g.AddEdgeDirected(u, v, g.directed)
}

// AddEdgeDirected inserts an edge u→v with an explicit per-edge
// directedness, auto-creating missing endpoints.
//
// Returns false without touching the edge counter when the forward
// adjacency entry u→v already exists. An undirected edge between
// distinct vertices also writes the mirror entry v→u; a self-loop
// writes a single entry regardless of directedness.
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph) AddEdgeDirected(u, v int64, directed bool) bool {
	g.AddVertex(u)
	g.AddVertex(v)

	if slices.Contains(g.adjacency[u], v) {
		return false
	}
	g.adjacency[u] = append(g.adjacency[u], v)
	if !directed && u != v {
		g.adjacency[v] = append(g.adjacency[v], u)
	}
	g.edgeCount++

	return true
}

// RemoveEdge deletes the edge u→v. For an undirected graph the mirror
// entry v→u is deleted as well. Reports whether the forward entry was
// actually removed; only then is the edge counter decremented.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int64) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}

	removed := g.removeArc(u, v)
	if removed {
		g.edgeCount--
	}
	if !g.directed && u != v {
		g.removeArc(v, u)
	}

	return removed
}

// RemoveVertex deletes the vertex and every edge incident to it,
// scanning all adjacency lists. Reports whether the vertex existed.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id int64) bool {
	out, exists := g.adjacency[id]
	if !exists {
		return false
	}

	// Count the edges this vertex owns outright: all outgoing arcs in a
	// directed graph, only self-loops in an undirected one (its other
	// edges are counted below via their mirror entries).
	removed := 0
	if g.directed {
		removed = len(out)
	} else {
		for _, w := range out {
			if w == id {
				removed++
			}
		}
	}

	// Drop every arc pointing at the vertex from the remaining lists.
	for w, nbrs := range g.adjacency {
		if w == id {
			continue
		}
		kept := nbrs[:0]
		for _, x := range nbrs {
			if x == id {
				removed++
			} else {
				kept = append(kept, x)
			}
		}
		g.adjacency[w] = kept
	}

	delete(g.adjacency, id)
	g.vertexCount--
	g.edgeCount -= removed
	if g.edgeCount < 0 {
		g.edgeCount = 0
	}

	return true
}

// HasEdge reports whether the forward adjacency entry u→v exists.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int64) bool {
	return slices.Contains(g.adjacency[u], v)
}

// Neighbors returns a copy of the vertex's adjacency list in insertion
// order. An absent vertex yields an empty slice — never an error.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int64) []int64 {
	nbrs := g.adjacency[id]
	out := make([]int64, len(nbrs))
	copy(out, nbrs)

	return out
}

// Degree returns the out-degree of the vertex, or NotFound if absent.
// Complexity: O(1).
func (g *Graph) Degree(id int64) int {
	nbrs, exists := g.adjacency[id]
	if !exists {
		return NotFound
	}

	return len(nbrs)
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	out := make([]int64, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Clear removes all vertices and edges.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.adjacency = make(map[int64][]int64)
	g.vertexCount = 0
	g.edgeCount = 0
}

// removeArc deletes the first occurrence of v in u's adjacency list.
func (g *Graph) removeArc(u, v int64) bool {
	nbrs := g.adjacency[u]
	i := slices.Index(nbrs, v)
	if i < 0 {
		return false
	}
	g.adjacency[u] = slices.Delete(nbrs, i, i+1)

	return true
}
