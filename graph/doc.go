// Package graph provides a general-purpose adjacency-list graph over
// integer vertex identifiers, with deterministic BFS and DFS traversal.
//
// What
//
//   - Directed or undirected by construction (WithDirected), with a
//     per-edge directedness override on AddEdgeDirected.
//   - Adjacency lists preserve neighbor insertion order; vertex and edge
//     counts are maintained as running counters, never recomputed.
//   - BFS (FIFO frontier) and DFS (recursive) visit each reachable vertex
//     exactly once and sort neighbor candidates ascending before
//     expansion, so the visit order is reproducible regardless of
//     insertion order.
//
// Why
//
//   - Model relationships (networks, links, friendships) with O(1)
//     average vertex/edge operations and O(V+E) traversal.
//
// Semantics
//
//   - AddEdge auto-creates missing endpoints.
//   - An undirected edge between distinct vertices writes two adjacency
//     entries (u→v and v→u); a self-loop writes exactly one, even when
//     undirected, to avoid double-counting.
//   - Duplicate detection checks the forward adjacency list only: adding
//     an edge whose u→v entry already exists is a no-op returning false
//     and never bumps the edge counter.
//   - Absent-vertex queries are not errors: Neighbors/BFS/DFS return an
//     empty slice, Degree returns NotFound.
//
// Complexity (V = vertices, E = edges, d = degree)
//
//   - AddVertex/HasVertex: O(1); AddEdge/HasEdge/RemoveEdge: O(d)
//   - RemoveVertex: O(V + E) — every adjacency list is scanned
//   - BFS/DFS: O(V + E) plus O(d log d) per vertex for neighbor sorting
//
// Usage
//
//	g := graph.New() // undirected by default
//	g.AddEdge(1, 2)
//	g.AddEdge(1, 3)
//	g.HasEdge(2, 1)   // true — undirected symmetry
//	order := g.BFS(1) // [1 2 3]
//
//	dg := graph.New(graph.WithDirected(true))
//	dg.AddEdge(1, 2)
//	dg.HasEdge(2, 1) // false
//
// Absence is an expected outcome throughout, so this package reports it
// with boolean and sentinel returns instead of errors.
package graph
