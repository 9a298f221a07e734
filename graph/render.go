// Package graph: human-readable renderings.
//
// Both renderings sort vertices and neighbors ascending for stable
// output. They are presentation only and carry no round-trip guarantee.
package graph

import (
	"fmt"
	"strings"
)

// String renders a one-line summary:
// "Graph{vertices=3, edges=2, directed=false}".
func (g *Graph) String() string {
	return fmt.Sprintf("Graph{vertices=%d, edges=%d, directed=%t}",
		g.vertexCount, g.edgeCount, g.directed)
}

// VisualString renders one line per vertex:
//
//	Graph (Undirected):
//	1 --> {2, 3}
//	2 --> {1}
//	3 --> {1}
//
// Vertices without neighbors render an empty set "{}".
func (g *Graph) VisualString() string {
	if g.IsEmpty() {
		return "Empty Graph"
	}

	kind := "Undirected"
	if g.directed {
		kind = "Directed"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph (%s):\n", kind)
	for _, id := range g.Vertices() {
		fmt.Fprintf(&sb, "%d --> {", id)
		for i, nbr := range g.sortedNeighbors(id) {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", nbr)
		}
		sb.WriteString("}\n")
	}

	return sb.String()
}
