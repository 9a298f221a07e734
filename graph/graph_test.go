package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlup/dsakit/graph"
)

// TestAddVertex_Idempotent: a second AddVertex with the same id returns
// false and leaves the vertex count unchanged.
func TestAddVertex_Idempotent(t *testing.T) {
	g := graph.New()

	assert.True(t, g.AddVertex(1))
	assert.False(t, g.AddVertex(1))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(1))
	assert.False(t, g.HasVertex(2))
}

// TestAddEdge_UndirectedSymmetry: an undirected edge is visible from
// both endpoints but counts once.
func TestAddEdge_UndirectedSymmetry(t *testing.T) {
	g := graph.New()

	assert.True(t, g.AddEdge(1, 2))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1), "undirected edge must be symmetric")
	assert.Equal(t, 2, g.VertexCount(), "endpoints auto-created")
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_DirectedAsymmetry: a directed edge is one-way until the
// reverse is added explicitly.
func TestAddEdge_DirectedAsymmetry(t *testing.T) {
	g := graph.New(graph.WithDirected(true))

	assert.True(t, g.AddEdge(1, 2))
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))

	assert.True(t, g.AddEdge(2, 1))
	assert.True(t, g.HasEdge(2, 1))
	assert.Equal(t, 2, g.EdgeCount())
}

// TestAddEdge_Duplicate: re-adding an existing forward entry is a no-op
// and must not bump the edge counter.
func TestAddEdge_Duplicate(t *testing.T) {
	g := graph.New()

	require.True(t, g.AddEdge(1, 2))
	assert.False(t, g.AddEdge(1, 2))
	assert.Equal(t, 1, g.EdgeCount())

	// undirected storage makes the reverse call a duplicate too
	assert.False(t, g.AddEdge(2, 1))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_SelfLoop: a self-loop stores exactly one adjacency entry
// even when undirected.
func TestAddEdge_SelfLoop(t *testing.T) {
	g := graph.New()

	assert.True(t, g.AddEdge(5, 5))
	assert.Equal(t, []int64{5}, g.Neighbors(5), "one entry, not two")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.VertexCount())
}

// TestPerEdgeOverride: a directed edge inside a default-undirected graph.
func TestPerEdgeOverride(t *testing.T) {
	g := graph.New()

	assert.True(t, g.AddEdgeDirected(1, 2, true))
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1), "per-edge override must win over the default")
}

// TestRemoveEdge covers both directions and the counter bookkeeping.
func TestRemoveEdge(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	require.Equal(t, 2, g.EdgeCount())

	assert.True(t, g.RemoveEdge(1, 2))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1), "mirror entry must be removed")
	assert.Equal(t, 1, g.EdgeCount())

	// removing again is a no-op
	assert.False(t, g.RemoveEdge(1, 2))
	assert.Equal(t, 1, g.EdgeCount())

	// absent endpoints
	assert.False(t, g.RemoveEdge(1, 42))
}

// TestRemoveVertex removes the vertex and every incident edge.
func TestRemoveVertex(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)
	g.AddEdge(2, 2) // self-loop
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, 3, g.VertexCount())

	assert.True(t, g.RemoveVertex(2))
	assert.False(t, g.HasVertex(2))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount(), "only 3—1 survives")
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(3, 2))
	assert.True(t, g.HasEdge(3, 1))

	assert.False(t, g.RemoveVertex(2), "second removal is a no-op")
}

// TestCounters_MatchEnumeration: after a mixed mutation sequence the
// running counters agree with independent enumeration.
func TestCounters_MatchEnumeration(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	g.AddEdge(1, 2) // duplicate, no-op
	g.RemoveEdge(2, 4)
	g.RemoveVertex(5)
	g.AddVertex(9)

	assert.Equal(t, len(g.Vertices()), g.VertexCount())

	// each undirected edge contributes two adjacency entries
	entries := 0
	for _, id := range g.Vertices() {
		entries += g.Degree(id)
	}
	assert.Equal(t, g.EdgeCount()*2, entries)
}

// TestNeighborsAndDegree covers insertion order and absent vertices.
func TestNeighborsAndDegree(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	g.AddEdge(1, 3)
	g.AddEdge(1, 2)

	assert.Equal(t, []int64{3, 2}, g.Neighbors(1), "insertion order preserved")
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 0, g.Degree(2))

	assert.Empty(t, g.Neighbors(42), "absent vertex yields empty slice")
	assert.Equal(t, graph.NotFound, g.Degree(42))
}

// TestVertices_Clear_IsEmpty covers sorted enumeration and reset.
func TestVertices_Clear_IsEmpty(t *testing.T) {
	g := graph.New()
	assert.True(t, g.IsEmpty())

	g.AddVertex(3)
	g.AddVertex(1)
	g.AddVertex(2)
	assert.Equal(t, []int64{1, 2, 3}, g.Vertices())

	g.Clear()
	assert.True(t, g.IsEmpty())
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Vertices())
}

// TestRender covers the summary and visual formats.
func TestRender(t *testing.T) {
	g := graph.New()
	assert.Equal(t, "Empty Graph", g.VisualString())

	g.AddEdge(1, 2)
	g.AddVertex(3)
	assert.Equal(t, "Graph{vertices=3, edges=1, directed=false}", g.String())
	assert.Equal(t, "Graph (Undirected):\n1 --> {2}\n2 --> {1}\n3 --> {}\n", g.VisualString())
}
