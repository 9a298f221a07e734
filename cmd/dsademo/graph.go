package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvlup/dsakit/graph"
)

// newGraphCmd demonstrates adjacency-list storage and traversal on both
// an undirected social network and a directed link graph.
func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Graph: directed/undirected edges, BFS and DFS traversal",
		RunE: func(*cobra.Command, []string) error {
			fmt.Println("=== Graph Demo ===")

			fmt.Println("\n--- Undirected Social Network ---")
			people := map[int64]string{1: "Alice", 2: "Bob", 3: "Charlie", 4: "Diana", 5: "Eve"}
			g := graph.New()
			for _, edge := range [][2]int64{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {3, 5}, {4, 5}} {
				g.AddEdge(edge[0], edge[1])
				log.Debugf("added friendship %s—%s", people[edge[0]], people[edge[1]])
				fmt.Printf("%s and %s are now friends\n", people[edge[0]], people[edge[1]])
			}

			fmt.Println()
			fmt.Print(g.VisualString())
			fmt.Println(g)

			for _, id := range g.Vertices() {
				fmt.Printf("%s has %d friends: %v\n", people[id], g.Degree(id), g.Neighbors(id))
			}

			fmt.Println("\nreachable from Alice (BFS):", g.BFS(1))
			fmt.Println("reachable from Alice (DFS):", g.DFS(1))

			fmt.Println("\n--- Directed Web Links ---")
			dg := graph.New(graph.WithDirected(true))
			for _, edge := range [][2]int64{{0, 1}, {0, 2}, {1, 3}, {2, 1}, {2, 4}, {3, 4}} {
				dg.AddEdge(edge[0], edge[1])
			}
			fmt.Print(dg.VisualString())
			fmt.Println("has edge 0->1:", dg.HasEdge(0, 1))
			fmt.Println("has edge 1->0:", dg.HasEdge(1, 0))
			fmt.Println("crawl from 0 (BFS):", dg.BFS(0))

			fmt.Println("\n--- Mutation ---")
			fmt.Println("remove edge 0->2:", dg.RemoveEdge(0, 2))
			fmt.Println("remove vertex 3:", dg.RemoveVertex(3))
			fmt.Println(dg)

			return nil
		},
	}
}
