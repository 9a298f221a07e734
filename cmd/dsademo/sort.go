package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvlup/dsakit/mergesort"
)

// newSortCmd shows top-down and bottom-up merge sort plus stability
// under a custom comparator.
func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort: top-down and bottom-up merge sort, stable ordering",
		RunE: func(*cobra.Command, []string) error {
			fmt.Println("=== Merge Sort Demo ===")

			nums := []int{5, 2, 9, 1, 5, 6}
			fmt.Println("\nbefore:", nums)
			if err := mergesort.Sort(nums); err != nil {
				return err
			}
			log.Debugf("top-down sorted %d elements", len(nums))
			fmt.Println("after: ", nums)

			words := []string{"pear", "fig", "apple", "kiwi", "fig", "banana"}
			fmt.Println("\nbefore:", words)
			if err := mergesort.SortBottomUp(words); err != nil {
				return err
			}
			fmt.Println("after: ", words)

			type task struct {
				name     string
				priority int
			}
			tasks := []task{
				{"deploy", 2}, {"review", 1}, {"triage", 2},
				{"standup", 1}, {"retro", 3}, {"pair", 2},
			}
			fmt.Println("\nstability: sort tasks by priority only")
			if err := mergesort.SortFunc(tasks, func(a, b task) bool { return a.priority < b.priority }); err != nil {
				return err
			}
			for _, t := range tasks {
				fmt.Printf("  p%d %s\n", t.priority, t.name)
			}
			fmt.Println("equal-priority tasks keep their original order")

			return nil
		},
	}
}
