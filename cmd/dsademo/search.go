package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvlup/dsakit/search"
)

// newSearchCmd runs the binary-search family over small sorted fixtures.
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Search: binary search, bounds, insertion point, rotated arrays",
		RunE: func(*cobra.Command, []string) error {
			fmt.Println("=== Search Demo ===")

			odds := []int{1, 3, 5, 7, 9, 11, 13}
			fmt.Println("\nsorted:", odds)

			idx, err := search.BinarySearch(odds, 7)
			if err != nil {
				return err
			}
			log.Debugf("BinarySearch(7) -> %d", idx)
			fmt.Println("BinarySearch(7):", idx)

			idx, err = search.BinarySearchRecursive(odds, 11)
			if err != nil {
				return err
			}
			fmt.Println("BinarySearchRecursive(11):", idx)

			idx, err = search.BinarySearch(odds, 8)
			if err != nil {
				return err
			}
			fmt.Println("BinarySearch(8):", idx, "(absent)")

			idx, err = search.FindInsertionPoint(odds, 8)
			if err != nil {
				return err
			}
			fmt.Println("FindInsertionPoint(8):", idx)

			dups := []int{1, 2, 2, 2, 3, 5, 5, 5, 5, 5, 5, 8}
			fmt.Println("\nwith duplicates:", dups)

			first, err := search.FindFirst(dups, 5)
			if err != nil {
				return err
			}
			last, err := search.FindLast(dups, 5)
			if err != nil {
				return err
			}
			fmt.Printf("FindFirst(5)=%d FindLast(5)=%d (run of %d)\n", first, last, last-first+1)

			rotated := []int{7, 8, 9, 1, 2, 3, 4, 5, 6}
			fmt.Println("\nrotated:", rotated)
			idx, err = search.SearchRotated(rotated, 5)
			if err != nil {
				return err
			}
			fmt.Println("SearchRotated(5):", idx)

			sorted, err := search.IsSorted(rotated)
			if err != nil {
				return err
			}
			fmt.Println("IsSorted(rotated):", sorted)

			idx, err = search.LinearSearch(rotated, 9)
			if err != nil {
				return err
			}
			fmt.Println("LinearSearch(9):", idx)

			return nil
		},
	}
}
