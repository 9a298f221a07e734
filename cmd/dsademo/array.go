package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvlup/dsakit/dynarr"
)

// newArrayCmd demonstrates the growable array's resize mechanics.
func newArrayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "array",
		Short: "Growable array: append, insert, remove, and resize policy",
		RunE: func(*cobra.Command, []string) error {
			fmt.Println("=== Dynamic Array Demo ===")

			arr, err := dynarr.New[string]()
			if err != nil {
				return err
			}
			fmt.Printf("created empty array: %v (size %d, capacity %d)\n", arr, arr.Len(), arr.Cap())

			fmt.Println("\n--- Adding Elements ---")
			for _, fruit := range []string{"Apple", "Banana", "Cherry", "Date", "Elderberry"} {
				arr.Append(fruit)
				log.Debugf("appended %q: capacity now %d", fruit, arr.Cap())
				fmt.Printf("added %-10s -> %v (size %d, capacity %d)\n", fruit, arr, arr.Len(), arr.Cap())
			}

			fmt.Println("\n--- Accessing Elements ---")
			v, _ := arr.Get(2)
			fmt.Println("element at index 2:", v)
			fmt.Println("index of Banana:", arr.IndexOf("Banana"))
			fmt.Println("contains Cherry:", arr.Contains("Cherry"))

			fmt.Println("\n--- Inserting and Removing ---")
			if err = arr.InsertAt(2, "Coconut"); err != nil {
				return err
			}
			fmt.Println("inserted Coconut at 2:", arr)

			removed, err := arr.RemoveAt(1)
			if err != nil {
				return err
			}
			fmt.Printf("removed index 1 (%s): %v\n", removed, arr)
			fmt.Println("removed Date:", arr.RemoveValue("Date"), arr)

			fmt.Println("\n--- Iteration ---")
			it := arr.Iterator()
			for it.Next() {
				fmt.Print(it.Value(), " ")
			}
			fmt.Println()

			return it.Err()
		},
	}
}
