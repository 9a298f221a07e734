package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvlup/dsakit/sllist"
)

// newListCmd demonstrates the singly linked list, including reversal.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Singly linked list: head/tail operations and in-place reversal",
		RunE: func(*cobra.Command, []string) error {
			fmt.Println("=== Singly Linked List Demo ===")

			l := sllist.New[int]()
			fmt.Println("created empty list:", l)

			fmt.Println("\n--- Building the Chain ---")
			l.PushFront(2)
			l.PushFront(1)
			l.PushBack(3)
			if err := l.InsertAt(3, 4); err != nil {
				return err
			}
			log.Debugf("after build: size=%d", l.Len())
			fmt.Printf("list: %v (size %d)\n", l, l.Len())

			fmt.Println("\n--- Access and Search ---")
			v, _ := l.Get(2)
			fmt.Println("element at index 2:", v)
			fmt.Println("index of 4:", l.IndexOf(4))
			front, _ := l.Front()
			back, _ := l.Back()
			fmt.Println("front:", front, "back:", back)

			fmt.Println("\n--- Reversal ---")
			l.Reverse()
			fmt.Println("reversed:", l)
			l.Reverse()
			fmt.Println("reversed again:", l)

			fmt.Println("\n--- Deletion ---")
			fmt.Println("delete value 2:", l.DeleteValue(2), l)
			popped, err := l.PopFront()
			if err != nil {
				return err
			}
			fmt.Printf("popped front (%d): %v\n", popped, l)

			return nil
		},
	}
}
