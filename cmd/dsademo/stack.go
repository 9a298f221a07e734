package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvlup/dsakit/stack"
)

// newStackCmd demonstrates LIFO behavior with a browser-history example.
func newStackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stack",
		Short: "Stack: LIFO push/pop/peek and 1-based search",
		RunE: func(*cobra.Command, []string) error {
			fmt.Println("=== Stack Demo ===")

			s, err := stack.New[string]()
			if err != nil {
				return err
			}

			fmt.Println("\n--- Visiting Pages ---")
			for _, page := range []string{"home", "search", "results", "article"} {
				s.Push(page)
				log.Debugf("pushed %q: depth=%d", page, s.Len())
				fmt.Printf("visited %-8s -> %v\n", page, s)
			}

			top, _ := s.Peek()
			fmt.Println("\ncurrent page (peek):", top)
			fmt.Println("distance of home from top:", s.Search("home"))

			fmt.Println("\n--- Going Back ---")
			for !s.IsEmpty() {
				page, popErr := s.Pop()
				if popErr != nil {
					return popErr
				}
				fmt.Println("back from:", page)
			}

			if _, err = s.Pop(); err != nil {
				fmt.Println("pop on empty:", err)
			}

			return nil
		},
	}
}
