package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvlup/dsakit/queue"
)

// newQueueCmd demonstrates FIFO behavior with a print-queue example.
func newQueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "Queue: FIFO enqueue/dequeue over a ring buffer",
		RunE: func(*cobra.Command, []string) error {
			fmt.Println("=== Queue Demo ===")

			q := queue.New[string]()

			fmt.Println("\n--- Submitting Jobs ---")
			for _, job := range []string{"report.pdf", "photo.png", "draft.txt"} {
				q.Enqueue(job)
				log.Debugf("enqueued %q: backlog=%d", job, q.Len())
				fmt.Printf("queued %-10s -> %v\n", job, q)
			}

			front, _ := q.PeekFront()
			back, _ := q.PeekBack()
			fmt.Println("\nnext to print:", front)
			fmt.Println("last submitted:", back)

			fmt.Println("\n--- Printing ---")
			for {
				job, ok := q.Poll()
				if !ok {
					break
				}
				fmt.Println("printed:", job)
			}

			if _, err := q.Dequeue(); err != nil {
				fmt.Println("dequeue on empty:", err)
			}

			return nil
		},
	}
}
