package stack_test

import (
	"fmt"

	"github.com/lvlup/dsakit/stack"
)

// ExampleStack demonstrates LIFO order and 1-based search.
func ExampleStack() {
	s, _ := stack.New[string]()
	s.Push("first")
	s.Push("second")
	s.Push("third")

	fmt.Println(s)
	fmt.Println("search(first):", s.Search("first"))

	top, _ := s.Pop()
	fmt.Println("popped:", top)
	// Output:
	// top -> [third, second, first]
	// search(first): 3
	// popped: third
}
