package stack_test

import (
	"testing"

	"github.com/lvlup/dsakit/stack"
)

// BenchmarkPushPop measures a full LIFO cycle including resizes.
func BenchmarkPushPop(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, _ := stack.New[int]()
		for j := 0; j < 1024; j++ {
			s.Push(j)
		}
		for !s.IsEmpty() {
			_, _ = s.Pop()
		}
	}
}

// BenchmarkSearch measures a scan from the top of a deep stack.
func BenchmarkSearch(b *testing.B) {
	const n = 4096
	s, _ := stack.New[int]()
	for j := 0; j < n; j++ {
		s.Push(j)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Search(0) // bottom element, worst case
	}
}
