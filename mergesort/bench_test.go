package mergesort_test

import (
	"math/rand"
	"testing"

	"github.com/lvlup/dsakit/mergesort"
)

// randomFixture returns n seeded random ints.
func randomFixture(n int) []int {
	r := rand.New(rand.NewSource(42))
	seq := make([]int, n)
	for i := range seq {
		seq[i] = r.Int()
	}

	return seq
}

// BenchmarkSort measures the recursive top-down variant.
func BenchmarkSort(b *testing.B) {
	base := randomFixture(1 << 14)
	work := make([]int, len(base))

	b.ReportAllocs()
	b.SetBytes(int64(len(base) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, base)
		_ = mergesort.Sort(work)
	}
}

// BenchmarkSortBottomUp measures the iterative variant on the same input.
func BenchmarkSortBottomUp(b *testing.B) {
	base := randomFixture(1 << 14)
	work := make([]int, len(base))

	b.ReportAllocs()
	b.SetBytes(int64(len(base) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, base)
		_ = mergesort.SortBottomUp(work)
	}
}
