package sllist_test

import (
	"testing"

	"github.com/lvlup/dsakit/sllist"
)

// BenchmarkPushFront measures the O(1) head insertion path.
func BenchmarkPushFront(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := sllist.New[int]()
		for j := 0; j < 1024; j++ {
			l.PushFront(j)
		}
	}
}

// BenchmarkPushBack measures the O(N) tail walk per insertion.
func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := sllist.New[int]()
		for j := 0; j < 256; j++ {
			l.PushBack(j)
		}
	}
}

// BenchmarkReverse measures the in-place pointer rewiring walk.
func BenchmarkReverse(b *testing.B) {
	const n = 4096
	l := sllist.New[int]()
	for j := 0; j < n; j++ {
		l.PushFront(j)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Reverse()
	}
}
