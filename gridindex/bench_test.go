package gridindex_test

import (
	"testing"

	"github.com/hasbyte1/go-gridindex/gridindex"
)

func benchmarkCount(b *testing.B, extents []int, r gridindex.Restriction) {
	e, err := gridindex.New(extents, r)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Count()
	}
}

func BenchmarkCountNone(b *testing.B) {
	benchmarkCount(b, []int{10, 10, 10, 10}, gridindex.RestrictionNone)
}

func BenchmarkCountDiagonal(b *testing.B) {
	benchmarkCount(b, []int{10, 10, 10, 10}, gridindex.RestrictionDiagonal)
}

func BenchmarkCountLowerTriangular(b *testing.B) {
	benchmarkCount(b, []int{10, 10, 10, 10}, gridindex.RestrictionLowerTriangular)
}

func BenchmarkNext(b *testing.B) {
	e, _ := gridindex.New([]int{100, 100}, gridindex.RestrictionNone)
	it := e.Iter()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := it.Next(); !ok {
			it.Reset()
		}
	}
}
