package disjointset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spanning/disjointset"
)

// BenchmarkUnionFind measures a mixed workload of unions and finds over 10k elements.
func BenchmarkUnionFind(b *testing.B) {
	const n = 10_000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, 4*n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := disjointset.NewWithCapacity[int](n)
		for v := 0; v < n; v++ {
			s.MakeSet(v)
		}
		for _, p := range pairs {
			_, _ = s.Union(p[0], p[1])
			_, _ = s.Find(p[1])
		}
	}
}
