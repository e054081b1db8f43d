// Package matrix_test provides benchmarks for the row operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlp/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{32, 128, 512}

// sinkErr defeats dead-code elimination.
var sinkErr error

// mustDenseRand builds an n×n Dense with entries in [1, 2) from a fixed seed,
// so every pivot is well away from zero.
func mustDenseRand(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1 + rng.Float64()
		}
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkPivot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			base := mustDenseRand(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				m := base.Clone()
				b.StartTimer()
				sinkErr = m.Pivot(i%n, i%n)
			}
		})
	}
}

func BenchmarkAddScaledRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustDenseRand(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = m.AddScaledRow(i%n, (i+1)%n, 1e-9)
			}
		})
	}
}
