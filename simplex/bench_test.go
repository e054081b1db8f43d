package simplex_test

import (
	"testing"

	"github.com/katalvlaran/lvlp/problem"
	"github.com/katalvlaran/lvlp/simplex"
)

var sinkTotal float64

func BenchmarkSolve_Default(b *testing.B) {
	data := problem.Default()
	for _, rule := range []simplex.PivotRule{simplex.Dantzig, simplex.Bland} {
		b.Run(rule.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s, err := simplex.New(defaultResources, defaultPrices, data, simplex.WithPivotRule(rule))
				if err != nil {
					b.Fatal(err)
				}
				if err = s.Solve(); err != nil {
					b.Fatal(err)
				}
				sinkTotal = s.TotalValue()
			}
		})
	}
}
