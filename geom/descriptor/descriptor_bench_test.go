package descriptor

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-figures/internal/testutil"
)

func BenchmarkCompute(b *testing.B) {
	pts := testutil.DeterministicOutline(1, 32, 10)
	for _, n := range []int{64, 256, 1024} {
		b.Run(fmt.Sprintf("samples=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Compute(pts, WithSamples(n)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
