package scheme_test

import (
	"testing"

	"github.com/dij0s/amr/mesh"
	"github.com/dij0s/amr/scheme"
)

// BenchmarkCenteredLaplacian_Apply measures one solve step over a 64x64
// uniform mesh.
func BenchmarkCenteredLaplacian_Apply(b *testing.B) {
	m, _, err := mesh.Uniform(64, func() float64 { return 5.0 }, 1, 1, nil)
	if err != nil {
		b.Fatalf("setup Uniform failed: %v", err)
	}
	s := scheme.NewCenteredLaplacian(0.01, 1.0/64, 1.0/64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Solve(s)
	}
}
