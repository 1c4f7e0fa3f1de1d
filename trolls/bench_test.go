package trolls_test

import (
	"testing"

	"github.com/katalvlaran/glimmer/trolls"
)

// BenchmarkChainAdvance measures steady-state stepping of a long chain.
func BenchmarkChainAdvance(b *testing.B) {
	sys, err := trolls.Build(trolls.Chain, 64)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sys.Advance()
	}
}

// BenchmarkFreeAdvance measures the unrestricted Gray-code generator.
func BenchmarkFreeAdvance(b *testing.B) {
	sys, err := trolls.Build(trolls.Free, 24)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sys.Advance()
	}
}

// BenchmarkBuildFence measures construction cost, snapshot included.
func BenchmarkBuildFence(b *testing.B) {
	seed := trolls.FenceSeed(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := trolls.Build(trolls.Fence, 256, trolls.WithInitial(seed)); err != nil {
			b.Fatal(err)
		}
	}
}
