package builder_test

import (
	"testing"

	"github.com/katalvlaran/topolab/builder"
)

func BenchmarkFullMesh100(b *testing.B) {
	ids := builder.NodeIDs("m", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = builder.NewFullMesh(ids)
	}
}

func BenchmarkPartialMesh1000(b *testing.B) {
	ids := builder.NodeIDs("p", 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = builder.NewPartialMesh(ids, builder.WithSeed(int64(i)))
	}
}

func BenchmarkSpineLeaf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = builder.NewSpineLeaf(8, 32)
	}
}
