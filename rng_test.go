// Copyright (C) 2025 Cohera Authors.

package seqgen

import "testing"

var sink uint64

func BenchmarkDraw(b *testing.B) {
	gen := New(1)

	b.SetBytes(8)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v, _ := gen.Draw(0, modulus)
		sink += uint64(v)
	}
}

func BenchmarkDrawSmallRange(b *testing.B) {
	gen := New(1)

	b.SetBytes(8)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v, _ := gen.Draw(1, 10)
		sink += uint64(v)
	}
}

func BenchmarkSourceUint64(b *testing.B) {
	src := NewSource(1)

	b.SetBytes(8)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sink += src.Uint64()
	}
}

func BenchmarkLockedDraw(b *testing.B) {
	gen := NewLocked(1)

	b.SetBytes(8)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v, _ := gen.Draw(0, modulus)
		sink += uint64(v)
	}
}
