// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func benchTree(n int) *Tree[int] {
	tr := New[int](nil)
	var buf []byte
	for i := 0; i < n; i++ {
		buf = AppendUint64(buf[:0], rand.Uint64())
		tr.Set(buf, i)
	}
	return tr
}

func BenchmarkGet(b *testing.B) {
	for _, n := range []int{1000, 100000} {
		b.Run(fmt.Sprintf("keys=%d", n), func(b *testing.B) {
			tr := benchTree(n)
			defer tr.Close()
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				var buf []byte
				rng := rand.New(rand.NewPCG(rand.Uint64(), 0))
				for pb.Next() {
					buf = AppendUint64(buf[:0], rng.Uint64())
					tr.Get(buf)
				}
			})
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	tr := New[int](nil)
	defer tr.Close()
	var buf []byte
	rng := rand.New(rand.NewPCG(0, 0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = AppendUint64(buf[:0], rng.Uint64())
		tr.Set(buf, i)
	}
}

// BenchmarkReadWrite measures mixed workloads at varying read fractions.
func BenchmarkReadWrite(b *testing.B) {
	for _, readFrac := range []int{50, 95, 100} {
		b.Run(fmt.Sprintf("frac_%d", readFrac), func(b *testing.B) {
			tr := benchTree(100000)
			defer tr.Close()
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				var buf []byte
				rng := rand.New(rand.NewPCG(rand.Uint64(), 0))
				for pb.Next() {
					buf = AppendUint64(buf[:0], rng.Uint64())
					if rng.IntN(100) < readFrac {
						tr.Get(buf)
					} else {
						tr.Set(buf, 0)
					}
				}
			})
		})
	}
}
