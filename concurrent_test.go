// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentDisjointWriters checks that no insert is lost when writers
// operate on disjoint key sets.
func TestConcurrentDisjointWriters(t *testing.T) {
	const writers = 8
	const keysPerWriter = 1000

	tr := New[int](nil)
	defer tr.Close()

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		g.Go(func() error {
			var buf []byte
			for i := 0; i < keysPerWriter; i++ {
				buf = fmt.Appendf(buf[:0], "writer-%d-key-%06d", w, i)
				if _, inserted := tr.Insert(buf, i); !inserted {
					return fmt.Errorf("lost insert of %s", buf)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, writers*keysPerWriter, tr.Len())
	for w := 0; w < writers; w++ {
		for i := 0; i < keysPerWriter; i++ {
			key := fmt.Sprintf("writer-%d-key-%06d", w, i)
			v, ok := tr.Get([]byte(key))
			require.True(t, ok, key)
			require.Equal(t, i, v)
		}
	}
	require.NoError(t, tr.validate())
}

// TestConcurrentReadWrite runs lock-free readers against churning writers.
// Run under -race, this doubles as the no-torn-reads check: the race
// detector reports any unsynchronized access. The values readers observe
// are not compared against what the writers stored.
func TestConcurrentReadWrite(t *testing.T) {
	const readers = 4
	const writers = 4
	const opsPerWriter = 5000

	tr := New[uint64](nil)
	defer tr.Close()

	var stop atomic.Bool
	var writerG, readerG errgroup.Group

	for w := 0; w < writers; w++ {
		writerG.Go(func() error {
			rng := rand.New(rand.NewPCG(uint64(w), 0))
			for i := 0; i < opsPerWriter; i++ {
				key := randKey(rng)
				switch rng.IntN(8) {
				case 0, 1:
					tr.Delete(key)
				case 2:
					tr.Compact()
				default:
					tr.Set(key, rng.Uint64())
				}
			}
			return nil
		})
	}
	for r := 0; r < readers; r++ {
		readerG.Go(func() error {
			rng := rand.New(rand.NewPCG(uint64(r), 1))
			for !stop.Load() {
				key := randKey(rng)
				tr.Get(key)
				tr.Contains(key)
				if rng.IntN(100) == 0 {
					n := 0
					tr.Ascend(func([]byte, uint64) bool {
						n++
						return n < 100
					})
				}
			}
			return nil
		})
	}

	require.NoError(t, writerG.Wait())
	stop.Store(true)
	require.NoError(t, readerG.Wait())
	require.NoError(t, tr.validate())
}

// TestReaderLiveness checks that a reader makes progress while a writer
// continuously inserts and erases the same key.
func TestReaderLiveness(t *testing.T) {
	tr := New[int](nil)
	defer tr.Close()

	key := []byte("contended-key")
	tr.Insert([]byte("contended"), 0)

	var stop atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; !stop.Load(); i++ {
			tr.Insert(key, i)
			tr.Delete(key)
		}
	}()

	// Every lookup terminates; it sees the key either present or absent.
	for i := 0; i < 100000; i++ {
		v, ok := tr.Get(key)
		if ok {
			require.GreaterOrEqual(t, v, 0)
		}
	}
	stop.Store(true)
	wg.Wait()
	require.NoError(t, tr.validate())
}

// TestConcurrentChurn has 16 goroutines churning the same shuffled key list
// with a find/insert/find/erase/find/insert cycle. Every key's final
// operation is an insert, so all keys are present at the end.
func TestConcurrentChurn(t *testing.T) {
	const goroutines = 16
	const numKeys = 200

	keys := make([][]byte, numKeys)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("churn/%03d", i))
	}

	tr := New[int](nil)
	defer tr.Close()

	var g errgroup.Group
	for w := 0; w < goroutines; w++ {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(uint64(w), 42))
			shuffled := make([][]byte, numKeys)
			copy(shuffled, keys)
			rng.Shuffle(numKeys, func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			for i, key := range shuffled {
				tr.Contains(key)
				tr.Insert(key, i)
				tr.Contains(key)
				tr.Delete(key)
				tr.Contains(key)
				tr.Insert(key, i+1)
				tr.Contains(key)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, numKeys, tr.Len())
	for _, key := range keys {
		require.True(t, tr.Contains(key), string(key))
	}
	require.NoError(t, tr.validate())
}
