// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/skiptrie/skiptrie"
	"github.com/skiptrie/skiptrie/internal/randvar"
	"github.com/skiptrie/skiptrie/internal/rate"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "run the concurrent insert/delete benchmark",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		runBench(0)
	},
}

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "run the concurrent lookup benchmark against a preloaded tree",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		runBench(100)
	},
}

var mixedCmd = &cobra.Command{
	Use:   "mixed",
	Short: "run a mixed lookup/insert/delete benchmark",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		runBench(readPercent)
	},
}

func newKeyDist() (randvar.Static, error) {
	switch keyDist {
	case "uniform":
		return randvar.NewUniform(nil, 1, keySpace), nil
	case "zipf":
		return randvar.NewZipf(nil, 1, keySpace, 0.99)
	default:
		return nil, errors.Errorf("unknown key distribution %q", keyDist)
	}
}

func newRateLimiter() *rate.Limiter {
	if maxOpsPerSec <= 0 {
		return nil
	}
	return rate.NewLimiter(maxOpsPerSec, maxOpsPerSec)
}

// runBench drives a workload in which readPct percent of the operations are
// lookups and the remainder are split at random, half and half, between
// inserts and deletes. Keys are
// drawn from the configured distribution and encoded with the
// order-preserving integer codec.
func runBench(readPct int) {
	dist, err := newKeyDist()
	if err != nil {
		log.Fatal(err)
	}
	limiter := newRateLimiter()

	tree := skiptrie.New[uint64](nil)
	defer tree.Close()

	if readPct > 0 {
		var buf [8]byte
		for i := uint64(0); i < initialKeys; i++ {
			key := skiptrie.AppendUint64(buf[:0], dist.Uint64())
			tree.Set(key, i)
		}
	}

	var reads, writes *namedHistogram
	runTest(test{
		init: func(reg *histogramRegistry) {
			if readPct > 0 {
				reads = reg.Register("read")
			}
			if readPct < 100 {
				writes = reg.Register("write")
			}
		},
		worker: func(i int, done <-chan struct{}) {
			rng := rand.New(rand.NewSource(uint64(i)))
			var buf [8]byte
			for {
				select {
				case <-done:
					return
				default:
				}
				if limiter != nil {
					limiter.Wait(1)
				}

				key := skiptrie.AppendUint64(buf[:0], dist.Uint64())
				start := time.Now()
				if rng.Intn(100) < readPct {
					tree.Get(key)
					reads.Record(time.Since(start))
				} else if rng.Intn(2) == 0 {
					tree.Set(key, uint64(i))
					writes.Record(time.Since(start))
				} else {
					tree.Delete(key)
					writes.Record(time.Since(start))
				}
			}
		},
		done: func(elapsed time.Duration, reg *histogramRegistry) {
			m := tree.Metrics()
			fmt.Printf("\n%s", m)
		},
	})
}
