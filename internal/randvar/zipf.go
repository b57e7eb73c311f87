// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Zipf implements the Zipfian random number generator from "Quickly
// Generating Billion-Record Synthetic Databases" by Gray, Sundaresan,
// Englert, Baclawski, and Weinberger, SIGMOD 1994.

package randvar

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// Zipf generates draws from a Zipf distribution over [min, max]: small
// values are drawn frequently, the tail rarely. Unlike rand.Zipf it accepts
// any theta >= 0 except 1.
type Zipf struct {
	min, max     uint64
	theta        float64
	alpha, zeta2 float64
	eta, zetaN   float64
	mu           struct {
		sync.Mutex
		rng *rand.Rand
	}
}

var _ Static = (*Zipf)(nil)

// NewZipf constructs a new Zipf generator over [min, max] with skew theta.
func NewZipf(rng *rand.Rand, min, max uint64, theta float64) (*Zipf, error) {
	if min > max {
		return nil, errors.Errorf("zipf: min %d > max %d", min, max)
	}
	if theta < 0.0 || theta == 1.0 {
		return nil, errors.Errorf("zipf: theta must be >= 0 and != 1")
	}

	z := &Zipf{min: min, max: max, theta: theta}
	z.zeta2 = zeta(2, theta)
	z.zetaN = zeta(max+1-min, theta)
	z.alpha = 1.0 / (1.0 - theta)
	z.eta = (1 - math.Pow(2.0/float64(max+1-min), 1.0-theta)) / (1.0 - z.zeta2/z.zetaN)
	z.mu.rng = ensureRand(rng)
	return z, nil
}

// zeta computes zeta(n, theta) = sum_{i=1..n} (1/i)^theta.
func zeta(n uint64, theta float64) float64 {
	var sum float64
	for i := uint64(1); i <= n; i++ {
		sum += 1.0 / math.Pow(float64(i), theta)
	}
	return sum
}

// Uint64 draws a value in [min, max] with Zipf-distributed probabilities.
func (z *Zipf) Uint64() uint64 {
	z.mu.Lock()
	u := z.mu.rng.Float64()
	z.mu.Unlock()

	uz := u * z.zetaN
	if uz < 1.0 {
		return z.min
	}
	if uz < 1.0+math.Pow(0.5, z.theta) {
		return z.min + 1
	}
	spread := float64(z.max + 1 - z.min)
	return z.min + uint64(int64(spread*math.Pow(z.eta*u-z.eta+1.0, z.alpha)))
}
