// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package randvar

import (
	"sync"

	"golang.org/x/exp/rand"
)

// Uniform generates draws from a uniform distribution over [min, max].
type Uniform struct {
	min, max uint64
	mu       struct {
		sync.Mutex
		rng *rand.Rand
	}
}

var _ Static = (*Uniform)(nil)

// NewUniform constructs a new Uniform generator over [min, max].
func NewUniform(rng *rand.Rand, min, max uint64) *Uniform {
	g := &Uniform{min: min, max: max}
	g.mu.rng = ensureRand(rng)
	return g
}

// Uint64 returns a uniformly distributed value in [min, max].
func (g *Uniform) Uint64() uint64 {
	g.mu.Lock()
	v := g.mu.rng.Uint64n(g.max-g.min+1) + g.min
	g.mu.Unlock()
	return v
}
