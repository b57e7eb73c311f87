// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package randvar provides random number distributions for synthetic key
// generation in benchmarks.
package randvar

import "golang.org/x/exp/rand"

// Static is a random number generator drawing from a fixed distribution.
type Static interface {
	Uint64() uint64
}

// NewRand creates a new random number generator seeded from the global
// source.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(rand.Uint64()))
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return NewRand()
}
