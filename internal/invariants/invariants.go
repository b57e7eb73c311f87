// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package invariants

import (
	"math/rand/v2"

	"github.com/skiptrie/skiptrie/internal/buildtags"
)

// RaceEnabled is true if we were built with the "race" build tag.
const RaceEnabled = buildtags.Race

// Sometimes returns true percent% of the time if we were built with the
// "invariants" or "race" build tags.
func Sometimes(percent int) bool {
	return Enabled && rand.Uint32N(100) < uint32(percent)
}
