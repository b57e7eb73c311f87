// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package skiptrie provides a concurrent ordered map from byte-string keys
// to values, implemented as a path-compressed radix tree: each edge carries
// a variable-length byte label (the "skip") so that long unique suffixes
// occupy a single node, and each node indexes its children with a 256-bit
// popcount-compressed bitmap.
//
// The tree is optimized for read-dominated workloads. Lookups and ordered
// traversals acquire no lock: readers follow edge pointers with atomic
// acquire loads while writers, serialized on a single mutex, publish every
// mutation as a fully constructed node state with a single atomic release
// store. Deletions are logical; the explicit Compact operation collapses
// the degenerate shapes they leave behind. Unlinked nodes are retained on a
// retirement list until Close so in-flight readers can never observe
// reclaimed memory.
//
// Keys are arbitrary byte strings, including the empty string, and the tree
// never retains the caller's key slice. Fixed-width integer keys can be
// mapped to order-preserving byte strings with the Append*-style codec
// functions, making numeric order and lexicographic order coincide.
package skiptrie // import "github.com/skiptrie/skiptrie"
