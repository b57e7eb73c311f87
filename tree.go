// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import (
	"bytes"
	"sync"
	"sync/atomic"

	"github.com/skiptrie/skiptrie/internal/invariants"
)

// Tree is a concurrent ordered map from byte-string keys to values of type
// V, implemented as a path-compressed radix tree. Keys of any length are
// valid, including the empty key.
//
// Concurrency contract: Get, Contains, Len, Empty and the traversal
// methods never acquire a lock and may run from any number of goroutines.
// Insert, Set, Delete and Compact serialize against each other on a single
// writer mutex but never block readers. A reader racing with a writer
// observes, per edge it traverses, either the state before or the state
// after that writer's publishing store; there is no broader linearization
// guarantee across keys.
//
// Nodes unlinked by writers are kept on a retirement list until Close so
// that a reader still traversing them can never observe reclaimed memory.
type Tree[V any] struct {
	// root is always present and is never replaced; its skip label is
	// empty. The empty key is stored in the root's value slot.
	root *node[V]

	count atomic.Int64
	nodes atomic.Int64

	// mu serializes all mutations: Insert, Set, Delete, Compact and Close.
	mu sync.Mutex

	// retired accumulates nodes unlinked from the live tree. They cannot be
	// recycled while a concurrent reader may still hold a pointer into
	// them; holding them until Close makes the retirement point explicit
	// and keeps the scheme trivially free of use-after-free. Appended to
	// only while mu is held.
	retired      []*node[V]
	retiredCount atomic.Int64

	splits atomic.Int64
	merges atomic.Int64

	opts   *Options
	closed bool
}

// New returns an empty tree.
func New[V any](opts *Options) *Tree[V] {
	t := &Tree[V]{
		root: newNode[V](nil, nil),
		opts: opts.EnsureDefaults(),
	}
	t.nodes.Store(1)
	return t
}

// Len returns the number of keys in the tree.
func (t *Tree[V]) Len() int {
	return int(t.count.Load())
}

// Empty reports whether the tree contains no keys.
func (t *Tree[V]) Empty() bool {
	return t.count.Load() == 0
}

// Get returns the value stored for key, if present. It acquires no lock.
func (t *Tree[V]) Get(key []byte) (value V, ok bool) {
	n := t.root
	rem := key
	for {
		st := n.loadState()
		if len(rem) < len(st.skip) || !bytes.Equal(rem[:len(st.skip)], st.skip) {
			return value, false
		}
		rem = rem[len(st.skip):]
		if len(rem) == 0 {
			if st.value == nil {
				return value, false
			}
			return *st.value, true
		}
		child := st.child(rem[0])
		if child == nil {
			return value, false
		}
		n = child
		rem = rem[1:]
	}
}

// Contains reports whether key is present. It acquires no lock.
func (t *Tree[V]) Contains(key []byte) bool {
	_, ok := t.Get(key)
	return ok
}

// retire records a node that has been unlinked from the live tree. The
// writer mutex must be held.
func (t *Tree[V]) retire(n *node[V]) {
	t.retired = append(t.retired, n)
	t.retiredCount.Add(1)
	t.nodes.Add(-1)
}

// maybeValidate runs full structural validation on a sample of mutations
// in invariant builds. The writer mutex must be held.
func (t *Tree[V]) maybeValidate() {
	if invariants.Enabled && invariants.Sometimes(5) {
		if err := t.validate(); err != nil {
			t.opts.Logger.Fatalf("skiptrie: invariant violation: %v", err)
		}
	}
}

// Close releases the retirement list. No operation may be in flight or
// started afterwards.
func (t *Tree[V]) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		if invariants.Enabled {
			panic("skiptrie: tree closed twice")
		}
		return
	}
	t.closed = true
	t.retired = nil
	t.retiredCount.Store(0)
}
