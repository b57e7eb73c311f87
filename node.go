// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import (
	"sync/atomic"

	"github.com/skiptrie/skiptrie/internal/bitset256"
)

// node is a vertex of the radix tree. Its identity is stable for as long as
// it is linked into the tree; all of its payload lives in an immutable
// nodeState that is swapped atomically on every mutation.
//
// Readers load the state pointer once (acquire) and then observe a
// consistent snapshot of the skip label, the child index and the value. A
// half-mutated node is unobservable: writers fully construct a new state
// and publish it with a single atomic store (release).
type node[V any] struct {
	state atomic.Pointer[nodeState[V]]

	// version is incremented on every publication of a new state. It is not
	// needed for correctness of the protocol below, and nothing in the
	// package reads it; it is kept for optimistic validation schemes.
	version atomic.Uint64
}

// nodeState holds the payload of a node. Every field is written before the
// state is published and never afterwards. The children slice is coupled to
// the index: children[i] is the child whose edge is labeled by the i-th set
// byte of the index in ascending order.
type nodeState[V any] struct {
	// skip is the compressed label of the edge entering this node. It is
	// empty at the root.
	skip     []byte
	index    bitset256.BitSet256
	children []*node[V]
	// value, if non-nil, marks this node as a terminator: the key equal to
	// its path is present in the tree.
	value *V
}

func newNode[V any](skip []byte, value *V) *node[V] {
	n := &node[V]{}
	n.state.Store(&nodeState[V]{skip: skip, value: value})
	return n
}

// loadState returns the node's current state. Safe without any lock.
func (n *node[V]) loadState() *nodeState[V] {
	return n.state.Load()
}

// publish installs a fully constructed state and bumps the version. Callers
// must hold the tree's writer lock.
func (n *node[V]) publish(st *nodeState[V]) {
	n.state.Store(st)
	n.version.Add(1)
}

// child returns the child reached over the edge labeled c, or nil.
func (st *nodeState[V]) child(c uint8) *node[V] {
	if !st.index.Test(c) {
		return nil
	}
	return st.children[st.index.Rank(c)]
}

// clone returns a copy of st with the children slice reallocated. The copy
// is private to the caller until published.
func (st *nodeState[V]) clone() *nodeState[V] {
	c := &nodeState[V]{
		skip:  st.skip,
		index: st.index,
		value: st.value,
	}
	c.children = append(c.children[:0:0], st.children...)
	return c
}

// withValue returns a copy of st carrying the given value slot.
func (st *nodeState[V]) withValue(value *V) *nodeState[V] {
	c := st.clone()
	c.value = value
	return c
}

// withChild returns a copy of st with child linked under the edge byte c.
// The byte must not already label an edge.
func (st *nodeState[V]) withChild(c uint8, child *node[V]) *nodeState[V] {
	cp := st.clone()
	i := cp.index.Set(c)
	cp.children = append(cp.children, nil)
	copy(cp.children[i+1:], cp.children[i:])
	cp.children[i] = child
	return cp
}

// withoutChild returns a copy of st with the edge labeled c removed.
func (st *nodeState[V]) withoutChild(c uint8) *nodeState[V] {
	cp := st.clone()
	i := cp.index.Clear(c)
	cp.children = append(cp.children[:i], cp.children[i+1:]...)
	return cp
}

// splitState builds the two states of an edge split at skip offset m,
// 0 <= m < len(skip): a brand-new successor node inheriting the suffix
// past m (minus the branch byte) together with the node's former index,
// children and value, and a replacement state for the split node holding
// the first m skip bytes and the single edge skip[m] -> successor.
//
// Neither state is visible to readers until the replacement is published;
// the successor is complete before the publishing store, so a reader
// observes either the old one-level edge or the new two-level path, never
// an intermediate.
func (st *nodeState[V]) splitState(m int) (repl *nodeState[V], successor *node[V]) {
	successor = &node[V]{}
	successor.state.Store(&nodeState[V]{
		skip:     st.skip[m+1:],
		index:    st.index,
		children: st.children,
		value:    st.value,
	})

	repl = &nodeState[V]{skip: st.skip[:m]}
	repl.index.Set(st.skip[m])
	repl.children = []*node[V]{successor}
	return repl, successor
}

// commonPrefixLen returns the length of the longest common prefix of a
// and b.
func commonPrefixLen(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
