// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import "bytes"

// Ascend visits every key in the tree in lexicographic order, calling fn
// for each until fn returns false. The key slice passed to fn is reused
// between calls; callers that retain keys must copy them.
//
// Ascend acquires no lock. A traversal overlapping a writer sees each edge
// either before or after that writer's publication; the visited set is only
// guaranteed to be a point-in-time snapshot when no writer is active.
func (t *Tree[V]) Ascend(fn func(key []byte, value V) bool) {
	t.AscendPrefix(nil, fn)
}

// AscendPrefix visits, in lexicographic order, every key that starts with
// prefix. See Ascend for the concurrency caveats.
func (t *Tree[V]) AscendPrefix(prefix []byte, fn func(key []byte, value V) bool) {
	st, acc := t.seekPrefix(prefix)
	if st != nil {
		emitSubtree(st, acc, fn)
	}
}

// KeysWithPrefix returns a snapshot list of all keys starting with prefix,
// in lexicographic order. The returned keys are copies and remain valid
// across later mutations.
func (t *Tree[V]) KeysWithPrefix(prefix []byte) [][]byte {
	var keys [][]byte
	t.AscendPrefix(prefix, func(key []byte, _ V) bool {
		keys = append(keys, append([]byte(nil), key...))
		return true
	})
	return keys
}

// seekPrefix descends to the topmost node whose key path extends prefix,
// returning its state snapshot together with its full key path. Returns nil
// if no key in the tree can start with prefix.
func (t *Tree[V]) seekPrefix(prefix []byte) (*nodeState[V], []byte) {
	n := t.root
	rem := prefix
	var acc []byte
	for {
		st := n.loadState()
		if len(rem) <= len(st.skip) {
			if !bytes.HasPrefix(st.skip, rem) {
				return nil, nil
			}
			return st, append(acc, st.skip...)
		}
		if !bytes.HasPrefix(rem, st.skip) {
			return nil, nil
		}
		acc = append(acc, st.skip...)
		rem = rem[len(st.skip):]
		child := st.child(rem[0])
		if child == nil {
			return nil, nil
		}
		acc = append(acc, rem[0])
		rem = rem[1:]
		n = child
	}
}

// emitSubtree emits the terminators of the subtree under st in key order.
// acc is the subtree root's full key path. The child's state is loaded once
// and threaded into the recursion so the skip label used for the key path
// and the payload enumerated below it come from the same snapshot.
func emitSubtree[V any](st *nodeState[V], acc []byte, fn func(key []byte, value V) bool) bool {
	if st.value != nil {
		if !fn(acc, *st.value) {
			return false
		}
	}
	for c, ok := st.index.First(); ok; c, ok = st.index.Next(c) {
		cst := st.children[st.index.Rank(c)].loadState()
		if !emitSubtree(cst, append(append(acc, c), cst.skip...), fn) {
			return false
		}
	}
	return true
}
