// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import "bytes"

// Delete removes key from the tree, reporting whether it was present.
//
// Deletion is logical: the terminator's value slot is cleared but the node
// and its children stay in place, so the tree may accumulate pass-through
// nodes that a later Compact collapses.
func (t *Tree[V]) Delete(key []byte) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.maybeValidate()

	n := t.root
	rem := key
	for {
		st := n.loadState()
		if len(rem) < len(st.skip) || !bytes.Equal(rem[:len(st.skip)], st.skip) {
			return false
		}
		rem = rem[len(st.skip):]
		if len(rem) == 0 {
			if st.value == nil {
				return false
			}
			n.publish(st.withValue(nil))
			t.count.Add(-1)
			return true
		}
		child := st.child(rem[0])
		if child == nil {
			return false
		}
		n = child
		rem = rem[1:]
	}
}
