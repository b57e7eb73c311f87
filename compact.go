// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

// Compact restores the path-compression invariant after deletions: on
// return, no non-terminator node other than the root has fewer than two
// children. Point operations are correct without it; Compact only bounds
// memory and shortens lookup paths. It is idempotent.
//
// Compact never mutates a reachable node in place in a way a reader could
// observe as torn. Dropping or merging a child always builds a replacement
// node and publishes it through the parent's state; readers that already
// descended into the old subtree finish their traversal over the retired
// nodes, which remain intact until Close.
func (t *Tree[V]) Compact() {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.maybeValidate()
	t.compactNode(t.root, true)
}

// compactNode compacts the subtree rooted at n bottom-up and returns the
// node that should take n's place under its parent: n itself, a merged
// replacement, or nil if the subtree holds no keys and should be unlinked.
func (t *Tree[V]) compactNode(n *node[V], isRoot bool) *node[V] {
	st := n.loadState()

	// Compact the children first, recording any replacements.
	var repl *nodeState[V]
	for i, child := range st.children {
		c, _ := st.index.Nth(i)
		switch r := t.compactNode(child, false); {
		case r == child:
			// Unchanged.
		case r == nil:
			if repl == nil {
				repl = st
			}
			repl = repl.withoutChild(c)
			t.retire(child)
		default:
			if repl == nil {
				repl = st
			}
			cp := repl.withoutChild(c)
			repl = cp.withChild(c, r)
			t.retire(child)
		}
	}
	if repl != nil {
		n.publish(repl)
		st = repl
	}

	if isRoot || st.value != nil {
		return n
	}
	switch len(st.children) {
	case 0:
		// Childless non-terminator: the caller unlinks and retires it.
		return nil
	case 1:
		// Single-child pass-through: merge the child into a new node whose
		// skip is skip + edge byte + child skip. The old pair stays intact
		// for readers mid-descent; the child is retired here.
		c, _ := st.index.First()
		child := st.children[0]
		cst := child.loadState()

		skip := make([]byte, 0, len(st.skip)+1+len(cst.skip))
		skip = append(skip, st.skip...)
		skip = append(skip, c)
		skip = append(skip, cst.skip...)

		merged := &node[V]{}
		merged.state.Store(&nodeState[V]{
			skip:     skip,
			index:    cst.index,
			children: cst.children,
			value:    cst.value,
		})
		t.nodes.Add(1)
		t.merges.Add(1)
		t.retire(child)
		// n itself is retired by the caller once the replacement is
		// published.
		return merged
	default:
		return n
	}
}
