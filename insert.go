// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

// Insert adds key with the given value if the key is not already present.
// If the key exists, Insert returns its current value and false and leaves
// it unchanged; use Set to overwrite.
func (t *Tree[V]) Insert(key []byte, value V) (prev V, inserted bool) {
	return t.insert(key, value, false)
}

// Set adds key with the given value, overwriting any existing value. It
// returns the previous value and whether the key was already present.
func (t *Tree[V]) Set(key []byte, value V) (prev V, replaced bool) {
	prev, inserted := t.insert(key, value, true)
	return prev, !inserted
}

// insert descends from the root under the writer lock. Three structural
// outcomes exist:
//
//   - the key ends exactly at an existing node: its value slot is set;
//   - the key diverges below a node whose skip fully matched: a new
//     terminator leaf is attached under the divergence byte;
//   - the key diverges (or ends) inside a node's skip label: the node is
//     split, a successor inheriting its suffix, index, children and value,
//     and the value lands on the split node or on a second new leaf.
//
// Every outcome ends in a single publishing store, so concurrent readers
// see either the pre-insert or post-insert tree along the affected edge.
func (t *Tree[V]) insert(key []byte, value V, overwrite bool) (prev V, inserted bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.maybeValidate()

	n := t.root
	rem := key
	for {
		st := n.loadState()
		m := commonPrefixLen(st.skip, rem)

		if m == len(st.skip) {
			if m == len(rem) {
				// The key ends at this node.
				if st.value != nil {
					prev = *st.value
					if overwrite {
						n.publish(st.withValue(&value))
					}
					return prev, false
				}
				n.publish(st.withValue(&value))
				t.count.Add(1)
				return prev, true
			}

			c := rem[m]
			if child := st.child(c); child != nil {
				n = child
				rem = rem[m+1:]
				continue
			}

			// No edge for c: attach a new terminator leaf.
			leaf := newNode(append([]byte(nil), rem[m+1:]...), &value)
			n.publish(st.withChild(c, leaf))
			t.nodes.Add(1)
			t.count.Add(1)
			return prev, true
		}

		// The key diverges inside this node's skip label: split at m. The
		// successor carries the node's former suffix and entire payload and
		// is complete before the publishing store below.
		repl, _ := st.splitState(m)
		t.nodes.Add(1)
		t.splits.Add(1)

		if m == len(rem) {
			// The key ends at the split point; the split node becomes a
			// terminator.
			repl.value = &value
		} else {
			// The key continues past the split point with a byte that, by
			// construction, differs from the old skip byte at m: attach a
			// second leaf next to the successor.
			leaf := newNode(append([]byte(nil), rem[m+1:]...), &value)
			repl = repl.withChild(rem[m], leaf)
			t.nodes.Add(1)
		}

		n.publish(repl)
		t.count.Add(1)
		return prev, true
	}
}
