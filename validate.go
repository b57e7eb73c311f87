// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import "github.com/cockroachdb/errors"

// validate checks the structural invariants of the tree. Must not run
// concurrently with writers. Used by tests and, under invariant builds,
// sampled after mutations.
func (t *Tree[V]) validate() error {
	terminators, err := t.root.validate(true)
	if err != nil {
		return err
	}
	if c := t.count.Load(); c != terminators {
		return errors.AssertionFailedf(
			"size counter is %d but tree has %d terminators", c, terminators)
	}
	return nil
}

// validateCompacted additionally checks the post-compaction shape: no
// non-terminator node other than the root has fewer than two children.
func (t *Tree[V]) validateCompacted() error {
	if err := t.validate(); err != nil {
		return err
	}
	return t.root.validateCompacted(true)
}

func (n *node[V]) validate(isRoot bool) (terminators int64, err error) {
	st := n.loadState()
	if isRoot && len(st.skip) > 0 {
		return 0, errors.AssertionFailedf("root has skip label %q", st.skip)
	}
	if got, want := len(st.children), st.index.Len(); got != want {
		return 0, errors.AssertionFailedf(
			"node %q has %d children but index popcount %d", st.skip, got, want)
	}
	if st.value != nil {
		terminators++
	}
	for i, child := range st.children {
		if child == nil {
			return 0, errors.AssertionFailedf("node %q: nil child at %d", st.skip, i)
		}
		c, ok := st.index.Nth(i)
		if !ok || st.children[st.index.Rank(c)] != child {
			return 0, errors.AssertionFailedf(
				"node %q: child %d out of step with index", st.skip, i)
		}
		sub, err := child.validate(false)
		if err != nil {
			return 0, err
		}
		terminators += sub
	}
	return terminators, nil
}

func (n *node[V]) validateCompacted(isRoot bool) error {
	st := n.loadState()
	if !isRoot && st.value == nil && len(st.children) < 2 {
		return errors.AssertionFailedf(
			"non-terminator node %q has %d children after compaction",
			st.skip, len(st.children))
	}
	for _, child := range st.children {
		if err := child.validateCompacted(false); err != nil {
			return err
		}
	}
	return nil
}
