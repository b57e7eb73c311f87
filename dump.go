// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import (
	"fmt"
	"strings"
)

// String returns a one-line summary of the tree.
func (t *Tree[V]) String() string {
	m := t.Metrics()
	return fmt.Sprintf("skiptrie(keys=%d, nodes=%d)", m.Keys, m.Nodes)
}

// debugString renders the tree shape for tests and debugging: one line per
// node, indented by depth, showing the edge byte, the skip label, and the
// value of terminators. Must not run concurrently with writers.
func (t *Tree[V]) debugString() string {
	var sb strings.Builder
	t.root.dump(&sb, -1, 0)
	return sb.String()
}

func (n *node[V]) dump(sb *strings.Builder, edge int, depth int) {
	st := n.loadState()
	fmt.Fprintf(sb, "%s", strings.Repeat("  ", depth))
	if edge < 0 {
		sb.WriteString("root")
	} else {
		fmt.Fprintf(sb, "%q", byte(edge))
	}
	if len(st.skip) > 0 {
		fmt.Fprintf(sb, " skip=%q", st.skip)
	}
	if st.value != nil {
		fmt.Fprintf(sb, " value=%v", *st.value)
	}
	sb.WriteByte('\n')
	for c, ok := st.index.First(); ok; c, ok = st.index.Next(c) {
		st.children[st.index.Rank(c)].dump(sb, int(c), depth+1)
	}
}
