// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

// TestDataDriven drives a tree through the commands in testdata/ files and
// compares shapes and results against the recorded output.
//
// Commands:
//
//	reset            recreate the tree
//	insert           k=v per input line; Insert semantics (no overwrite)
//	set              k=v per input line; Set semantics (overwrite)
//	delete           key per input line
//	get              key per input line
//	len              report the key count
//	compact          run Compact
//	prefix p         list keys with prefix p
//	dump             render the tree shape
func TestDataDriven(t *testing.T) {
	for _, path := range []string{"testdata/basic", "testdata/compact", "testdata/prefix"} {
		t.Run(strings.TrimPrefix(path, "testdata/"), func(t *testing.T) {
			tr := New[string](nil)
			defer func() { tr.Close() }()

			datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
				var buf strings.Builder
				switch d.Cmd {
				case "reset":
					tr.Close()
					tr = New[string](nil)

				case "insert", "set":
					for _, line := range strings.Split(d.Input, "\n") {
						key, value, ok := strings.Cut(line, "=")
						if !ok {
							d.Fatalf(t, "expected key=value, got %q", line)
						}
						if d.Cmd == "insert" {
							if prev, inserted := tr.Insert([]byte(key), value); inserted {
								fmt.Fprintf(&buf, "%s: inserted\n", key)
							} else {
								fmt.Fprintf(&buf, "%s: exists (%s)\n", key, prev)
							}
						} else {
							if prev, replaced := tr.Set([]byte(key), value); replaced {
								fmt.Fprintf(&buf, "%s: replaced (%s)\n", key, prev)
							} else {
								fmt.Fprintf(&buf, "%s: set\n", key)
							}
						}
					}

				case "delete":
					for _, line := range strings.Split(d.Input, "\n") {
						if tr.Delete([]byte(line)) {
							fmt.Fprintf(&buf, "%s: deleted\n", line)
						} else {
							fmt.Fprintf(&buf, "%s: not found\n", line)
						}
					}

				case "get":
					for _, line := range strings.Split(d.Input, "\n") {
						if v, ok := tr.Get([]byte(line)); ok {
							fmt.Fprintf(&buf, "%s: %s\n", line, v)
						} else {
							fmt.Fprintf(&buf, "%s: not found\n", line)
						}
					}

				case "len":
					fmt.Fprintf(&buf, "len=%d\n", tr.Len())

				case "compact":
					tr.Compact()
					require.NoError(t, tr.validateCompacted())

				case "prefix":
					if len(d.CmdArgs) != 1 {
						d.Fatalf(t, "prefix requires one argument")
					}
					keys := tr.KeysWithPrefix([]byte(d.CmdArgs[0].Key))
					if len(keys) == 0 {
						buf.WriteString("(none)\n")
					}
					for _, key := range keys {
						fmt.Fprintf(&buf, "%s\n", key)
					}

				case "dump":
					buf.WriteString(tr.debugString())

				default:
					d.Fatalf(t, "unknown command %q", d.Cmd)
				}
				require.NoError(t, tr.validate())
				return buf.String()
			})
		})
	}
}
