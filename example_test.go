// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie_test

import (
	"fmt"

	"github.com/skiptrie/skiptrie"
)

func Example() {
	tr := skiptrie.New[int](nil)
	defer tr.Close()

	tr.Insert([]byte("hello"), 1)
	tr.Insert([]byte("help"), 2)
	tr.Insert([]byte("world"), 3)

	if v, ok := tr.Get([]byte("hello")); ok {
		fmt.Println("hello =", v)
	}
	fmt.Println("contains hel:", tr.Contains([]byte("hel")))

	tr.Ascend(func(key []byte, v int) bool {
		fmt.Printf("%s=%d\n", key, v)
		return true
	})

	// Output:
	// hello = 1
	// contains hel: false
	// hello=1
	// help=2
	// world=3
}

func Example_integerKeys() {
	tr := skiptrie.New[string](nil)
	defer tr.Close()

	// Big-endian encoding keeps numeric and lexicographic order aligned.
	tr.Insert(skiptrie.AppendUint32(nil, 256), "b")
	tr.Insert(skiptrie.AppendUint32(nil, 1), "a")
	tr.Insert(skiptrie.AppendUint32(nil, 2), "c")

	tr.Ascend(func(key []byte, v string) bool {
		fmt.Printf("%d=%s\n", skiptrie.DecodeUint32(key), v)
		return true
	})

	// Output:
	// 1=a
	// 2=c
	// 256=b
}
