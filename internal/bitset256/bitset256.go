// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package bitset256 implements a fixed-size set over the byte alphabet with
// rank support. A radix tree node uses it to map an edge byte to the
// position of the corresponding child in a popcount-compressed slice: the
// child for byte c lives at index Rank(c) of the slice, where Rank counts
// the set bits strictly below c.
package bitset256

import (
	"fmt"
	"math/bits"
	"strings"
)

// BitSet256 is a set of byte values [0, 255], stored as four 64-bit words.
// The zero value is an empty set.
type BitSet256 [4]uint64

// Test reports whether c is in the set.
func (b *BitSet256) Test(c uint8) bool {
	return b[c>>6]&(1<<(c&63)) != 0
}

// Rank returns the number of set bits strictly below c. If c is in the set,
// this is its ordinal position among the set bits in ascending order.
func (b *BitSet256) Rank(c uint8) int {
	w := int(c >> 6)
	n := bits.OnesCount64(b[w&3] & (1<<(c&63) - 1))
	for i := 0; i < w; i++ {
		n += bits.OnesCount64(b[i])
	}
	return n
}

// Set adds c to the set and returns its rank. Adding a byte does not change
// its own rank, so the returned index is valid both before and after the
// call. Set of an already-present byte is idempotent.
func (b *BitSet256) Set(c uint8) int {
	b[c>>6] |= 1 << (c & 63)
	return b.Rank(c)
}

// Clear removes c from the set and returns the rank it occupied.
func (b *BitSet256) Clear(c uint8) int {
	b[c>>6] &^= 1 << (c & 63)
	return b.Rank(c)
}

// First returns the smallest byte in the set.
func (b *BitSet256) First() (c uint8, ok bool) {
	for w, word := range b {
		if word != 0 {
			return uint8(w<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// Next returns the smallest byte in the set that is strictly greater
// than c.
func (b *BitSet256) Next(c uint8) (uint8, bool) {
	if c == 255 {
		return 0, false
	}
	c++
	w := int(c >> 6)
	if word := b[w] >> (c & 63); word != 0 {
		return c + uint8(bits.TrailingZeros64(word)), true
	}
	for w++; w < 4; w++ {
		if word := b[w]; word != 0 {
			return uint8(w<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// Nth returns the i-th smallest byte in the set.
func (b *BitSet256) Nth(i int) (uint8, bool) {
	if i < 0 || i >= b.Len() {
		return 0, false
	}
	c, _ := b.First()
	for ; i > 0; i-- {
		c, _ = b.Next(c)
	}
	return c, true
}

// Len returns the number of bytes in the set.
func (b *BitSet256) Len() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) +
		bits.OnesCount64(b[2]) + bits.OnesCount64(b[3])
}

// Empty reports whether the set contains no bytes.
func (b *BitSet256) Empty() bool {
	return b[0]|b[1]|b[2]|b[3] == 0
}

func (b *BitSet256) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for c, ok := b.First(); ok; c, ok = b.Next(c) {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%#02x", c)
	}
	sb.WriteByte(']')
	return sb.String()
}
