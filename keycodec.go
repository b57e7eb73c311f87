// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import "encoding/binary"

// Order-preserving key encodings for fixed-width integers: big-endian for
// unsigned types, sign-bit flip followed by big-endian for signed types.
// Lexicographic byte comparison of two encodings orders the same way as the
// numeric comparison of the original integers, so integer keys enumerate in
// numeric order.

// AppendUint16 appends the order-preserving encoding of v to dst.
func AppendUint16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

// AppendUint32 appends the order-preserving encoding of v to dst.
func AppendUint32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

// AppendUint64 appends the order-preserving encoding of v to dst.
func AppendUint64(dst []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, v)
}

// AppendInt16 appends the order-preserving encoding of v to dst.
func AppendInt16(dst []byte, v int16) []byte {
	return binary.BigEndian.AppendUint16(dst, uint16(v)^1<<15)
}

// AppendInt32 appends the order-preserving encoding of v to dst.
func AppendInt32(dst []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(v)^1<<31)
}

// AppendInt64 appends the order-preserving encoding of v to dst.
func AppendInt64(dst []byte, v int64) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(v)^1<<63)
}

// DecodeUint32 decodes a key produced by AppendUint32.
func DecodeUint32(key []byte) uint32 {
	return binary.BigEndian.Uint32(key)
}

// DecodeUint64 decodes a key produced by AppendUint64.
func DecodeUint64(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// DecodeInt32 decodes a key produced by AppendInt32.
func DecodeInt32(key []byte) int32 {
	return int32(binary.BigEndian.Uint32(key) ^ 1<<31)
}

// DecodeInt64 decodes a key produced by AppendInt64.
func DecodeInt64(key []byte) int64 {
	return int64(binary.BigEndian.Uint64(key) ^ 1<<63)
}
