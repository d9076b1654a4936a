// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

import (
	"encoding/binary"
	"math/bits"
)

// findMatchLength returns the largest n such that p[:n] == q[:n], bounded by
// len(q). len(p) must be at least len(q). Bytes are compared in 8-byte words
// first, then one at a time for the tail.
func findMatchLength(p, q []byte) int {
	n := 0
	for n+8 <= len(q) {
		x := binary.LittleEndian.Uint64(p[n:])
		y := binary.LittleEndian.Uint64(q[n:])
		if x != y {
			// The first differing byte is the lowest set bit of the XOR.
			return n + bits.TrailingZeros64(x^y)>>3
		}

		n += 8
	}

	for n < len(q) && p[n] == q[n] {
		n++
	}

	return n
}
