// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

// appendUvarint32 appends v as a little-endian base-128 varint: 7 value bits
// per byte, continuation bit set on every byte but the last. The encoding is
// minimal, 1-5 bytes.
func appendUvarint32(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// decodeUvarint32 decodes a base-128 varint from the start of src and
// returns the value and the number of bytes consumed. Non-minimal encodings
// are accepted. Fails on truncation, on a 5th byte with the continuation bit
// set, and on 5th-byte value bits that do not fit in 32 bits.
func decodeUvarint32(src []byte) (uint32, int, error) {
	var v uint32
	for i := 0; i < len(src) && i < maxVarintLen32; i++ {
		b := src[i]
		if i == maxVarintLen32-1 && b >= 0x10 {
			// 5th byte may carry only the top 4 value bits and no
			// continuation.
			return 0, 0, errBadVarint
		}

		v |= uint32(b&0x7f) << (7 * uint(i))
		if b < 0x80 {
			return v, i + 1, nil
		}
	}

	return 0, 0, errBadVarint
}
