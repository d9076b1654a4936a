// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

import "encoding/binary"

// appendLiteral appends a literal tag for lit followed by lit itself.
// Lengths 1-60 fit in the tag byte; longer runs store length-1 in 1-4
// trailing little-endian bytes, selected by tag values 60-63.
func appendLiteral(dst, lit []byte) []byte {
	if len(lit) == 0 {
		return dst
	}

	n := len(lit) - 1
	switch {
	case n < 60:
		dst = append(dst, byte(n)<<2|tagLiteral)
	case n < 1<<8:
		dst = append(dst, 60<<2|tagLiteral, byte(n))
	case n < 1<<16:
		dst = append(dst, 61<<2|tagLiteral, byte(n), byte(n>>8))
	case n < 1<<24:
		dst = append(dst, 62<<2|tagLiteral, byte(n), byte(n>>8), byte(n>>16))
	default:
		dst = append(dst, 63<<2|tagLiteral, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
	}

	return append(dst, lit...)
}

// appendCopy appends one or more copy tags for a back-reference of the given
// offset and length, choosing the tightest legal encoding.
//
// Lengths above the 64-byte tag limit are split: 64 is consumed while at
// least 68 remain, 60 while 65-67 remain, so the residue is never below the
// copy-1 minimum of 4. Copy-1 is used for length 4-11 with offset < 2048,
// copy-2 for offsets below 65536, copy-4 beyond that.
func appendCopy(dst []byte, offset, length int) []byte {
	for length >= maxLenCopy+minLenCopy1 {
		dst = appendCopyTag(dst, offset, maxLenCopy)
		length -= maxLenCopy
	}

	if length > maxLenCopy {
		dst = appendCopyTag(dst, offset, maxLenCopy-minLenCopy1)
		length -= maxLenCopy - minLenCopy1
	}

	return appendCopyTag(dst, offset, length)
}

// appendCopyTag appends exactly one copy tag; length must be 1-64.
func appendCopyTag(dst []byte, offset, length int) []byte {
	if length >= minLenCopy1 && length <= maxLenCopy1 && offset < maxOffsetCopy1 {
		return append(dst,
			byte(offset>>8)<<5|byte(length-minLenCopy1)<<2|tagCopy1,
			byte(offset),
		)
	}

	if offset < maxOffsetCopy2 {
		return append(dst,
			byte(length-1)<<2|tagCopy2,
			byte(offset),
			byte(offset>>8),
		)
	}

	return append(dst,
		byte(length-1)<<2|tagCopy4,
		byte(offset),
		byte(offset>>8),
		byte(offset>>16),
		byte(offset>>24),
	)
}

// parseTag decodes the tag starting at src[s]. kind is the tag's low 2 bits.
// For literals, length is the run length and next is the position of the
// first payload byte (the payload itself is not bounds-checked here). For
// copies, length and offset describe the back-reference and next is the
// position after the tag. parseTag never reads at or past len(src).
func parseTag(src []byte, s int) (kind byte, length, offset, next int, err error) {
	t := src[s]
	kind = t & 0x03

	if kind == tagLiteral {
		x := int(t) >> 2
		if x < 60 {
			return kind, x + 1, 0, s + 1, nil
		}

		extra := x - 59
		if extra > len(src)-s-1 {
			return 0, 0, 0, 0, errInputOverrun
		}

		var n int
		switch extra {
		case 1:
			n = int(src[s+1])
		case 2:
			n = int(src[s+1]) | int(src[s+2])<<8
		case 3:
			n = int(src[s+1]) | int(src[s+2])<<8 | int(src[s+3])<<16
		default:
			n = int(binary.LittleEndian.Uint32(src[s+1:]))
		}

		length = n + 1
		if length <= 0 {
			// 32-bit hosts: length-1 did not fit in int.
			return 0, 0, 0, 0, errBadLiteralLength
		}

		return kind, length, 0, s + 1 + extra, nil
	}

	switch kind {
	case tagCopy1:
		if len(src)-s < 2 {
			return 0, 0, 0, 0, errInputOverrun
		}
		length = minLenCopy1 + (int(t)>>2)&0x7
		offset = (int(t)&0xe0)<<3 | int(src[s+1])
		next = s + 2

	case tagCopy2:
		if len(src)-s < 3 {
			return 0, 0, 0, 0, errInputOverrun
		}
		length = 1 + int(t)>>2
		offset = int(src[s+1]) | int(src[s+2])<<8
		next = s + 3

	default: // tagCopy4
		if len(src)-s < 5 {
			return 0, 0, 0, 0, errInputOverrun
		}
		length = 1 + int(t)>>2
		// May wrap negative on 32-bit hosts; the caller's offset checks
		// reject that.
		offset = int(binary.LittleEndian.Uint32(src[s+1:]))
		next = s + 5
	}

	return kind, length, offset, next, nil
}
