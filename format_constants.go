// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

// Snappy block format constants: tag kinds, copy bounds, and the
// fragment/hash-table parameters used by the compressor.

// Tag kinds, stored in the low 2 bits of every tag byte.
const (
	tagLiteral = 0x00
	tagCopy1   = 0x01
	tagCopy2   = 0x02
	tagCopy4   = 0x03
)

// Copy encoding bounds per tag kind.
const (
	minLenCopy1    = 4
	maxLenCopy1    = 11
	maxLenCopy     = 64
	maxOffsetCopy1 = 1 << 11
	maxOffsetCopy2 = 1 << 16
)

// maxUncompressedLen bounds the input length storable in the varint preamble.
const maxUncompressedLen = 1<<32 - 1

// maxVarintLen32 is the longest encoding of a 32-bit varint.
const maxVarintLen32 = 5

// Fragment and hash table parameters.
const (
	// maxFragmentLen is the window the compressor matches within; copies
	// never cross a fragment boundary, so offsets stay below it.
	maxFragmentLen = 1 << 15

	// Hash table slot counts: smallest power of two that covers the
	// fragment, clamped to this range. Slots hold 16-bit fragment offsets.
	minHashTableSize = 1 << 8
	maxHashTableSize = 1 << 14

	hashMul = 0x1e35a7bd
)

// inputMargin keeps match starts away from the fragment tail so every 4 and
// 8 byte load in the matcher stays inside the fragment.
const inputMargin = 16 - 1

// minNonLiteralFragmentLen is the shortest fragment worth matching; anything
// shorter is emitted as a single literal run.
const minNonLiteralFragmentLen = 1 + 1 + inputMargin

const maxInt = int(^uint(0) >> 1)
