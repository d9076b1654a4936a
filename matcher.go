// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

import "encoding/binary"

// hashBytes reduces a 4-byte little-endian word to log2(tableSize) bits with
// a multiplicative hash. shift is 32 minus the table's bit width.
func hashBytes(u, shift uint32) uint32 {
	return (u * hashMul) >> shift
}

func load32(b []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(b[i:])
}

func load64(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i:])
}

// compressFragment emits the tag stream for one fragment of at least
// minNonLiteralFragmentLen and at most 65536 bytes. table must have
// power-of-two length matching shift and be zeroed; its slots hold 16-bit
// offsets into the fragment.
func compressFragment(dst, src []byte, table []uint16, shift uint32) []byte {
	// Matches never start in the final inputMargin bytes, which also keeps
	// every 4 and 8 byte load below inside the fragment.
	probeLimit := len(src) - inputMargin

	// src[literalStart:inputPos] is the pending literal run.
	literalStart := 0

	// A fragment opens with a literal, so probing starts one byte in.
	inputPos := 1
	nextHash := hashBytes(load32(src, inputPos), shift)

	for {
		// Growing skip: the probe step is one byte plus one more for every
		// 32 bytes advanced since the last match, so incompressible regions
		// are sampled ever more sparsely instead of hashed at every position.
		skip := 32

		probePos := inputPos
		candidate := 0
		for {
			inputPos = probePos
			step := skip >> 5
			skip += step
			probePos = inputPos + step
			if probePos > probeLimit {
				goto emitTail
			}

			candidate = int(table[nextHash])
			table[nextHash] = uint16(inputPos)
			nextHash = hashBytes(load32(src, probePos), shift)
			if load32(src, inputPos) == load32(src, candidate) {
				break
			}
		}

		// Everything since the last emit becomes one literal run; then the
		// 4-byte hit at inputPos is extended as far as the bytes agree.
		dst = appendLiteral(dst, src[literalStart:inputPos])

		for {
			base := inputPos
			matched := minLenCopy1 + findMatchLength(src[candidate+minLenCopy1:], src[base+minLenCopy1:])
			inputPos = base + matched
			dst = appendCopy(dst, base-candidate, matched)
			literalStart = inputPos
			if inputPos >= probeLimit {
				goto emitTail
			}

			// Refresh the table at the two positions straddling the match
			// end. If the byte right after the match is itself a hit, emit
			// back-to-back copies with no literal in between.
			x := load64(src, inputPos-1)
			table[hashBytes(uint32(x), shift)] = uint16(inputPos - 1)
			h := hashBytes(uint32(x>>8), shift)
			candidate = int(table[h])
			table[h] = uint16(inputPos)
			if uint32(x>>8) != load32(src, candidate) {
				nextHash = hashBytes(uint32(x>>16), shift)
				inputPos++
				break
			}
		}
	}

emitTail:
	if literalStart < len(src) {
		dst = appendLiteral(dst, src[literalStart:])
	}

	return dst
}
