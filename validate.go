// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

// IsValid reports whether frame is a structurally valid compressed frame.
// It performs the full tag traversal with the same tag checks as Uncompress
// but writes no output and allocates no output buffer. It applies no cap on
// the declared length: Uncompress also rejects frames declaring more than
// opts.MaxDecodedLen or the host's int range, and IsValid does not. It never
// panics on adversarial bytes.
func IsValid(frame []byte) bool {
	declared, hdrLen, err := decodeUvarint32(frame)
	if err != nil {
		return false
	}

	return validateCore(frame[hdrLen:], uint64(declared))
}

// validateCore mirrors uncompressCore tag by tag, tracking only the count of
// produced bytes. Counters are 64-bit so declared lengths near 1<<32 are
// checked exactly regardless of host word size.
func validateCore(src []byte, declared uint64) bool {
	var produced uint64
	s := 0
	for s < len(src) {
		kind, length, offset, next, err := parseTag(src, s)
		if err != nil {
			return false
		}

		if kind == tagLiteral {
			if length > len(src)-next {
				return false
			}

			if produced+uint64(length) > declared {
				return false
			}

			produced += uint64(length)
			s = next + length

			continue
		}

		if offset <= 0 || uint64(offset) > produced {
			return false
		}

		if produced+uint64(length) > declared {
			return false
		}

		produced += uint64(length)
		s = next
	}

	return produced == declared
}
