// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

// Compress compresses src into a self-delimited frame: the varint-encoded
// input length followed by the tag stream. opts may be nil. Compression
// cannot fail for inputs shorter than 1<<32 bytes; longer inputs return
// ErrTooLarge.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if uint64(len(src)) > maxUncompressedLen {
		return nil, ErrTooLarge
	}

	scratch := opts.Scratch
	if scratch == nil {
		scratch = new(Scratch)
	}

	dst := make([]byte, 0, MaxCompressedLength(len(src)))
	dst = appendUvarint32(dst, uint32(len(src)))

	for frag := src; len(frag) > 0; {
		n := min(len(frag), maxFragmentLen)
		dst = appendFragment(dst, frag[:n], scratch)
		frag = frag[n:]
	}

	return dst, nil
}

// appendFragment compresses one fragment of up to maxFragmentLen bytes.
// Each fragment is matched with a fresh hash table, so copies never
// reference data across a fragment boundary.
func appendFragment(dst, frag []byte, scratch *Scratch) []byte {
	if len(frag) < minNonLiteralFragmentLen {
		return appendLiteral(dst, frag)
	}

	table, shift := scratch.hashTable(len(frag))

	return compressFragment(dst, frag, table, shift)
}

// MaxCompressedLength returns an upper bound on the frame size for any input
// of length n, sufficient for pre-sizing output buffers. Returns -1 if n is
// negative or cannot be represented in the length preamble.
func MaxCompressedLength(n int) int {
	if n < 0 || uint64(n) > maxUncompressedLen {
		return -1
	}

	return 32 + n + n/6
}
