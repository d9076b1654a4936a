// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

// CompressOptions configures compression.
type CompressOptions struct {
	// Scratch optionally supplies the hash table for repeated encodes.
	// When nil, each call allocates its own.
	Scratch *Scratch
}

// DefaultCompressOptions returns options with per-call scratch allocation.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// UncompressOptions configures decompression.
type UncompressOptions struct {
	// MaxDecodedLen caps the declared uncompressed length Uncompress will
	// allocate for (0 or less = the host's int range). Frames declaring
	// more are rejected before any allocation.
	MaxDecodedLen int
	// MaxInputSize limits how many bytes UncompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultUncompressOptions returns options with no limits beyond the host.
func DefaultUncompressOptions() *UncompressOptions {
	return &UncompressOptions{}
}
