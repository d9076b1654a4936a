// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

/*
Package snappy implements the Snappy block format: a byte-oriented lossless
codec that trades compression ratio for speed.

A compressed frame is a varint-encoded uncompressed length followed by a tag
stream of literal runs and back-reference copies. Frames are self-delimited
by the length preamble; there is no container, checksum, or entropy coding.

# Uncompress

The frame carries its own output length, so no options are required:

	out, err := snappy.Uncompress(frame, nil)

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, n)
	out, err := snappy.UncompressInto(frame, dst)

From an io.Reader (the frame is read fully, then decoded):

	out, err := snappy.UncompressFromReader(r, nil)

To check a frame without producing output:

	ok := snappy.IsValid(frame)

# Compress

Options may be nil. A Scratch can be supplied to reuse the hash table
across repeated encodes:

	frame, err := snappy.Compress(data, nil)

	var scratch snappy.Scratch
	frame, err := snappy.Compress(data, &snappy.CompressOptions{Scratch: &scratch})
*/
package snappy
