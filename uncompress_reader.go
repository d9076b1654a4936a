// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

import "io"

// UncompressFromReader reads the full frame then calls Uncompress. No
// decoding logic of its own. If opts.MaxInputSize > 0 and more bytes are
// read, returns ErrInputTooLarge.
func UncompressFromReader(r io.Reader, opts *UncompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultUncompressOptions()
	}

	frame, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(frame) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Uncompress(frame, opts)
}
