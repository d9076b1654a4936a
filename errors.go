// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

import (
	"errors"
	"fmt"
)

// Sentinel errors for compression and decompression.
var (
	// ErrMalformedInput is returned when a frame is not a valid encoding.
	// Every decode failure unwraps to it; callers can use
	// errors.Is(err, snappy.ErrMalformedInput).
	ErrMalformedInput = errors.New("snappy: malformed input")

	// ErrTooLarge is returned when the input length cannot be stored in the
	// frame's 32-bit length preamble.
	ErrTooLarge = errors.New("snappy: input length exceeds 32-bit limit")

	// ErrBufferTooSmall is returned by UncompressInto when the destination
	// cannot hold the frame's declared uncompressed length.
	ErrBufferTooSmall = errors.New("snappy: destination buffer too small")

	// ErrInputTooLarge is returned when UncompressFromReader reads more than
	// MaxInputSize bytes.
	ErrInputTooLarge = errors.New("snappy: input exceeds MaxInputSize")
)

// Fine-grained decode failures. All unwrap to ErrMalformedInput.
var (
	errBadVarint        = fmt.Errorf("%w: bad length preamble", ErrMalformedInput)
	errInputOverrun     = fmt.Errorf("%w: tag extends past frame end", ErrMalformedInput)
	errOutputOverrun    = fmt.Errorf("%w: tag extends past declared length", ErrMalformedInput)
	errZeroOffset       = fmt.Errorf("%w: copy offset is not positive", ErrMalformedInput)
	errOffsetUnderrun   = fmt.Errorf("%w: copy offset before start of output", ErrMalformedInput)
	errLengthMismatch   = fmt.Errorf("%w: produced length does not match preamble", ErrMalformedInput)
	errOversizedLength  = fmt.Errorf("%w: declared length exceeds decode limit", ErrMalformedInput)
	errBadLiteralLength = fmt.Errorf("%w: literal length overflows", ErrMalformedInput)
)
