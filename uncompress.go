// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

// UncompressedLength decodes the frame's length preamble and returns the
// declared uncompressed size without consuming further bytes. Fails with an
// ErrMalformedInput-derived error on a truncated or over-long varint, or
// when the value does not fit the host's int.
func UncompressedLength(frame []byte) (int, error) {
	v, _, err := decodeUvarint32(frame)
	if err != nil {
		return 0, err
	}

	if uint64(v) > uint64(maxInt) {
		return 0, errOversizedLength
	}

	return int(v), nil
}

// Uncompress decodes a frame into a newly allocated buffer of the declared
// length. opts may be nil. Frames declaring more than opts.MaxDecodedLen
// (or the host's int range) are rejected before any allocation. On error no
// output is returned and any partial state is discarded.
func Uncompress(frame []byte, opts *UncompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultUncompressOptions()
	}

	declared, hdrLen, err := decodeUvarint32(frame)
	if err != nil {
		return nil, err
	}

	limit := opts.MaxDecodedLen
	if limit <= 0 {
		limit = maxInt
	}

	if uint64(declared) > uint64(limit) {
		return nil, errOversizedLength
	}

	dst := make([]byte, declared)
	if err := uncompressCore(frame[hdrLen:], dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// UncompressInto decodes a frame into dst and returns the written prefix of
// dst. Returns ErrBufferTooSmall when dst cannot hold the declared length.
// No byte of dst beyond the declared length is written.
func UncompressInto(frame, dst []byte) ([]byte, error) {
	declared, hdrLen, err := decodeUvarint32(frame)
	if err != nil {
		return nil, err
	}

	if uint64(declared) > uint64(len(dst)) {
		return nil, ErrBufferTooSmall
	}

	out := dst[:declared]
	if err := uncompressCore(frame[hdrLen:], out); err != nil {
		return nil, err
	}

	return out, nil
}

// uncompressCore runs the tag loop over src, writing exactly len(dst) bytes
// into dst. The loop is in one of two states: expecting a tag, or done when
// produced equals the declared length with the input exhausted; every
// violation is a terminal error. No read touches src beyond its length and
// no write touches dst beyond its length.
func uncompressCore(src, dst []byte) error {
	var d, s int
	for s < len(src) {
		kind, length, offset, next, err := parseTag(src, s)
		if err != nil {
			return err
		}

		if kind == tagLiteral {
			if length > len(src)-next {
				return errInputOverrun
			}

			if length > len(dst)-d {
				return errOutputOverrun
			}

			copy(dst[d:d+length], src[next:next+length])
			d += length
			s = next + length

			continue
		}

		if offset <= 0 {
			return errZeroOffset
		}

		if offset > d {
			return errOffsetUnderrun
		}

		if length > len(dst)-d {
			return errOutputOverrun
		}

		copyBackRef(dst, d, offset, length)
		d += length
		s = next
	}

	if d != len(dst) {
		return errLengthMismatch
	}

	return nil
}
