// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

import "io"

// Source is a pull-style byte stream. It allows zero-copy integration with
// ring buffers and framed transports: the codec reads whatever contiguous
// run Peek exposes and consumes it with Skip.
type Source interface {
	// Available returns the number of bytes left in the source.
	Available() int
	// Peek returns a contiguous run of readable bytes. It must be non-empty
	// while Available is positive; the slice stays valid until the next
	// Skip.
	Peek() []byte
	// Skip consumes n bytes, n <= len(Peek()).
	Skip(n int)
}

// Sink is a push-style receiver of byte runs.
type Sink interface {
	// Append receives the next run of output bytes. The slice is only valid
	// for the duration of the call.
	Append(b []byte) error
}

// ByteSource adapts a byte slice to Source.
type ByteSource struct {
	buf []byte
}

// NewByteSource returns a Source reading from b. The slice is not copied.
func NewByteSource(b []byte) *ByteSource {
	return &ByteSource{buf: b}
}

func (s *ByteSource) Available() int { return len(s.buf) }
func (s *ByteSource) Peek() []byte   { return s.buf }
func (s *ByteSource) Skip(n int)     { s.buf = s.buf[n:] }

// ByteSink collects appended runs into one in-memory buffer.
type ByteSink struct {
	buf []byte
}

func (s *ByteSink) Append(b []byte) error {
	s.buf = append(s.buf, b...)
	return nil
}

// Bytes returns everything appended so far.
func (s *ByteSink) Bytes() []byte { return s.buf }

// WriterSink forwards appended runs to an io.Writer.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Append(b []byte) error {
	_, err := s.W.Write(b)
	return err
}

// CompressToSink compresses everything readable from src and appends the
// frame to sink, fragment by fragment. Sources whose Peek covers a whole
// fragment are compressed in place; fragmented sources are gathered first.
// Returns the number of frame bytes appended.
func CompressToSink(src Source, sink Sink, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	total := src.Available()
	if uint64(total) > maxUncompressedLen {
		return 0, ErrTooLarge
	}

	scratch := opts.Scratch
	if scratch == nil {
		scratch = new(Scratch)
	}

	buf := appendUvarint32(nil, uint32(total))
	written := 0

	var gather []byte
	for remaining := total; remaining > 0; {
		fragLen := min(remaining, maxFragmentLen)

		frag := src.Peek()
		if len(frag) >= fragLen {
			buf = appendFragment(buf, frag[:fragLen], scratch)
			src.Skip(fragLen)
		} else {
			if gather == nil {
				gather = make([]byte, 0, maxFragmentLen)
			}

			gather = gather[:0]
			for len(gather) < fragLen {
				p := src.Peek()
				n := min(len(p), fragLen-len(gather))
				gather = append(gather, p[:n]...)
				src.Skip(n)
			}

			buf = appendFragment(buf, gather, scratch)
		}

		remaining -= fragLen
		if err := sink.Append(buf); err != nil {
			return written, err
		}

		written += len(buf)
		buf = buf[:0]
	}

	// Empty input: the preamble alone is the frame.
	if len(buf) > 0 {
		if err := sink.Append(buf); err != nil {
			return written, err
		}

		written += len(buf)
	}

	return written, nil
}

// UncompressToSink decodes a full frame from src and appends the output to
// sink in one run. A source whose Peek spans the whole frame is decoded
// without copying the input.
func UncompressToSink(src Source, sink Sink, opts *UncompressOptions) error {
	var frame []byte
	if p := src.Peek(); len(p) == src.Available() {
		frame = p
		src.Skip(len(p))
	} else {
		frame = make([]byte, 0, src.Available())
		for src.Available() > 0 {
			p := src.Peek()
			frame = append(frame, p...)
			src.Skip(len(p))
		}
	}

	out, err := Uncompress(frame, opts)
	if err != nil {
		return err
	}

	return sink.Append(out)
}

// ReadUncompressedLength consumes the length preamble from src and returns
// the declared uncompressed size. Fails with an ErrMalformedInput-derived
// error on a truncated or over-long varint.
func ReadUncompressedLength(src Source) (int, error) {
	var hdr [maxVarintLen32]byte
	n := 0
	for n < maxVarintLen32 {
		if src.Available() == 0 {
			return 0, errBadVarint
		}

		b := src.Peek()[0]
		src.Skip(1)
		hdr[n] = b
		n++
		if b < 0x80 {
			break
		}
	}

	v, _, err := decodeUvarint32(hdr[:n])
	if err != nil {
		return 0, err
	}

	if uint64(v) > uint64(maxInt) {
		return 0, errOversizedLength
	}

	return int(v), nil
}
