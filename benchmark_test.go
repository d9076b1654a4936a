// SPDX-License-Identifier: MIT
// Source: github.com/mondain/snappy

package snappy

import (
	"bytes"
	"math/rand"
	"testing"

	refsnappy "github.com/golang/snappy"
	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"text-4k":         bytes.Repeat([]byte("snappy benchmark text payload "), 137),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"random-64k":      randomBytes(rand.New(rand.NewSource(5)), 1<<16),
	}
}

func BenchmarkCompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			var scratch Scratch
			opts := &CompressOptions{Scratch: &scratch}
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Compress(inputData, opts); err != nil {
					b.Fatalf("Compress failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkUncompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		frame, err := Compress(inputData, nil)
		if err != nil {
			b.Fatalf("setup Compress failed for %s: %v", inputName, err)
		}

		b.Run(inputName, func(b *testing.B) {
			dst := make([]byte, len(inputData))
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := UncompressInto(frame, dst); err != nil {
					b.Fatalf("UncompressInto failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkIsValid(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		frame, err := Compress(inputData, nil)
		if err != nil {
			b.Fatalf("setup Compress failed for %s: %v", inputName, err)
		}

		b.Run(inputName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if !IsValid(frame) {
					b.Fatal("IsValid rejected a frame we produced")
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	dst := make([]byte, len(inputData))
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		frame, err := Compress(inputData, nil)
		if err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
		if _, err := UncompressInto(frame, dst); err != nil {
			b.Fatalf("UncompressInto failed: %v", err)
		}
	}
}

// Comparative block-codec benchmarks over the same inputs.

func BenchmarkCodecCompressComparison(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName+"/mondain-snappy", func(b *testing.B) {
			var scratch Scratch
			opts := &CompressOptions{Scratch: &scratch}
			b.SetBytes(int64(len(inputData)))
			for i := 0; i < b.N; i++ {
				if _, err := Compress(inputData, opts); err != nil {
					b.Fatalf("Compress failed: %v", err)
				}
			}
		})

		b.Run(inputName+"/golang-snappy", func(b *testing.B) {
			dst := make([]byte, refsnappy.MaxEncodedLen(len(inputData)))
			b.SetBytes(int64(len(inputData)))
			for i := 0; i < b.N; i++ {
				refsnappy.Encode(dst, inputData)
			}
		})

		b.Run(inputName+"/klauspost-s2", func(b *testing.B) {
			dst := make([]byte, s2.MaxEncodedLen(len(inputData)))
			b.SetBytes(int64(len(inputData)))
			for i := 0; i < b.N; i++ {
				s2.EncodeSnappy(dst, inputData)
			}
		})

		b.Run(inputName+"/pierrec-lz4", func(b *testing.B) {
			dst := make([]byte, lz4.CompressBlockBound(len(inputData)))
			b.SetBytes(int64(len(inputData)))
			for i := 0; i < b.N; i++ {
				if _, err := lz4.CompressBlock(inputData, dst, nil); err != nil {
					b.Fatalf("lz4.CompressBlock failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkCodecUncompressComparison(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		ourFrame, err := Compress(inputData, nil)
		if err != nil {
			b.Fatalf("setup Compress failed for %s: %v", inputName, err)
		}

		lz4Block := make([]byte, lz4.CompressBlockBound(len(inputData)))
		n, err := lz4.CompressBlock(inputData, lz4Block, nil)
		if err != nil {
			b.Fatalf("setup lz4.CompressBlock failed for %s: %v", inputName, err)
		}
		lz4Compressible := n > 0
		lz4Block = lz4Block[:n]

		dst := make([]byte, len(inputData))

		b.Run(inputName+"/mondain-snappy", func(b *testing.B) {
			b.SetBytes(int64(len(inputData)))
			for i := 0; i < b.N; i++ {
				if _, err := UncompressInto(ourFrame, dst); err != nil {
					b.Fatalf("UncompressInto failed: %v", err)
				}
			}
		})

		b.Run(inputName+"/golang-snappy", func(b *testing.B) {
			b.SetBytes(int64(len(inputData)))
			for i := 0; i < b.N; i++ {
				if _, err := refsnappy.Decode(dst, ourFrame); err != nil {
					b.Fatalf("refsnappy.Decode failed: %v", err)
				}
			}
		})

		b.Run(inputName+"/klauspost-s2", func(b *testing.B) {
			b.SetBytes(int64(len(inputData)))
			for i := 0; i < b.N; i++ {
				if _, err := s2.Decode(dst, ourFrame); err != nil {
					b.Fatalf("s2.Decode failed: %v", err)
				}
			}
		})

		b.Run(inputName+"/pierrec-lz4", func(b *testing.B) {
			if !lz4Compressible {
				b.Skip("input incompressible for lz4 block format")
			}
			b.SetBytes(int64(len(inputData)))
			for i := 0; i < b.N; i++ {
				if _, err := lz4.UncompressBlock(lz4Block, dst); err != nil {
					b.Fatalf("lz4.UncompressBlock failed: %v", err)
				}
			}
		})
	}
}
