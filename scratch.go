// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Mondain
// Source: github.com/mondain/snappy

package snappy

// Scratch holds the compressor's hash table so repeated Compress calls can
// reuse one allocation. The zero value is ready to use. A Scratch is owned
// by a single call for its duration and must not be shared by concurrent
// calls; the codec itself keeps no process-wide scratch.
type Scratch struct {
	table [maxHashTableSize]uint16
}

// hashTable returns a zeroed table sized for a fragment of fragLen bytes:
// the smallest power of two that covers it, clamped to
// [minHashTableSize, maxHashTableSize] slots. shift reduces hashBytes output
// to the table's index range.
func (s *Scratch) hashTable(fragLen int) (table []uint16, shift uint32) {
	tableSize := minHashTableSize
	shift = 32 - 8
	for tableSize < maxHashTableSize && tableSize < fragLen {
		tableSize *= 2
		shift--
	}

	table = s.table[:tableSize]
	clear(table)

	return table, shift
}
