// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccakf

// roundConstants are the 24 lane values XORed into A[0] by iota, one per
// round. Taken from the Keccak specification summary.
var roundConstants = [NumRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rcCompressed stores only the 7 bits of each round constant that are ever
// set (bit positions 2^k-1 for k=0..6), packed one bit per source bit into a
// single byte. decompressRC expands it back to the full 64-bit value.
var rcCompressed = [NumRounds]uint8{
	0x01, 0x1A, 0x5E, 0x70, 0x1F, 0x21, 0x79, 0x55,
	0x0E, 0x0C, 0x35, 0x26, 0x3F, 0x4F, 0x5D, 0x53,
	0x52, 0x48, 0x16, 0x66, 0x79, 0x58, 0x21, 0x74,
}

func decompressRC(compressed uint8) uint64 {
	var rc uint64
	for k := uint(0); k < 7; k++ {
		if compressed&(1<<k) != 0 {
			rc |= 1 << ((1 << k) - 1)
		}
	}
	return rc
}

// piLaneIdxes walks the 24 non-origin lanes of the pi permutation
// (x,y) -> (y, 2x+3y mod 5) as a single cycle, from tail to head, so that
// rho-and-pi can run in place: each write consumes a lane that hasn't been
// overwritten yet, and only A[1] needs to be saved up front to close the
// cycle at the end.
var piLaneIdxes = [NumLanes - 1]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19,
	13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// rhoOffsets are the companion rotation amounts for piLaneIdxes, the
// triangular sequence i*(i+1)/2 mod 64 for i=1..24.
var rhoOffsets = [NumLanes - 1]uint{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56,
	8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// rhoOffsetAt computes the same sequence as rhoOffsets in closed form,
// trading a multiply and a shift for the 24-entry table.
func rhoOffsetAt(idx int) uint {
	i := uint(idx + 1)
	return (i * (i + 1) >> 1) & 0x3F
}

// pLaneSet is the set of lane indices held complemented throughout a
// computation by the lane-complementing strategy.
var pLaneSet = [6]int{1, 2, 8, 12, 17, 20}

// PLaneSet returns a copy of the P-set so sponge-boundary code (pre-
// inverting at state creation, un-inverting squeezed output) can mask the
// same lanes without reaching into keccakf internals.
func PLaneSet() [6]int {
	return pLaneSet
}
