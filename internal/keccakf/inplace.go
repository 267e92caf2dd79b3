// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccakf

// permuteInplaceUnrolled runs theta-rho-pi-chi-iota fully unrolled against a
// single buffer: every one of the 25 lane updates is a straight-line
// statement instead of a loop over piLaneIdxes/rhoOffsets, trading code size
// for fewer branches and no table lookups in the hot path.
func permuteInplaceUnrolled(a *State) {
	for r := 0; r < NumRounds; r++ {
		roundInplaceUnrolled(a, r)
	}
}

func roundInplaceUnrolled(a *State, r int) {
	var c [5]uint64

	c[0] = a[0] ^ a[5] ^ a[10] ^ a[15] ^ a[20]
	c[1] = a[1] ^ a[6] ^ a[11] ^ a[16] ^ a[21]
	c[2] = a[2] ^ a[7] ^ a[12] ^ a[17] ^ a[22]
	c[3] = a[3] ^ a[8] ^ a[13] ^ a[18] ^ a[23]
	c[4] = a[4] ^ a[9] ^ a[14] ^ a[19] ^ a[24]

	t := c[4]
	c[4] ^= rotl(c[1], 1) // D[0]
	c[1] ^= rotl(c[3], 1) // D[2]
	c[3] ^= rotl(c[0], 1) // D[4]
	c[0] ^= rotl(c[2], 1) // D[1]
	c[2] ^= rotl(t, 1)    // D[3]

	a[0] ^= c[4]

	t = a[1]
	a[1] = rotl(a[6]^c[0], 44)
	a[6] = rotl(a[9]^c[3], 20)
	a[9] = rotl(a[22]^c[1], 61)
	a[22] = rotl(a[14]^c[3], 39)
	a[14] = rotl(a[20]^c[4], 18)
	a[20] = rotl(a[2]^c[1], 62)
	a[2] = rotl(a[12]^c[1], 43)
	a[12] = rotl(a[13]^c[2], 25)
	a[13] = rotl(a[19]^c[3], 8)
	a[19] = rotl(a[23]^c[2], 56)
	a[23] = rotl(a[15]^c[4], 41)
	a[15] = rotl(a[4]^c[3], 27)
	a[4] = rotl(a[24]^c[3], 14)
	a[24] = rotl(a[21]^c[0], 2)
	a[21] = rotl(a[8]^c[2], 55)
	a[8] = rotl(a[16]^c[0], 45)
	a[16] = rotl(a[5]^c[4], 36)
	a[5] = rotl(a[3]^c[2], 28)
	a[3] = rotl(a[18]^c[2], 21)
	a[18] = rotl(a[17]^c[1], 15)
	a[17] = rotl(a[11]^c[0], 10)
	a[11] = rotl(a[7]^c[1], 6)
	a[7] = rotl(a[10]^c[4], 3)
	a[10] = rotl(t^c[0], 1)

	c[0] = a[0]
	c[1] = a[1]
	a[0] ^= ^a[1] & a[2]
	a[1] ^= ^a[2] & a[3]
	a[2] ^= ^a[3] & a[4]
	a[3] ^= ^a[4] & c[0]
	a[4] ^= ^c[0] & c[1]

	c[0] = a[5]
	c[1] = a[6]
	a[5] ^= ^a[6] & a[7]
	a[6] ^= ^a[7] & a[8]
	a[7] ^= ^a[8] & a[9]
	a[8] ^= ^a[9] & c[0]
	a[9] ^= ^c[0] & c[1]

	c[0] = a[10]
	c[1] = a[11]
	a[10] ^= ^a[11] & a[12]
	a[11] ^= ^a[12] & a[13]
	a[12] ^= ^a[13] & a[14]
	a[13] ^= ^a[14] & c[0]
	a[14] ^= ^c[0] & c[1]

	c[0] = a[15]
	c[1] = a[16]
	a[15] ^= ^a[16] & a[17]
	a[16] ^= ^a[17] & a[18]
	a[17] ^= ^a[18] & a[19]
	a[18] ^= ^a[19] & c[0]
	a[19] ^= ^c[0] & c[1]

	c[0] = a[20]
	c[1] = a[21]
	a[20] ^= ^a[21] & a[22]
	a[21] ^= ^a[22] & a[23]
	a[22] ^= ^a[23] & a[24]
	a[23] ^= ^a[24] & c[0]
	a[24] ^= ^c[0] & c[1]

	a[0] ^= roundConstants[r]
}
