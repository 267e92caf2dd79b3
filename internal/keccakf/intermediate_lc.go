// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccakf

// permuteIntermediateLaneComplement is permuteIntermediateUnrolled with chi
// rewritten so that lanes in pLaneSet are treated as complemented
// throughout: wherever a plain chi step would need T[k] complemented, using
// OR instead of AND (or vice versa, per De Morgan) on an already-complemented
// input reproduces the same bit pattern without an explicit NOT. The
// rewrites below are positional and fixed per source lane, not re-derived
// per call, mirroring the sponge boundary which must pre-invert the P-lanes
// before the first permutation and un-invert them when bytes in that range
// leave the sponge.
func permuteIntermediateLaneComplement(a *State) {
	var n State
	for r := 0; r < NumRounds; r += 2 {
		roundIntermediateLC(a, &n, r)
		roundIntermediateLC(&n, a, r+1)
	}
}

func roundIntermediateLC(src, dst *State, r int) {
	a := src
	var c, d, t [5]uint64

	c[0] = a[0] ^ a[5] ^ a[10] ^ a[15] ^ a[20]
	c[1] = a[1] ^ a[6] ^ a[11] ^ a[16] ^ a[21]
	c[2] = a[2] ^ a[7] ^ a[12] ^ a[17] ^ a[22]
	c[3] = a[3] ^ a[8] ^ a[13] ^ a[18] ^ a[23]
	c[4] = a[4] ^ a[9] ^ a[14] ^ a[19] ^ a[24]

	d[0] = c[4] ^ rotl(c[1], 1)
	d[1] = c[0] ^ rotl(c[2], 1)
	d[2] = c[1] ^ rotl(c[3], 1)
	d[3] = c[2] ^ rotl(c[4], 1)
	d[4] = c[3] ^ rotl(c[0], 1)

	// 1st plane
	t[0] = a[0] ^ d[0]
	t[1] = rotl(a[6]^d[1], 44)
	t[2] = rotl(a[12]^d[2], 43)
	t[3] = rotl(a[18]^d[3], 21)
	t[4] = rotl(a[24]^d[4], 14)

	dst[0] = t[0] ^ (t[1] | t[2]) ^ roundConstants[r]
	dst[1] = t[1] ^ (^t[2] | t[3])
	dst[2] = t[2] ^ (t[3] & t[4])
	dst[3] = t[3] ^ (t[4] | t[0])
	dst[4] = t[4] ^ (t[0] & t[1])

	// 2nd plane
	t[0] = rotl(a[3]^d[3], 28)
	t[1] = rotl(a[9]^d[4], 20)
	t[2] = rotl(a[10]^d[0], 3)
	t[3] = rotl(a[16]^d[1], 45)
	t[4] = rotl(a[22]^d[2], 61)

	dst[5] = t[0] ^ (t[1] | t[2])
	dst[6] = t[1] ^ (t[2] & t[3])
	dst[7] = t[2] ^ (t[3] | ^t[4])
	dst[8] = t[3] ^ (t[4] | t[0])
	dst[9] = t[4] ^ (t[0] & t[1])

	// 3rd plane
	t[0] = rotl(a[1]^d[1], 1)
	t[1] = rotl(a[7]^d[2], 6)
	t[2] = rotl(a[13]^d[3], 25)
	t[3] = rotl(a[19]^d[4], 8)
	t[4] = rotl(a[20]^d[0], 18)

	dst[10] = t[0] ^ (t[1] | t[2])
	dst[11] = t[1] ^ (t[2] & t[3])
	dst[12] = t[2] ^ (^t[3] & t[4])
	dst[13] = ^t[3] ^ (t[4] | t[0])
	dst[14] = t[4] ^ (t[0] & t[1])

	// 4th plane
	t[0] = rotl(a[4]^d[4], 27)
	t[1] = rotl(a[5]^d[0], 36)
	t[2] = rotl(a[11]^d[1], 10)
	t[3] = rotl(a[17]^d[2], 15)
	t[4] = rotl(a[23]^d[3], 56)

	dst[15] = t[0] ^ (t[1] & t[2])
	dst[16] = t[1] ^ (t[2] | t[3])
	dst[17] = t[2] ^ (^t[3] | t[4])
	dst[18] = ^t[3] ^ (t[4] & t[0])
	dst[19] = t[4] ^ (t[0] | t[1])

	// 5th plane
	t[0] = rotl(a[2]^d[2], 62)
	t[1] = rotl(a[8]^d[3], 55)
	t[2] = rotl(a[14]^d[4], 39)
	t[3] = rotl(a[15]^d[0], 41)
	t[4] = rotl(a[21]^d[1], 2)

	dst[20] = t[0] ^ (^t[1] & t[2])
	dst[21] = ^t[1] ^ (t[2] | t[3])
	dst[22] = t[2] ^ (t[3] & t[4])
	dst[23] = t[3] ^ (t[4] | t[0])
	dst[24] = t[4] ^ (t[0] & t[1])
}
