// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccakf

// permuteCompact is functionally identical to permuteReference; it trades
// the two lookup tables for cheap arithmetic so the strategy's static
// footprint stays small. Round constants come from the 7-bit-per-round
// decompressRC instead of the 64-bit roundConstants table, and rho offsets
// come from the closed-form triangular number instead of rhoOffsets.
func permuteCompact(a *State) {
	for r := 0; r < NumRounds; r++ {
		thetaRef(a)
		rhoPiCompact(a)
		chiRef(a)
		a[0] ^= decompressRC(rcCompressed[r])
	}
}

func rhoPiCompact(a *State) {
	first := a[1]
	for i := len(piLaneIdxes) - 1; i > 0; i-- {
		next := a[piLaneIdxes[i-1]]
		a[piLaneIdxes[i]] = rotl(next, rhoOffsetAt(i))
	}
	a[piLaneIdxes[0]] = rotl(first, rhoOffsetAt(0))
}
