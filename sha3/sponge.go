// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import "github.com/strandhash/keccak/internal/keccakf"

// absorb consumes msg rate bytes at a time, then pads with the
// multi-rate 10*1 scheme delimited by ds (0x06 for SHA-3), permuting the
// state between blocks. See spec.md §4.2 for the exact padding branches
// this implements, including the extra permutation needed when the
// delimiter's high bit lands on the last byte of a block.
func absorb(a *keccakf.State, strategy *keccakf.Strategy, rate int, msg []byte, ds byte) {
	for len(msg) >= rate {
		xorBlockAt(a, msg[:rate])
		strategy.Permute(a)
		msg = msg[rate:]
	}

	blockOff := 0
	for _, b := range msg {
		xorByteAt(a, blockOff, b)
		blockOff++
		if blockOff == rate {
			strategy.Permute(a)
			blockOff = 0
		}
	}

	xorByteAt(a, blockOff, ds)
	if ds&0x80 != 0 && blockOff == rate-1 {
		strategy.Permute(a)
	}
	xorByteAt(a, rate-1, 0x80)
	strategy.Permute(a)
}

// squeeze emits mdLen bytes from the state, permuting between rate-sized
// blocks as needed, and un-inverting P-lane bytes as they leave the sponge
// when strategy requires lane-complement masking.
func squeeze(a *keccakf.State, strategy *keccakf.Strategy, rate, mdLen int) []byte {
	out := make([]byte, 0, mdLen)
	remaining := mdLen
	for remaining > 0 {
		n := remaining
		if n > rate {
			n = rate
		}
		block := readBytesAt(a, n)
		if strategy.RequiresLC {
			invertPLaneBytes(block)
		}
		out = append(out, block...)
		remaining -= n
		if remaining > 0 {
			strategy.Permute(a)
		}
	}
	return out
}

// rateFor returns the sponge rate in bytes for a digest of mdLen bytes:
// capacity is twice the digest length, rate is whatever's left of the
// 200-byte state.
func rateFor(mdLen int) int {
	return keccakf.StateSize - 2*mdLen
}
