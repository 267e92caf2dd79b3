// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"encoding/binary"

	"github.com/strandhash/keccak/internal/keccakf"
)

// xorBlockAt XORs a full rate-sized block into the byte-addressed view of
// the state starting at lane 0. block's length must be a multiple of 8 (it
// always is here: SHA-3's four rates — 144, 136, 104, 72 — are all
// multiples of the 8-byte lane size). Conversion goes through
// encoding/binary.LittleEndian rather than a pointer cast, so the result is
// the same on big- and little-endian hosts.
func xorBlockAt(a *keccakf.State, block []byte) {
	for lane := 0; lane*8 < len(block); lane++ {
		a[lane] ^= binary.LittleEndian.Uint64(block[lane*8 : lane*8+8])
	}
}

// xorByteAt XORs a single byte into the state at byte offset off (0 <=
// off < keccakf.StateSize), expressed as lane arithmetic: byte j of lane k
// is bits 8j..8j+7 of that lane, so XORing b<<8j into lane k is exactly
// XORing b into that byte — with no assumption about host byte order.
func xorByteAt(a *keccakf.State, off int, b byte) {
	a[off/8] ^= uint64(b) << uint((off%8)*8)
}

// readBytesAt reads the first n bytes of the state's byte-addressed view
// (0 <= n <= keccakf.StateSize), via the same explicit little-endian
// decoding xorBlockAt uses.
func readBytesAt(a *keccakf.State, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i += 8 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], a[i/8])
		copy(out[i:], buf[:min(8, n-i)])
	}
	return out
}

// invertPLaneBytes flips every byte of block that belongs to a complete
// P-lane, implementing the squeeze-side half of lane-complement masking:
// un-inverting the P-lanes before the bytes leave the sponge. block is the
// bytes read from state offset 0, so a P-lane index idx only applies when
// its full 8-byte span fits inside block.
func invertPLaneBytes(block []byte) {
	for _, idx := range keccakf.PLaneSet() {
		start := idx * 8
		if start+8 > len(block) {
			continue
		}
		for i := start; i < start+8; i++ {
			block[i] = ^block[i]
		}
	}
}

// newComplementedState returns a zero state, with the P-lanes pre-inverted
// to all-ones if strategy requires lane-complement masking. XOR commutes
// with the complement mask, so absorb needs no special handling beyond
// this one-time setup and invertPLaneBytes at squeeze.
func newComplementedState(strategy *keccakf.Strategy) keccakf.State {
	var a keccakf.State
	if strategy.RequiresLC {
		for _, idx := range keccakf.PLaneSet() {
			a[idx] = ^a[idx]
		}
	}
	return a
}
