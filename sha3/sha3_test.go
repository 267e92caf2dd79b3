// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/strandhash/keccak/internal/keccakf"
)

var allStrategyIDs = []keccakf.StrategyID{
	keccakf.Reference, keccakf.Compact, keccakf.InplaceUnrolled,
	keccakf.IntermediateUnrolled, keccakf.IntermediateEarlyParity,
	keccakf.IntermediateLaneComplement,
}

// TestStrategyEquivalence cross-checks every strategy against Reference for
// a handful of messages, including ones that straddle the SHA3-256 rate
// (136 bytes) to exercise the padding branches as well as the permutation.
func TestStrategyEquivalence(t *testing.T) {
	messages := [][]byte{
		nil,
		[]byte("abc"),
		repeatedA(135),
		repeatedA(136),
		repeatedA(137),
		repeatedA(1000),
	}

	for _, msg := range messages {
		var want [Size256]byte
		ref, err := keccakf.ByID(keccakf.Reference)
		require.NoError(t, err)
		copy(want[:], SumWithStrategy(msg, Size256, ref))

		for _, id := range allStrategyIDs {
			s, err := keccakf.ByID(id)
			require.NoError(t, err)
			got := SumWithStrategy(msg, Size256, s)
			require.Equalf(t, want[:], got, "strategy %s diverged for message of length %d", id, len(msg))
		}
	}
}

// TestBlockBoundary hashes a message one byte short of a full SHA3-256 rate
// block (the delimiter lands on the block's last byte), exactly one rate
// block, and one byte into a second block, and checks that each digest is
// deterministic. With the SHA-3 delimiter 0x06 the extra permutation absorb
// makes for a high-bit delimiter on the last byte is not taken.
func TestBlockBoundary(t *testing.T) {
	const rate = 136 // SHA3-256 rate

	for _, n := range []int{rate - 1, rate, rate + 1} {
		msg := repeatedA(n)
		var out1, out2 [Size256]byte
		Sum256(msg, &out1)
		Sum256(msg, &out2)
		require.Equal(t, out1, out2, "digest of a %d-byte message must be deterministic", n)
	}
}

// TestLittleEndianRoundTrip confirms the output bytes, read back as 64-bit
// little-endian lanes, reproduce the same bytes when re-serialized — i.e.
// the byte view really is little-endian relative to the lane view.
func TestLittleEndianRoundTrip(t *testing.T) {
	var out [Size256]byte
	Sum256([]byte("round trip"), &out)

	var lanes [4]uint64
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(out[i*8 : i*8+8])
	}

	var reserialized [Size256]byte
	for i, lane := range lanes {
		binary.LittleEndian.PutUint64(reserialized[i*8:i*8+8], lane)
	}

	if diff := cmp.Diff(out[:], reserialized[:]); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

// TestPermutationInvolutionSanity checks that sha3 is sensitive to its
// input: two distinct messages must not produce the same digest by
// accident (a permutation kernel that silently collapsed to a constant
// function would pass every other test here and still be broken).
func TestPermutationInvolutionSanity(t *testing.T) {
	var a, b [Size256]byte
	Sum256([]byte("state one"), &a)
	Sum256([]byte("state two"), &b)
	require.NotEqual(t, a, b)
}

// TestLaneComplementConsistency cross-validates the lane-complementing
// strategy's Boolean rewrites end to end: masking at the sponge boundary
// must produce exactly the digest any non-LC strategy produces.
func TestLaneComplementConsistency(t *testing.T) {
	lc, err := keccakf.ByID(keccakf.IntermediateLaneComplement)
	require.NoError(t, err)
	ref, err := keccakf.ByID(keccakf.Reference)
	require.NoError(t, err)

	for _, msg := range [][]byte{nil, []byte("abc"), repeatedA(1000)} {
		want := SumWithStrategy(msg, Size512, ref)
		got := SumWithStrategy(msg, Size512, lc)
		require.Equal(t, want, got)
	}
}

func TestSetPermutationPreservesSum256(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, SetPermutation(keccakf.Reference)) })

	var viaReference [Size256]byte
	require.NoError(t, SetPermutation(keccakf.Reference))
	Sum256([]byte("selector test"), &viaReference)

	var viaIntermediate [Size256]byte
	require.NoError(t, SetPermutation(keccakf.IntermediateUnrolled))
	Sum256([]byte("selector test"), &viaIntermediate)

	require.Equal(t, viaReference, viaIntermediate)
}
