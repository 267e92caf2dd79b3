// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import "github.com/strandhash/keccak/internal/keccakf"

// Digest sizes in bytes for the four FIPS 202 fixed-output SHA-3 functions.
const (
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

// dsSHA3 is the domain-separation suffix FIPS 202 assigns to the SHA-3
// fixed-output functions, appended before the 10*1 padding. SHAKE128/256
// would use 0x1f instead; this package only exposes the SHA-3 delimiter.
const dsSHA3 byte = 0x06

// SetPermutation installs id as the process-wide default Keccak-f[1600]
// strategy used by the Sum* functions below. It must not be called
// concurrently with an in-flight digest; see keccakf.SetPermutation.
func SetPermutation(id keccakf.StrategyID) error {
	return keccakf.SetPermutation(id)
}

// sum hashes msg into an mdLen-byte SHA-3 digest using strategy, or the
// process-wide default strategy if strategy is nil.
func sum(msg []byte, mdLen int, strategy *keccakf.Strategy) []byte {
	if strategy == nil {
		strategy = keccakf.Active()
	}
	rate := rateFor(mdLen)
	a := newComplementedState(strategy)
	absorb(&a, strategy, rate, msg, dsSHA3)
	return squeeze(&a, strategy, rate, mdLen)
}

// Sum224 writes the 28-byte SHA3-224 digest of msg into out.
func Sum224(msg []byte, out *[Size224]byte) {
	copy(out[:], sum(msg, Size224, nil))
}

// Sum256 writes the 32-byte SHA3-256 digest of msg into out.
func Sum256(msg []byte, out *[Size256]byte) {
	copy(out[:], sum(msg, Size256, nil))
}

// Sum384 writes the 48-byte SHA3-384 digest of msg into out.
func Sum384(msg []byte, out *[Size384]byte) {
	copy(out[:], sum(msg, Size384, nil))
}

// Sum512 writes the 64-byte SHA3-512 digest of msg into out.
func Sum512(msg []byte, out *[Size512]byte) {
	copy(out[:], sum(msg, Size512, nil))
}

// SumWithStrategy hashes msg into an mdLen-byte SHA-3 digest using an
// explicitly supplied strategy, bypassing the process-wide selector
// entirely — the structure spec.md's design notes call "preferred" over a
// global, since concurrent digests then share no mutable state at all.
func SumWithStrategy(msg []byte, mdLen int, strategy *keccakf.Strategy) []byte {
	return sum(msg, mdLen, strategy)
}
