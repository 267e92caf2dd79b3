// Package refshim wraps golang.org/x/crypto/sha3 behind the same
// fixed-output signature as the sha3 package, for cross-validation during
// testing and for cmd/sha3sum's --compare flag. The original harness this
// repository is descended from used an OpenSSL EVP shim
// (sha3_ossl.c) for the same purpose; linking OpenSSL from Go needs cgo
// and a system dependency neither this module nor its build wants, so this
// shim dispatches to a pure-Go library computing the same FIPS 202
// functions instead.
package refshim

import "golang.org/x/crypto/sha3"

// Sum224 returns the 28-byte SHA3-224 digest of msg.
func Sum224(msg []byte) []byte {
	sum := sha3.Sum224(msg)
	return sum[:]
}

// Sum256 returns the 32-byte SHA3-256 digest of msg.
func Sum256(msg []byte) []byte {
	sum := sha3.Sum256(msg)
	return sum[:]
}

// Sum384 returns the 48-byte SHA3-384 digest of msg.
func Sum384(msg []byte) []byte {
	sum := sha3.Sum384(msg)
	return sum[:]
}

// Sum512 returns the 64-byte SHA3-512 digest of msg.
func Sum512(msg []byte) []byte {
	sum := sha3.Sum512(msg)
	return sum[:]
}

// Sum returns the SHA-3 digest of msg at the given size in bytes, one of
// Sum224/Sum256/Sum384/Sum512's sizes. It panics for any other size, since
// refshim only exists to mirror this module's four fixed-output functions.
func Sum(msg []byte, size int) []byte {
	switch size {
	case 28:
		return Sum224(msg)
	case 32:
		return Sum256(msg)
	case 48:
		return Sum384(msg)
	case 64:
		return Sum512(msg)
	default:
		panic("refshim: unsupported digest size")
	}
}
