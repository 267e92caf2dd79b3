// Package sha3 implements the fixed-output members of the SHA-3 family
// (FIPS 202) over the Keccak-f[1600] permutation and the sponge
// construction.
//
//	             absorb                          squeeze
//	  message  ──────────►  ┌──────────────┐  ──────────────►  digest
//	           XOR + pad    │  1600-bit     │  read rate bytes,
//	           rate bytes,  │  state A      │  permute between
//	           permute      └──────────────┘  blocks
//
// The permutation itself is pluggable: internal/keccakf ships six
// strategies that are bitwise-equivalent but trade code size, memory
// locality and NOT-instruction count against each other. The sponge layer
// here is agnostic to which one is active.
//
//	Function    Rate (bytes)  Capacity (bytes)  Output (bytes)
//	SHA3-224    144           56                28
//	SHA3-256    136           64                32
//	SHA3-384    104           96                48
//	SHA3-512    72            128               64
package sha3
