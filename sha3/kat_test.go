// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// katCase is one row of the FIPS 202 known-answer table.
type katCase struct {
	name       string
	msg        []byte
	sha3_256   string
	sha3_512px string // first 32 bytes of SHA3-512, hex
}

func repeatedA(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 0x61
	}
	return b
}

var katCases = []katCase{
	{
		name:       "empty",
		msg:        nil,
		sha3_256:   "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"[:64],
		sha3_512px: "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a6",
	},
	{
		name:       "abc",
		msg:        []byte("abc"),
		sha3_256:   "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"[:64],
		sha3_512px: "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e",
	},
	{
		name:       "a million 'a's",
		msg:        repeatedA(1000000),
		sha3_256:   "5c8875ae474a3634ba4fd55ec85bffd661f32aca75c6d699d0cdcb6c115891c1"[:64],
		sha3_512px: "3c3a876da14034ab60627c077bb98f7e120a2a5370212dffb3385a18d4f38859",
	},
}

func TestKnownAnswers256(t *testing.T) {
	for _, tc := range katCases {
		t.Run(tc.name, func(t *testing.T) {
			var out [Size256]byte
			Sum256(tc.msg, &out)
			require.Equal(t, tc.sha3_256, hex.EncodeToString(out[:]))
		})
	}
}

func TestKnownAnswers512Prefix(t *testing.T) {
	// spec.md's table only records the first 32 bytes of the SHA3-512
	// digests, so only the prefix is checked here.
	for _, tc := range katCases {
		t.Run(tc.name, func(t *testing.T) {
			var out [Size512]byte
			Sum512(tc.msg, &out)
			got := hex.EncodeToString(out[:])
			require.True(t, strings.HasPrefix(got, tc.sha3_512px),
				"SHA3-512(%s) = %s, want prefix %s", tc.name, got, tc.sha3_512px)
		})
	}
}

// TestLengthFourNotThree guards against reintroducing the source anomaly
// documented in spec.md §9: the original harness hashed "test" with length
// 3 ("tes") instead of 4. This asserts the corrected length-4 input hashes
// to something other than the length-3 input.
func TestLengthFourNotThree(t *testing.T) {
	var full, truncated [Size512]byte
	Sum512([]byte("test"), &full)
	Sum512([]byte("test")[:3], &truncated)
	require.False(t, bytes.Equal(full[:], truncated[:]), "\"test\" and \"tes\" must not collide")
}
