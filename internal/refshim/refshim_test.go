package refshim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strandhash/keccak/internal/refshim"
	"github.com/strandhash/keccak/sha3"
)

// TestAgreesWithLocalImplementation cross-validates this module's own
// sha3 package against golang.org/x/crypto/sha3 for a handful of inputs,
// the same role ethereum-go-ethereum's keccak_test.go gives
// golang.org/x/crypto/sha3 against its own Keccak implementation.
func TestAgreesWithLocalImplementation(t *testing.T) {
	messages := [][]byte{nil, []byte("abc"), []byte("the quick brown fox")}

	for _, msg := range messages {
		var want256 [sha3.Size256]byte
		sha3.Sum256(msg, &want256)
		require.Equal(t, want256[:], refshim.Sum256(msg))

		var want512 [sha3.Size512]byte
		sha3.Sum512(msg, &want512)
		require.Equal(t, want512[:], refshim.Sum512(msg))
	}
}
