package testutil

import (
	"crypto/rand"
	"testing"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/stretchr/testify/require"
)

// RandomAddress returns a random 20 byte bech32 account address with prefix.
func RandomAddress(t *testing.T, prefix string) string {
	t.Helper()

	bz := make([]byte, 20)
	_, err := rand.Read(bz)
	require.NoError(t, err)

	addr, err := bech32.ConvertAndEncode(prefix, bz)
	require.NoError(t, err)
	return addr
}
