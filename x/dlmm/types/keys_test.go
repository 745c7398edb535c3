package types

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// TestKeyPrefixes tests that store prefixes stay distinct
func TestKeyPrefixes(t *testing.T) {
	prefixes := [][]byte{
		PoolKeyPrefix,
		PoolCountKey,
		BinKeyPrefix,
		PositionKeyPrefix,
		ParamsKey,
		ProtocolFeeKeyPrefix,
	}
	seen := map[byte]bool{}
	for _, p := range prefixes {
		require.Len(t, p, 1)
		require.False(t, seen[p[0]], "duplicate prefix %x", p[0])
		seen[p[0]] = true
	}
}

// TestBinIDBytes_Ordering tests that the encoded bin IDs sort numerically
// under bytewise comparison, across the sign boundary included
func TestBinIDBytes_Ordering(t *testing.T) {
	ids := []int32{MinBinID, -1_000_000, -1000, -2, -1, 0, 1, 2, 1000, 1_000_000, MaxBinID}
	for i := 0; i < len(ids)-1; i++ {
		a := binIDBytes(ids[i])
		b := binIDBytes(ids[i+1])
		require.Equal(t, -1, bytes.Compare(a, b),
			"%d must sort before %d", ids[i], ids[i+1])
	}
}

// TestBinIDBytes_RoundTrip tests encoding symmetry
func TestBinIDBytes_RoundTrip(t *testing.T) {
	for _, id := range []int32{MinBinID, -1, 0, 1, 42, MaxBinID} {
		require.Equal(t, id, BinIDFromBytes(binIDBytes(id)))
	}
}

// TestBinKey tests bin key layout
func TestBinKey(t *testing.T) {
	key := BinKey(7, -3)
	require.Len(t, key, 1+8+4)
	require.Equal(t, BinKeyPrefix[0], key[0])
	require.True(t, bytes.HasPrefix(key, BinKeyPoolPrefix(7)))
	require.Equal(t, int32(-3), BinIDFromBytes(key[9:]))

	// keys for different pools never share a prefix
	require.False(t, bytes.HasPrefix(BinKey(8, -3), BinKeyPoolPrefix(7)))
}

// TestPositionKey tests position key layout
func TestPositionKey(t *testing.T) {
	provider := sdk.AccAddress([]byte("provider____________"))
	key := PositionKey(3, 11, provider)

	require.True(t, bytes.HasPrefix(key, PositionKeyBinPrefix(3, 11)))
	require.Equal(t, provider.Bytes(), key[len(PositionKeyBinPrefix(3, 11)):])
}

// TestPoolKey tests pool key ordering
func TestPoolKey(t *testing.T) {
	require.Equal(t, -1, bytes.Compare(PoolKey(1), PoolKey(2)))
	require.Equal(t, -1, bytes.Compare(PoolKey(255), PoolKey(256)))
}

// TestProtocolFeeKey tests per-denom separation
func TestProtocolFeeKey(t *testing.T) {
	require.NotEqual(t, ProtocolFeeKey(1, "upearl"), ProtocolFeeKey(1, "uusdt"))
	require.NotEqual(t, ProtocolFeeKey(1, "upearl"), ProtocolFeeKey(2, "upearl"))
}
