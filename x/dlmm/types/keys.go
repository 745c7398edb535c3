package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "dlmm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x02}

	// BinKeyPrefix is the prefix for bin store keys
	BinKeyPrefix = []byte{0x03}

	// PositionKeyPrefix is the prefix for liquidity position store keys
	PositionKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}

	// ProtocolFeeKeyPrefix is the prefix for accumulated protocol fees
	ProtocolFeeKeyPrefix = []byte{0x06}
)

// PoolKey returns the store key for a pool by ID
func PoolKey(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(PoolKeyPrefix, bz...)
}

// binIDBytes encodes a signed bin ID so that the big-endian byte order
// matches the numeric order. The sign bit is flipped so negative IDs sort
// before non-negative ones under bytewise comparison.
func binIDBytes(binID int32) []byte {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, uint32(binID)^0x80000000)
	return bz
}

// BinIDFromBytes reverses binIDBytes.
func BinIDFromBytes(bz []byte) int32 {
	return int32(binary.BigEndian.Uint32(bz) ^ 0x80000000)
}

// BinKey returns the store key for a bin of a pool
func BinKey(poolID uint64, binID int32) []byte {
	poolBz := make([]byte, 8)
	binary.BigEndian.PutUint64(poolBz, poolID)
	key := append(BinKeyPrefix, poolBz...)
	return append(key, binIDBytes(binID)...)
}

// BinKeyPoolPrefix returns the prefix covering all bins of a pool.
// Bins iterate in ascending bin ID order under this prefix.
func BinKeyPoolPrefix(poolID uint64) []byte {
	poolBz := make([]byte, 8)
	binary.BigEndian.PutUint64(poolBz, poolID)
	return append(BinKeyPrefix, poolBz...)
}

// PositionKey returns the store key for a liquidity position
func PositionKey(poolID uint64, binID int32, provider sdk.AccAddress) []byte {
	poolBz := make([]byte, 8)
	binary.BigEndian.PutUint64(poolBz, poolID)
	key := append(PositionKeyPrefix, poolBz...)
	key = append(key, binIDBytes(binID)...)
	return append(key, provider.Bytes()...)
}

// PositionKeyBinPrefix returns the prefix for all positions in a bin
func PositionKeyBinPrefix(poolID uint64, binID int32) []byte {
	poolBz := make([]byte, 8)
	binary.BigEndian.PutUint64(poolBz, poolID)
	key := append(PositionKeyPrefix, poolBz...)
	return append(key, binIDBytes(binID)...)
}

// ProtocolFeeKey returns the store key for accumulated protocol fees of a
// pool in a given denom
func ProtocolFeeKey(poolID uint64, denom string) []byte {
	poolBz := make([]byte, 8)
	binary.BigEndian.PutUint64(poolBz, poolID)
	key := append(ProtocolFeeKeyPrefix, poolBz...)
	return append(key, []byte(denom)...)
}
