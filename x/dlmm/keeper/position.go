package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// GetPosition returns a provider's position in a bin
func (k Keeper) GetPosition(ctx context.Context, poolID uint64, binID int32, provider sdk.AccAddress) (types.LiquidityPosition, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.PositionKey(poolID, binID, provider))
	if bz == nil {
		return types.LiquidityPosition{}, false
	}

	var pos types.LiquidityPosition
	k.cdc.MustUnmarshal(bz, &pos)
	return pos, true
}

// SetPosition persists a provider's position in a bin
func (k Keeper) SetPosition(ctx context.Context, poolID uint64, binID int32, provider sdk.AccAddress, pos types.LiquidityPosition) {
	store := k.getStore(ctx)
	bz := k.cdc.MustMarshal(&pos)
	store.Set(types.PositionKey(poolID, binID, provider), bz)
}

// DeletePosition removes a provider's position from a bin
func (k Keeper) DeletePosition(ctx context.Context, poolID uint64, binID int32, provider sdk.AccAddress) {
	store := k.getStore(ctx)
	store.Delete(types.PositionKey(poolID, binID, provider))
}

// IterateBinPositions visits every position in a bin until cb returns true
func (k Keeper) IterateBinPositions(ctx context.Context, poolID uint64, binID int32, cb func(provider sdk.AccAddress, pos types.LiquidityPosition) (stop bool)) {
	store := k.getStore(ctx)
	prefixLen := len(types.PositionKeyBinPrefix(poolID, binID))
	iterator := storetypes.KVStorePrefixIterator(store, types.PositionKeyBinPrefix(poolID, binID))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pos types.LiquidityPosition
		k.cdc.MustUnmarshal(iterator.Value(), &pos)
		provider := sdk.AccAddress(iterator.Key()[prefixLen:])
		if cb(provider, pos) {
			break
		}
	}
}

// PendingFees returns the unclaimed fee amounts a position would receive at
// the bin's current fee growth: shares * (growth - snapshot) / 10^18.
func PendingFees(bin types.Bin, pos types.LiquidityPosition) (feesX, feesY sdkmath.Int) {
	feesX = pos.Shares.Mul(bin.FeeGrowthX.Sub(pos.FeeGrowthSnapX)).Quo(types.FeeGrowthScale)
	feesY = pos.Shares.Mul(bin.FeeGrowthY.Sub(pos.FeeGrowthSnapY)).Quo(types.FeeGrowthScale)
	return feesX, feesY
}
