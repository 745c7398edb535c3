package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// GetProtocolFee returns the accumulated protocol fee of a pool in a denom
func (k Keeper) GetProtocolFee(ctx context.Context, poolID uint64, denom string) sdkmath.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.ProtocolFeeKey(poolID, denom))
	if bz == nil {
		return sdkmath.ZeroInt()
	}

	var amount sdkmath.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("GetProtocolFee: corrupt amount for pool %d denom %s: %w", poolID, denom, err))
	}
	return amount
}

// setProtocolFee stores the accumulated protocol fee, deleting zero entries
func (k Keeper) setProtocolFee(ctx context.Context, poolID uint64, denom string, amount sdkmath.Int) {
	store := k.getStore(ctx)
	key := types.ProtocolFeeKey(poolID, denom)
	if amount.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Errorf("setProtocolFee: marshal: %w", err))
	}
	store.Set(key, bz)
}

// addProtocolFee credits a pool's pending protocol fee balance
func (k Keeper) addProtocolFee(ctx context.Context, poolID uint64, denom string, amount sdkmath.Int) {
	if !amount.IsPositive() {
		return
	}
	current := k.GetProtocolFee(ctx, poolID, denom)
	k.setProtocolFee(ctx, poolID, denom, current.Add(amount))
}

// SweepProtocolFees transfers a pool's pending protocol fees to the
// recipient and zeroes the balances. Sweeping an empty balance is a no-op,
// not an error.
func (k Keeper) SweepProtocolFees(ctx context.Context, poolID uint64, recipient sdk.AccAddress) (sweptX, sweptY sdkmath.Int, err error) {
	zero := sdkmath.ZeroInt()

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return zero, zero, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	sweptX = k.GetProtocolFee(ctx, poolID, pool.TokenX)
	sweptY = k.GetProtocolFee(ctx, poolID, pool.TokenY)
	if sweptX.IsZero() && sweptY.IsZero() {
		return zero, zero, nil
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	k.setProtocolFee(cacheCtx, poolID, pool.TokenX, zero)
	k.setProtocolFee(cacheCtx, poolID, pool.TokenY, zero)

	coins := sdk.NewCoins(
		sdk.NewCoin(pool.TokenX, sweptX),
		sdk.NewCoin(pool.TokenY, sweptY),
	)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, recipient, coins); err != nil {
		return zero, zero, fmt.Errorf("SweepProtocolFees: transfer: %w", err)
	}

	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProtocolSweep,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmountX, sweptX.String()),
			sdk.NewAttribute(types.AttributeKeyAmountY, sweptY.String()),
		),
	)

	return sweptX, sweptY, nil
}
