package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// checkAuthority rejects callers other than the module's governance
// authority.
func (k Keeper) checkAuthority(authority string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	return nil
}

// SetPoolStatus pauses or resumes a pool. A paused pool rejects swaps and
// deposits; withdrawals stay open so providers are never trapped.
func (k Keeper) SetPoolStatus(ctx context.Context, authority string, poolID uint64, active bool) error {
	if err := k.checkAuthority(authority); err != nil {
		return err
	}

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	pool.Active = active
	k.SetPool(ctx, pool)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolStatus,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActive, fmt.Sprintf("%t", active)),
		),
	)

	k.Logger(ctx).Info("pool status changed", "pool_id", poolID, "active", active)
	return nil
}

// SetBaseFactor updates a pool's base fee factor
func (k Keeper) SetBaseFactor(ctx context.Context, authority string, poolID uint64, baseFactor uint32) error {
	if err := k.checkAuthority(authority); err != nil {
		return err
	}
	if err := types.ValidateBaseFactor(baseFactor); err != nil {
		return err
	}

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	pool.BaseFactor = baseFactor
	k.SetPool(ctx, pool)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBaseFactorSet,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyBaseFactor, fmt.Sprintf("%d", baseFactor)),
		),
	)
	return nil
}

// ResetVolatility zeroes a pool's volatility accumulator and re-references
// it to the current active bin.
func (k Keeper) ResetVolatility(ctx context.Context, authority string, poolID uint64) error {
	if err := k.checkAuthority(authority); err != nil {
		return err
	}

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool.Volatility = types.VolatilityAccumulator{
		Value:            0,
		ReferenceBinId:   pool.ActiveBinId,
		LastUpdateUnixMs: sdkCtx.BlockTime().UnixMilli(),
	}
	k.SetPool(ctx, pool)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVolatilityReset,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		),
	)
	return nil
}

// UpdateParams replaces the module parameters
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	if err := k.checkAuthority(authority); err != nil {
		return err
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeParamsUpdated),
	)
	return nil
}
