package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// AddLiquidity deposits into a single bin and mints shares proportional to
// the liquidity value added. Bins above the active bin accept only token X,
// bins below only token Y; the active bin accepts both. A provider adding
// to an existing position has pending fees paid out first so the new
// snapshot starts clean.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, msg *types.MsgAddLiquidity) (sdkmath.Int, error) {
	if err := msg.ValidateBasic(); err != nil {
		return sdkmath.Int{}, err
	}

	pool, found := k.GetPool(ctx, msg.PoolId)
	if !found {
		return sdkmath.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", msg.PoolId)
	}
	if !pool.Active {
		return sdkmath.Int{}, types.ErrPoolInactive.Wrapf("pool %d", msg.PoolId)
	}
	if msg.BinId > pool.ActiveBinId && !msg.AmountY.IsZero() {
		return sdkmath.Int{}, types.ErrInvalidAmount.Wrapf(
			"bin %d is above the active bin and only holds token X", msg.BinId)
	}
	if msg.BinId < pool.ActiveBinId && !msg.AmountX.IsZero() {
		return sdkmath.Int{}, types.ErrInvalidAmount.Wrapf(
			"bin %d is below the active bin and only holds token Y", msg.BinId)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	bin, err := k.GetOrCreateBin(cacheCtx, pool, msg.BinId)
	if err != nil {
		return sdkmath.Int{}, err
	}

	deposit, err := types.LiquidityFromAmounts(msg.AmountX, msg.AmountY, bin.Price)
	if err != nil {
		return sdkmath.Int{}, err
	}
	// A bin whose liquidity truncated to zero (possible at fractional
	// prices) is treated as a first deposit even if stale shares remain.
	var shares sdkmath.Int
	if bin.Liquidity().IsZero() {
		shares = deposit
	} else {
		shares = deposit.Mul(bin.TotalShares).Quo(bin.Liquidity())
	}
	if !shares.IsPositive() {
		return sdkmath.Int{}, types.ErrZeroAmount.Wrap("deposit rounds to zero shares")
	}

	coins := sdk.NewCoins(
		sdk.NewCoin(pool.TokenX, msg.AmountX),
		sdk.NewCoin(pool.TokenY, msg.AmountY),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, provider, types.ModuleName, coins); err != nil {
		return sdkmath.Int{}, fmt.Errorf("AddLiquidity: deposit transfer: %w", err)
	}

	now := sdkCtx.BlockTime().UnixMilli()
	pos, hasPos := k.GetPosition(cacheCtx, msg.PoolId, msg.BinId, provider)
	if hasPos {
		if err := k.payOutPendingFees(cacheCtx, pool, bin, provider, &pos); err != nil {
			return sdkmath.Int{}, err
		}
		pos.Shares = pos.Shares.Add(shares)
	} else {
		pos = types.LiquidityPosition{
			Shares:         shares,
			FeeGrowthSnapX: bin.FeeGrowthX,
			FeeGrowthSnapY: bin.FeeGrowthY,
		}
	}
	pos.LastUpdateUnixMs = now

	bin.ReserveX = bin.ReserveX.Add(msg.AmountX)
	bin.ReserveY = bin.ReserveY.Add(msg.AmountY)
	bin.TotalShares = bin.TotalShares.Add(shares)

	if err := k.setBinChecked(cacheCtx, msg.PoolId, bin); err != nil {
		return sdkmath.Int{}, err
	}
	k.SetPosition(cacheCtx, msg.PoolId, msg.BinId, provider, pos)

	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", msg.PoolId)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyBinID, fmt.Sprintf("%d", msg.BinId)),
			sdk.NewAttribute(types.AttributeKeyAmountX, msg.AmountX.String()),
			sdk.NewAttribute(types.AttributeKeyAmountY, msg.AmountY.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	m := GetMetrics()
	poolLabel := fmt.Sprintf("%d", msg.PoolId)
	m.LiquidityAdded.WithLabelValues(poolLabel, pool.TokenX).Add(amountToFloat(msg.AmountX))
	m.LiquidityAdded.WithLabelValues(poolLabel, pool.TokenY).Add(amountToFloat(msg.AmountY))

	return shares, nil
}

// RemoveLiquidity burns shares and pays out the proportional reserves plus
// the position's pending fees. The last burn in a bin sweeps the rounding
// dust so the bin always empties cleanly.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, msg *types.MsgRemoveLiquidity) (amountX, amountY, feesX, feesY sdkmath.Int, err error) {
	zero := sdkmath.ZeroInt()
	if err := msg.ValidateBasic(); err != nil {
		return zero, zero, zero, zero, err
	}

	pool, found := k.GetPool(ctx, msg.PoolId)
	if !found {
		return zero, zero, zero, zero, types.ErrPoolNotFound.Wrapf("pool %d", msg.PoolId)
	}
	if !pool.Active {
		return zero, zero, zero, zero, types.ErrPoolInactive.Wrapf("pool %d", msg.PoolId)
	}
	bin, found := k.GetBin(ctx, msg.PoolId, msg.BinId)
	if !found {
		return zero, zero, zero, zero, types.ErrBinNotFound.Wrapf("pool %d bin %d", msg.PoolId, msg.BinId)
	}
	pos, found := k.GetPosition(ctx, msg.PoolId, msg.BinId, provider)
	if !found {
		return zero, zero, zero, zero, types.ErrInsufficientShares.Wrapf(
			"no position for %s in pool %d bin %d", provider, msg.PoolId, msg.BinId)
	}
	if msg.Shares.GT(pos.Shares) {
		return zero, zero, zero, zero, types.ErrInsufficientShares.Wrapf(
			"burning %s of %s held", msg.Shares, pos.Shares)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	feesX, feesY = PendingFees(bin, pos)

	if msg.Shares.Equal(bin.TotalShares) {
		// Last shares standing take the whole reserves, dust included.
		amountX = bin.ReserveX
		amountY = bin.ReserveY
	} else {
		amountX = bin.ReserveX.Mul(msg.Shares).Quo(bin.TotalShares)
		amountY = bin.ReserveY.Mul(msg.Shares).Quo(bin.TotalShares)
	}

	bin.ReserveX = bin.ReserveX.Sub(amountX)
	bin.ReserveY = bin.ReserveY.Sub(amountY)
	bin.TotalShares = bin.TotalShares.Sub(msg.Shares)

	if bin.TotalShares.IsZero() {
		k.DeleteBin(cacheCtx, msg.PoolId, msg.BinId)
	} else if err := k.setBinChecked(cacheCtx, msg.PoolId, bin); err != nil {
		return zero, zero, zero, zero, err
	}

	pos.Shares = pos.Shares.Sub(msg.Shares)
	if pos.Shares.IsZero() {
		k.DeletePosition(cacheCtx, msg.PoolId, msg.BinId, provider)
	} else {
		pos.FeeGrowthSnapX = bin.FeeGrowthX
		pos.FeeGrowthSnapY = bin.FeeGrowthY
		pos.LastUpdateUnixMs = sdkCtx.BlockTime().UnixMilli()
		k.SetPosition(cacheCtx, msg.PoolId, msg.BinId, provider, pos)
	}

	payout := sdk.NewCoins(
		sdk.NewCoin(pool.TokenX, amountX.Add(feesX)),
		sdk.NewCoin(pool.TokenY, amountY.Add(feesY)),
	)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, provider, payout); err != nil {
		return zero, zero, zero, zero, fmt.Errorf("RemoveLiquidity: payout transfer: %w", err)
	}

	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", msg.PoolId)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyBinID, fmt.Sprintf("%d", msg.BinId)),
			sdk.NewAttribute(types.AttributeKeyAmountX, amountX.String()),
			sdk.NewAttribute(types.AttributeKeyAmountY, amountY.String()),
			sdk.NewAttribute(types.AttributeKeyFeeX, feesX.String()),
			sdk.NewAttribute(types.AttributeKeyFeeY, feesY.String()),
			sdk.NewAttribute(types.AttributeKeyShares, msg.Shares.String()),
		),
	)

	m := GetMetrics()
	poolLabel := fmt.Sprintf("%d", msg.PoolId)
	m.LiquidityRemoved.WithLabelValues(poolLabel, pool.TokenX).Add(amountToFloat(amountX))
	m.LiquidityRemoved.WithLabelValues(poolLabel, pool.TokenY).Add(amountToFloat(amountY))

	return amountX, amountY, feesX, feesY, nil
}

// ClaimBinFees pays out a position's pending fees and advances its
// snapshots without touching its shares.
func (k Keeper) ClaimBinFees(ctx context.Context, provider sdk.AccAddress, poolID uint64, binID int32) (feesX, feesY sdkmath.Int, err error) {
	zero := sdkmath.ZeroInt()

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return zero, zero, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if !pool.Active {
		return zero, zero, types.ErrPoolInactive.Wrapf("pool %d", poolID)
	}
	bin, found := k.GetBin(ctx, poolID, binID)
	if !found {
		return zero, zero, types.ErrBinNotFound.Wrapf("pool %d bin %d", poolID, binID)
	}
	pos, found := k.GetPosition(ctx, poolID, binID, provider)
	if !found {
		return zero, zero, types.ErrInsufficientShares.Wrapf(
			"no position for %s in pool %d bin %d", provider, poolID, binID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	feesX, feesY = PendingFees(bin, pos)
	if err := k.payOutPendingFees(cacheCtx, pool, bin, provider, &pos); err != nil {
		return zero, zero, err
	}
	pos.LastUpdateUnixMs = sdkCtx.BlockTime().UnixMilli()
	k.SetPosition(cacheCtx, poolID, binID, provider, pos)

	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimFees,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyBinID, fmt.Sprintf("%d", binID)),
			sdk.NewAttribute(types.AttributeKeyFeeX, feesX.String()),
			sdk.NewAttribute(types.AttributeKeyFeeY, feesY.String()),
		),
	)

	return feesX, feesY, nil
}

// payOutPendingFees settles a position's accrued fees and resets its
// snapshots to the bin's current growth.
func (k Keeper) payOutPendingFees(ctx context.Context, pool types.Pool, bin types.Bin, provider sdk.AccAddress, pos *types.LiquidityPosition) error {
	feesX, feesY := PendingFees(bin, *pos)
	if feesX.IsPositive() || feesY.IsPositive() {
		coins := sdk.NewCoins(
			sdk.NewCoin(pool.TokenX, feesX),
			sdk.NewCoin(pool.TokenY, feesY),
		)
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, coins); err != nil {
			return fmt.Errorf("fee payout: %w", err)
		}
	}
	pos.FeeGrowthSnapX = bin.FeeGrowthX
	pos.FeeGrowthSnapY = bin.FeeGrowthY
	return nil
}
