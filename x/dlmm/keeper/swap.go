package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// Swap executes a swap against a pool. The entire swap runs on a branched
// store and commits only if the output clears minAmountOut, so a failed
// swap leaves no trace. Input not consumed by a partial fill stays with the
// trader.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, msg *types.MsgSwap) (types.SwapResult, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.SwapResult{}, err
	}

	pool, found := k.GetPool(ctx, msg.PoolId)
	if !found {
		return types.SwapResult{}, types.ErrPoolNotFound.Wrapf("pool %d", msg.PoolId)
	}
	if !pool.Active {
		return types.SwapResult{}, types.ErrPoolInactive.Wrapf("pool %d", msg.PoolId)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.SwapResult{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	result, err := k.executeSwap(cacheCtx, &pool, msg.Direction, msg.AmountIn, params)
	if err != nil {
		return types.SwapResult{}, err
	}
	if result.AmountOut.IsZero() {
		return types.SwapResult{}, types.ErrInsufficientLiquidity.Wrapf(
			"pool %d has no %s liquidity in reach", msg.PoolId, pool.DenomOut(msg.Direction))
	}
	if result.AmountOut.LT(msg.MinAmountOut) {
		return types.SwapResult{}, types.ErrMinAmountOut.Wrapf(
			"got %s, want at least %s", result.AmountOut, msg.MinAmountOut)
	}

	// Settle funds on the branch as well, so a failed transfer also rolls
	// everything back. Only the consumed input is charged.
	inCoins := sdk.NewCoins(sdk.NewCoin(pool.DenomIn(msg.Direction), result.AmountIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, trader, types.ModuleName, inCoins); err != nil {
		return types.SwapResult{}, fmt.Errorf("Swap: collect input: %w", err)
	}
	outCoins := sdk.NewCoins(sdk.NewCoin(pool.DenomOut(msg.Direction), result.AmountOut))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, trader, outCoins); err != nil {
		return types.SwapResult{}, fmt.Errorf("Swap: pay output: %w", err)
	}

	// Volatility folds in once per completed swap.
	now := sdkCtx.BlockTime().UnixMilli()
	pool.Volatility.Advance(result.BinsCrossed, result.FinalBinId, now, params.VolatilityUnit, params.MaxVolatility)
	k.SetPool(cacheCtx, pool)

	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyDirection, msg.Direction.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, result.AmountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, result.AmountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFee, result.FeePaid.String()),
			sdk.NewAttribute(types.AttributeKeyProtocolFee, result.ProtocolFee.String()),
			sdk.NewAttribute(types.AttributeKeyBinsCrossed, fmt.Sprintf("%d", result.BinsCrossed)),
			sdk.NewAttribute(types.AttributeKeyActiveBinID, fmt.Sprintf("%d", result.FinalBinId)),
			sdk.NewAttribute(types.AttributeKeyPriceImpact, result.PriceImpactBps.String()),
		),
	)

	k.Logger(ctx).Info("swap executed",
		"pool_id", pool.Id,
		"direction", msg.Direction.String(),
		"amount_in", result.AmountIn.String(),
		"amount_out", result.AmountOut.String(),
		"bins_crossed", result.BinsCrossed,
	)

	m := GetMetrics()
	poolLabel := fmt.Sprintf("%d", pool.Id)
	m.SwapsTotal.WithLabelValues(poolLabel, msg.Direction.String()).Inc()
	m.SwapVolume.WithLabelValues(poolLabel, pool.DenomIn(msg.Direction)).Add(amountToFloat(result.AmountIn))
	m.SwapFeesCharged.WithLabelValues(poolLabel, pool.DenomIn(msg.Direction)).Add(amountToFloat(result.FeePaid))
	m.SwapBinsCrossed.Observe(float64(result.BinsCrossed))
	m.SwapPriceImpact.Observe(amountToFloat(result.PriceImpactBps))
	m.ActiveBin.WithLabelValues(poolLabel).Set(float64(result.FinalBinId))
	m.VolatilityValue.WithLabelValues(poolLabel).Set(float64(pool.Volatility.Value))

	return result, nil
}

// QuoteSwap simulates a swap without mutating state. It runs the same
// traversal as Swap on a branch that is never committed.
func (k Keeper) QuoteSwap(ctx context.Context, poolID uint64, dir types.SwapDirection, amountIn sdkmath.Int) (types.SwapResult, error) {
	if err := dir.Validate(); err != nil {
		return types.SwapResult{}, err
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return types.SwapResult{}, types.ErrZeroAmount.Wrap("amount in must be positive")
	}

	// Paused pools still answer quotes; only mutating operations are
	// rejected.
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.SwapResult{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.SwapResult{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, _ := sdkCtx.CacheContext()
	return k.executeSwap(cacheCtx, &pool, dir, amountIn, params)
}

// executeSwap walks bins from the active bin in the direction's price
// order, converting at each bin's fixed price until the input is spent, the
// traversal cap is hit, or the bin range runs out. The fee is charged on
// the gross input of each portion at the dynamic rate for the crossings so
// far; LP fees feed the bin's growth accumulator and protocol fees the
// pool's sweep balance, neither touching reserves.
func (k Keeper) executeSwap(ctx sdk.Context, pool *types.Pool, dir types.SwapDirection, amountIn sdkmath.Int, params types.Params) (types.SwapResult, error) {
	startPrice, err := types.PriceFromID(pool.ActiveBinId, pool.BinStep)
	if err != nil {
		return types.SwapResult{}, err
	}

	remaining := amountIn
	currentID := pool.ActiveBinId
	crossed := uint32(0)
	amountOut := sdkmath.ZeroInt()
	feeTotal := sdkmath.ZeroInt()
	protocolTotal := sdkmath.ZeroInt()
	denomIn := pool.DenomIn(dir)

	for remaining.IsPositive() {
		bin, err := k.GetOrCreateBin(ctx, *pool, currentID)
		if err != nil {
			return types.SwapResult{}, err
		}

		maxNet, err := types.MaxSwapAmount(bin.ReserveX, bin.ReserveY, dir, bin.Price)
		if err != nil {
			return types.SwapResult{}, err
		}
		if maxNet.IsZero() {
			// Nothing to buy here; step over without consuming input.
			next := types.NextBinID(currentID, dir)
			if next == currentID || crossed+1 >= types.MaxBinsPerSwap {
				break
			}
			currentID = next
			crossed++
			continue
		}

		rate := params.DynamicFeeRate(*pool, params.VolatilityInput(*pool, crossed))
		maxGross := types.GrossFromNet(maxNet, rate)
		portion := remaining
		if portion.GT(maxGross) {
			portion = maxGross
		}
		fee := types.FeeOnAmount(portion, rate)
		net := portion.Sub(fee)
		if !net.IsPositive() {
			break
		}

		out, exhausted, err := types.SwapWithinBin(bin.ReserveX, bin.ReserveY, net, dir, bin.Price)
		if err != nil {
			return types.SwapResult{}, err
		}
		if out.IsZero() {
			// Input too small to buy a single unit at this price.
			break
		}
		if err := types.ApplyReservesDelta(&bin, net, out, dir); err != nil {
			return types.SwapResult{}, err
		}

		lpFee, protocolFee := types.SplitFee(fee, pool.ProtocolFeeRate)
		if lpFee.IsPositive() && bin.TotalShares.IsPositive() {
			growth := lpFee.Mul(types.FeeGrowthScale).Quo(bin.TotalShares)
			if dir == types.SwapDirectionXForY {
				bin.FeeGrowthX = bin.FeeGrowthX.Add(growth)
			} else {
				bin.FeeGrowthY = bin.FeeGrowthY.Add(growth)
			}
		}
		if protocolFee.IsPositive() {
			k.addProtocolFee(ctx, pool.Id, denomIn, protocolFee)
		}

		if err := k.setBinChecked(ctx, pool.Id, bin); err != nil {
			return types.SwapResult{}, err
		}

		remaining = remaining.Sub(portion)
		amountOut = amountOut.Add(out)
		feeTotal = feeTotal.Add(fee)
		protocolTotal = protocolTotal.Add(protocolFee)

		if exhausted && remaining.IsPositive() {
			next := types.NextBinID(currentID, dir)
			if next == currentID || crossed+1 >= types.MaxBinsPerSwap {
				break
			}
			currentID = next
			crossed++
		}
	}

	pool.ActiveBinId = currentID
	k.SetPool(ctx, *pool)

	endPrice, err := types.PriceFromID(currentID, pool.BinStep)
	if err != nil {
		return types.SwapResult{}, err
	}
	impact := endPrice.Sub(startPrice).Abs().MulRaw(types.BasisPointMax).Quo(startPrice)

	return types.SwapResult{
		AmountIn:       amountIn.Sub(remaining),
		AmountOut:      amountOut,
		FeePaid:        feeTotal,
		ProtocolFee:    protocolTotal,
		BinsCrossed:    crossed,
		FinalBinId:     currentID,
		PriceImpactBps: impact,
	}, nil
}
