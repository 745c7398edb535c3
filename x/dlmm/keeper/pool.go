package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) (uint64, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(types.PoolCountKey, nextBz)

	return poolID, nil
}

// SetNextPoolId sets the next pool ID counter
func (k Keeper) SetNextPoolId(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(types.PoolCountKey, bz)
}

// GetNextPoolIDValue reads the counter without incrementing it
func (k Keeper) GetNextPoolIDValue(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// GetPool returns a pool by ID
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolKey(poolID))
	if bz == nil {
		return types.Pool{}, false
	}

	var pool types.Pool
	k.cdc.MustUnmarshal(bz, &pool)
	return pool, true
}

// SetPool persists a pool
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) {
	store := k.getStore(ctx)
	bz := k.cdc.MustMarshal(&pool)
	store.Set(types.PoolKey(pool.Id), bz)
}

// IteratePools visits every pool in ascending ID order until cb returns true
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		k.cdc.MustUnmarshal(iterator.Value(), &pool)
		if cb(pool) {
			break
		}
	}
}

// GetAllPools returns every pool in ascending ID order
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	pools := []types.Pool{}
	k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools
}

// GetPoolByDenoms finds the pool for a token pair and bin step
func (k Keeper) GetPoolByDenoms(ctx context.Context, tokenX, tokenY string, binStep uint32) (types.Pool, bool) {
	var found types.Pool
	var ok bool
	k.IteratePools(ctx, func(pool types.Pool) bool {
		if pool.TokenX == tokenX && pool.TokenY == tokenY && pool.BinStep == binStep {
			found, ok = pool, true
			return true
		}
		return false
	})
	return found, ok
}

// CreatePool creates a new pool and seeds its active bin with the creator's
// initial deposit. When the message carries a non-zero initial price it must
// agree with the active bin's derived price within 0.1%.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, msg *types.MsgCreatePool) (types.Pool, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.Pool{}, err
	}

	if _, exists := k.GetPoolByDenoms(ctx, msg.TokenX, msg.TokenY, msg.BinStep); exists {
		return types.Pool{}, types.ErrInvalidPoolState.Wrapf(
			"pool for %s/%s at bin step %d already exists", msg.TokenX, msg.TokenY, msg.BinStep)
	}

	price, err := types.PriceFromID(msg.ActiveBinId, msg.BinStep)
	if err != nil {
		return types.Pool{}, err
	}
	if !msg.InitialPrice.IsZero() {
		diff := msg.InitialPrice.Sub(price).Abs()
		// 0.1% tolerance against the derived bin price
		if diff.MulRaw(1000).GT(price) {
			return types.Pool{}, types.ErrInvalidPrice.Wrapf(
				"initial price %s deviates more than 0.1%% from bin %d price %s",
				msg.InitialPrice, msg.ActiveBinId, price)
		}
	}

	poolID, err := k.GetNextPoolID(ctx)
	if err != nil {
		return types.Pool{}, fmt.Errorf("CreatePool: next pool id: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().UnixMilli()

	pool := types.Pool{
		Id:              poolID,
		TokenX:          msg.TokenX,
		TokenY:          msg.TokenY,
		BinStep:         msg.BinStep,
		BaseFactor:      msg.BaseFactor,
		ProtocolFeeRate: msg.ProtocolFeeRate,
		ActiveBinId:     msg.ActiveBinId,
		Active:          true,
		Volatility: types.VolatilityAccumulator{
			Value:            0,
			ReferenceBinId:   msg.ActiveBinId,
			LastUpdateUnixMs: now,
		},
		CreatedAtUnixMs: now,
	}

	seed := sdk.NewCoins(
		sdk.NewCoin(msg.TokenX, msg.SeedAmountX),
		sdk.NewCoin(msg.TokenY, msg.SeedAmountY),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, types.ModuleName, seed); err != nil {
		return types.Pool{}, fmt.Errorf("CreatePool: seed transfer: %w", err)
	}

	bin := types.NewBin(msg.ActiveBinId, price)
	bin.ReserveX = msg.SeedAmountX
	bin.ReserveY = msg.SeedAmountY
	bin.LastUpdateUnixMs = now

	shares, err := types.LiquidityFromAmounts(msg.SeedAmountX, msg.SeedAmountY, price)
	if err != nil {
		return types.Pool{}, err
	}
	if !shares.IsPositive() {
		return types.Pool{}, types.ErrZeroAmount.Wrap("seed deposit rounds to zero liquidity")
	}
	bin.TotalShares = shares

	k.SetPool(ctx, pool)
	k.SetBin(ctx, poolID, bin)
	k.SetPosition(ctx, poolID, bin.Id, creator, types.LiquidityPosition{
		Shares:           shares,
		FeeGrowthSnapX:   bin.FeeGrowthX,
		FeeGrowthSnapY:   bin.FeeGrowthY,
		LastUpdateUnixMs: now,
	})

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreatePool,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTokenX, msg.TokenX),
			sdk.NewAttribute(types.AttributeKeyTokenY, msg.TokenY),
			sdk.NewAttribute(types.AttributeKeyBinStep, fmt.Sprintf("%d", msg.BinStep)),
			sdk.NewAttribute(types.AttributeKeyActiveBinID, fmt.Sprintf("%d", msg.ActiveBinId)),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	k.Logger(ctx).Info("created pool",
		"pool_id", poolID,
		"token_x", msg.TokenX,
		"token_y", msg.TokenY,
		"bin_step", msg.BinStep,
		"active_bin", msg.ActiveBinId,
	)

	m := GetMetrics()
	m.PoolsCreated.Inc()
	m.ActiveBin.WithLabelValues(fmt.Sprintf("%d", poolID)).Set(float64(msg.ActiveBinId))

	return pool, nil
}
