package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// GetBin returns a bin of a pool by ID
func (k Keeper) GetBin(ctx context.Context, poolID uint64, binID int32) (types.Bin, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.BinKey(poolID, binID))
	if bz == nil {
		return types.Bin{}, false
	}

	var bin types.Bin
	k.cdc.MustUnmarshal(bz, &bin)
	return bin, true
}

// SetBin persists a bin
func (k Keeper) SetBin(ctx context.Context, poolID uint64, bin types.Bin) {
	store := k.getStore(ctx)
	bz := k.cdc.MustMarshal(&bin)
	store.Set(types.BinKey(poolID, bin.Id), bz)
}

// DeleteBin removes a bin from the store
func (k Keeper) DeleteBin(ctx context.Context, poolID uint64, binID int32) {
	store := k.getStore(ctx)
	store.Delete(types.BinKey(poolID, binID))
}

// GetOrCreateBin returns the bin at binID, materializing an empty one with
// its derived price on first touch. Bins never stored behave exactly like
// stored all-zero bins.
func (k Keeper) GetOrCreateBin(ctx context.Context, pool types.Pool, binID int32) (types.Bin, error) {
	if bin, found := k.GetBin(ctx, pool.Id, binID); found {
		return bin, nil
	}
	price, err := types.PriceFromID(binID, pool.BinStep)
	if err != nil {
		return types.Bin{}, err
	}
	return types.NewBin(binID, price), nil
}

// IterateBins visits every bin of a pool in ascending bin ID order until cb
// returns true
func (k Keeper) IterateBins(ctx context.Context, poolID uint64, cb func(bin types.Bin) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.BinKeyPoolPrefix(poolID))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var bin types.Bin
		k.cdc.MustUnmarshal(iterator.Value(), &bin)
		if cb(bin) {
			break
		}
	}
}

// GetBinsInRange returns the stored bins of a pool with IDs in
// [minBinID, maxBinID], ascending
func (k Keeper) GetBinsInRange(ctx context.Context, pool types.Pool, minBinID, maxBinID int32) []types.BinInfo {
	infos := []types.BinInfo{}
	k.IterateBins(ctx, pool.Id, func(bin types.Bin) bool {
		if bin.Id < minBinID {
			return false
		}
		if bin.Id > maxBinID {
			return true
		}
		infos = append(infos, binInfo(pool, bin, true))
		return false
	})
	return infos
}

// GetBinInfo returns the read-only view of one bin. A never-touched bin
// reports zero reserves at its derived price.
func (k Keeper) GetBinInfo(ctx context.Context, pool types.Pool, binID int32) (types.BinInfo, error) {
	if bin, found := k.GetBin(ctx, pool.Id, binID); found {
		return binInfo(pool, bin, true), nil
	}
	price, err := types.PriceFromID(binID, pool.BinStep)
	if err != nil {
		return types.BinInfo{}, err
	}
	return binInfo(pool, types.NewBin(binID, price), false), nil
}

func binInfo(pool types.Pool, bin types.Bin, exists bool) types.BinInfo {
	return types.BinInfo{
		Exists:      exists,
		BinId:       bin.Id,
		ReserveX:    bin.ReserveX,
		ReserveY:    bin.ReserveY,
		TotalShares: bin.TotalShares,
		Price:       bin.Price,
		FeeGrowthX:  bin.FeeGrowthX,
		FeeGrowthY:  bin.FeeGrowthY,
		IsActive:    bin.Id == pool.ActiveBinId,
	}
}

// setBinChecked persists a bin after a mutation, stamping the update time.
func (k Keeper) setBinChecked(ctx context.Context, poolID uint64, bin types.Bin) error {
	if err := bin.Validate(); err != nil {
		return err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	bin.LastUpdateUnixMs = sdkCtx.BlockTime().UnixMilli()
	k.SetBin(ctx, poolID, bin)
	return nil
}
