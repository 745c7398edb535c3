package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// InitGenesis initializes the dlmm module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid dlmm genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}
	k.SetNextPoolId(ctx, genState.NextPoolId)

	for _, pool := range genState.Pools {
		k.SetPool(ctx, pool)
	}
	for _, rec := range genState.Bins {
		k.SetBin(ctx, rec.PoolId, rec.Bin)
	}
	for _, rec := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(rec.Provider)
		if err != nil {
			return fmt.Errorf("invalid position provider %q: %w", rec.Provider, err)
		}
		k.SetPosition(ctx, rec.PoolId, rec.BinId, provider, rec.Position)
	}
	for _, rec := range genState.ProtocolFees {
		k.setProtocolFee(ctx, rec.PoolId, rec.Denom, rec.Amount)
	}

	return nil
}

// ExportGenesis returns the dlmm module's state as a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	genState := types.GenesisState{
		Params:       params,
		NextPoolId:   k.GetNextPoolIDValue(ctx),
		Pools:        k.GetAllPools(ctx),
		Bins:         []types.BinRecord{},
		Positions:    []types.PositionRecord{},
		ProtocolFees: []types.ProtocolFeeRecord{},
	}

	for _, pool := range genState.Pools {
		k.IterateBins(ctx, pool.Id, func(bin types.Bin) bool {
			genState.Bins = append(genState.Bins, types.BinRecord{PoolId: pool.Id, Bin: bin})
			k.IterateBinPositions(ctx, pool.Id, bin.Id, func(provider sdk.AccAddress, pos types.LiquidityPosition) bool {
				genState.Positions = append(genState.Positions, types.PositionRecord{
					PoolId:   pool.Id,
					BinId:    bin.Id,
					Provider: provider.String(),
					Position: pos,
				})
				return false
			})
			return false
		})

		for _, denom := range []string{pool.TokenX, pool.TokenY} {
			amount := k.GetProtocolFee(ctx, pool.Id, denom)
			if amount.IsPositive() {
				genState.ProtocolFees = append(genState.ProtocolFees, types.ProtocolFeeRecord{
					PoolId: pool.Id,
					Denom:  denom,
					Amount: amount,
				})
			}
		}
	}

	return &genState, nil
}
