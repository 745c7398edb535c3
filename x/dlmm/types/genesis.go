package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BinRecord pairs a bin with its owning pool for genesis export.
type BinRecord struct {
	PoolId uint64 `json:"pool_id"`
	Bin    Bin    `json:"bin"`
}

// PositionRecord pairs a liquidity position with its pool, bin and owner.
type PositionRecord struct {
	PoolId   uint64            `json:"pool_id"`
	BinId    int32             `json:"bin_id"`
	Provider string            `json:"provider"`
	Position LiquidityPosition `json:"position"`
}

// ProtocolFeeRecord holds accumulated protocol fees pending sweep.
type ProtocolFeeRecord struct {
	PoolId uint64      `json:"pool_id"`
	Denom  string      `json:"denom"`
	Amount sdkmath.Int `json:"amount"`
}

// GenesisState defines the module's genesis state.
type GenesisState struct {
	Params       Params              `json:"params"`
	NextPoolId   uint64              `json:"next_pool_id"`
	Pools        []Pool              `json:"pools"`
	Bins         []BinRecord         `json:"bins"`
	Positions    []PositionRecord    `json:"positions"`
	ProtocolFees []ProtocolFeeRecord `json:"protocol_fees"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		NextPoolId:   1,
		Pools:        []Pool{},
		Bins:         []BinRecord{},
		Positions:    []PositionRecord{},
		ProtocolFees: []ProtocolFeeRecord{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	poolIDs := make(map[uint64]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", pool.Id, err)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool %d has id beyond next pool id %d", pool.Id, gs.NextPoolId)
		}
		if _, ok := poolIDs[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		poolIDs[pool.Id] = struct{}{}
	}

	binKeys := make(map[string]struct{}, len(gs.Bins))
	for _, rec := range gs.Bins {
		if _, ok := poolIDs[rec.PoolId]; !ok {
			return fmt.Errorf("bin %d references unknown pool %d", rec.Bin.Id, rec.PoolId)
		}
		if err := rec.Bin.Validate(); err != nil {
			return fmt.Errorf("pool %d bin %d: %w", rec.PoolId, rec.Bin.Id, err)
		}
		key := fmt.Sprintf("%d/%d", rec.PoolId, rec.Bin.Id)
		if _, ok := binKeys[key]; ok {
			return fmt.Errorf("duplicate bin %d in pool %d", rec.Bin.Id, rec.PoolId)
		}
		binKeys[key] = struct{}{}
	}

	// Positions must reference an exported bin, and per-bin shares must
	// sum to the bin's total.
	shareSums := make(map[string]sdkmath.Int, len(binKeys))
	posKeys := make(map[string]struct{}, len(gs.Positions))
	for _, rec := range gs.Positions {
		binKey := fmt.Sprintf("%d/%d", rec.PoolId, rec.BinId)
		if _, ok := binKeys[binKey]; !ok {
			return fmt.Errorf("position references unknown bin %d in pool %d", rec.BinId, rec.PoolId)
		}
		if _, err := sdk.AccAddressFromBech32(rec.Provider); err != nil {
			return fmt.Errorf("position has invalid provider address %q: %w", rec.Provider, err)
		}
		posKey := binKey + "/" + rec.Provider
		if _, ok := posKeys[posKey]; ok {
			return fmt.Errorf("duplicate position for %s in pool %d bin %d", rec.Provider, rec.PoolId, rec.BinId)
		}
		posKeys[posKey] = struct{}{}
		if rec.Position.Shares.IsNil() || !rec.Position.Shares.IsPositive() {
			return fmt.Errorf("position for %s in pool %d bin %d has non-positive shares", rec.Provider, rec.PoolId, rec.BinId)
		}
		sum, ok := shareSums[binKey]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		shareSums[binKey] = sum.Add(rec.Position.Shares)
	}
	for _, rec := range gs.Bins {
		key := fmt.Sprintf("%d/%d", rec.PoolId, rec.Bin.Id)
		sum, ok := shareSums[key]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		if !sum.Equal(rec.Bin.TotalShares) {
			return fmt.Errorf("pool %d bin %d: position shares %s do not sum to bin total %s",
				rec.PoolId, rec.Bin.Id, sum, rec.Bin.TotalShares)
		}
	}

	for _, rec := range gs.ProtocolFees {
		if _, ok := poolIDs[rec.PoolId]; !ok {
			return fmt.Errorf("protocol fee record references unknown pool %d", rec.PoolId)
		}
		if err := sdk.ValidateDenom(rec.Denom); err != nil {
			return fmt.Errorf("protocol fee record for pool %d: %w", rec.PoolId, err)
		}
		if rec.Amount.IsNil() || rec.Amount.IsNegative() {
			return fmt.Errorf("protocol fee record for pool %d denom %s has negative amount", rec.PoolId, rec.Denom)
		}
	}

	return nil
}
