package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// SwapDirection selects which token enters the pool.
type SwapDirection int32

const (
	// SwapDirectionXForY sells token X for token Y; traversal walks down
	SwapDirectionXForY SwapDirection = 1
	// SwapDirectionYForX sells token Y for token X; traversal walks up
	SwapDirectionYForX SwapDirection = 2
)

// String implements fmt.Stringer
func (d SwapDirection) String() string {
	switch d {
	case SwapDirectionXForY:
		return "x_for_y"
	case SwapDirectionYForX:
		return "y_for_x"
	}
	return fmt.Sprintf("unknown(%d)", int32(d))
}

// Validate rejects directions other than the two defined ones.
func (d SwapDirection) Validate() error {
	if d != SwapDirectionXForY && d != SwapDirectionYForX {
		return ErrInvalidDirection.Wrapf("got %d", int32(d))
	}
	return nil
}

// VolatilityAccumulator tracks recent trading intensity for the dynamic
// fee curve. It decays with elapsed time and grows with bins crossed per
// swap. Mutated only after a completed swap; reset only by governance.
type VolatilityAccumulator struct {
	Value            uint64 `json:"value"`
	ReferenceBinId   int32  `json:"reference_bin_id"`
	LastUpdateUnixMs int64  `json:"last_update_unix_ms"`
}

// Pool holds the per-pair trading state. Bins are stored separately, keyed
// by (pool id, bin id).
type Pool struct {
	Id              uint64                `json:"id"`
	TokenX          string                `json:"token_x"`
	TokenY          string                `json:"token_y"`
	BinStep         uint32                `json:"bin_step"`
	BaseFactor      uint32                `json:"base_factor"`
	ProtocolFeeRate uint32                `json:"protocol_fee_rate"`
	ActiveBinId     int32                 `json:"active_bin_id"`
	Active          bool                  `json:"active"`
	Volatility      VolatilityAccumulator `json:"volatility"`
	CreatedAtUnixMs int64                 `json:"created_at_unix_ms"`
}

// Validate checks pool state consistency.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if p.TokenX == "" || p.TokenY == "" {
		return ErrInvalidTokenDenom.Wrap("token denoms cannot be empty")
	}
	if p.TokenX == p.TokenY {
		return ErrSameToken.Wrapf("%s", p.TokenX)
	}
	if err := ValidateBinStep(p.BinStep); err != nil {
		return err
	}
	if err := ValidateBaseFactor(p.BaseFactor); err != nil {
		return err
	}
	if err := ValidateProtocolFeeRate(p.ProtocolFeeRate); err != nil {
		return err
	}
	if p.ActiveBinId < MinBinID || p.ActiveBinId > MaxBinID {
		return ErrBinIdOutOfRange.Wrapf("active bin id %d", p.ActiveBinId)
	}
	return nil
}

// DenomIn returns the denom entering the pool for a swap direction.
func (p Pool) DenomIn(dir SwapDirection) string {
	if dir == SwapDirectionXForY {
		return p.TokenX
	}
	return p.TokenY
}

// DenomOut returns the denom leaving the pool for a swap direction.
func (p Pool) DenomOut(dir SwapDirection) string {
	if dir == SwapDirectionXForY {
		return p.TokenY
	}
	return p.TokenX
}

// Bin is a single fixed-price liquidity level. The constant-sum invariant
// price*ReserveX/2^64 + ReserveY == liquidity backing TotalShares holds at
// every quiescent point. Fee growth accumulators are scaled by 10^18 and
// never decrease.
type Bin struct {
	Id               int32       `json:"id"`
	ReserveX         sdkmath.Int `json:"reserve_x"`
	ReserveY         sdkmath.Int `json:"reserve_y"`
	TotalShares      sdkmath.Int `json:"total_shares"`
	FeeGrowthX       sdkmath.Int `json:"fee_growth_x"`
	FeeGrowthY       sdkmath.Int `json:"fee_growth_y"`
	Price            sdkmath.Int `json:"price"`
	LastUpdateUnixMs int64       `json:"last_update_unix_ms"`
}

// NewBin returns an empty bin at the given ID with its cached price.
func NewBin(binID int32, price sdkmath.Int) Bin {
	return Bin{
		Id:          binID,
		ReserveX:    sdkmath.ZeroInt(),
		ReserveY:    sdkmath.ZeroInt(),
		TotalShares: sdkmath.ZeroInt(),
		FeeGrowthX:  sdkmath.ZeroInt(),
		FeeGrowthY:  sdkmath.ZeroInt(),
		Price:       price,
	}
}

// IsEmpty reports whether both reserves are zero. An all-zero bin is
// interchangeable with a never-created one.
func (b Bin) IsEmpty() bool {
	return b.ReserveX.IsZero() && b.ReserveY.IsZero()
}

// Liquidity returns the constant-sum liquidity price*X/2^64 + Y. A bin
// with an unset price reports zero liquidity.
func (b Bin) Liquidity() sdkmath.Int {
	l, err := LiquidityFromAmounts(b.ReserveX, b.ReserveY, b.Price)
	if err != nil {
		return sdkmath.ZeroInt()
	}
	return l
}

// Validate checks bin state consistency.
func (b Bin) Validate() error {
	if b.Id < MinBinID || b.Id > MaxBinID {
		return ErrBinIdOutOfRange.Wrapf("bin id %d", b.Id)
	}
	for name, v := range map[string]sdkmath.Int{
		"reserve_x": b.ReserveX, "reserve_y": b.ReserveY,
		"total_shares": b.TotalShares,
		"fee_growth_x": b.FeeGrowthX, "fee_growth_y": b.FeeGrowthY,
	} {
		if v.IsNil() || v.IsNegative() {
			return ErrInvalidAmount.Wrapf("bin %d: %s must be a non-negative integer", b.Id, name)
		}
	}
	if b.Price.IsNil() || !b.Price.IsPositive() {
		return ErrInvalidPrice.Wrapf("bin %d", b.Id)
	}
	if b.IsEmpty() != b.TotalShares.IsZero() {
		return ErrInvalidPoolState.Wrapf("bin %d: total shares zero iff reserves zero", b.Id)
	}
	return nil
}

// LiquidityPosition records one provider's share of one bin, with the fee
// growth snapshots taken at the last claim. Claimable fees are
// shares * (bin growth - snapshot) / 10^18.
type LiquidityPosition struct {
	Shares           sdkmath.Int `json:"shares"`
	FeeGrowthSnapX   sdkmath.Int `json:"fee_growth_snap_x"`
	FeeGrowthSnapY   sdkmath.Int `json:"fee_growth_snap_y"`
	LastUpdateUnixMs int64       `json:"last_update_unix_ms"`
}

// Validate checks position consistency.
func (p LiquidityPosition) Validate() error {
	if p.Shares.IsNil() || !p.Shares.IsPositive() {
		return ErrInvalidShares.Wrap("position shares must be positive")
	}
	if p.FeeGrowthSnapX.IsNil() || p.FeeGrowthSnapX.IsNegative() ||
		p.FeeGrowthSnapY.IsNil() || p.FeeGrowthSnapY.IsNegative() {
		return ErrInvalidAmount.Wrap("fee growth snapshots must be non-negative")
	}
	return nil
}

// SwapResult is the outcome of one logical swap across however many bins
// it needed.
type SwapResult struct {
	AmountIn       sdkmath.Int `json:"amount_in"`
	AmountOut      sdkmath.Int `json:"amount_out"`
	FeePaid        sdkmath.Int `json:"fee_paid"`
	ProtocolFee    sdkmath.Int `json:"protocol_fee"`
	BinsCrossed    uint32      `json:"bins_crossed"`
	FinalBinId     int32       `json:"final_bin_id"`
	PriceImpactBps sdkmath.Int `json:"price_impact_bps"`
}

// BinInfo is the read-only view of a bin returned by queries.
type BinInfo struct {
	Exists      bool        `json:"exists"`
	BinId       int32       `json:"bin_id"`
	ReserveX    sdkmath.Int `json:"reserve_x"`
	ReserveY    sdkmath.Int `json:"reserve_y"`
	TotalShares sdkmath.Int `json:"total_shares"`
	Price       sdkmath.Int `json:"price"`
	FeeGrowthX  sdkmath.Int `json:"fee_growth_x"`
	FeeGrowthY  sdkmath.Int `json:"fee_growth_y"`
	IsActive    bool        `json:"is_active"`
}
