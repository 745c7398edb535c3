package types

import (
	"fmt"
)

// Params holds module-wide fee curve and volatility configuration.
// Per-pool knobs (base factor, protocol fee rate, bin step) live on the
// pool itself.
type Params struct {
	// VariableFeeControl scales the quadratic volatility fee term
	VariableFeeControl uint64 `json:"variable_fee_control"`
	// MaxFeeMultiple caps the variable fee at this many times the base fee
	MaxFeeMultiple uint32 `json:"max_fee_multiple"`
	// VolatilityUnit is the accumulator increment per bin crossed
	VolatilityUnit uint64 `json:"volatility_unit"`
	// MaxVolatility caps the accumulator to bound fee amplification
	MaxVolatility uint64 `json:"max_volatility"`
	// VolatilityMode selects the variable fee input: per_swap or cumulative
	VolatilityMode string `json:"volatility_mode"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		VariableFeeControl: 1000,
		MaxFeeMultiple:     10,
		VolatilityUnit:     100,
		MaxVolatility:      500_000,
		VolatilityMode:     VolatilityModePerSwap,
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateMaxFeeMultiple(p.MaxFeeMultiple); err != nil {
		return err
	}
	if err := validateVolatilityUnit(p.VolatilityUnit); err != nil {
		return err
	}
	if err := validateMaxVolatility(p.MaxVolatility); err != nil {
		return err
	}
	return validateVolatilityMode(p.VolatilityMode)
}

func validateMaxFeeMultiple(v uint32) error {
	if v == 0 {
		return ErrInvalidParams.Wrap("max fee multiple must be positive")
	}
	return nil
}

func validateVolatilityUnit(v uint64) error {
	if v == 0 {
		return ErrInvalidParams.Wrap("volatility unit must be positive")
	}
	return nil
}

func validateMaxVolatility(v uint64) error {
	if v == 0 {
		return ErrInvalidParams.Wrap("max volatility must be positive")
	}
	return nil
}

func validateVolatilityMode(mode string) error {
	switch mode {
	case VolatilityModePerSwap, VolatilityModeCumulative:
		return nil
	}
	return ErrInvalidParams.Wrapf("unknown volatility mode %q", mode)
}

// DynamicFeeRate returns the total swap fee rate (raw units) for a pool at
// the given volatility input, capped at MaxFeeRate.
func (p Params) DynamicFeeRate(pool Pool, volatility uint64) uint64 {
	base := BaseFeeRate(pool.BaseFactor, pool.BinStep)
	rate := base + VariableFeeRate(p.VariableFeeControl, pool.BinStep, volatility, p.MaxFeeMultiple, base)
	if rate > MaxFeeRate {
		rate = MaxFeeRate
	}
	return rate
}

// VolatilityInput returns the value fed to the variable fee curve for a
// swap portion, given the crossings so far, per the configured mode.
func (p Params) VolatilityInput(pool Pool, binsCrossed uint32) uint64 {
	switch p.VolatilityMode {
	case VolatilityModeCumulative:
		return pool.Volatility.Value/p.VolatilityUnit + uint64(binsCrossed)
	default:
		return uint64(binsCrossed)
	}
}

// String implements fmt.Stringer
func (p Params) String() string {
	return fmt.Sprintf(
		"Params{VariableFeeControl: %d, MaxFeeMultiple: %d, VolatilityUnit: %d, MaxVolatility: %d, VolatilityMode: %s}",
		p.VariableFeeControl, p.MaxFeeMultiple, p.VolatilityUnit, p.MaxVolatility, p.VolatilityMode,
	)
}
