package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// Fee rates are raw integers scaled by FeeScale (1e6): a rate of 2500 is
// 0.25%. The protocol split is expressed in basis points of the total fee.
const (
	// FeeScale is the denominator of raw fee rates
	FeeScale = 1_000_000

	// MaxFeeRate caps the total swap fee at 10%
	MaxFeeRate = 100_000

	// MaxBaseFactor bounds the per-pool base fee factor
	MaxBaseFactor = 65_535

	// MaxProtocolFeeRate caps the protocol's cut at 50% of the total fee
	MaxProtocolFeeRate = 5_000

	// variableFeeDenominator scales the quadratic volatility term
	variableFeeDenominator = 100_000

	// MaxBinsPerSwap bounds traversal work for a single swap. Hitting
	// the cap is not an error; the swap completes partially filled.
	MaxBinsPerSwap = 100
)

// FeeGrowthScale scales the per-share fee growth accumulators (10^18).
var FeeGrowthScale = sdkmath.NewIntFromBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

// Volatility modes select the input of the variable fee curve.
const (
	// VolatilityModePerSwap feeds the per-swap bins-crossed counter
	VolatilityModePerSwap = "per_swap"
	// VolatilityModeCumulative feeds the decayed accumulator plus the
	// in-flight crossings
	VolatilityModeCumulative = "cumulative"
)

// ValidateBaseFactor checks the per-pool base fee factor bounds. Rejected
// at configuration time, never clamped during a swap.
func ValidateBaseFactor(baseFactor uint32) error {
	if baseFactor == 0 || baseFactor > MaxBaseFactor {
		return ErrInvalidFeeParams.Wrapf("base factor %d outside (0, %d]", baseFactor, MaxBaseFactor)
	}
	return nil
}

// ValidateProtocolFeeRate checks the protocol fee split bounds.
func ValidateProtocolFeeRate(rate uint32) error {
	if rate > MaxProtocolFeeRate {
		return ErrInvalidFeeParams.Wrapf("protocol fee rate %d exceeds %d bps", rate, MaxProtocolFeeRate)
	}
	return nil
}

// BaseFeeRate returns the static component of the swap fee in raw units:
// baseFactor * binStep.
func BaseFeeRate(baseFactor, binStep uint32) uint64 {
	return uint64(baseFactor) * uint64(binStep)
}

// VariableFeeRate returns the volatility component of the swap fee in raw
// units: variableFeeControl * (volatility*binStep)^2 / 1e5, saturating at
// maxFeeMultiple times the base fee so the worst-case cost stays bounded.
func VariableFeeRate(variableFeeControl uint64, binStep uint32, volatility uint64, maxFeeMultiple uint32, baseRate uint64) uint64 {
	if variableFeeControl == 0 || volatility == 0 {
		return 0
	}
	v := new(big.Int).SetUint64(volatility)
	v.Mul(v, new(big.Int).SetUint64(uint64(binStep)))
	v.Mul(v, v)
	v.Mul(v, new(big.Int).SetUint64(variableFeeControl))
	v.Quo(v, big.NewInt(variableFeeDenominator))

	cap := new(big.Int).SetUint64(uint64(maxFeeMultiple) * baseRate)
	if v.Cmp(cap) > 0 {
		v.Set(cap)
	}
	return v.Uint64()
}

// FeeOnAmount returns amount * rate / FeeScale, truncated.
func FeeOnAmount(amount sdkmath.Int, rate uint64) sdkmath.Int {
	return amount.Mul(sdkmath.NewIntFromUint64(rate)).QuoRaw(FeeScale)
}

// GrossFromNet returns the smallest gross input whose post-fee remainder
// covers net, for a raw fee rate. Used to size the input a bin can absorb
// including its fee.
func GrossFromNet(net sdkmath.Int, rate uint64) sdkmath.Int {
	if rate == 0 {
		return net
	}
	num := net.Mul(sdkmath.NewInt(FeeScale))
	den := sdkmath.NewInt(FeeScale - int64(rate))
	gross := num.Quo(den)
	if !num.Mod(den).IsZero() {
		gross = gross.AddRaw(1)
	}
	return gross
}

// CalculateFeeAmount applies a basis-point rate: amount * rateBps / 10000,
// truncated.
func CalculateFeeAmount(amount sdkmath.Int, rateBps uint32) sdkmath.Int {
	return amount.MulRaw(int64(rateBps)).QuoRaw(BasisPointMax)
}

// SplitFee divides a total fee between liquidity providers and the
// protocol. The two parts always sum exactly to the total; the rounding
// remainder lands on the LP side.
func SplitFee(totalFee sdkmath.Int, protocolFeeRateBps uint32) (lpFee, protocolFee sdkmath.Int) {
	protocolFee = CalculateFeeAmount(totalFee, protocolFeeRateBps)
	lpFee = totalFee.Sub(protocolFee)
	return lpFee, protocolFee
}

// DecayVolatility applies the tiered time decay: the longer the quiet
// period, the steeper the percentage knocked off. A coarse integer
// approximation of exponential decay with bounded cost.
func DecayVolatility(value uint64, elapsedMs int64) uint64 {
	if value == 0 {
		return 0
	}
	var pct uint64
	switch {
	case elapsedMs > 5*60*1000:
		pct = 10
	case elapsedMs > 60*1000:
		pct = 5
	case elapsedMs > 10*1000:
		pct = 2
	default:
		pct = 1
	}
	return value - value*pct/100
}

// Advance folds one completed swap into the accumulator: decay for the
// elapsed time, add the crossings, cap, and re-reference.
func (v *VolatilityAccumulator) Advance(binsCrossed uint32, referenceBin int32, nowMs int64, unit, max uint64) {
	elapsed := nowMs - v.LastUpdateUnixMs
	if elapsed < 0 {
		elapsed = 0
	}
	next := DecayVolatility(v.Value, elapsed) + uint64(binsCrossed)*unit
	if next > max {
		next = max
	}
	v.Value = next
	v.ReferenceBinId = referenceBin
	v.LastUpdateUnixMs = nowMs
}
