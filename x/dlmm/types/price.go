package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// Bin prices use Q64.64 fixed point: one price unit equals 2^64. All price
// arithmetic runs over big.Int so intermediate products never truncate
// before the final shift.
const (
	// BasisPointMax is the basis-point denominator (100% == 10000 bps)
	BasisPointMax = 10000

	// MinBinID and MaxBinID bound the representable bin range. Stepping
	// past a bound saturates instead of wrapping.
	MinBinID int32 = -1_048_576
	MaxBinID int32 = 1_048_576
)

var (
	priceScaleBig = new(big.Int).Lsh(big.NewInt(1), 64)
	priceSqBig    = new(big.Int).Lsh(big.NewInt(1), 128)
	maxPriceBig   = new(big.Int).Lsh(big.NewInt(1), 190)

	// PriceScale is the Q64.64 representation of 1.0
	PriceScale = sdkmath.NewIntFromBigInt(priceScaleBig)

	// MaxPrice is the saturation ceiling for bin prices. Above it a
	// price times a 64-bit reserve no longer fits the 256-bit domain.
	MaxPrice = sdkmath.NewIntFromBigInt(maxPriceBig)

	// MinPrice is the saturation floor for bin prices
	MinPrice = sdkmath.OneInt()
)

// ValidateBinStep checks that a bin step is in (0, 10000] basis points.
func ValidateBinStep(binStep uint32) error {
	if binStep == 0 || binStep > BasisPointMax {
		return ErrInvalidBinStep.Wrapf("got %d", binStep)
	}
	return nil
}

// PriceFromID computes (1 + binStep/10000)^binID as a Q64.64 price.
// PriceFromID(0, s) is exactly 1.0 and the result is strictly increasing
// in binID until it saturates at MaxPrice (or MinPrice for deep negative
// IDs).
func PriceFromID(binID int32, binStep uint32) (sdkmath.Int, error) {
	if err := ValidateBinStep(binStep); err != nil {
		return sdkmath.Int{}, err
	}
	if binID < MinBinID || binID > MaxBinID {
		return sdkmath.Int{}, ErrBinIdOutOfRange.Wrapf("bin id %d outside [%d, %d]", binID, MinBinID, MaxBinID)
	}
	if binID == 0 {
		return PriceScale, nil
	}

	exp := uint64(binID)
	if binID < 0 {
		exp = uint64(-int64(binID))
	}
	p := powQ64(binStepBase(binStep), exp)
	if binID < 0 {
		// reciprocal in Q64.64: 2^128 / p, floored
		p = new(big.Int).Quo(priceSqBig, p)
		if p.Sign() == 0 {
			p = big.NewInt(1)
		}
	}
	return sdkmath.NewIntFromBigInt(p), nil
}

// binStepBase returns (10000 + binStep) / 10000 in Q64.64.
func binStepBase(binStep uint32) *big.Int {
	base := new(big.Int).SetUint64(uint64(BasisPointMax) + uint64(binStep))
	base.Lsh(base, 64)
	return base.Quo(base, big.NewInt(BasisPointMax))
}

// powQ64 raises a Q64.64 base (> 1.0) to a non-negative integer power by
// square-and-multiply, flooring after every 64-bit shift and saturating at
// MaxPrice.
func powQ64(base *big.Int, exp uint64) *big.Int {
	result := new(big.Int).Set(priceScaleBig)
	sq := new(big.Int).Set(base)
	for exp > 0 {
		if exp&1 == 1 {
			result.Mul(result, sq)
			result.Rsh(result, 64)
			if result.Cmp(maxPriceBig) >= 0 {
				return new(big.Int).Set(maxPriceBig)
			}
		}
		exp >>= 1
		if exp > 0 {
			sq.Mul(sq, sq)
			sq.Rsh(sq, 64)
			if sq.Cmp(maxPriceBig) >= 0 {
				sq.Set(maxPriceBig)
			}
		}
	}
	return result
}

// IDFromPrice returns the largest bin ID whose price does not exceed the
// given Q64.64 price. For prices produced by PriceFromID the round trip is
// exact wherever adjacent bins still have distinct prices; deep in the
// saturated range it resolves to the largest bin at the floor price.
func IDFromPrice(price sdkmath.Int, binStep uint32) (int32, error) {
	if err := ValidateBinStep(binStep); err != nil {
		return 0, err
	}
	if price.IsNil() || !price.IsPositive() {
		return 0, ErrInvalidPrice.Wrap("price must be positive")
	}

	lowest, err := PriceFromID(MinBinID, binStep)
	if err != nil {
		return 0, err
	}
	if price.LT(lowest) {
		return MinBinID, nil
	}

	lo, hi := int64(MinBinID), int64(MaxBinID)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		midPrice, err := PriceFromID(int32(mid), binStep)
		if err != nil {
			return 0, err
		}
		if midPrice.LTE(price) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return int32(lo), nil
}

// NextBinID steps one bin in the direction the swap walks. Swapping X for
// Y drains Y liquidity and walks toward lower prices; Y for X walks up.
// Both ends saturate at the representable bounds rather than wrapping.
func NextBinID(binID int32, dir SwapDirection) int32 {
	switch dir {
	case SwapDirectionXForY:
		if binID <= MinBinID {
			return MinBinID
		}
		return binID - 1
	case SwapDirectionYForX:
		if binID >= MaxBinID {
			return MaxBinID
		}
		return binID + 1
	}
	return binID
}
