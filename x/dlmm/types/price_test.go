package types

import (
	"math/big"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

// TestPriceFromID_Identity tests that bin zero prices at exactly 1.0
func TestPriceFromID_Identity(t *testing.T) {
	for _, binStep := range []uint32{1, 5, 10, 25, 50, 100, 200, 500, 1000, 10000} {
		price, err := PriceFromID(0, binStep)
		require.NoError(t, err)
		require.True(t, price.Equal(PriceScale), "bin step %d", binStep)
	}
}

// TestPriceFromID_AdjacentRatio tests that adjacent bins differ by the bin
// step within one flooring unit
func TestPriceFromID_AdjacentRatio(t *testing.T) {
	for _, binStep := range []uint32{1, 25, 100, 1000} {
		for _, binID := range []int32{-100, -1, 0, 1, 100} {
			lower, err := PriceFromID(binID, binStep)
			require.NoError(t, err)
			upper, err := PriceFromID(binID+1, binStep)
			require.NoError(t, err)

			// upper / lower should be (10000 + binStep) / 10000
			ratio := new(big.Int).Mul(upper.BigInt(), big.NewInt(BasisPointMax))
			ratio.Quo(ratio, lower.BigInt())
			got := ratio.Int64()
			want := int64(BasisPointMax + binStep)
			require.InDelta(t, want, got, 1,
				"bin step %d around bin %d", binStep, binID)
		}
	}
}

// TestPriceFromID_Monotonic tests strict price ordering across bin IDs
func TestPriceFromID_Monotonic(t *testing.T) {
	for _, binStep := range []uint32{1, 25, 100} {
		prev := sdkmath.ZeroInt()
		for binID := int32(-2000); binID <= 2000; binID += 10 {
			price, err := PriceFromID(binID, binStep)
			require.NoError(t, err)
			require.True(t, price.GT(prev),
				"price must strictly increase at bin %d step %d", binID, binStep)
			prev = price
		}
	}
}

// TestPriceFromID_Reciprocal tests that negative bins price near the exact
// reciprocal of their positive mirror
func TestPriceFromID_Reciprocal(t *testing.T) {
	for _, binID := range []int32{1, 10, 100, 1000} {
		pos, err := PriceFromID(binID, 25)
		require.NoError(t, err)
		neg, err := PriceFromID(-binID, 25)
		require.NoError(t, err)

		// pos * neg should land within a sliver of 2^128
		prod := new(big.Int).Mul(pos.BigInt(), neg.BigInt())
		target := new(big.Int).Lsh(big.NewInt(1), 128)
		diff := new(big.Int).Sub(target, prod)
		require.True(t, diff.Sign() >= 0, "reciprocal must floor, bin %d", binID)
		require.True(t, diff.Cmp(pos.BigInt()) < 0,
			"reciprocal off by more than one unit at bin %d", binID)
	}
}

// TestPriceFromID_Saturation tests the price bounds at extreme bin IDs
func TestPriceFromID_Saturation(t *testing.T) {
	high, err := PriceFromID(MaxBinID, 10000)
	require.NoError(t, err)
	require.True(t, high.Equal(MaxPrice))

	low, err := PriceFromID(MinBinID, 10000)
	require.NoError(t, err)
	require.True(t, low.Equal(MinPrice))
}

// TestPriceFromID_Errors tests invalid inputs
func TestPriceFromID_Errors(t *testing.T) {
	_, err := PriceFromID(0, 0)
	require.ErrorIs(t, err, ErrInvalidBinStep)

	_, err = PriceFromID(0, BasisPointMax+1)
	require.ErrorIs(t, err, ErrInvalidBinStep)

	_, err = PriceFromID(MaxBinID+1, 25)
	require.ErrorIs(t, err, ErrBinIdOutOfRange)

	_, err = PriceFromID(MinBinID-1, 25)
	require.ErrorIs(t, err, ErrBinIdOutOfRange)
}

// TestIDFromPrice_RoundTrip tests that bin prices map back to their IDs
func TestIDFromPrice_RoundTrip(t *testing.T) {
	// Each step is sampled to the edge of its representable range: coarse
	// steps saturate at MaxPrice on the positive side and collapse onto the
	// floor price on the negative side, so the bounds tighten as the step
	// widens.
	ranges := []struct {
		binStep  uint32
		min, max int32
	}{
		{1, -10000, 10000},
		{5, -10000, 10000},
		{10, -10000, 10000},
		{25, -10000, 10000},
		{50, -7000, 10000},
		{100, -2000, 8700},
		{200, -1000, 4300},
		{500, -500, 1700},
		{1000, -200, 900},
	}
	for _, r := range ranges {
		stride := (r.max-r.min)/74 + 1
		for binID := r.min; ; binID += stride {
			if binID > r.max {
				binID = r.max
			}
			price, err := PriceFromID(binID, r.binStep)
			require.NoError(t, err)

			got, err := IDFromPrice(price, r.binStep)
			require.NoError(t, err)
			require.Equal(t, binID, got, "round trip at bin %d step %d", binID, r.binStep)

			if binID == r.max {
				break
			}
		}
	}
}

// TestIDFromPrice_BetweenBins tests that a price between two bins resolves
// to the lower bin
func TestIDFromPrice_BetweenBins(t *testing.T) {
	price, err := PriceFromID(100, 25)
	require.NoError(t, err)

	id, err := IDFromPrice(price.AddRaw(1), 25)
	require.NoError(t, err)
	require.Equal(t, int32(100), id)

	id, err = IDFromPrice(price.SubRaw(1), 25)
	require.NoError(t, err)
	require.Equal(t, int32(99), id)
}

// TestIDFromPrice_Clamps tests resolution at the edges of the price range
func TestIDFromPrice_Clamps(t *testing.T) {
	id, err := IDFromPrice(MaxPrice, 25)
	require.NoError(t, err)
	require.Equal(t, MaxBinID, id)

	// The floor price maps to the largest bin still priced at 1.
	id, err = IDFromPrice(sdkmath.OneInt(), 25)
	require.NoError(t, err)
	price, err := PriceFromID(id, 25)
	require.NoError(t, err)
	require.True(t, price.Equal(sdkmath.OneInt()))
	above, err := PriceFromID(id+1, 25)
	require.NoError(t, err)
	require.True(t, above.GT(sdkmath.OneInt()))
}

// TestIDFromPrice_Errors tests invalid inputs
func TestIDFromPrice_Errors(t *testing.T) {
	_, err := IDFromPrice(sdkmath.ZeroInt(), 25)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = IDFromPrice(sdkmath.NewInt(-1), 25)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = IDFromPrice(PriceScale, 0)
	require.ErrorIs(t, err, ErrInvalidBinStep)
}

// TestNextBinID tests directional stepping and boundary saturation
func TestNextBinID(t *testing.T) {
	require.Equal(t, int32(-1), NextBinID(0, SwapDirectionXForY))
	require.Equal(t, int32(1), NextBinID(0, SwapDirectionYForX))
	require.Equal(t, MinBinID, NextBinID(MinBinID, SwapDirectionXForY))
	require.Equal(t, MaxBinID, NextBinID(MaxBinID, SwapDirectionYForX))
}
