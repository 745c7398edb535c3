package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

// FuzzPriceFromID tests bin price derivation with arbitrary inputs
func FuzzPriceFromID(f *testing.F) {
	f.Add(int32(0), uint32(25))
	f.Add(int32(1000), uint32(1))
	f.Add(int32(-1000), uint32(100))
	f.Add(MaxBinID, uint32(10000))
	f.Add(MinBinID, uint32(10000))

	f.Fuzz(func(t *testing.T, binID int32, binStep uint32) {
		price, err := PriceFromID(binID, binStep)
		if err != nil {
			// Out-of-range inputs are the only accepted failure.
			require.True(t,
				binStep == 0 || binStep > BasisPointMax ||
					binID < MinBinID || binID > MaxBinID,
				"unexpected error for bin %d step %d: %v", binID, binStep, err)
			return
		}

		require.True(t, price.GTE(MinPrice), "price below floor")
		require.True(t, price.LTE(MaxPrice), "price above ceiling")

		// The resolved ID must land back on a bin at the same price.
		resolved, err := IDFromPrice(price, binStep)
		require.NoError(t, err)
		resolvedPrice, err := PriceFromID(resolved, binStep)
		require.NoError(t, err)
		require.True(t, resolvedPrice.Equal(price),
			"bin %d price %s resolved to bin %d price %s", binID, price, resolved, resolvedPrice)
	})
}

// FuzzSwapWithinBin tests single-bin settlement with arbitrary reserves
func FuzzSwapWithinBin(f *testing.F) {
	f.Add(int64(1_000_000), int64(1_000_000), int64(100_000), true)
	f.Add(int64(1), int64(1), int64(1), false)
	f.Add(int64(0), int64(5_000_000), int64(1<<40), true)

	f.Fuzz(func(t *testing.T, reserveX, reserveY, amountIn int64, xForY bool) {
		if reserveX < 0 || reserveY < 0 || amountIn < 0 {
			return
		}

		dir := SwapDirectionXForY
		if !xForY {
			dir = SwapDirectionYForX
		}
		price, err := PriceFromID(50, 25)
		require.NoError(t, err)

		rx, ry := math.NewInt(reserveX), math.NewInt(reserveY)
		out, exhausted, err := SwapWithinBin(rx, ry, math.NewInt(amountIn), dir, price)
		require.NoError(t, err)

		require.False(t, out.IsNegative(), "negative output")
		if dir == SwapDirectionXForY {
			require.True(t, out.LTE(ry), "output exceeds Y reserve")
			require.Equal(t, out.Equal(ry), exhausted)
		} else {
			require.True(t, out.LTE(rx), "output exceeds X reserve")
			require.Equal(t, out.Equal(rx), exhausted)
		}
	})
}

// FuzzGrossFromNet tests that gross sizing always covers the net target
func FuzzGrossFromNet(f *testing.F) {
	f.Add(int64(1_000_000), uint64(2500))
	f.Add(int64(1), uint64(MaxFeeRate))
	f.Add(int64(1<<50), uint64(1))

	f.Fuzz(func(t *testing.T, net int64, rate uint64) {
		if net <= 0 || rate > MaxFeeRate {
			return
		}

		netInt := math.NewInt(net)
		gross := GrossFromNet(netInt, rate)
		fee := FeeOnAmount(gross, rate)
		require.True(t, gross.Sub(fee).GTE(netInt),
			"gross %s minus fee %s does not cover net %s at rate %d", gross, fee, netInt, rate)
	})
}

// FuzzLiquidityRoundTrip tests that splitting liquidity never mints value
func FuzzLiquidityRoundTrip(f *testing.F) {
	f.Add(int64(1000), int64(3_400_000), uint32(50))
	f.Add(int64(0), int64(1), uint32(100))
	f.Add(int64(1<<40), int64(0), uint32(0))

	f.Fuzz(func(t *testing.T, x, y int64, pctY uint32) {
		if x < 0 || y < 0 || pctY > 100 {
			return
		}
		price, err := PriceFromID(200, 10)
		require.NoError(t, err)

		liq, err := LiquidityFromAmounts(math.NewInt(x), math.NewInt(y), price)
		require.NoError(t, err)

		outX, outY, err := AmountsFromLiquidity(liq, price, pctY)
		require.NoError(t, err)

		back, err := LiquidityFromAmounts(outX, outY, price)
		require.NoError(t, err)
		require.True(t, back.LTE(liq), "round trip inflated liquidity: %s > %s", back, liq)
	})
}
