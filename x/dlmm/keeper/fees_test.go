package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pearl-chain/pearl/testutil/keeper"
	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// TestSweepProtocolFees tests the governance fee sweep
func TestSweepProtocolFees(t *testing.T) {
	k, bank, ctx := keepertest.DlmmKeeper(t)
	poolID, _ := setupPool(t, k, bank, ctx)
	trader := fundedTrader(bank, "trader", 10_000_000)
	recipient := testAccount("treasury")

	// Accrue protocol fees on both sides.
	_, err := k.Swap(ctx, trader, types.NewMsgSwap(
		trader.String(), poolID, types.SwapDirectionXForY, math.NewInt(100_000), math.NewInt(1)))
	require.NoError(t, err)
	_, err = k.Swap(ctx, trader, types.NewMsgSwap(
		trader.String(), poolID, types.SwapDirectionYForX, math.NewInt(200_000), math.NewInt(1)))
	require.NoError(t, err)

	pendingX := k.GetProtocolFee(ctx, poolID, "upearl")
	pendingY := k.GetProtocolFee(ctx, poolID, "uusdt")
	require.Equal(t, math.NewInt(75), pendingX)
	require.Equal(t, math.NewInt(150), pendingY)

	sweptX, sweptY, err := k.SweepProtocolFees(ctx, poolID, recipient)
	require.NoError(t, err)
	require.Equal(t, pendingX, sweptX)
	require.Equal(t, pendingY, sweptY)

	require.Equal(t, pendingX, bank.GetBalance(ctx, recipient, "upearl").Amount)
	require.Equal(t, pendingY, bank.GetBalance(ctx, recipient, "uusdt").Amount)
	require.True(t, k.GetProtocolFee(ctx, poolID, "upearl").IsZero())
	require.True(t, k.GetProtocolFee(ctx, poolID, "uusdt").IsZero())

	// Sweeping an empty balance is a quiet no-op.
	sweptX, sweptY, err = k.SweepProtocolFees(ctx, poolID, recipient)
	require.NoError(t, err)
	require.True(t, sweptX.IsZero())
	require.True(t, sweptY.IsZero())

	_, _, err = k.SweepProtocolFees(ctx, 99, recipient)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

// TestProtocolFee_ZeroSplit tests that a pool without a protocol cut
// accrues nothing to sweep
func TestProtocolFee_ZeroSplit(t *testing.T) {
	k, bank, ctx := keepertest.DlmmKeeper(t)
	creator := testAccount("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("upearl", math.NewInt(10_000_000)),
		sdk.NewCoin("uusdt", math.NewInt(10_000_000)),
	))

	msg := types.NewMsgCreatePool(creator.String(), "upearl", "uusdt", 25, 0, 100, 0,
		math.NewInt(1_000_000), math.NewInt(1_000_000))
	pool, err := k.CreatePool(ctx, creator, msg)
	require.NoError(t, err)

	trader := fundedTrader(bank, "trader", 10_000_000)
	result, err := k.Swap(ctx, trader, types.NewMsgSwap(
		trader.String(), pool.Id, types.SwapDirectionXForY, math.NewInt(100_000), math.NewInt(1)))
	require.NoError(t, err)

	require.Equal(t, math.NewInt(250), result.FeePaid)
	require.True(t, result.ProtocolFee.IsZero())
	require.True(t, k.GetProtocolFee(ctx, pool.Id, "upearl").IsZero())

	// The whole fee belongs to the providers.
	bin, _ := k.GetBin(ctx, pool.Id, 0)
	want := math.NewInt(250).Mul(types.FeeGrowthScale).Quo(math.NewInt(2_000_000))
	require.Equal(t, want, bin.FeeGrowthX)
}
