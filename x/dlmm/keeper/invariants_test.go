package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pearl-chain/pearl/testutil/keeper"
	"github.com/pearl-chain/pearl/x/dlmm/keeper"
	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// TestInvariants_HoldAfterOperations tests that every invariant holds
// across a mixed sequence of pool operations
func TestInvariants_HoldAfterOperations(t *testing.T) {
	k, bank, ctx := keepertest.DlmmKeeper(t)
	poolID, creator := setupPool(t, k, bank, ctx)

	for _, binID := range []int32{-3, -1, 2, 4} {
		amountX, amountY := math.NewInt(400_000), math.ZeroInt()
		if binID < 0 {
			amountX, amountY = math.ZeroInt(), math.NewInt(400_000)
		}
		_, err := k.AddLiquidity(ctx, creator, types.NewMsgAddLiquidity(
			creator.String(), poolID, binID, amountX, amountY))
		require.NoError(t, err)
	}

	trader := fundedTrader(bank, "trader", 50_000_000)
	_, err := k.Swap(ctx, trader, types.NewMsgSwap(
		trader.String(), poolID, types.SwapDirectionXForY, math.NewInt(1_500_000), math.NewInt(1)))
	require.NoError(t, err)
	_, err = k.Swap(ctx, trader, types.NewMsgSwap(
		trader.String(), poolID, types.SwapDirectionYForX, math.NewInt(900_000), math.NewInt(1)))
	require.NoError(t, err)

	_, _, _, _, err = k.RemoveLiquidity(ctx, creator, types.NewMsgRemoveLiquidity(
		creator.String(), poolID, 2, math.NewInt(100_000)))
	require.NoError(t, err)
	_, _, err = k.ClaimBinFees(ctx, creator, poolID, 0)
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

// TestInvariants_DetectCorruption tests that each invariant trips on the
// specific corruption it guards against
func TestInvariants_DetectCorruption(t *testing.T) {
	t.Run("bin state", func(t *testing.T) {
		k, bank, ctx := keepertest.DlmmKeeper(t)
		poolID, _ := setupPool(t, k, bank, ctx)

		bin, found := k.GetBin(ctx, poolID, 0)
		require.True(t, found)
		bin.ReserveX = math.NewInt(-1)
		k.SetBin(ctx, poolID, bin)

		msg, broken := keeper.BinStateInvariant(k)(ctx)
		require.True(t, broken, msg)
	})

	t.Run("position shares", func(t *testing.T) {
		k, bank, ctx := keepertest.DlmmKeeper(t)
		poolID, creator := setupPool(t, k, bank, ctx)

		pos, found := k.GetPosition(ctx, poolID, 0, creator)
		require.True(t, found)
		pos.Shares = pos.Shares.SubRaw(1)
		k.SetPosition(ctx, poolID, 0, creator, pos)

		msg, broken := keeper.PositionSharesInvariant(k)(ctx)
		require.True(t, broken, msg)
	})

	t.Run("module solvency", func(t *testing.T) {
		k, bank, ctx := keepertest.DlmmKeeper(t)
		poolID, _ := setupPool(t, k, bank, ctx)

		bin, found := k.GetBin(ctx, poolID, 0)
		require.True(t, found)
		bin.ReserveX = bin.ReserveX.AddRaw(1_000_000)
		k.SetBin(ctx, poolID, bin)

		msg, broken := keeper.ModuleSolvencyInvariant(k)(ctx)
		require.True(t, broken, msg)
	})
}
