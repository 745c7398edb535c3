package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pearl-chain/pearl/testutil/keeper"
	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// TestCreatePool tests pool creation and seeding
func TestCreatePool(t *testing.T) {
	k, bank, ctx := keepertest.DlmmKeeper(t)
	poolID, creator := setupPool(t, k, bank, ctx)

	require.Equal(t, uint64(1), poolID)
	require.Equal(t, uint64(2), k.GetNextPoolIDValue(ctx))

	pool, found := k.GetPool(ctx, poolID)
	require.True(t, found)
	require.Equal(t, "upearl", pool.TokenX)
	require.Equal(t, "uusdt", pool.TokenY)
	require.Equal(t, uint32(25), pool.BinStep)
	require.True(t, pool.Active)
	require.Equal(t, int32(0), pool.ActiveBinId)
	require.Equal(t, uint64(0), pool.Volatility.Value)

	// Seed sits in the active bin, fully owned by the creator.
	bin, found := k.GetBin(ctx, poolID, 0)
	require.True(t, found)
	require.Equal(t, math.NewInt(1_000_000), bin.ReserveX)
	require.Equal(t, math.NewInt(1_000_000), bin.ReserveY)
	require.Equal(t, math.NewInt(2_000_000), bin.TotalShares)
	require.True(t, bin.Price.Equal(types.PriceScale))

	pos, found := k.GetPosition(ctx, poolID, 0, creator)
	require.True(t, found)
	require.Equal(t, bin.TotalShares, pos.Shares)

	// Module account holds the seed.
	moduleAddr := k.GetModuleAddress()
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, moduleAddr, "upearl").Amount)
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, moduleAddr, "uusdt").Amount)
}

// TestCreatePool_Duplicate tests that a pair/step combination is unique
func TestCreatePool_Duplicate(t *testing.T) {
	k, bank, ctx := keepertest.DlmmKeeper(t)
	_, creator := setupPool(t, k, bank, ctx)

	msg := types.NewMsgCreatePool(creator.String(), "upearl", "uusdt", 25, 0, 100, 3000,
		math.NewInt(1000), math.NewInt(1000))
	_, err := k.CreatePool(ctx, creator, msg)
	require.ErrorIs(t, err, types.ErrInvalidPoolState)

	// A different bin step is a different market.
	msg = types.NewMsgCreatePool(creator.String(), "upearl", "uusdt", 50, 0, 100, 3000,
		math.NewInt(1000), math.NewInt(1000))
	pool, err := k.CreatePool(ctx, creator, msg)
	require.NoError(t, err)
	require.Equal(t, uint64(2), pool.Id)
}

// TestCreatePool_InitialPriceCheck tests the declared-price tolerance
func TestCreatePool_InitialPriceCheck(t *testing.T) {
	k, bank, ctx := keepertest.DlmmKeeper(t)
	creator := testAccount("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("upearl", math.NewInt(10_000_000)),
		sdk.NewCoin("uusdt", math.NewInt(10_000_000)),
	))

	msg := types.NewMsgCreatePool(creator.String(), "upearl", "uusdt", 25, 100, 100, 3000,
		math.NewInt(1000), math.NewInt(1000))

	// Declared price matching the derived bin price passes.
	derived, err := types.PriceFromID(100, 25)
	require.NoError(t, err)
	msg.InitialPrice = derived
	_, err = k.CreatePool(ctx, creator, msg)
	require.NoError(t, err)

	// A declared price 1% off is rejected.
	msg = types.NewMsgCreatePool(creator.String(), "upearl", "uusdt", 50, 100, 100, 3000,
		math.NewInt(1000), math.NewInt(1000))
	off, err := types.PriceFromID(100, 50)
	require.NoError(t, err)
	msg.InitialPrice = off.MulRaw(101).QuoRaw(100)
	_, err = k.CreatePool(ctx, creator, msg)
	require.ErrorIs(t, err, types.ErrInvalidPrice)
}

// TestGetPoolByDenoms tests pair lookup
func TestGetPoolByDenoms(t *testing.T) {
	k, bank, ctx := keepertest.DlmmKeeper(t)
	poolID, _ := setupPool(t, k, bank, ctx)

	pool, found := k.GetPoolByDenoms(ctx, "upearl", "uusdt", 25)
	require.True(t, found)
	require.Equal(t, poolID, pool.Id)

	_, found = k.GetPoolByDenoms(ctx, "upearl", "uusdt", 50)
	require.False(t, found)
	_, found = k.GetPoolByDenoms(ctx, "uusdt", "upearl", 25)
	require.False(t, found)
}

// TestGetAllPools tests pool iteration order
func TestGetAllPools(t *testing.T) {
	k, bank, ctx := keepertest.DlmmKeeper(t)
	_, creator := setupPool(t, k, bank, ctx)

	for _, step := range []uint32{50, 100} {
		msg := types.NewMsgCreatePool(creator.String(), "upearl", "uusdt", step, 0, 100, 3000,
			math.NewInt(1000), math.NewInt(1000))
		_, err := k.CreatePool(ctx, creator, msg)
		require.NoError(t, err)
	}

	pools := k.GetAllPools(ctx)
	require.Len(t, pools, 3)
	for i, pool := range pools {
		require.Equal(t, uint64(i+1), pool.Id)
	}
}

// TestGetBinsInRange tests the populated-bin range query
func TestGetBinsInRange(t *testing.T) {
	k, bank, ctx := keepertest.DlmmKeeper(t)
	poolID, creator := setupPool(t, k, bank, ctx)

	for _, binID := range []int32{-10, -5, 5, 10} {
		amountX, amountY := math.NewInt(1000), math.ZeroInt()
		if binID < 0 {
			amountX, amountY = math.ZeroInt(), math.NewInt(1000)
		}
		_, err := k.AddLiquidity(ctx, creator, types.NewMsgAddLiquidity(
			creator.String(), poolID, binID, amountX, amountY))
		require.NoError(t, err)
	}

	pool, found := k.GetPool(ctx, poolID)
	require.True(t, found)
	bins := k.GetBinsInRange(ctx, pool, -7, 7)
	require.Len(t, bins, 3)
	require.Equal(t, int32(-5), bins[0].BinId)
	require.Equal(t, int32(0), bins[1].BinId)
	require.Equal(t, int32(5), bins[2].BinId)
	require.True(t, bins[1].IsActive)
	require.False(t, bins[0].IsActive)
}
