package types

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func testAddr(seed string) string {
	bz := make([]byte, 20)
	copy(bz, seed)
	return sdk.AccAddress(bz).String()
}

// TestMsgCreatePool_ValidateBasic tests pool creation message validation
func TestMsgCreatePool_ValidateBasic(t *testing.T) {
	creator := testAddr("creator")
	valid := func() *MsgCreatePool {
		return NewMsgCreatePool(creator, "upearl", "uusdt", 25, 0, 100, 3000,
			sdkmath.NewInt(1_000_000), sdkmath.NewInt(1_000_000))
	}

	require.NoError(t, valid().ValidateBasic())

	tests := []struct {
		name    string
		mutate  func(*MsgCreatePool)
		wantErr error
	}{
		{"bad creator", func(m *MsgCreatePool) { m.Creator = "nope" }, ErrInvalidAddress},
		{"empty denom", func(m *MsgCreatePool) { m.TokenX = "" }, ErrInvalidTokenDenom},
		{"same tokens", func(m *MsgCreatePool) { m.TokenY = m.TokenX }, ErrSameToken},
		{"zero bin step", func(m *MsgCreatePool) { m.BinStep = 0 }, ErrInvalidBinStep},
		{"bin step too wide", func(m *MsgCreatePool) { m.BinStep = BasisPointMax + 1 }, ErrInvalidBinStep},
		{"active bin out of range", func(m *MsgCreatePool) { m.ActiveBinId = MaxBinID + 1 }, ErrBinIdOutOfRange},
		{"zero base factor", func(m *MsgCreatePool) { m.BaseFactor = 0 }, ErrInvalidFeeParams},
		{"protocol fee too high", func(m *MsgCreatePool) { m.ProtocolFeeRate = MaxProtocolFeeRate + 1 }, ErrInvalidFeeParams},
		{"negative initial price", func(m *MsgCreatePool) { m.InitialPrice = sdkmath.NewInt(-1) }, ErrInvalidPrice},
		{"negative seed", func(m *MsgCreatePool) { m.SeedAmountX = sdkmath.NewInt(-1) }, ErrInvalidAmount},
		{"empty seed", func(m *MsgCreatePool) {
			m.SeedAmountX = sdkmath.ZeroInt()
			m.SeedAmountY = sdkmath.ZeroInt()
		}, ErrZeroAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := valid()
			tc.mutate(msg)
			require.ErrorIs(t, msg.ValidateBasic(), tc.wantErr)
		})
	}
}

// TestMsgSwap_ValidateBasic tests swap message validation
func TestMsgSwap_ValidateBasic(t *testing.T) {
	trader := testAddr("trader")
	valid := func() *MsgSwap {
		return NewMsgSwap(trader, 1, SwapDirectionXForY, sdkmath.NewInt(1000), sdkmath.NewInt(900))
	}

	require.NoError(t, valid().ValidateBasic())

	tests := []struct {
		name    string
		mutate  func(*MsgSwap)
		wantErr error
	}{
		{"bad trader", func(m *MsgSwap) { m.Trader = "nope" }, ErrInvalidAddress},
		{"zero pool id", func(m *MsgSwap) { m.PoolId = 0 }, ErrInvalidPoolId},
		{"bad direction", func(m *MsgSwap) { m.Direction = SwapDirection(7) }, ErrInvalidDirection},
		{"zero amount in", func(m *MsgSwap) { m.AmountIn = sdkmath.ZeroInt() }, ErrZeroAmount},
		{"negative amount in", func(m *MsgSwap) { m.AmountIn = sdkmath.NewInt(-5) }, ErrZeroAmount},
		{"negative min out", func(m *MsgSwap) { m.MinAmountOut = sdkmath.NewInt(-1) }, ErrInvalidAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := valid()
			tc.mutate(msg)
			require.ErrorIs(t, msg.ValidateBasic(), tc.wantErr)
		})
	}
}

// TestMsgAddLiquidity_ValidateBasic tests deposit message validation
func TestMsgAddLiquidity_ValidateBasic(t *testing.T) {
	provider := testAddr("provider")

	require.NoError(t, NewMsgAddLiquidity(provider, 1, 0, sdkmath.NewInt(100), sdkmath.NewInt(100)).ValidateBasic())
	require.NoError(t, NewMsgAddLiquidity(provider, 1, 5, sdkmath.NewInt(100), sdkmath.ZeroInt()).ValidateBasic())

	require.ErrorIs(t,
		NewMsgAddLiquidity("nope", 1, 0, sdkmath.NewInt(100), sdkmath.NewInt(100)).ValidateBasic(),
		ErrInvalidAddress)
	require.ErrorIs(t,
		NewMsgAddLiquidity(provider, 0, 0, sdkmath.NewInt(100), sdkmath.NewInt(100)).ValidateBasic(),
		ErrInvalidPoolId)
	require.ErrorIs(t,
		NewMsgAddLiquidity(provider, 1, MaxBinID+1, sdkmath.NewInt(100), sdkmath.NewInt(100)).ValidateBasic(),
		ErrBinIdOutOfRange)
	require.ErrorIs(t,
		NewMsgAddLiquidity(provider, 1, 0, sdkmath.NewInt(-1), sdkmath.NewInt(100)).ValidateBasic(),
		ErrInvalidAmount)
	require.ErrorIs(t,
		NewMsgAddLiquidity(provider, 1, 0, sdkmath.ZeroInt(), sdkmath.ZeroInt()).ValidateBasic(),
		ErrZeroAmount)
}

// TestMsgRemoveLiquidity_ValidateBasic tests withdrawal message validation
func TestMsgRemoveLiquidity_ValidateBasic(t *testing.T) {
	provider := testAddr("provider")

	require.NoError(t, NewMsgRemoveLiquidity(provider, 1, -5, sdkmath.NewInt(100)).ValidateBasic())

	require.ErrorIs(t,
		NewMsgRemoveLiquidity(provider, 1, 0, sdkmath.ZeroInt()).ValidateBasic(),
		ErrInvalidShares)
	require.ErrorIs(t,
		NewMsgRemoveLiquidity(provider, 0, 0, sdkmath.NewInt(100)).ValidateBasic(),
		ErrInvalidPoolId)
}

// TestMsgClaimFees_ValidateBasic tests fee claim message validation
func TestMsgClaimFees_ValidateBasic(t *testing.T) {
	provider := testAddr("provider")

	require.NoError(t, NewMsgClaimFees(provider, 1, 0).ValidateBasic())
	require.ErrorIs(t, NewMsgClaimFees("nope", 1, 0).ValidateBasic(), ErrInvalidAddress)
	require.ErrorIs(t, NewMsgClaimFees(provider, 1, MinBinID-1).ValidateBasic(), ErrBinIdOutOfRange)
}

// TestAdminMsgs_ValidateBasic tests administrative message validation
func TestAdminMsgs_ValidateBasic(t *testing.T) {
	authority := testAddr("authority")
	recipient := testAddr("recipient")

	require.NoError(t, (&MsgSetPoolStatus{Authority: authority, PoolId: 1, Active: false}).ValidateBasic())
	require.Error(t, (&MsgSetPoolStatus{Authority: "nope", PoolId: 1}).ValidateBasic())
	require.Error(t, (&MsgSetPoolStatus{Authority: authority, PoolId: 0}).ValidateBasic())

	require.NoError(t, (&MsgSetBaseFactor{Authority: authority, PoolId: 1, BaseFactor: 50}).ValidateBasic())
	require.Error(t, (&MsgSetBaseFactor{Authority: authority, PoolId: 1, BaseFactor: 0}).ValidateBasic())

	require.NoError(t, (&MsgResetVolatility{Authority: authority, PoolId: 1}).ValidateBasic())
	require.Error(t, (&MsgResetVolatility{Authority: authority, PoolId: 0}).ValidateBasic())

	require.NoError(t, (&MsgSweepProtocolFees{Authority: authority, PoolId: 1, Recipient: recipient}).ValidateBasic())
	require.Error(t, (&MsgSweepProtocolFees{Authority: authority, PoolId: 1, Recipient: "nope"}).ValidateBasic())

	require.NoError(t, (&MsgUpdateParams{Authority: authority, Params: DefaultParams()}).ValidateBasic())
	bad := DefaultParams()
	bad.VolatilityMode = "wat"
	require.Error(t, (&MsgUpdateParams{Authority: authority, Params: bad}).ValidateBasic())
}

// TestMsgTypes tests routing metadata
func TestMsgTypes(t *testing.T) {
	addr := testAddr("signer")
	msg := NewMsgSwap(addr, 1, SwapDirectionXForY, sdkmath.NewInt(1), sdkmath.ZeroInt())

	require.Equal(t, RouterKey, msg.Route())
	require.Equal(t, TypeMsgSwap, msg.Type())
	require.Len(t, msg.GetSigners(), 1)
	require.Equal(t, addr, msg.GetSigners()[0].String())
	require.NotEmpty(t, msg.GetSignBytes())
}

// TestSwapDirection tests direction helpers
func TestSwapDirection(t *testing.T) {
	require.Equal(t, "x_for_y", SwapDirectionXForY.String())
	require.Equal(t, "y_for_x", SwapDirectionYForX.String())
	require.NoError(t, SwapDirectionXForY.Validate())
	require.Error(t, SwapDirection(0).Validate())
	require.Error(t, SwapDirection(3).Validate())
}
