package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type names
const (
	TypeMsgCreatePool        = "create_pool"
	TypeMsgSwap              = "swap"
	TypeMsgAddLiquidity      = "add_liquidity"
	TypeMsgRemoveLiquidity   = "remove_liquidity"
	TypeMsgClaimFees         = "claim_fees"
	TypeMsgSetPoolStatus     = "set_pool_status"
	TypeMsgSetBaseFactor     = "set_base_factor"
	TypeMsgResetVolatility   = "reset_volatility"
	TypeMsgSweepProtocolFees = "sweep_protocol_fees"
	TypeMsgUpdateParams      = "update_params"
)

var (
	_ sdk.Msg = &MsgCreatePool{}
	_ sdk.Msg = &MsgSwap{}
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
	_ sdk.Msg = &MsgClaimFees{}
	_ sdk.Msg = &MsgSetPoolStatus{}
	_ sdk.Msg = &MsgSetBaseFactor{}
	_ sdk.Msg = &MsgResetVolatility{}
	_ sdk.Msg = &MsgSweepProtocolFees{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// validateTokenDenom checks that a denom is well formed.
func validateTokenDenom(denom string) error {
	if denom == "" {
		return sdkerrors.Wrap(ErrInvalidTokenDenom, "token denomination cannot be empty")
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenDenom, "%s", err)
	}
	return nil
}

// signerOrPanic resolves a bech32 signer for the legacy GetSigners path.
func signerOrPanic(addr string) []sdk.AccAddress {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{acc}
}
