package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Administrative messages. The keeper checks the authority against the
// module's configured governance address; the caller-identity check itself
// lives outside the settlement core.

// MsgSetPoolStatus pauses or resumes a pool's mutating operations
type MsgSetPoolStatus struct {
	Authority string `json:"authority"`
	PoolId    uint64 `json:"pool_id"`
	Active    bool   `json:"active"`
}

// Route implements the sdk.Msg interface
func (msg MsgSetPoolStatus) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetPoolStatus) Type() string { return TypeMsgSetPoolStatus }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetPoolStatus) GetSigners() []sdk.AccAddress { return signerOrPanic(msg.Authority) }

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetPoolStatus) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetPoolStatus) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgSetPoolStatus) Reset() { *msg = MsgSetPoolStatus{} }

// String implements the proto.Message interface
func (msg *MsgSetPoolStatus) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSetPoolStatus) ProtoMessage() {}

// MsgSetBaseFactor updates a pool's base fee factor
type MsgSetBaseFactor struct {
	Authority  string `json:"authority"`
	PoolId     uint64 `json:"pool_id"`
	BaseFactor uint32 `json:"base_factor"`
}

// Route implements the sdk.Msg interface
func (msg MsgSetBaseFactor) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetBaseFactor) Type() string { return TypeMsgSetBaseFactor }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetBaseFactor) GetSigners() []sdk.AccAddress { return signerOrPanic(msg.Authority) }

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetBaseFactor) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetBaseFactor) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}
	return ValidateBaseFactor(msg.BaseFactor)
}

// Reset implements the proto.Message interface
func (msg *MsgSetBaseFactor) Reset() { *msg = MsgSetBaseFactor{} }

// String implements the proto.Message interface
func (msg *MsgSetBaseFactor) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSetBaseFactor) ProtoMessage() {}

// MsgResetVolatility zeroes a pool's volatility accumulator
type MsgResetVolatility struct {
	Authority string `json:"authority"`
	PoolId    uint64 `json:"pool_id"`
}

// Route implements the sdk.Msg interface
func (msg MsgResetVolatility) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgResetVolatility) Type() string { return TypeMsgResetVolatility }

// GetSigners implements the sdk.Msg interface
func (msg MsgResetVolatility) GetSigners() []sdk.AccAddress { return signerOrPanic(msg.Authority) }

// GetSignBytes implements the sdk.Msg interface
func (msg MsgResetVolatility) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgResetVolatility) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgResetVolatility) Reset() { *msg = MsgResetVolatility{} }

// String implements the proto.Message interface
func (msg *MsgResetVolatility) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgResetVolatility) ProtoMessage() {}

// MsgSweepProtocolFees transfers accumulated protocol fees to a recipient
type MsgSweepProtocolFees struct {
	Authority string `json:"authority"`
	PoolId    uint64 `json:"pool_id"`
	Recipient string `json:"recipient"`
}

// Route implements the sdk.Msg interface
func (msg MsgSweepProtocolFees) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSweepProtocolFees) Type() string { return TypeMsgSweepProtocolFees }

// GetSigners implements the sdk.Msg interface
func (msg MsgSweepProtocolFees) GetSigners() []sdk.AccAddress { return signerOrPanic(msg.Authority) }

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSweepProtocolFees) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSweepProtocolFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgSweepProtocolFees) Reset() { *msg = MsgSweepProtocolFees{} }

// String implements the proto.Message interface
func (msg *MsgSweepProtocolFees) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSweepProtocolFees) ProtoMessage() {}

// MsgUpdateParams replaces the module parameters
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress { return signerOrPanic(msg.Authority) }

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}

// Reset implements the proto.Message interface
func (msg *MsgUpdateParams) Reset() { *msg = MsgUpdateParams{} }

// String implements the proto.Message interface
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgUpdateParams) ProtoMessage() {}
