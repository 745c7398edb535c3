package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgAddLiquidity defines a message to deposit into a single bin
type MsgAddLiquidity struct {
	Provider string      `json:"provider"`
	PoolId   uint64      `json:"pool_id"`
	BinId    int32       `json:"bin_id"`
	AmountX  sdkmath.Int `json:"amount_x"`
	AmountY  sdkmath.Int `json:"amount_y"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, poolID uint64, binID int32, amountX, amountY sdkmath.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		PoolId:   poolID,
		BinId:    binID,
		AmountX:  amountX,
		AmountY:  amountY,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string { return TypeMsgAddLiquidity }

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress { return signerOrPanic(msg.Provider) }

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}
	if msg.BinId < MinBinID || msg.BinId > MaxBinID {
		return ErrBinIdOutOfRange.Wrapf("bin id %d", msg.BinId)
	}
	if msg.AmountX.IsNil() || msg.AmountX.IsNegative() ||
		msg.AmountY.IsNil() || msg.AmountY.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amounts cannot be negative")
	}
	if msg.AmountX.IsZero() && msg.AmountY.IsZero() {
		return sdkerrors.Wrap(ErrZeroAmount, "deposit needs a non-zero amount")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgAddLiquidity) Reset() { *msg = MsgAddLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgAddLiquidity) ProtoMessage() {}

// MsgRemoveLiquidity defines a message to burn bin shares
type MsgRemoveLiquidity struct {
	Provider string      `json:"provider"`
	PoolId   uint64      `json:"pool_id"`
	BinId    int32       `json:"bin_id"`
	Shares   sdkmath.Int `json:"shares"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, poolID uint64, binID int32, shares sdkmath.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		PoolId:   poolID,
		BinId:    binID,
		Shares:   shares,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string { return TypeMsgRemoveLiquidity }

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress { return signerOrPanic(msg.Provider) }

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}
	if msg.BinId < MinBinID || msg.BinId > MaxBinID {
		return ErrBinIdOutOfRange.Wrapf("bin id %d", msg.BinId)
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidShares, "shares to burn must be positive")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgRemoveLiquidity) Reset() { *msg = MsgRemoveLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgRemoveLiquidity) ProtoMessage() {}

// MsgClaimFees defines a message to claim accrued bin fees without
// burning shares
type MsgClaimFees struct {
	Provider string `json:"provider"`
	PoolId   uint64 `json:"pool_id"`
	BinId    int32  `json:"bin_id"`
}

// NewMsgClaimFees creates a new MsgClaimFees instance
func NewMsgClaimFees(provider string, poolID uint64, binID int32) *MsgClaimFees {
	return &MsgClaimFees{Provider: provider, PoolId: poolID, BinId: binID}
}

// Route implements the sdk.Msg interface
func (msg MsgClaimFees) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgClaimFees) Type() string { return TypeMsgClaimFees }

// GetSigners implements the sdk.Msg interface
func (msg MsgClaimFees) GetSigners() []sdk.AccAddress { return signerOrPanic(msg.Provider) }

// GetSignBytes implements the sdk.Msg interface
func (msg MsgClaimFees) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgClaimFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}
	if msg.BinId < MinBinID || msg.BinId > MaxBinID {
		return ErrBinIdOutOfRange.Wrapf("bin id %d", msg.BinId)
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgClaimFees) Reset() { *msg = MsgClaimFees{} }

// String implements the proto.Message interface
func (msg *MsgClaimFees) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgClaimFees) ProtoMessage() {}
