package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreatePool defines a message to create a new DLMM pool
type MsgCreatePool struct {
	Creator string `json:"creator"`
	TokenX  string `json:"token_x"`
	TokenY  string `json:"token_y"`
	// BinStep is the basis-point spacing between adjacent bin prices
	BinStep uint32 `json:"bin_step"`
	// ActiveBinId is the initial active trading bin
	ActiveBinId int32 `json:"active_bin_id"`
	// InitialPrice, when non-zero, must agree with the active bin's
	// derived price within 0.1%
	InitialPrice    sdkmath.Int `json:"initial_price"`
	BaseFactor      uint32      `json:"base_factor"`
	ProtocolFeeRate uint32      `json:"protocol_fee_rate"`
	SeedAmountX     sdkmath.Int `json:"seed_amount_x"`
	SeedAmountY     sdkmath.Int `json:"seed_amount_y"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator, tokenX, tokenY string, binStep uint32, activeBinID int32, baseFactor, protocolFeeRate uint32, seedX, seedY sdkmath.Int) *MsgCreatePool {
	return &MsgCreatePool{
		Creator:         creator,
		TokenX:          tokenX,
		TokenY:          tokenY,
		BinStep:         binStep,
		ActiveBinId:     activeBinID,
		InitialPrice:    sdkmath.ZeroInt(),
		BaseFactor:      baseFactor,
		ProtocolFeeRate: protocolFeeRate,
		SeedAmountX:     seedX,
		SeedAmountY:     seedY,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePool) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreatePool) Type() string { return TypeMsgCreatePool }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress { return signerOrPanic(msg.Creator) }

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if err := validateTokenDenom(msg.TokenX); err != nil {
		return err
	}
	if err := validateTokenDenom(msg.TokenY); err != nil {
		return err
	}
	if msg.TokenX == msg.TokenY {
		return sdkerrors.Wrap(ErrSameToken, "pool tokens must be distinct")
	}
	if err := ValidateBinStep(msg.BinStep); err != nil {
		return err
	}
	if msg.ActiveBinId < MinBinID || msg.ActiveBinId > MaxBinID {
		return ErrBinIdOutOfRange.Wrapf("active bin id %d", msg.ActiveBinId)
	}
	if err := ValidateBaseFactor(msg.BaseFactor); err != nil {
		return err
	}
	if err := ValidateProtocolFeeRate(msg.ProtocolFeeRate); err != nil {
		return err
	}
	if msg.InitialPrice.IsNil() || msg.InitialPrice.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidPrice, "initial price cannot be negative")
	}
	if msg.SeedAmountX.IsNil() || msg.SeedAmountX.IsNegative() ||
		msg.SeedAmountY.IsNil() || msg.SeedAmountY.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "seed amounts cannot be negative")
	}
	if msg.SeedAmountX.IsZero() && msg.SeedAmountY.IsZero() {
		return sdkerrors.Wrap(ErrZeroAmount, "pool needs a non-zero seed")
	}
	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgCreatePool) Reset() { *msg = MsgCreatePool{} }

// String implements the proto.Message interface
func (msg *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgCreatePool) ProtoMessage() {}
