package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "dlmm/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "dlmm/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "dlmm/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "dlmm/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgClaimFees{}, "dlmm/MsgClaimFees", nil)
	cdc.RegisterConcrete(&MsgSetPoolStatus{}, "dlmm/MsgSetPoolStatus", nil)
	cdc.RegisterConcrete(&MsgSetBaseFactor{}, "dlmm/MsgSetBaseFactor", nil)
	cdc.RegisterConcrete(&MsgResetVolatility{}, "dlmm/MsgResetVolatility", nil)
	cdc.RegisterConcrete(&MsgSweepProtocolFees{}, "dlmm/MsgSweepProtocolFees", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "dlmm/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgSwap{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgClaimFees{},
		&MsgSetPoolStatus{},
		&MsgSetBaseFactor{},
		&MsgResetVolatility{},
		&MsgSweepProtocolFees{},
		&MsgUpdateParams{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
