package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	ClaimFees(context.Context, *MsgClaimFees) (*MsgClaimFeesResponse, error)
	SetPoolStatus(context.Context, *MsgSetPoolStatus) (*MsgSetPoolStatusResponse, error)
	SetBaseFactor(context.Context, *MsgSetBaseFactor) (*MsgSetBaseFactorResponse, error)
	ResetVolatility(context.Context, *MsgResetVolatility) (*MsgResetVolatilityResponse, error)
	SweepProtocolFees(context.Context, *MsgSweepProtocolFees) (*MsgSweepProtocolFeesResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Response types

// MsgCreatePoolResponse defines the response for CreatePool
type MsgCreatePoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountIn       math.Int `json:"amount_in"`
	AmountOut      math.Int `json:"amount_out"`
	FeePaid        math.Int `json:"fee_paid"`
	BinsCrossed    uint32   `json:"bins_crossed"`
	FinalBinId     int32    `json:"final_bin_id"`
	PriceImpactBps math.Int `json:"price_impact_bps"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountX math.Int `json:"amount_x"`
	AmountY math.Int `json:"amount_y"`
	FeesX   math.Int `json:"fees_x"`
	FeesY   math.Int `json:"fees_y"`
}

// MsgClaimFeesResponse defines the response for ClaimFees
type MsgClaimFeesResponse struct {
	FeesX math.Int `json:"fees_x"`
	FeesY math.Int `json:"fees_y"`
}

// MsgSetPoolStatusResponse defines the response for SetPoolStatus
type MsgSetPoolStatusResponse struct{}

// MsgSetBaseFactorResponse defines the response for SetBaseFactor
type MsgSetBaseFactorResponse struct{}

// MsgResetVolatilityResponse defines the response for ResetVolatility
type MsgResetVolatilityResponse struct{}

// MsgSweepProtocolFeesResponse defines the response for SweepProtocolFees
type MsgSweepProtocolFeesResponse struct {
	SweptX math.Int `json:"swept_x"`
	SweptY math.Int `json:"swept_y"`
}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
