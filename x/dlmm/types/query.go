package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Bin(context.Context, *QueryBinRequest) (*QueryBinResponse, error)
	Bins(context.Context, *QueryBinsRequest) (*QueryBinsResponse, error)
	Position(context.Context, *QueryPositionRequest) (*QueryPositionResponse, error)
	QuoteSwap(context.Context, *QueryQuoteSwapRequest) (*QueryQuoteSwapResponse, error)
	ProtocolFees(context.Context, *QueryProtocolFeesRequest) (*QueryProtocolFeesResponse, error)
}

// QueryParamsRequest requests the module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest requests a pool by ID
type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryPoolResponse returns a pool
type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryPoolsRequest requests all pools with offset pagination
type QueryPoolsRequest struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

// QueryPoolsResponse returns a page of pools
type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
	Total uint64 `json:"total"`
}

// QueryBinRequest requests a single bin of a pool
type QueryBinRequest struct {
	PoolId uint64 `json:"pool_id"`
	BinId  int32  `json:"bin_id"`
}

// QueryBinResponse returns bin reserves, price and fee growth
type QueryBinResponse struct {
	Bin BinInfo `json:"bin"`
}

// QueryBinsRequest requests the populated bins of a pool in an ID range
type QueryBinsRequest struct {
	PoolId   uint64 `json:"pool_id"`
	MinBinId int32  `json:"min_bin_id"`
	MaxBinId int32  `json:"max_bin_id"`
}

// QueryBinsResponse returns populated bins in ascending ID order
type QueryBinsResponse struct {
	Bins []BinInfo `json:"bins"`
}

// QueryPositionRequest requests a provider's position in a bin
type QueryPositionRequest struct {
	PoolId   uint64 `json:"pool_id"`
	BinId    int32  `json:"bin_id"`
	Provider string `json:"provider"`
}

// QueryPositionResponse returns a position with its pending fees
type QueryPositionResponse struct {
	Position LiquidityPosition `json:"position"`
	PendingX math.Int          `json:"pending_x"`
	PendingY math.Int          `json:"pending_y"`
}

// QueryQuoteSwapRequest requests a swap quote without executing
type QueryQuoteSwapRequest struct {
	PoolId    uint64        `json:"pool_id"`
	Direction SwapDirection `json:"direction"`
	AmountIn  math.Int      `json:"amount_in"`
}

// QueryQuoteSwapResponse returns the simulated swap result
type QueryQuoteSwapResponse struct {
	AmountIn       math.Int `json:"amount_in"`
	AmountOut      math.Int `json:"amount_out"`
	FeePaid        math.Int `json:"fee_paid"`
	ProtocolFee    math.Int `json:"protocol_fee"`
	BinsCrossed    uint32   `json:"bins_crossed"`
	FinalBinId     int32    `json:"final_bin_id"`
	PriceImpactBps math.Int `json:"price_impact_bps"`
}

// QueryProtocolFeesRequest requests accumulated protocol fees of a pool
type QueryProtocolFeesRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryProtocolFeesResponse returns pending protocol fees per token
type QueryProtocolFeesResponse struct {
	AmountX math.Int `json:"amount_x"`
	AmountY math.Int `json:"amount_y"`
}
