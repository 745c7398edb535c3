package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the dlmm QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	params, err := qs.Keeper.GetParams(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// Pool returns a specific pool by ID
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, found := qs.Keeper.GetPool(goCtx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

// Pools returns a page of pools in ascending ID order
func (qs queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultPaginationLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	pools := []types.Pool{}
	var total, seen uint64
	qs.Keeper.IteratePools(goCtx, func(pool types.Pool) bool {
		total++
		if seen >= req.Offset && uint64(len(pools)) < limit {
			pools = append(pools, pool)
		}
		seen++
		return false
	})

	return &types.QueryPoolsResponse{Pools: pools, Total: total}, nil
}

// Bin returns a single bin of a pool
func (qs queryServer) Bin(goCtx context.Context, req *types.QueryBinRequest) (*types.QueryBinResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, found := qs.Keeper.GetPool(goCtx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	info, err := qs.Keeper.GetBinInfo(goCtx, pool, req.BinId)
	if err != nil {
		return nil, err
	}
	return &types.QueryBinResponse{Bin: info}, nil
}

// Bins returns the populated bins of a pool in an ID range
func (qs queryServer) Bins(goCtx context.Context, req *types.QueryBinsRequest) (*types.QueryBinsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	if req.MinBinId > req.MaxBinId {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("min bin id exceeds max bin id")
	}

	pool, found := qs.Keeper.GetPool(goCtx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	bins := qs.Keeper.GetBinsInRange(goCtx, pool, req.MinBinId, req.MaxBinId)
	return &types.QueryBinsResponse{Bins: bins}, nil
}

// Position returns a provider's position with its pending fees
func (qs queryServer) Position(goCtx context.Context, req *types.QueryPositionRequest) (*types.QueryPositionResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %s", err)
	}

	bin, found := qs.Keeper.GetBin(goCtx, req.PoolId, req.BinId)
	if !found {
		return nil, types.ErrBinNotFound.Wrapf("pool %d bin %d", req.PoolId, req.BinId)
	}
	pos, found := qs.Keeper.GetPosition(goCtx, req.PoolId, req.BinId, provider)
	if !found {
		return nil, types.ErrInsufficientShares.Wrapf(
			"no position for %s in pool %d bin %d", req.Provider, req.PoolId, req.BinId)
	}

	pendingX, pendingY := PendingFees(bin, pos)
	return &types.QueryPositionResponse{
		Position: pos,
		PendingX: pendingX,
		PendingY: pendingY,
	}, nil
}

// QuoteSwap simulates a swap without executing it
func (qs queryServer) QuoteSwap(goCtx context.Context, req *types.QueryQuoteSwapRequest) (*types.QueryQuoteSwapResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	result, err := qs.Keeper.QuoteSwap(goCtx, req.PoolId, req.Direction, req.AmountIn)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteSwapResponse{
		AmountIn:       result.AmountIn,
		AmountOut:      result.AmountOut,
		FeePaid:        result.FeePaid,
		ProtocolFee:    result.ProtocolFee,
		BinsCrossed:    result.BinsCrossed,
		FinalBinId:     result.FinalBinId,
		PriceImpactBps: result.PriceImpactBps,
	}, nil
}

// ProtocolFees returns the pending protocol fees of a pool
func (qs queryServer) ProtocolFees(goCtx context.Context, req *types.QueryProtocolFeesRequest) (*types.QueryProtocolFeesResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, found := qs.Keeper.GetPool(goCtx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	return &types.QueryProtocolFeesResponse{
		AmountX: qs.Keeper.GetProtocolFee(goCtx, req.PoolId, pool.TokenX),
		AmountY: qs.Keeper.GetProtocolFee(goCtx, req.PoolId, pool.TokenY),
	}, nil
}
