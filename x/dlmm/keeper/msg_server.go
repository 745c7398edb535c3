package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the dlmm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles MsgCreatePool
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("creator: %s", err)
	}

	pool, err := ms.Keeper.CreatePool(goCtx, creator, msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{PoolId: pool.Id}, nil
}

// Swap handles MsgSwap
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("trader: %s", err)
	}

	result, err := ms.Keeper.Swap(goCtx, trader, msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapResponse{
		AmountIn:       result.AmountIn,
		AmountOut:      result.AmountOut,
		FeePaid:        result.FeePaid,
		BinsCrossed:    result.BinsCrossed,
		FinalBinId:     result.FinalBinId,
		PriceImpactBps: result.PriceImpactBps,
	}, nil
}

// AddLiquidity handles MsgAddLiquidity
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %s", err)
	}

	shares, err := ms.Keeper.AddLiquidity(goCtx, provider, msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgAddLiquidityResponse{Shares: shares}, nil
}

// RemoveLiquidity handles MsgRemoveLiquidity
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %s", err)
	}

	amountX, amountY, feesX, feesY, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgRemoveLiquidityResponse{
		AmountX: amountX,
		AmountY: amountY,
		FeesX:   feesX,
		FeesY:   feesY,
	}, nil
}

// ClaimFees handles MsgClaimFees
func (ms msgServer) ClaimFees(goCtx context.Context, msg *types.MsgClaimFees) (*types.MsgClaimFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %s", err)
	}

	feesX, feesY, err := ms.Keeper.ClaimBinFees(goCtx, provider, msg.PoolId, msg.BinId)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimFeesResponse{FeesX: feesX, FeesY: feesY}, nil
}

// SetPoolStatus handles MsgSetPoolStatus
func (ms msgServer) SetPoolStatus(goCtx context.Context, msg *types.MsgSetPoolStatus) (*types.MsgSetPoolStatusResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetPoolStatus(goCtx, msg.Authority, msg.PoolId, msg.Active); err != nil {
		return nil, err
	}
	return &types.MsgSetPoolStatusResponse{}, nil
}

// SetBaseFactor handles MsgSetBaseFactor
func (ms msgServer) SetBaseFactor(goCtx context.Context, msg *types.MsgSetBaseFactor) (*types.MsgSetBaseFactorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetBaseFactor(goCtx, msg.Authority, msg.PoolId, msg.BaseFactor); err != nil {
		return nil, err
	}
	return &types.MsgSetBaseFactorResponse{}, nil
}

// ResetVolatility handles MsgResetVolatility
func (ms msgServer) ResetVolatility(goCtx context.Context, msg *types.MsgResetVolatility) (*types.MsgResetVolatilityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.ResetVolatility(goCtx, msg.Authority, msg.PoolId); err != nil {
		return nil, err
	}
	return &types.MsgResetVolatilityResponse{}, nil
}

// SweepProtocolFees handles MsgSweepProtocolFees
func (ms msgServer) SweepProtocolFees(goCtx context.Context, msg *types.MsgSweepProtocolFees) (*types.MsgSweepProtocolFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("recipient: %s", err)
	}

	sweptX, sweptY, err := ms.Keeper.SweepProtocolFees(goCtx, msg.PoolId, recipient)
	if err != nil {
		return nil, err
	}
	return &types.MsgSweepProtocolFeesResponse{SweptX: sweptX, SweptY: sweptY}, nil
}

// UpdateParams handles MsgUpdateParams
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.UpdateParams(goCtx, msg.Authority, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
