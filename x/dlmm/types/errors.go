package types

import (
	"cosmossdk.io/errors"
)

// DLMM module sentinel errors
var (
	ErrInvalidPoolId         = errors.Register(ModuleName, 1, "invalid pool id")
	ErrPoolNotFound          = errors.Register(ModuleName, 2, "pool not found")
	ErrInvalidBinStep        = errors.Register(ModuleName, 3, "bin step must be in (0, 10000]")
	ErrInvalidPrice          = errors.Register(ModuleName, 4, "invalid price")
	ErrBinIdOutOfRange       = errors.Register(ModuleName, 5, "bin id out of range")
	ErrZeroAmount            = errors.Register(ModuleName, 6, "amount cannot be zero")
	ErrInvalidAmount         = errors.Register(ModuleName, 7, "invalid amount")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 8, "insufficient liquidity in bin")
	ErrMinAmountOut          = errors.Register(ModuleName, 9, "output amount less than minimum required")
	ErrPoolInactive          = errors.Register(ModuleName, 10, "pool is inactive")
	ErrInvalidFeeParams      = errors.Register(ModuleName, 11, "invalid fee parameters")
	ErrInsufficientShares    = errors.Register(ModuleName, 12, "insufficient liquidity shares")
	ErrInvalidShares         = errors.Register(ModuleName, 13, "invalid shares amount")
	ErrOverflow              = errors.Register(ModuleName, 14, "arithmetic overflow")
	ErrInvalidAddress        = errors.Register(ModuleName, 15, "invalid address")
	ErrInvalidTokenDenom     = errors.Register(ModuleName, 16, "invalid token denomination")
	ErrSameToken             = errors.Register(ModuleName, 17, "pool tokens must be distinct")
	ErrInvalidPoolState      = errors.Register(ModuleName, 18, "invalid pool state")
	ErrUnauthorized          = errors.Register(ModuleName, 19, "unauthorized")
	ErrInvalidDirection      = errors.Register(ModuleName, 20, "invalid swap direction")
	ErrBinNotFound           = errors.Register(ModuleName, 21, "bin not found")
	ErrInvalidParams         = errors.Register(ModuleName, 22, "invalid module parameters")
)
