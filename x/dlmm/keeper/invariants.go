package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// RegisterInvariants registers all dlmm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "bin-state", BinStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "position-shares", PositionSharesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-solvency", ModuleSolvencyInvariant(k))
}

// AllInvariants runs all invariants of the dlmm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := BinStateInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = PositionSharesInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ModuleSolvencyInvariant(k)(ctx)
	}
}

// BinStateInvariant checks every stored bin: non-negative reserves and fee
// growth, positive cached price, and shares zero exactly when reserves are
// zero.
func BinStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, pool := range k.GetAllPools(ctx) {
			k.IterateBins(ctx, pool.Id, func(bin types.Bin) bool {
				if err := bin.Validate(); err != nil {
					count++
					msg += fmt.Sprintf("pool %d bin %d: %s\n", pool.Id, bin.Id, err)
				}
				return false
			})
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "bin-state",
			fmt.Sprintf("found %d broken bins\n%s", count, msg),
		), broken
	}
}

// PositionSharesInvariant checks that per-bin position shares sum exactly
// to the bin's total shares.
func PositionSharesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, pool := range k.GetAllPools(ctx) {
			k.IterateBins(ctx, pool.Id, func(bin types.Bin) bool {
				sum := sdkmath.ZeroInt()
				k.IterateBinPositions(ctx, pool.Id, bin.Id, func(_ sdk.AccAddress, pos types.LiquidityPosition) bool {
					sum = sum.Add(pos.Shares)
					return false
				})
				if !sum.Equal(bin.TotalShares) {
					count++
					msg += fmt.Sprintf("pool %d bin %d: position shares %s != total %s\n",
						pool.Id, bin.Id, sum, bin.TotalShares)
				}
				return false
			})
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "position-shares",
			fmt.Sprintf("found %d bins with mismatched shares\n%s", count, msg),
		), broken
	}
}

// ModuleSolvencyInvariant checks that the module account covers every
// pool's reserves plus pending protocol fees per denom. Unclaimed LP fees
// and rounding dust also sit in the module account, so the balance may
// exceed the accounted sum but never fall short.
func ModuleSolvencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := map[string]sdkmath.Int{}
		add := func(denom string, amount sdkmath.Int) {
			cur, ok := required[denom]
			if !ok {
				cur = sdkmath.ZeroInt()
			}
			required[denom] = cur.Add(amount)
		}

		for _, pool := range k.GetAllPools(ctx) {
			k.IterateBins(ctx, pool.Id, func(bin types.Bin) bool {
				add(pool.TokenX, bin.ReserveX)
				add(pool.TokenY, bin.ReserveY)
				return false
			})
			add(pool.TokenX, k.GetProtocolFee(ctx, pool.Id, pool.TokenX))
			add(pool.TokenY, k.GetProtocolFee(ctx, pool.Id, pool.TokenY))
		}

		var (
			msg   string
			count int
		)
		moduleAddr := k.GetModuleAddress()
		for denom, amount := range required {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(amount) {
				count++
				msg += fmt.Sprintf("module balance for %s (%s) < accounted (%s)\n",
					denom, balance.Amount, amount)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "module-solvency",
			fmt.Sprintf("found %d underfunded denoms\n%s", count, msg),
		), broken
	}
}
