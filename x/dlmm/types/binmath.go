package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// Per-bin constant-sum math. Every trade inside a bin converts at the
// bin's fixed Q64.64 price with zero slippage; the only price movement a
// swap ever sees comes from crossing into the next bin. Intermediate
// products run over big.Int and results truncate toward zero, so the pool
// never pays out more than the exact conversion.

// mulQ64 returns a * price / 2^64, floored.
func mulQ64(a, price sdkmath.Int) sdkmath.Int {
	r := new(big.Int).Mul(a.BigInt(), price.BigInt())
	r.Rsh(r, 64)
	return sdkmath.NewIntFromBigInt(r)
}

// divQ64 returns a * 2^64 / price, floored.
func divQ64(a, price sdkmath.Int) sdkmath.Int {
	r := new(big.Int).Lsh(a.BigInt(), 64)
	r.Quo(r, price.BigInt())
	return sdkmath.NewIntFromBigInt(r)
}

// divQ64Ceil returns a * 2^64 / price, rounded up.
func divQ64Ceil(a, price sdkmath.Int) sdkmath.Int {
	num := new(big.Int).Lsh(a.BigInt(), 64)
	den := price.BigInt()
	r, m := new(big.Int).QuoRem(num, den, new(big.Int))
	if m.Sign() != 0 {
		r.Add(r, big.NewInt(1))
	}
	return sdkmath.NewIntFromBigInt(r)
}

// mulQ64Ceil returns a * price / 2^64, rounded up.
func mulQ64Ceil(a, price sdkmath.Int) sdkmath.Int {
	r := new(big.Int).Mul(a.BigInt(), price.BigInt())
	rem := new(big.Int).And(r, new(big.Int).Sub(priceScaleBig, big.NewInt(1)))
	r.Rsh(r, 64)
	if rem.Sign() != 0 {
		r.Add(r, big.NewInt(1))
	}
	return sdkmath.NewIntFromBigInt(r)
}

// LiquidityFromAmounts returns the constant-sum liquidity
// price*x/2^64 + y for a bin at the given Q64.64 price.
func LiquidityFromAmounts(x, y, price sdkmath.Int) (sdkmath.Int, error) {
	if price.IsNil() || !price.IsPositive() {
		return sdkmath.Int{}, ErrInvalidPrice.Wrap("price must be positive")
	}
	if x.IsNil() || x.IsNegative() || y.IsNil() || y.IsNegative() {
		return sdkmath.Int{}, ErrInvalidAmount.Wrap("amounts must be non-negative")
	}
	return mulQ64(x, price).Add(y), nil
}

// AmountsFromLiquidity splits liquidity L into reserves at the given
// composition: pctY percent lands on the Y side and the remainder converts
// to X at the bin price. pctY of 100 yields (0, L); 0 yields (L/price, 0).
func AmountsFromLiquidity(liquidity, price sdkmath.Int, pctY uint32) (x, y sdkmath.Int, err error) {
	if price.IsNil() || !price.IsPositive() {
		return sdkmath.Int{}, sdkmath.Int{}, ErrInvalidPrice.Wrap("price must be positive")
	}
	if pctY > 100 {
		return sdkmath.Int{}, sdkmath.Int{}, ErrInvalidAmount.Wrapf("composition percent %d exceeds 100", pctY)
	}
	if liquidity.IsNil() || liquidity.IsNegative() {
		return sdkmath.Int{}, sdkmath.Int{}, ErrInvalidAmount.Wrap("liquidity must be non-negative")
	}
	y = liquidity.MulRaw(int64(pctY)).QuoRaw(100)
	x = divQ64(liquidity.Sub(y), price)
	return x, y, nil
}

// MaxSwapAmount returns the largest input the bin can still absorb before
// the output-side reserve is fully drained. Zero when the output side is
// already empty.
func MaxSwapAmount(reserveX, reserveY sdkmath.Int, dir SwapDirection, price sdkmath.Int) (sdkmath.Int, error) {
	if price.IsNil() || !price.IsPositive() {
		return sdkmath.Int{}, ErrInvalidPrice.Wrap("price must be positive")
	}
	if err := dir.Validate(); err != nil {
		return sdkmath.Int{}, err
	}
	switch dir {
	case SwapDirectionXForY:
		if reserveY.IsZero() {
			return sdkmath.ZeroInt(), nil
		}
		// smallest x with x*price/2^64 >= reserveY
		return divQ64Ceil(reserveY, price), nil
	default:
		if reserveX.IsZero() {
			return sdkmath.ZeroInt(), nil
		}
		return mulQ64Ceil(reserveX, price), nil
	}
}

// SwapWithinBin converts amountIn at the bin's fixed price, capped by the
// output-side reserve. exhausted reports that the bin's output side was
// fully drained.
func SwapWithinBin(reserveX, reserveY, amountIn sdkmath.Int, dir SwapDirection, price sdkmath.Int) (amountOut sdkmath.Int, exhausted bool, err error) {
	if price.IsNil() || !price.IsPositive() {
		return sdkmath.Int{}, false, ErrInvalidPrice.Wrap("price must be positive")
	}
	if err := dir.Validate(); err != nil {
		return sdkmath.Int{}, false, err
	}
	if amountIn.IsNil() || amountIn.IsNegative() {
		return sdkmath.Int{}, false, ErrInvalidAmount.Wrap("amount in must be non-negative")
	}
	switch dir {
	case SwapDirectionXForY:
		amountOut = mulQ64(amountIn, price)
		if amountOut.GTE(reserveY) {
			amountOut = reserveY
		}
		return amountOut, amountOut.Equal(reserveY), nil
	default:
		amountOut = divQ64(amountIn, price)
		if amountOut.GTE(reserveX) {
			amountOut = reserveX
		}
		return amountOut, amountOut.Equal(reserveX), nil
	}
}

// ApplyReservesDelta credits the input side and debits the output side of
// a bin after a swap portion. A negative result is a logic defect, not a
// recoverable runtime condition.
func ApplyReservesDelta(bin *Bin, amountIn, amountOut sdkmath.Int, dir SwapDirection) error {
	if err := dir.Validate(); err != nil {
		return err
	}
	if dir == SwapDirectionXForY {
		bin.ReserveX = bin.ReserveX.Add(amountIn)
		bin.ReserveY = bin.ReserveY.Sub(amountOut)
	} else {
		bin.ReserveY = bin.ReserveY.Add(amountIn)
		bin.ReserveX = bin.ReserveX.Sub(amountOut)
	}
	if bin.ReserveX.IsNegative() || bin.ReserveY.IsNegative() {
		return ErrInvalidPoolState.Wrapf("bin %d reserves went negative after swap", bin.Id)
	}
	return nil
}
