package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultParams tests that the defaults validate
func TestDefaultParams(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
}

// TestParamsValidate tests parameter validation
func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"default", func(p *Params) {}, false},
		{"cumulative mode", func(p *Params) { p.VolatilityMode = VolatilityModeCumulative }, false},
		{"zero variable fee control", func(p *Params) { p.VariableFeeControl = 0 }, false},
		{"zero max fee multiple", func(p *Params) { p.MaxFeeMultiple = 0 }, true},
		{"zero volatility unit", func(p *Params) { p.VolatilityUnit = 0 }, true},
		{"zero max volatility", func(p *Params) { p.MaxVolatility = 0 }, true},
		{"unknown volatility mode", func(p *Params) { p.VolatilityMode = "adaptive" }, true},
		{"empty volatility mode", func(p *Params) { p.VolatilityMode = "" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := DefaultParams()
			tc.mutate(&params)
			err := params.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestDynamicFeeRate tests the combined fee curve
func TestDynamicFeeRate(t *testing.T) {
	params := DefaultParams()
	pool := Pool{BinStep: 25, BaseFactor: 100}

	// quiet market pays only the base fee
	require.Equal(t, uint64(2500), params.DynamicFeeRate(pool, 0))

	// volatility adds the quadratic term
	require.Equal(t, uint64(2506), params.DynamicFeeRate(pool, 1))
	require.Equal(t, uint64(3125), params.DynamicFeeRate(pool, 10))

	// total rate never exceeds the global cap
	hot := Pool{BinStep: BasisPointMax, BaseFactor: MaxBaseFactor}
	require.Equal(t, uint64(MaxFeeRate), params.DynamicFeeRate(hot, 0))
	require.Equal(t, uint64(MaxFeeRate), params.DynamicFeeRate(hot, 1_000_000))
}

// TestVolatilityInput tests mode selection for the variable fee input
func TestVolatilityInput(t *testing.T) {
	pool := Pool{Volatility: VolatilityAccumulator{Value: 700}}

	perSwap := DefaultParams()
	require.Equal(t, uint64(4), perSwap.VolatilityInput(pool, 4))
	require.Equal(t, uint64(0), perSwap.VolatilityInput(pool, 0))

	cumulative := DefaultParams()
	cumulative.VolatilityMode = VolatilityModeCumulative
	// 700 / unit(100) + 4 crossings
	require.Equal(t, uint64(11), cumulative.VolatilityInput(pool, 4))
}
