package keeper

import (
	"math/big"
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// amountToFloat converts an Int to float64 for metric labels without
// overflowing on amounts beyond the int64 range.
func amountToFloat(v sdkmath.Int) float64 {
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}

// Metrics holds the Prometheus metrics for the dlmm module
type Metrics struct {
	SwapsTotal       *prometheus.CounterVec
	SwapVolume       *prometheus.CounterVec
	SwapFeesCharged  *prometheus.CounterVec
	SwapBinsCrossed  prometheus.Histogram
	SwapPriceImpact  prometheus.Histogram
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	ActiveBin        *prometheus.GaugeVec
	VolatilityValue  *prometheus.GaugeVec
	PoolsCreated     prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers dlmm metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pearl",
					Subsystem: "dlmm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pool_id", "direction"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pearl",
					Subsystem: "dlmm",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"pool_id", "denom"},
			),
			SwapFeesCharged: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pearl",
					Subsystem: "dlmm",
					Name:      "swap_fees_charged_total",
					Help:      "Total swap fees charged",
				},
				[]string{"pool_id", "denom"},
			),
			SwapBinsCrossed: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "pearl",
					Subsystem: "dlmm",
					Name:      "swap_bins_crossed",
					Help:      "Bins crossed per swap",
					Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
				},
			),
			SwapPriceImpact: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "pearl",
					Subsystem: "dlmm",
					Name:      "swap_price_impact_bps",
					Help:      "Swap price impact in basis points",
					Buckets:   []float64{1, 5, 10, 25, 50, 100, 500, 1000},
				},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pearl",
					Subsystem: "dlmm",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity deposited into bins",
				},
				[]string{"pool_id", "denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pearl",
					Subsystem: "dlmm",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity withdrawn from bins",
				},
				[]string{"pool_id", "denom"},
			),
			ActiveBin: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "pearl",
					Subsystem: "dlmm",
					Name:      "active_bin_id",
					Help:      "Current active bin per pool",
				},
				[]string{"pool_id"},
			),
			VolatilityValue: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "pearl",
					Subsystem: "dlmm",
					Name:      "volatility_accumulator",
					Help:      "Current volatility accumulator per pool",
				},
				[]string{"pool_id"},
			),
			PoolsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pearl",
					Subsystem: "dlmm",
					Name:      "pool_creations_total",
					Help:      "Total number of pools created",
				},
			),
		}
	})
	return metrics
}

// GetMetrics returns the singleton dlmm metrics instance
func GetMetrics() *Metrics {
	if metrics == nil {
		return NewMetrics()
	}
	return metrics
}
