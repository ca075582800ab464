// Package screen implements the momentum screening pipeline: criterion
// filtering, slope classification, and overflow resolution over per-symbol
// features.
package screen

import (
	"fmt"

	"MomentumScreener/internal/model"
)

// Criteria holds the filter thresholds. All of them come from configuration;
// none is a hard-coded literal inside the pipeline.
type Criteria struct {
	SlopeMax        float64 // criterion 2: slope must stay below this
	VolatilityMax   float64 // criterion 3
	DistanceBase    float64 // criterion 4: floor of the dynamic distance bound
	DistanceVolMult float64 // criterion 4: volatility multiplier of the bound
	MinAvgVolume    float64 // criterion 5
	MinAvgRange     float64 // criterion 6
}

// DefaultCriteria mirrors the documented thresholds for the US market.
func DefaultCriteria() Criteria {
	return Criteria{
		SlopeMax:        2.0,
		VolatilityMax:   0.08,
		DistanceBase:    0.03,
		DistanceVolMult: 1.5,
		MinAvgVolume:    1_000_000,
		MinAvgRange:     0.50,
	}
}

// DistanceBound returns the dynamic |distance| limit for the given volatility.
func (c Criteria) DistanceBound(volatility float64) float64 {
	bound := volatility * c.DistanceVolMult
	if bound < c.DistanceBase {
		bound = c.DistanceBase
	}
	return bound
}

// Snapshot is the filter input for one symbol: its derived features plus the
// trailing daily bars the trend criterion inspects.
type Snapshot struct {
	Features model.SymbolFeatures
	Tail     []model.PriceRecord // trailing 5 trading days, ascending
}

// Passes evaluates the ordered criteria, short-circuiting on the first
// failure. The returned reason names the failed criterion for run logs; it is
// empty when the snapshot passes. Criteria are pure: same snapshot, same
// answer, every call.
func (c Criteria) Passes(s Snapshot) (bool, string) {
	f := s.Features

	// 1. Trend: the (open, close) midpoint of each of the last 5 days must
	// hold at or above MA20 — every day, not merely on average.
	for _, bar := range s.Tail {
		if (bar.Open+bar.Close)/2 < f.MA20 {
			return false, fmt.Sprintf("trend: %s midpoint %.2f below ma20 %.2f",
				bar.TradeDate.Format("2006-01-02"), (bar.Open+bar.Close)/2, f.MA20)
		}
	}

	// 2. Slope ceiling.
	if f.Slope >= c.SlopeMax {
		return false, fmt.Sprintf("slope %.3f >= %.3f", f.Slope, c.SlopeMax)
	}

	// 3. Volatility ceiling.
	if f.Volatility >= c.VolatilityMax {
		return false, fmt.Sprintf("volatility %.4f >= %.4f", f.Volatility, c.VolatilityMax)
	}

	// 4. Distance band.
	bound := c.DistanceBound(f.Volatility)
	dist := f.Distance
	if dist < 0 {
		dist = -dist
	}
	if dist > bound {
		return false, fmt.Sprintf("|distance| %.4f > bound %.4f", dist, bound)
	}

	// 5. Liquidity floor.
	if f.AvgVolume10d < c.MinAvgVolume {
		return false, fmt.Sprintf("avg volume %.0f < %.0f", f.AvgVolume10d, c.MinAvgVolume)
	}

	// 6. Price-action floor.
	if f.AvgRange5d <= c.MinAvgRange {
		return false, fmt.Sprintf("avg range %.2f <= %.2f", f.AvgRange5d, c.MinAvgRange)
	}

	return true, ""
}
