// Package feature derives per-symbol technical metrics from a cached price
// series. All windows are trailing and end on the most recent stored trading
// day; nothing forward-looking is used.
package feature

import (
	"errors"
	"fmt"
	"math"

	"MomentumScreener/internal/calculator"
	"MomentumScreener/internal/model"
)

// Window sizes for the derived metrics.
const (
	MAWindow     = 20 // moving average
	SlopeOffset  = 5  // trading days between the two MA anchors
	VolWindow    = 5  // volatility and range
	VolumeWindow = 10 // average volume
	MinHistory   = MAWindow + SlopeOffset
)

// ErrInsufficientData is returned when a series is too short to score, or
// carries exceptional values (NaN, non-positive prices) that must not reach
// the filter pipeline.
var ErrInsufficientData = errors.New("insufficient data")

// Compute derives SymbolFeatures from the series.
func Compute(series model.PriceSeries) (model.SymbolFeatures, error) {
	if series.Len() < MinHistory {
		return model.SymbolFeatures{}, fmt.Errorf("%w: %s has %d of %d required days",
			ErrInsufficientData, series.Symbol, series.Len(), MinHistory)
	}
	if err := validate(series.Tail(MinHistory)); err != nil {
		return model.SymbolFeatures{}, err
	}

	closes := series.Closes()
	latest := series.Records[series.Len()-1]

	ma20, err := calculator.SMA(closes, MAWindow)
	if err != nil {
		return model.SymbolFeatures{}, err
	}
	maPrior, err := calculator.SMAAt(closes, MAWindow, SlopeOffset)
	if err != nil {
		return model.SymbolFeatures{}, err
	}

	tail5 := series.Tail(VolWindow)
	closeMean, err := calculator.Mean(closes[len(closes)-VolWindow:])
	if err != nil {
		return model.SymbolFeatures{}, err
	}
	closeStd, err := calculator.SampleStdDev(closes[len(closes)-VolWindow:])
	if err != nil {
		return model.SymbolFeatures{}, err
	}
	avgRange, err := calculator.MeanRange(tail5)
	if err != nil {
		return model.SymbolFeatures{}, err
	}
	avgVolume, err := calculator.MeanVolume(series.Tail(VolumeWindow))
	if err != nil {
		return model.SymbolFeatures{}, err
	}

	return model.SymbolFeatures{
		Symbol:       series.Symbol,
		Close:        latest.Close,
		MA20:         ma20,
		MA20Prior:    maPrior,
		Slope:        (ma20 - maPrior) / float64(SlopeOffset),
		Volatility:   closeStd / closeMean,
		Distance:     (latest.Close - ma20) / ma20,
		AvgVolume10d: avgVolume,
		AvgRange5d:   avgRange,
	}, nil
}

// AtFiveDayLow reports whether the most recent close equals the minimum close
// of the trailing 5-day window.
func AtFiveDayLow(series model.PriceSeries) bool {
	tail := series.Tail(VolWindow)
	if len(tail) == 0 {
		return false
	}
	low, err := calculator.MinClose(tail)
	if err != nil {
		return false
	}
	return tail[len(tail)-1].Close == low
}

// validate rejects exceptional bars so scoring only ever sees well-formed data.
func validate(bars []model.PriceRecord) error {
	for _, b := range bars {
		for _, v := range [...]float64{b.Open, b.High, b.Low, b.Close} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return fmt.Errorf("%w: %s has exceptional price on %s",
					ErrInsufficientData, b.Symbol, b.TradeDate.Format("2006-01-02"))
			}
		}
		if b.Volume < 0 {
			return fmt.Errorf("%w: %s has negative volume on %s",
				ErrInsufficientData, b.Symbol, b.TradeDate.Format("2006-01-02"))
		}
	}
	return nil
}
