package calculator

import "errors"

// SMA computes the simple moving average of the most recent `period` values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// SMAAt computes the simple moving average of the `period` values ending
// `offset` positions before the end of the slice. SMAAt(v, p, 0) == SMA(v, p).
func SMAAt(values []float64, period, offset int) (float64, error) {
	if offset < 0 {
		return 0, errors.New("offset must be non-negative")
	}
	if len(values) < offset {
		return 0, errors.New("not enough data for SMA offset")
	}
	return SMA(values[:len(values)-offset], period)
}
