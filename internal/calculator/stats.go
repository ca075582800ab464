package calculator

import (
	"errors"
	"math"

	"MomentumScreener/internal/model"
)

// Mean returns the arithmetic mean of the values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("no values provided")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// SampleStdDev returns the sample standard deviation (n-1 denominator).
// A single value has zero deviation.
func SampleStdDev(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("no values provided")
	}
	if len(values) == 1 {
		return 0, nil
	}
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)-1)), nil
}

// MinClose returns the lowest close among the given bars.
func MinClose(bars []model.PriceRecord) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	low := bars[0].Close
	for _, b := range bars[1:] {
		if b.Close < low {
			low = b.Close
		}
	}
	return low, nil
}

// MeanRange returns the mean (high - low) over the given bars.
func MeanRange(bars []model.PriceRecord) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	sum := 0.0
	for _, b := range bars {
		sum += b.High - b.Low
	}
	return sum / float64(len(bars)), nil
}

// MeanVolume returns the mean volume over the given bars.
func MeanVolume(bars []model.PriceRecord) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	sum := 0.0
	for _, b := range bars {
		sum += float64(b.Volume)
	}
	return sum / float64(len(bars)), nil
}
