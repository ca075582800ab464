package feature

import (
	"errors"
	"math"
	"testing"
	"time"

	"MomentumScreener/internal/fetcher"
	"MomentumScreener/internal/model"
)

var end = time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC) // a Friday

func flatSeries(days int) model.PriceSeries {
	return model.PriceSeries{
		Symbol:  "FLAT",
		Records: fetcher.GenerateBars("FLAT", end, days, 100, 1.0, 2_000_000),
	}
}

func TestCompute_FlatSeries(t *testing.T) {
	feats, err := Compute(flatSeries(25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"close", feats.Close, 100},
		{"ma20", feats.MA20, 100},
		{"ma20 prior", feats.MA20Prior, 100},
		{"slope", feats.Slope, 0},
		{"volatility", feats.Volatility, 0},
		{"distance", feats.Distance, 0},
		{"avg volume", feats.AvgVolume10d, 2_000_000},
		{"avg range", feats.AvgRange5d, 1.0},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s: expected %.4f, got %.4f", tt.name, tt.want, tt.got)
		}
	}
}

func TestCompute_TrendingSeries(t *testing.T) {
	// closes rise $1/day, so both MA anchors rise $1/day apart: slope = 1.
	series := model.PriceSeries{Symbol: "UP"}
	day := end.AddDate(0, 0, -40)
	price := 50.0
	for series.Len() < 30 {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			series.Records = append(series.Records, model.PriceRecord{
				Symbol: "UP", TradeDate: day,
				Open: price, High: price + 1, Low: price - 1, Close: price, Volume: 1_500_000,
			})
			price++
		}
		day = day.AddDate(0, 0, 1)
	}

	feats, err := Compute(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(feats.Slope-1.0) > 1e-9 {
		t.Errorf("expected slope 1.0 for $1/day trend, got %.4f", feats.Slope)
	}
	if feats.Distance <= 0 {
		t.Errorf("rising series should close above its MA20, distance %.4f", feats.Distance)
	}
}

func TestCompute_InsufficientHistory(t *testing.T) {
	_, err := Compute(flatSeries(15))
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for 15-day series, got %v", err)
	}
	_, err = Compute(model.PriceSeries{Symbol: "EMPTY"})
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for empty series, got %v", err)
	}
}

func TestCompute_ExceptionalInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.PriceSeries)
	}{
		{"nan close", func(s *model.PriceSeries) { s.Records[s.Len()-1].Close = math.NaN() }},
		{"negative price", func(s *model.PriceSeries) { s.Records[s.Len()-3].Low = -1 }},
		{"zero open", func(s *model.PriceSeries) { s.Records[s.Len()-10].Open = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := flatSeries(25)
			tt.mutate(&series)
			if _, err := Compute(series); !errors.Is(err, ErrInsufficientData) {
				t.Errorf("expected ErrInsufficientData, got %v", err)
			}
		})
	}
}

func TestAtFiveDayLow(t *testing.T) {
	series := flatSeries(25)
	if !AtFiveDayLow(series) {
		t.Error("flat series closes at its 5-day low by equality")
	}
	series.Records[series.Len()-1].Close = 101
	if AtFiveDayLow(series) {
		t.Error("close above the window minimum is not a 5-day low")
	}
}
