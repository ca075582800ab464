package fetcher

import (
	"context"
	"time"

	"MomentumScreener/internal/model"
)

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	// Bars maps symbol to the records Fetch returns for it.
	Bars map[string][]model.PriceRecord
	// Errs maps symbol to a forced fetch error.
	Errs map[string]error
	// Calls counts Fetch invocations per symbol.
	Calls map[string]int
}

func NewMockSource() *MockSource {
	return &MockSource{
		Bars:  make(map[string][]model.PriceRecord),
		Errs:  make(map[string]error),
		Calls: make(map[string]int),
	}
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Fetch(_ context.Context, symbol string, from, to time.Time) ([]model.PriceRecord, error) {
	m.Calls[symbol]++
	if err := m.Errs[symbol]; err != nil {
		return nil, err
	}
	var out []model.PriceRecord
	for _, r := range m.Bars[symbol] {
		if r.TradeDate.Before(from) || r.TradeDate.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// GenerateBars builds count consecutive weekday bars ending on end, with a flat
// close at basePrice, a fixed daily range, and a fixed volume.
func GenerateBars(symbol string, end time.Time, count int, basePrice, dailyRange float64, volume int64) []model.PriceRecord {
	bars := make([]model.PriceRecord, 0, count)
	day := end
	for len(bars) < count {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			bars = append(bars, model.PriceRecord{
				Symbol:    symbol,
				TradeDate: day,
				Open:      basePrice,
				High:      basePrice + dailyRange/2,
				Low:       basePrice - dailyRange/2,
				Close:     basePrice,
				Volume:    volume,
			})
		}
		day = day.AddDate(0, 0, -1)
	}
	// built newest-first; reverse to ascending
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
	return bars
}
