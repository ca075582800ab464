package model

import "time"

// PriceRecord is a single end-of-day bar for one symbol.
// Keyed uniquely by (Symbol, TradeDate) in the price cache.
type PriceRecord struct {
	Symbol    string
	TradeDate time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
}

// PriceSeries holds the stored bars for one symbol, ascending by trade date.
type PriceSeries struct {
	Symbol  string
	Records []PriceRecord
}

// Len returns the number of bars in the series.
func (s PriceSeries) Len() int { return len(s.Records) }

// Tail returns the most recent n bars, or the whole series if shorter.
func (s PriceSeries) Tail(n int) []PriceRecord {
	if len(s.Records) <= n {
		return s.Records
	}
	return s.Records[len(s.Records)-n:]
}

// LastDate returns the most recent trade date, or the zero time for an empty series.
func (s PriceSeries) LastDate() time.Time {
	if len(s.Records) == 0 {
		return time.Time{}
	}
	return s.Records[len(s.Records)-1].TradeDate
}

// Closes extracts the close column in series order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Records))
	for i, r := range s.Records {
		closes[i] = r.Close
	}
	return closes
}
