package fetcher

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"MomentumScreener/internal/model"
)

// ErrRateLimited marks a fetch rejected by the source's rate limiter;
// callers back off and retry.
var ErrRateLimited = errors.New("rate limited")

// AlpacaSource implements Source using the Alpaca Data API.
type AlpacaSource struct {
	client *marketdata.Client
}

// NewAlpacaSource creates a source backed by the Alpaca market data client.
func NewAlpacaSource(apiKey, apiSecret string) *AlpacaSource {
	return &AlpacaSource{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
	}
}

func (f *AlpacaSource) Name() string { return "alpaca" }

// Fetch downloads daily bars for [from, to].
func (f *AlpacaSource) Fetch(ctx context.Context, symbol string, from, to time.Time) ([]model.PriceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bars, err := f.client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Start:      from,
		End:        to,
		Adjustment: marketdata.Split,
	})
	if err != nil {
		if strings.Contains(err.Error(), "429") || strings.Contains(err.Error(), "too many requests") {
			return nil, fmt.Errorf("alpaca: %w", ErrRateLimited)
		}
		return nil, fmt.Errorf("alpaca get bars: %w", err)
	}

	records := make([]model.PriceRecord, 0, len(bars))
	for _, b := range bars {
		records = append(records, model.PriceRecord{
			Symbol:    symbol,
			TradeDate: b.Timestamp.UTC().Truncate(24 * time.Hour),
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    int64(b.Volume),
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].TradeDate.Before(records[j].TradeDate) })
	return records, nil
}
