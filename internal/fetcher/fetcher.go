package fetcher

import (
	"context"
	"time"

	"MomentumScreener/internal/model"
)

// Source defines the interface for fetching daily price history.
type Source interface {
	// Fetch returns daily bars for the symbol within [from, to], ascending
	// by trade date. A symbol with no data in the range yields an empty
	// slice, not an error.
	Fetch(ctx context.Context, symbol string, from, to time.Time) ([]model.PriceRecord, error)
	Name() string
}
