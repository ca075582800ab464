package pricecache

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"MomentumScreener/internal/fetcher"
	"MomentumScreener/internal/model"
)

// Cache keeps local price storage synchronized against an external source.
type Cache struct {
	store  *Store
	source fetcher.Source
	log    *zap.Logger

	workers    int
	maxRetries int
	minHistory int // trading days required before a symbol is scoreable
	now        func() time.Time
}

// Options tune the sync behavior.
type Options struct {
	Workers    int
	MaxRetries int
	MinHistory int
	Now        func() time.Time // overridable for tests
}

// NewCache creates a cache over the given store and source.
func NewCache(store *Store, source fetcher.Source, log *zap.Logger, opts Options) *Cache {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.MinHistory <= 0 {
		opts.MinHistory = 25
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Cache{
		store:      store,
		source:     source,
		log:        log,
		workers:    opts.Workers,
		maxRetries: opts.MaxRetries,
		minHistory: opts.MinHistory,
		now:        opts.Now,
	}
}

// Series exposes the underlying windowed read.
func (c *Cache) Series(symbol string, windowDays int) (model.PriceSeries, error) {
	return c.store.Series(symbol, windowDays)
}

// EnsureFresh fetches any trading days missing from local storage for each
// requested symbol, up to lookbackDays back from today, and upserts them.
// A fetch failure for one symbol marks it unavailable and never aborts the
// run; a storage failure is fatal and propagates immediately.
func (c *Cache) EnsureFresh(ctx context.Context, symbols []string, lookbackDays int) (model.CoverageReport, error) {
	report := model.NewCoverageReport()

	latest, err := c.store.LatestDates()
	if err != nil {
		return report, err
	}

	today := c.now().UTC().Truncate(24 * time.Hour)
	// Fetch twice the lookback in calendar days so weekends and holidays
	// still leave enough trading days in the window.
	from := today.AddDate(0, 0, -2*lookbackDays)

	var toFetch []string
	for _, sym := range symbols {
		last, ok := latest[sym]
		if !ok {
			c.log.Debug("no stored history, full fetch", zap.String("symbol", sym))
			toFetch = append(toFetch, sym)
		} else if last.Before(today) {
			c.log.Debug("stored history stale", zap.String("symbol", sym), zap.Time("latest", last))
			toFetch = append(toFetch, sym)
		} else {
			report.Statuses[sym] = model.StatusOK
		}
	}

	if len(toFetch) > 0 {
		c.log.Info("syncing price cache",
			zap.Int("symbols", len(toFetch)),
			zap.String("source", c.source.Name()),
			zap.Time("from", from))
		if err := c.fetchAll(ctx, toFetch, from, today, &report); err != nil {
			return report, err
		}
	}

	// Recheck depth for every symbol that synced cleanly; recent listings
	// carry too little history to score and get a distinct status.
	for sym, status := range report.Statuses {
		if status != model.StatusOK {
			continue
		}
		n, err := c.store.Count(sym)
		if err != nil {
			return report, err
		}
		if n < c.minHistory {
			c.log.Warn("insufficient stored history",
				zap.String("symbol", sym), zap.Int("records", n), zap.Int("required", c.minHistory))
			report.Statuses[sym] = model.StatusInsufficient
		}
	}
	return report, nil
}

// fetchAll runs the fetch stage over a bounded worker pool. Cache writes for a
// given symbol happen inside its own task, so (symbol, date) writes are never
// concurrent; writes for different symbols proceed in parallel.
func (c *Cache) fetchAll(ctx context.Context, symbols []string, from, to time.Time, report *model.CoverageReport) error {
	var (
		mu       sync.Mutex
		storeErr error
		wg       sync.WaitGroup
	)
	jobs := make(chan string)

	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sym := range jobs {
				mu.Lock()
				failed := storeErr != nil
				mu.Unlock()
				if failed {
					continue // keep draining so the producer never blocks
				}
				records, err := c.fetchWithBackoff(ctx, sym, from, to)
				if err != nil {
					c.log.Warn("fetch failed, excluding symbol",
						zap.String("symbol", sym), zap.Error(err))
					mu.Lock()
					report.Statuses[sym] = model.StatusUnavailable
					mu.Unlock()
					continue
				}
				if err := c.store.Upsert(records); err != nil {
					mu.Lock()
					if storeErr == nil {
						storeErr = err
					}
					mu.Unlock()
					continue
				}
				mu.Lock()
				report.Statuses[sym] = model.StatusOK
				mu.Unlock()
			}
		}()
	}

	for _, sym := range symbols {
		jobs <- sym
	}
	close(jobs)
	wg.Wait()

	return storeErr
}

// fetchWithBackoff retries transient fetch errors with exponential backoff.
func (c *Cache) fetchWithBackoff(ctx context.Context, symbol string, from, to time.Time) ([]model.PriceRecord, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * 500 * time.Millisecond
			if errors.Is(lastErr, fetcher.ErrRateLimited) {
				backoff *= 4
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
		records, err := c.source.Fetch(ctx, symbol, from, to)
		if err == nil {
			return records, nil
		}
		lastErr = err
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
	}
	return nil, lastErr
}
