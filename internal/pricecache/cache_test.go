package pricecache

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"MomentumScreener/internal/fetcher"
	"MomentumScreener/internal/model"
)

var today = time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC) // a Friday

func newTestCache(t *testing.T, source fetcher.Source) *Cache {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "prices.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewCache(store, source, zap.NewNop(), Options{
		Workers: 2,
		Now:     func() time.Time { return today },
	})
}

func TestEnsureFresh_Idempotent(t *testing.T) {
	src := fetcher.NewMockSource()
	src.Bars["AAPL"] = fetcher.GenerateBars("AAPL", today, 30, 100, 1.0, 2_000_000)

	cache := newTestCache(t, src)
	ctx := context.Background()

	report, err := cache.EnsureFresh(ctx, []string{"AAPL"}, 60)
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if report.Statuses["AAPL"] != model.StatusOK {
		t.Fatalf("expected ok status, got %s", report.Statuses["AAPL"])
	}
	first, err := cache.Series("AAPL", 60)
	if err != nil {
		t.Fatalf("read series: %v", err)
	}

	report, err = cache.EnsureFresh(ctx, []string{"AAPL"}, 60)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if report.Statuses["AAPL"] != model.StatusOK {
		t.Fatalf("expected ok status after resync, got %s", report.Statuses["AAPL"])
	}
	second, err := cache.Series("AAPL", 60)
	if err != nil {
		t.Fatalf("re-read series: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("stored state changed across identical syncs")
	}
	if src.Calls["AAPL"] != 1 {
		t.Errorf("up-to-date symbol should not refetch, got %d calls", src.Calls["AAPL"])
	}
}

func TestEnsureFresh_PartialFailure(t *testing.T) {
	src := fetcher.NewMockSource()
	src.Bars["GOOD"] = fetcher.GenerateBars("GOOD", today, 30, 50, 0.8, 3_000_000)
	src.Errs["BAD"] = errors.New("connection reset")

	cache := newTestCache(t, src)
	report, err := cache.EnsureFresh(context.Background(), []string{"GOOD", "BAD"}, 60)
	if err != nil {
		t.Fatalf("sync must survive a single-symbol failure: %v", err)
	}
	if report.Statuses["GOOD"] != model.StatusOK {
		t.Errorf("GOOD: expected ok, got %s", report.Statuses["GOOD"])
	}
	if report.Statuses["BAD"] != model.StatusUnavailable {
		t.Errorf("BAD: expected unavailable, got %s", report.Statuses["BAD"])
	}
	if report.Eligible("BAD") {
		t.Error("unavailable symbol must not be eligible downstream")
	}
}

func TestEnsureFresh_InsufficientHistory(t *testing.T) {
	src := fetcher.NewMockSource()
	src.Bars["NEW"] = fetcher.GenerateBars("NEW", today, 15, 20, 0.5, 5_000_000)

	cache := newTestCache(t, src)
	report, err := cache.EnsureFresh(context.Background(), []string{"NEW"}, 60)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if report.Statuses["NEW"] != model.StatusInsufficient {
		t.Errorf("recent listing: expected insufficient, got %s", report.Statuses["NEW"])
	}
}

func TestUpsert_NoDuplicates(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "prices.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	records := fetcher.GenerateBars("MSFT", today, 10, 400, 3.0, 1_200_000)
	for i := 0; i < 3; i++ {
		if err := store.Upsert(records); err != nil {
			t.Fatalf("upsert %d: %v", i+1, err)
		}
	}
	n, err := store.Count("MSFT")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 10 {
		t.Errorf("expected 10 rows after repeated upserts, got %d", n)
	}
}

func TestUpsert_SourceChangeWins(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "prices.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	records := fetcher.GenerateBars("TSLA", today, 5, 200, 4.0, 9_000_000)
	if err := store.Upsert(records); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	records[4].Close = 210 // corrected bar from the source
	if err := store.Upsert(records[4:]); err != nil {
		t.Fatalf("upsert corrected: %v", err)
	}

	series, err := store.Series("TSLA", 5)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if series.Len() != 5 {
		t.Fatalf("expected 5 rows, got %d", series.Len())
	}
	if got := series.Records[4].Close; got != 210 {
		t.Errorf("expected corrected close 210, got %.2f", got)
	}
}

func TestSeries_EmptyForUnknownSymbol(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "prices.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	series, err := store.Series("NOPE", 30)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if series.Len() != 0 {
		t.Errorf("expected empty series, got %d records", series.Len())
	}
}
