package screen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"MomentumScreener/internal/feature"
	"MomentumScreener/internal/model"
	"MomentumScreener/internal/pricecache"
)

// ErrEmptyUniverse is returned when the pipeline is handed nothing to screen.
var ErrEmptyUniverse = errors.New("empty symbol universe")

// Config holds the pipeline parameters. Immutable after construction.
type Config struct {
	LookbackDays   int     // cache sync and series window, calendar days
	GroupCap       int     // maximum candidates per group post-resolution
	StrongSlopeMin float64 // classification boundary
	Criteria       Criteria
}

// Engine runs the full screening pipeline over a symbol universe.
type Engine struct {
	cache *pricecache.Cache
	cfg   Config
	log   *zap.Logger
}

// NewEngine creates an engine over the given cache.
func NewEngine(cache *pricecache.Cache, cfg Config, log *zap.Logger) *Engine {
	return &Engine{cache: cache, cfg: cfg, log: log}
}

// Run executes one screening pass: sync the cache, compute features per
// covered symbol, filter, classify, and resolve overflow. Per-symbol fetch
// or data problems are logged and excluded; only configuration and storage
// errors fail the run.
func (e *Engine) Run(ctx context.Context, symbols []string) (*model.SelectionResult, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyUniverse
	}

	coverage, err := e.cache.EnsureFresh(ctx, symbols, e.cfg.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("ensure fresh: %w", err)
	}

	var (
		candidates []model.Candidate
		runDate    time.Time
		scored     int
	)
	for _, sym := range symbols {
		if !coverage.Eligible(sym) {
			continue
		}
		series, err := e.cache.Series(sym, e.cfg.LookbackDays)
		if err != nil {
			return nil, fmt.Errorf("load series %s: %w", sym, err)
		}
		feats, err := feature.Compute(series)
		if err != nil {
			if errors.Is(err, feature.ErrInsufficientData) {
				e.log.Debug("skipping symbol", zap.String("symbol", sym), zap.Error(err))
				coverage.Statuses[sym] = model.StatusInsufficient
				continue
			}
			return nil, fmt.Errorf("compute features %s: %w", sym, err)
		}
		scored++
		if d := series.LastDate(); d.After(runDate) {
			runDate = d
		}

		snap := Snapshot{Features: feats, Tail: series.Tail(feature.VolWindow)}
		if ok, reason := e.cfg.Criteria.Passes(snap); !ok {
			e.log.Debug("filtered out", zap.String("symbol", sym), zap.String("reason", reason))
			continue
		}
		candidates = append(candidates, model.Candidate{
			Features:     feats,
			AtFiveDayLow: feature.AtFiveDayLow(series),
		})
	}

	strong, potential := Classify(candidates, e.cfg.StrongSlopeMin)
	strong = Resolve(strong, e.cfg.GroupCap)
	potential = Resolve(potential, e.cfg.GroupCap)

	if runDate.IsZero() {
		runDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	e.log.Info("screening run complete",
		zap.Time("run_date", runDate),
		zap.Int("universe", len(symbols)),
		zap.Int("scored", scored),
		zap.Int("passed", len(candidates)),
		zap.Int("strong", strong.Size()),
		zap.Int("potential", potential.Size()),
		zap.Int("unavailable", coverage.Count(model.StatusUnavailable)),
		zap.Int("insufficient", coverage.Count(model.StatusInsufficient)))

	return &model.SelectionResult{
		RunDate:      runDate,
		UniverseSize: len(symbols),
		Coverage:     coverage,
		Scored:       scored,
		Passed:       len(candidates),
		Strong:       strong,
		Potential:    potential,
	}, nil
}
