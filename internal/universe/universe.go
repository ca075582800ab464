// Package universe resolves the set of ticker symbols a screening run
// processes. Sources are tried in priority order: an explicit override from
// the environment, a persisted catalog file, and finally the built-in
// large-cap default list. The screening core only ever sees the resolved set.
package universe

import (
	"encoding/json"
	"os"
	"strings"

	"go.uber.org/zap"
)

// EnvOverride names the environment variable holding a comma-separated
// symbol list that takes priority over every other source.
const EnvOverride = "US_STOCK_SYMBOLS"

// catalogFile is the persisted catalog shape.
type catalogFile struct {
	Tickers     []string `json:"tickers"`
	GeneratedAt string   `json:"generated_at"`
}

// Provider resolves symbol universes.
type Provider struct {
	ListFile string // persisted catalog path, may not exist
	log      *zap.Logger
}

// NewProvider creates a provider reading the given catalog path.
func NewProvider(listFile string, log *zap.Logger) *Provider {
	return &Provider{ListFile: listFile, log: log}
}

// Symbols returns the resolved, de-duplicated, order-preserving universe.
func (p *Provider) Symbols() []string {
	if v := strings.TrimSpace(os.Getenv(EnvOverride)); v != "" {
		codes := dedup(strings.Split(v, ","))
		p.log.Info("using symbol list from environment", zap.Int("symbols", len(codes)))
		return codes
	}

	if codes := p.loadCatalog(); len(codes) > 0 {
		p.log.Info("using symbol list from catalog",
			zap.String("file", p.ListFile), zap.Int("symbols", len(codes)))
		return codes
	}

	codes := dedup(defaultSymbols)
	p.log.Info("using built-in symbol list", zap.Int("symbols", len(codes)))
	return codes
}

func (p *Provider) loadCatalog() []string {
	if p.ListFile == "" {
		return nil
	}
	data, err := os.ReadFile(p.ListFile)
	if err != nil {
		if !os.IsNotExist(err) {
			p.log.Warn("read symbol catalog", zap.String("file", p.ListFile), zap.Error(err))
		}
		return nil
	}
	var cat catalogFile
	if err := json.Unmarshal(data, &cat); err != nil {
		p.log.Warn("parse symbol catalog", zap.String("file", p.ListFile), zap.Error(err))
		return nil
	}
	return dedup(cat.Tickers)
}

// SaveCatalog persists a symbol list so later runs pick it up.
func SaveCatalog(path string, tickers []string, generatedAt string) error {
	data, err := json.MarshalIndent(catalogFile{Tickers: dedup(tickers), GeneratedAt: generatedAt}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func dedup(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Name returns the company name for a ticker, or the ticker itself when
// unknown.
func Name(symbol string) string {
	if n, ok := symbolNames[symbol]; ok {
		return n
	}
	return symbol
}
