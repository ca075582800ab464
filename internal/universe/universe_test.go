package universe

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func TestSymbols_EnvOverride(t *testing.T) {
	t.Setenv(EnvOverride, " aapl, MSFT ,msft,, nvda ")
	p := NewProvider("", zap.NewNop())
	got := p.Symbols()
	want := []string{"AAPL", "MSFT", "NVDA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSymbols_CatalogFile(t *testing.T) {
	t.Setenv(EnvOverride, "")
	path := filepath.Join(t.TempDir(), "us_stock_list.json")
	if err := SaveCatalog(path, []string{"tsla", "AMD", "TSLA"}, "2024-06-14"); err != nil {
		t.Fatalf("save catalog: %v", err)
	}
	p := NewProvider(path, zap.NewNop())
	got := p.Symbols()
	want := []string{"TSLA", "AMD"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSymbols_CorruptCatalogFallsBack(t *testing.T) {
	t.Setenv(EnvOverride, "")
	path := filepath.Join(t.TempDir(), "us_stock_list.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	p := NewProvider(path, zap.NewNop())
	got := p.Symbols()
	if len(got) == 0 {
		t.Fatal("expected built-in fallback, got empty universe")
	}
	if got[0] != defaultSymbols[0] {
		t.Errorf("expected built-in list starting with %s, got %s", defaultSymbols[0], got[0])
	}
}

func TestSymbols_DefaultFallback(t *testing.T) {
	t.Setenv(EnvOverride, "")
	p := NewProvider(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	got := p.Symbols()
	if len(got) == 0 {
		t.Fatal("expected built-in universe, got empty")
	}
	seen := make(map[string]bool, len(got))
	hasAAPL := false
	for _, s := range got {
		if seen[s] {
			t.Errorf("duplicate symbol %s in built-in universe", s)
		}
		seen[s] = true
		if s == "AAPL" {
			hasAAPL = true
		}
	}
	if !hasAAPL {
		t.Error("expected AAPL in built-in universe")
	}
}

func TestName(t *testing.T) {
	if got := Name("AAPL"); got != "Apple Inc" {
		t.Errorf("expected Apple Inc, got %s", got)
	}
	if got := Name("ZZZZ"); got != "ZZZZ" {
		t.Errorf("expected unknown ticker echoed back, got %s", got)
	}
}
