package screen

import (
	"math"
	"testing"

	"MomentumScreener/internal/model"
)

func cand(symbol string, slope, distance float64, atLow bool) model.Candidate {
	return model.Candidate{
		Features:     model.SymbolFeatures{Symbol: symbol, Slope: slope, Distance: distance},
		AtFiveDayLow: atLow,
	}
}

func TestClassify_TotalAndDisjoint(t *testing.T) {
	candidates := []model.Candidate{
		cand("A", 1.5, 0.01, false),
		cand("B", 0.8, 0.02, false),
		cand("C", 0.79, 0.01, false),
		cand("D", -0.3, 0.00, false),
		cand("E", 0.0, 0.03, true),
	}
	strong, potential := Classify(candidates, 0.8)

	if strong.Size()+potential.Size() != len(candidates) {
		t.Fatalf("partition not total: %d + %d != %d", strong.Size(), potential.Size(), len(candidates))
	}
	seen := make(map[string]bool)
	for _, g := range []model.Group{strong, potential} {
		for _, c := range g.Candidates {
			if seen[c.Features.Symbol] {
				t.Fatalf("symbol %s in both groups", c.Features.Symbol)
			}
			seen[c.Features.Symbol] = true
		}
	}
	if got := strong.Symbols(); len(got) != 2 {
		t.Errorf("expected A and B in strong, got %v", got)
	}
	for _, c := range strong.Candidates {
		if c.Features.Slope < 0.8 {
			t.Errorf("%s slope %.2f below strong boundary", c.Features.Symbol, c.Features.Slope)
		}
	}
}

func TestResolve_UnderCapUnchanged(t *testing.T) {
	g := model.Group{Name: model.GroupPotential, Candidates: []model.Candidate{
		cand("A", 0.1, 0.03, true),
		cand("B", 0.2, 0.01, false),
		cand("C", 0.3, 0.02, false),
	}}
	out := Resolve(g, 6)
	if out.Size() != 3 {
		t.Fatalf("expected 3 candidates, got %d", out.Size())
	}
	// same members, stable |distance| ordering
	want := []string{"B", "C", "A"}
	for i, sym := range out.Symbols() {
		if sym != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], sym)
		}
	}
}

func TestResolve_EightCandidatesThreeDemoted(t *testing.T) {
	// 8 passing candidates, 3 at a 5-day low: expect exactly 6 out — the 5
	// non-demoted plus the demoted candidate with the smallest |distance|.
	g := model.Group{Name: model.GroupStrongMomentum, Candidates: []model.Candidate{
		cand("N1", 1.0, 0.010, false),
		cand("N2", 1.0, 0.020, false),
		cand("N3", 1.0, 0.005, false),
		cand("N4", 1.0, 0.030, false),
		cand("N5", 1.0, 0.015, false),
		cand("D1", 1.0, 0.002, true),
		cand("D2", 1.0, 0.040, true),
		cand("D3", 1.0, 0.025, true),
	}}
	out := Resolve(g, 6)
	if out.Size() != 6 {
		t.Fatalf("expected 6 candidates, got %d", out.Size())
	}
	got := make(map[string]bool)
	for _, sym := range out.Symbols() {
		got[sym] = true
	}
	for _, sym := range []string{"N1", "N2", "N3", "N4", "N5", "D1"} {
		if !got[sym] {
			t.Errorf("expected %s in resolved group, got %v", sym, out.Symbols())
		}
	}
	if got["D2"] || got["D3"] {
		t.Errorf("demoted candidates with larger |distance| must not backfill: %v", out.Symbols())
	}
}

func TestResolve_PreferredPoolFillsCap(t *testing.T) {
	g := model.Group{Name: model.GroupPotential}
	for _, c := range []model.Candidate{
		cand("A", 0, 0.070, false),
		cand("B", 0, 0.010, false),
		cand("C", 0, 0.050, false),
		cand("D", 0, 0.020, false),
		cand("E", 0, 0.060, true), // demoted, never picked while preferred fills cap
		cand("F", 0, 0.001, true),
		cand("G", 0, 0.040, false),
		cand("H", 0, 0.030, false),
		cand("I", 0, -0.025, false),
	} {
		g.Candidates = append(g.Candidates, c)
	}
	out := Resolve(g, 6)
	if out.Size() != 6 {
		t.Fatalf("expected 6 candidates, got %d", out.Size())
	}

	included := make(map[string]bool)
	var maxIncluded float64
	for _, c := range out.Candidates {
		if c.AtFiveDayLow {
			t.Errorf("demoted %s included while preferred pool fills the cap", c.Features.Symbol)
		}
		included[c.Features.Symbol] = true
		if d := math.Abs(c.Features.Distance); d > maxIncluded {
			maxIncluded = d
		}
	}
	// monotone ordering: no excluded non-demoted candidate sits closer to
	// trend than any included one
	for _, c := range g.Candidates {
		if c.AtFiveDayLow || included[c.Features.Symbol] {
			continue
		}
		if math.Abs(c.Features.Distance) < maxIncluded {
			t.Errorf("excluded %s (|d|=%.3f) closer than included max %.3f",
				c.Features.Symbol, math.Abs(c.Features.Distance), maxIncluded)
		}
	}
}

func TestResolve_ExhaustedGroupStaysShort(t *testing.T) {
	g := model.Group{Name: model.GroupPotential, Candidates: []model.Candidate{
		cand("A", 0, 0.01, true),
		cand("B", 0, 0.02, true),
	}}
	out := Resolve(g, 6)
	if out.Size() != 2 {
		t.Fatalf("expected exhausted group to keep both members, got %d", out.Size())
	}
}
