package model

import "time"

// Group names for the two momentum partitions.
const (
	GroupStrongMomentum = "strong_momentum"
	GroupPotential      = "potential"
)

// Group is a named, ordered set of candidates, size-capped after overflow
// resolution.
type Group struct {
	Name       string
	Candidates []Candidate
}

// Size returns the number of candidates in the group.
func (g Group) Size() int { return len(g.Candidates) }

// Symbols returns the candidate symbols in group order.
func (g Group) Symbols() []string {
	out := make([]string, len(g.Candidates))
	for i, c := range g.Candidates {
		out[i] = c.Features.Symbol
	}
	return out
}

// SelectionResult is the immutable output of one screening run.
type SelectionResult struct {
	RunDate      time.Time
	UniverseSize int
	Coverage     CoverageReport
	Scored       int // symbols that produced features
	Passed       int // symbols that passed every filter criterion
	Strong       Group
	Potential    Group
}

// SymbolStatus describes the cache coverage outcome for one symbol.
type SymbolStatus string

const (
	StatusOK           SymbolStatus = "ok"
	StatusUnavailable  SymbolStatus = "unavailable"  // fetch failed
	StatusInsufficient SymbolStatus = "insufficient" // too little stored history
)

// CoverageReport maps each requested symbol to its sync outcome.
type CoverageReport struct {
	Statuses map[string]SymbolStatus
}

// NewCoverageReport returns an empty report.
func NewCoverageReport() CoverageReport {
	return CoverageReport{Statuses: make(map[string]SymbolStatus)}
}

// Count returns how many symbols carry the given status.
func (r CoverageReport) Count(status SymbolStatus) int {
	n := 0
	for _, s := range r.Statuses {
		if s == status {
			n++
		}
	}
	return n
}

// Eligible reports whether the symbol is covered well enough to score.
func (r CoverageReport) Eligible(symbol string) bool {
	return r.Statuses[symbol] == StatusOK
}
