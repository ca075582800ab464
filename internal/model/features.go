package model

// SymbolFeatures holds the derived metrics for one symbol on the run date.
// Recomputed every run, never persisted.
type SymbolFeatures struct {
	Symbol       string
	Close        float64
	MA20         float64
	MA20Prior    float64 // 20-day mean ending 5 trading days earlier
	Slope        float64 // (MA20 - MA20Prior) / 5, dollars per day
	Volatility   float64 // 5-day sample stddev of close / 5-day mean close
	Distance     float64 // (Close - MA20) / MA20
	AvgVolume10d float64
	AvgRange5d   float64 // mean (high - low) over the last 5 days
}

// Candidate is a symbol that passed the filter pipeline.
type Candidate struct {
	Features SymbolFeatures

	// AtFiveDayLow marks a close equal to the minimum close of the
	// trailing 5-day window; such candidates are demoted first when a
	// group exceeds its cap.
	AtFiveDayLow bool
}
