// Package report renders a SelectionResult for downstream consumers: a text
// summary for logs, a CSV export, and a static HTML site with a run history
// index. It only ever reads the result; the pipeline never depends on it.
package report

import (
	"fmt"
	"strings"

	"MomentumScreener/internal/model"
	"MomentumScreener/internal/universe"
)

// FormatSummary renders the run result as a plain-text report.
func FormatSummary(res *model.SelectionResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("US Stock Picks | %s\n", res.RunDate.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("universe %d, scored %d, passed %d (unavailable %d, insufficient %d)\n",
		res.UniverseSize, res.Scored, res.Passed,
		res.Coverage.Count(model.StatusUnavailable),
		res.Coverage.Count(model.StatusInsufficient)))

	writeGroup(&b, "Strong Momentum", res.Strong)
	writeGroup(&b, "Potential Stocks", res.Potential)
	return b.String()
}

func writeGroup(b *strings.Builder, title string, g model.Group) {
	b.WriteString(fmt.Sprintf("\n%s (%d):\n", title, g.Size()))
	for _, c := range g.Candidates {
		f := c.Features
		b.WriteString(fmt.Sprintf("  - %s %s: Close=$%.2f, MA20=$%.2f, Slope=%.3f, Vol=%.2f%%, Dist=%+.2f%%\n",
			f.Symbol, universe.Name(f.Symbol), f.Close, f.MA20, f.Slope, f.Volatility*100, f.Distance*100))
	}
}
