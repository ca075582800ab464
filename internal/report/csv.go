package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"MomentumScreener/internal/model"
)

// WriteCSV exports the selections to dir/stock_picks_YYYYMMDD.csv and returns
// the written path. The first six columns, in order, are the consumer
// contract; the trailing group column is informational.
func WriteCSV(res *model.SelectionResult, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("stock_picks_%s.csv", res.RunDate.Format("20060102")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"symbol", "close", "ma20", "slope", "volatility", "distance", "group"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, g := range []model.Group{res.Strong, res.Potential} {
		for _, c := range g.Candidates {
			ft := c.Features
			row := []string{
				ft.Symbol,
				strconv.FormatFloat(ft.Close, 'f', 2, 64),
				strconv.FormatFloat(ft.MA20, 'f', 2, 64),
				strconv.FormatFloat(ft.Slope, 'f', 4, 64),
				strconv.FormatFloat(ft.Volatility, 'f', 4, 64),
				strconv.FormatFloat(ft.Distance, 'f', 4, 64),
				g.Name,
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}
