package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"MomentumScreener/internal/model"
	"MomentumScreener/internal/universe"
)

// historySize bounds the index to the most recent runs.
const historySize = 30

// HistoryEntry summarizes one run for the index page.
type HistoryEntry struct {
	Date      string `json:"date"`
	Strong    int    `json:"strong"`
	Potential int    `json:"potential"`
	Total     int    `json:"total"`
}

// Site generates the static pages consumed by GitHub Pages style hosting.
type Site struct {
	Dir string
}

// Generate writes the daily page, updates history.json, and rebuilds the
// index page.
func (s *Site) Generate(res *model.SelectionResult) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create site dir: %w", err)
	}
	dateStr := res.RunDate.Format("2006-01-02")

	if err := s.writeDaily(res, dateStr); err != nil {
		return err
	}
	history, err := s.updateHistory(res, dateStr)
	if err != nil {
		return err
	}
	return s.writeIndex(history)
}

type dailyRow struct {
	Symbol     string
	Name       string
	Close      string
	MA20       string
	Slope      string
	Volatility string
	Distance   string
}

type dailyPage struct {
	Date   string
	Groups []struct {
		Title string
		Rows  []dailyRow
	}
}

func (s *Site) writeDaily(res *model.SelectionResult, dateStr string) error {
	page := dailyPage{Date: dateStr}
	for _, g := range []struct {
		title string
		group model.Group
	}{
		{"Strong Momentum", res.Strong},
		{"Potential Stocks", res.Potential},
	} {
		rows := make([]dailyRow, 0, g.group.Size())
		for _, c := range g.group.Candidates {
			f := c.Features
			rows = append(rows, dailyRow{
				Symbol:     f.Symbol,
				Name:       universe.Name(f.Symbol),
				Close:      fmt.Sprintf("$%.2f", f.Close),
				MA20:       fmt.Sprintf("$%.2f", f.MA20),
				Slope:      fmt.Sprintf("%.3f", f.Slope),
				Volatility: fmt.Sprintf("%.2f%%", f.Volatility*100),
				Distance:   fmt.Sprintf("%+.2f%%", f.Distance*100),
			})
		}
		page.Groups = append(page.Groups, struct {
			Title string
			Rows  []dailyRow
		}{g.title, rows})
	}

	f, err := os.Create(filepath.Join(s.Dir, dateStr+".html"))
	if err != nil {
		return fmt.Errorf("create daily page: %w", err)
	}
	defer f.Close()
	if err := dailyTmpl.Execute(f, page); err != nil {
		return fmt.Errorf("render daily page: %w", err)
	}
	return nil
}

func (s *Site) updateHistory(res *model.SelectionResult, dateStr string) ([]HistoryEntry, error) {
	path := filepath.Join(s.Dir, "history.json")

	var history []HistoryEntry
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &history); err != nil {
			return nil, fmt.Errorf("parse history: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read history: %w", err)
	}

	entry := HistoryEntry{
		Date:      dateStr,
		Strong:    res.Strong.Size(),
		Potential: res.Potential.Size(),
		Total:     res.Strong.Size() + res.Potential.Size(),
	}
	replaced := false
	for i := range history {
		if history[i].Date == dateStr {
			history[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		history = append(history, entry)
	}

	sort.Slice(history, func(i, j int) bool { return history[i].Date > history[j].Date })
	if len(history) > historySize {
		history = history[:historySize]
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write history: %w", err)
	}
	return history, nil
}

func (s *Site) writeIndex(history []HistoryEntry) error {
	f, err := os.Create(filepath.Join(s.Dir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index page: %w", err)
	}
	defer f.Close()
	if err := indexTmpl.Execute(f, history); err != nil {
		return fmt.Errorf("render index page: %w", err)
	}
	return nil
}

var dailyTmpl = template.Must(template.New("daily").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>US Stock Picks - {{.Date}}</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; max-width: 960px; margin: 0 auto; padding: 20px; color: #2d3748; }
h1 { border-bottom: 3px solid #667eea; padding-bottom: 10px; }
h2 { border-left: 5px solid #667eea; padding-left: 12px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 30px; }
th, td { border: 1px solid #e2e8f0; padding: 8px 12px; text-align: right; }
th { background: #f7fafc; }
td:first-child, td:nth-child(2), th:first-child, th:nth-child(2) { text-align: left; }
.empty { color: #718096; }
a { color: #667eea; }
</style>
</head>
<body>
<h1>US Stock Picks</h1>
<p>Run date: {{.Date}} &middot; <a href="index.html">history</a></p>
{{range .Groups}}
<h2>{{.Title}}</h2>
{{if .Rows}}
<table>
<tr><th>Symbol</th><th>Name</th><th>Close</th><th>MA20</th><th>Slope</th><th>Volatility</th><th>Distance</th></tr>
{{range .Rows}}<tr><td>{{.Symbol}}</td><td>{{.Name}}</td><td>{{.Close}}</td><td>{{.MA20}}</td><td>{{.Slope}}</td><td>{{.Volatility}}</td><td>{{.Distance}}</td></tr>
{{end}}</table>
{{else}}<p class="empty">No stocks in this group today.</p>{{end}}
{{end}}
</body>
</html>
`))

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>US Stock Picks - History</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; max-width: 720px; margin: 0 auto; padding: 20px; color: #2d3748; }
h1 { border-bottom: 3px solid #667eea; padding-bottom: 10px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #e2e8f0; padding: 8px 12px; text-align: right; }
th { background: #f7fafc; }
td:first-child, th:first-child { text-align: left; }
a { color: #667eea; }
</style>
</head>
<body>
<h1>US Stock Picks - History</h1>
<table>
<tr><th>Date</th><th>Strong</th><th>Potential</th><th>Total</th></tr>
{{range .}}<tr><td><a href="{{.Date}}.html">{{.Date}}</a></td><td>{{.Strong}}</td><td>{{.Potential}}</td><td>{{.Total}}</td></tr>
{{end}}</table>
</body>
</html>
`))
