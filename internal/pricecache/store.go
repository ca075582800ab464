package pricecache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"MomentumScreener/internal/model"
)

const dateFormat = "2006-01-02"

// Store persists daily price records to a SQLite database, keyed uniquely by
// (symbol, trade_date).
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// NewStore opens (or creates) the SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so report tooling can read while a sync is writing.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS prices (
			symbol     TEXT NOT NULL,
			trade_date TEXT NOT NULL,
			open       REAL,
			high       REAL,
			low        REAL,
			close      REAL,
			volume     INTEGER,
			PRIMARY KEY(symbol, trade_date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prices_symbol ON prices(symbol)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Upsert inserts or updates the given records in one transaction. Re-ingesting
// an already-stored (symbol, trade_date) never creates a duplicate row.
func (s *Store) Upsert(records []model.PriceRecord) error {
	if len(records) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO prices (symbol, trade_date, open, high, low, close, volume)
		VALUES (?,?,?,?,?,?,?)
		ON CONFLICT(symbol, trade_date) DO UPDATE SET
			open=excluded.open, high=excluded.high, low=excluded.low,
			close=excluded.close, volume=excluded.volume`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Symbol, r.TradeDate.Format(dateFormat),
			r.Open, r.High, r.Low, r.Close, r.Volume); err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert %s %s: %w", r.Symbol, r.TradeDate.Format(dateFormat), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

// Series returns the most recent windowDays stored records for the symbol,
// ascending by trade date. A symbol with no rows yields an empty series.
func (s *Store) Series(symbol string, windowDays int) (model.PriceSeries, error) {
	rows, err := s.db.Query(`SELECT trade_date, open, high, low, close, volume
		FROM prices WHERE symbol = ? ORDER BY trade_date DESC LIMIT ?`, symbol, windowDays)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("query series %s: %w", symbol, err)
	}
	defer rows.Close()

	var records []model.PriceRecord
	for rows.Next() {
		var r model.PriceRecord
		var date string
		if err := rows.Scan(&date, &r.Open, &r.High, &r.Low, &r.Close, &r.Volume); err != nil {
			return model.PriceSeries{}, fmt.Errorf("scan series %s: %w", symbol, err)
		}
		r.Symbol = symbol
		r.TradeDate, err = time.Parse(dateFormat, date)
		if err != nil {
			return model.PriceSeries{}, fmt.Errorf("parse date %q: %w", date, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return model.PriceSeries{}, fmt.Errorf("iterate series %s: %w", symbol, err)
	}

	// query returned newest-first; reverse to ascending
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return model.PriceSeries{Symbol: symbol, Records: records}, nil
}

// LatestDates returns the most recent stored trade date per symbol.
func (s *Store) LatestDates() (map[string]time.Time, error) {
	rows, err := s.db.Query(`SELECT symbol, MAX(trade_date) FROM prices GROUP BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("query latest dates: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var symbol, date string
		if err := rows.Scan(&symbol, &date); err != nil {
			return nil, fmt.Errorf("scan latest date: %w", err)
		}
		d, err := time.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", date, err)
		}
		out[symbol] = d
	}
	return out, rows.Err()
}

// Count returns the number of stored records for the symbol.
func (s *Store) Count(symbol string) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM prices WHERE symbol = ?`, symbol).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", symbol, err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
