package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"MomentumScreener/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			run_date        TEXT NOT NULL,
			created_at      INTEGER NOT NULL,
			universe_size   INTEGER,
			scored          INTEGER,
			passed          INTEGER,
			strong_count    INTEGER,
			potential_count INTEGER,
			unavailable     INTEGER,
			insufficient    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_date ON runs(run_date)`,

		`CREATE TABLE IF NOT EXISTS selections (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     INTEGER NOT NULL REFERENCES runs(id),
			group_name TEXT NOT NULL,
			symbol     TEXT NOT NULL,
			close      REAL,
			ma20       REAL,
			slope      REAL,
			volatility REAL,
			distance   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_selections_run ON selections(run_id)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores the run metadata and every selected row in one transaction.
func (r *SQLiteRecorder) RecordRun(res *model.SelectionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin record run: %w", err)
	}

	result, err := tx.Exec(`INSERT INTO runs
		(run_date, created_at, universe_size, scored, passed, strong_count, potential_count, unavailable, insufficient)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		res.RunDate.Format("2006-01-02"), time.Now().Unix(),
		res.UniverseSize, res.Scored, res.Passed,
		res.Strong.Size(), res.Potential.Size(),
		res.Coverage.Count(model.StatusUnavailable),
		res.Coverage.Count(model.StatusInsufficient),
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("run id: %w", err)
	}

	for _, g := range []model.Group{res.Strong, res.Potential} {
		for _, c := range g.Candidates {
			f := c.Features
			if _, err := tx.Exec(`INSERT INTO selections
				(run_id, group_name, symbol, close, ma20, slope, volatility, distance)
				VALUES (?,?,?,?,?,?,?,?)`,
				runID, g.Name, f.Symbol, f.Close, f.MA20, f.Slope, f.Volatility, f.Distance,
			); err != nil {
				tx.Rollback()
				return fmt.Errorf("insert selection %s: %w", f.Symbol, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record run: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
