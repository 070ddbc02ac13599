package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"HurstLab/internal/model"
)

const dateLayout = "2006-01-02"

// SQLiteRecorder persists analysis results to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so report queries can read while the scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id                TEXT PRIMARY KEY,
			created_at        INTEGER NOT NULL,
			symbol            TEXT NOT NULL,
			timeframe         TEXT,
			start_date        TEXT,
			end_date          TEXT,
			observations      INTEGER,
			hurst_exponent    REAL,
			fractal_dimension REAL,
			r_squared         REAL,
			p_value           REAL,
			standard_error    REAL,
			regime            TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_symbol_ts ON analysis_runs(symbol, created_at)`,

		`CREATE TABLE IF NOT EXISTS scale_stats (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id         TEXT NOT NULL REFERENCES analysis_runs(id),
			scale          INTEGER NOT NULL,
			chunks         INTEGER,
			rescaled_range REAL,
			log_scale      REAL,
			log_rr         REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scale_run ON scale_stats(run_id)`,

		`CREATE TABLE IF NOT EXISTS regression_results (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id            TEXT NOT NULL REFERENCES analysis_runs(id),
			section_label     TEXT NOT NULL,
			start_date        TEXT,
			end_date          TEXT,
			hurst_exponent    REAL,
			fractal_dimension REAL,
			r_squared         REAL,
			p_value           REAL,
			standard_error    REAL,
			regime            TEXT,
			error             TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_regression_run ON regression_results(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis stores the run, its scale table and every regression in one transaction.
func (r *SQLiteRecorder) RecordAnalysis(a *model.HurstAnalysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	fs := a.FullSeries
	if _, err := tx.Exec(`INSERT INTO analysis_runs
		(id, created_at, symbol, timeframe, start_date, end_date, observations,
		 hurst_exponent, fractal_dimension, r_squared, p_value, standard_error, regime)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		a.ID, a.CreatedAt.Unix(), a.Symbol, a.Timeframe,
		a.Start.Format(dateLayout), a.End.Format(dateLayout), a.Observations,
		fs.HurstExponent, fs.FractalDimension, fs.RSquared, fs.PValue, fs.StandardError, string(fs.Regime),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, s := range a.Scales {
		if _, err := tx.Exec(`INSERT INTO scale_stats
			(run_id, scale, chunks, rescaled_range, log_scale, log_rr)
			VALUES (?,?,?,?,?,?)`,
			a.ID, s.Scale, s.Chunks, s.RescaledRange, s.LogScale, s.LogRR,
		); err != nil {
			return fmt.Errorf("insert scale %d: %w", s.Scale, err)
		}
	}

	insert := func(label string, start, end time.Time, res model.RegressionResult, sectionErr error) error {
		var errText sql.NullString
		if sectionErr != nil {
			errText = sql.NullString{String: sectionErr.Error(), Valid: true}
		}
		_, err := tx.Exec(`INSERT INTO regression_results
			(run_id, section_label, start_date, end_date,
			 hurst_exponent, fractal_dimension, r_squared, p_value, standard_error, regime, error)
			VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			a.ID, label, start.Format(dateLayout), end.Format(dateLayout),
			res.HurstExponent, res.FractalDimension, res.RSquared, res.PValue, res.StandardError, string(res.Regime),
			errText,
		)
		return err
	}
	for _, sr := range a.Sections {
		if err := insert(sr.Section.Label(), sr.Section.Start, sr.Section.End, sr.Regression, sr.Err); err != nil {
			return fmt.Errorf("insert section %s: %w", sr.Section.Label(), err)
		}
	}
	if err := insert(model.FullSeriesKey, a.Start, a.End, fs, nil); err != nil {
		return fmt.Errorf("insert full series: %w", err)
	}

	return tx.Commit()
}

// RecentAnalyses returns the latest runs of symbol, newest first.
func (r *SQLiteRecorder) RecentAnalyses(symbol string, limit int) ([]AnalysisRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, symbol, timeframe, start_date, end_date, observations,
		hurst_exponent, fractal_dimension, r_squared, p_value, standard_error, regime, created_at
		FROM analysis_runs WHERE symbol = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []AnalysisRow
	for rows.Next() {
		var (
			row          AnalysisRow
			start, end   string
			regime       string
			createdAtSec int64
		)
		if err := rows.Scan(&row.ID, &row.Symbol, &row.Timeframe, &start, &end, &row.Observations,
			&row.HurstExponent, &row.FractalDimension, &row.RSquared, &row.PValue, &row.StandardError,
			&regime, &createdAtSec); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		row.Start, _ = time.Parse(dateLayout, start)
		row.End, _ = time.Parse(dateLayout, end)
		row.Regime = model.Regime(regime)
		row.CreatedAt = time.Unix(createdAtSec, 0)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
