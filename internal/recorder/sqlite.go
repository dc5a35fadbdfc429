package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
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

	// WAL mode so reporting reads don't block recording writes.
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
		`CREATE TABLE IF NOT EXISTS plan_runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			goal_count    INTEGER,
			total_monthly TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plan_runs_ts ON plan_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS plan_goals (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        INTEGER NOT NULL,
			goal_name     TEXT,
			target        TEXT,
			horizon_years INTEGER,
			strategy      TEXT,
			contribution  TEXT,
			tax           TEXT,
			fund_codes    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plan_goals_run ON plan_goals(run_id)`,

		`CREATE TABLE IF NOT EXISTS backtest_runs (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			fund_code      TEXT,
			monthly        TEXT,
			years          INTEGER,
			invested       TEXT,
			value          TEXT,
			percent_return REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_backtest_ts ON backtest_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPlan(run *PlanRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`INSERT INTO plan_runs (timestamp, goal_count, total_monthly) VALUES (?,?,?)`,
		time.Now().Unix(), run.GoalCount, run.TotalMonthly)
	if err != nil {
		return err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, g := range run.Goals {
		if _, err := r.db.Exec(`INSERT INTO plan_goals
			(run_id, goal_name, target, horizon_years, strategy, contribution, tax, fund_codes)
			VALUES (?,?,?,?,?,?,?,?)`,
			runID, g.Name, g.Target, g.HorizonYears, g.Strategy, g.Contribution, g.Tax, g.FundCodes,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordBacktest(run *BacktestRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO backtest_runs
		(timestamp, fund_code, monthly, years, invested, value, percent_return)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), run.FundCode, run.Monthly, run.Years,
		run.Invested, run.Value, run.PercentReturn,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
