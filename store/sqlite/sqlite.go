/*
Package sqlite provides a SQLite-backed store for calculation history.

PURPOSE:
  Persists every duration calculation the service performs: the six
  inputs, the outcome (or the failure that prevented one), and when it
  ran. The calculator itself is pure and keeps no state; this store is
  what turns an interactive tool into an auditable service.

KEY TABLE:
  calculations:  One row per invocation, never updated after insert

NUMERIC STORAGE:
  Monetary and rate values are stored as decimal TEXT and parsed with
  shopspring/decimal, so a stored duration round-trips without binary
  float drift.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/frn.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - api/handlers.go: Writes a record per computed calculation
  - cmd/server/main.go: Store lifecycle
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// Calculation statuses as persisted. StatusOK rows carry a duration;
// the failure statuses carry a reason instead.
const (
	StatusOK               = "ok"
	StatusEmptySchedule    = "empty_schedule"
	StatusInvalidDateRange = "invalid_date_range"
	StatusZeroPresentValue = "zero_present_value"
)

// CalculationRecord is one stored duration calculation.
type CalculationRecord struct {
	ID              string
	Notional        decimal.Decimal
	CouponRate      decimal.Decimal
	Spread          decimal.Decimal
	ResetPeriod     string
	StartDate       time.Time
	MaturityDate    time.Time
	Status          string
	Duration        decimal.Decimal // zero when Status != StatusOK
	Periods         int
	PaymentsPerYear int
	FailureReason   string
	CreatedAt       time.Time
}

// Store persists calculation history using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Calculation history (insert-only)
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		notional TEXT NOT NULL,
		coupon_rate TEXT NOT NULL,
		spread TEXT NOT NULL,
		reset_period TEXT NOT NULL,
		start_date TEXT NOT NULL,
		maturity_date TEXT NOT NULL,
		status TEXT NOT NULL,
		duration TEXT NOT NULL,
		periods INTEGER NOT NULL,
		payments_per_year INTEGER NOT NULL,
		failure_reason TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_calculations_status
		ON calculations(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// CALCULATION HISTORY
// =============================================================================

// SaveCalculation inserts a calculation record. Records are insert-only;
// a recomputation is a new row, never an update.
func (s *Store) SaveCalculation(ctx context.Context, rec CalculationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO calculations (
			id, notional, coupon_rate, spread, reset_period,
			start_date, maturity_date, status, duration,
			periods, payments_per_year, failure_reason, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, query,
		rec.ID,
		rec.Notional.String(),
		rec.CouponRate.String(),
		rec.Spread.String(),
		rec.ResetPeriod,
		rec.StartDate.Format("2006-01-02"),
		rec.MaturityDate.Format("2006-01-02"),
		rec.Status,
		rec.Duration.String(),
		rec.Periods,
		rec.PaymentsPerYear,
		rec.FailureReason,
		createdAt.Format(time.RFC3339),
	)
	return err
}

// GetCalculation retrieves a calculation by ID. Returns nil when the
// record does not exist.
func (s *Store) GetCalculation(ctx context.Context, id string) (*CalculationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.queryCalculations(ctx,
		selectCalculation+" WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// ListCalculations returns the most recent calculations, newest first.
// A limit of 0 or less applies a default of 100.
func (s *Store) ListCalculations(ctx context.Context, limit int) ([]CalculationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	return s.queryCalculations(ctx,
		selectCalculation+" ORDER BY created_at DESC, id DESC LIMIT ?", limit)
}

// Reset wipes all stored calculations. Dev/demo use only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM calculations")
	return err
}

const selectCalculation = `
	SELECT id, notional, coupon_rate, spread, reset_period,
	       start_date, maturity_date, status, duration,
	       periods, payments_per_year, failure_reason, created_at
	FROM calculations`

func (s *Store) queryCalculations(ctx context.Context, query string, args ...any) ([]CalculationRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CalculationRecord
	for rows.Next() {
		var rec CalculationRecord
		var notional, couponRate, spread, duration string
		var startDate, maturityDate, createdAt string
		var failureReason sql.NullString

		if err := rows.Scan(
			&rec.ID, &notional, &couponRate, &spread, &rec.ResetPeriod,
			&startDate, &maturityDate, &rec.Status, &duration,
			&rec.Periods, &rec.PaymentsPerYear, &failureReason, &createdAt,
		); err != nil {
			return nil, err
		}

		rec.Notional, err = decimal.NewFromString(notional)
		if err != nil {
			return nil, fmt.Errorf("corrupt notional for %s: %w", rec.ID, err)
		}
		rec.CouponRate, err = decimal.NewFromString(couponRate)
		if err != nil {
			return nil, fmt.Errorf("corrupt coupon_rate for %s: %w", rec.ID, err)
		}
		rec.Spread, err = decimal.NewFromString(spread)
		if err != nil {
			return nil, fmt.Errorf("corrupt spread for %s: %w", rec.ID, err)
		}
		rec.Duration, err = decimal.NewFromString(duration)
		if err != nil {
			return nil, fmt.Errorf("corrupt duration for %s: %w", rec.ID, err)
		}

		rec.StartDate, _ = time.Parse("2006-01-02", startDate)
		rec.MaturityDate, _ = time.Parse("2006-01-02", maturityDate)
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		rec.FailureReason = failureReason.String

		records = append(records, rec)
	}
	return records, rows.Err()
}
