// Package store provides SQLite-backed persistence for the debt
// portfolio and the history of simulation runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/snowplan/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the portfolio database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant location of the portfolio db.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "snowplan", "portfolio.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "snowplan", "portfolio.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening portfolio db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDebt inserts or replaces a debt and its buckets.
func (s *Store) SaveDebt(d model.Debt) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.Exec(`INSERT INTO debts
		(debt_id, name, balance, apr, min_payment, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(debt_id) DO UPDATE SET
		name = excluded.name, balance = excluded.balance, apr = excluded.apr,
		min_payment = excluded.min_payment, order_index = excluded.order_index,
		updated_at = excluded.updated_at`,
		d.ID, d.Name, d.Balance, d.APR, d.MinPayment, d.OrderIndex, now, now,
	)
	if err != nil {
		return err
	}

	// Replace bucket rows wholesale; partial bucket edits are not a thing.
	if _, err := tx.Exec("DELETE FROM buckets WHERE debt_id = ?", d.ID); err != nil {
		return err
	}
	for _, b := range d.Buckets {
		_, err = tx.Exec(`INSERT INTO buckets
			(bucket_id, debt_id, name, balance, apr, payment_priority, category)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			b.ID, d.ID, b.Name, b.Balance, b.APR, b.PaymentPriority, b.Category.String(),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListDebts reads the whole portfolio in cascade order.
func (s *Store) ListDebts() ([]model.Debt, error) {
	rows, err := s.db.Query(`SELECT debt_id, name, balance, apr, min_payment, order_index
		FROM debts ORDER BY order_index, debt_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var debts []model.Debt
	idx := make(map[string]int)
	for rows.Next() {
		var d model.Debt
		if err := rows.Scan(&d.ID, &d.Name, &d.Balance, &d.APR, &d.MinPayment, &d.OrderIndex); err != nil {
			return nil, err
		}
		idx[d.ID] = len(debts)
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	bucketRows, err := s.db.Query(`SELECT bucket_id, debt_id, name, balance, apr, payment_priority, category
		FROM buckets ORDER BY payment_priority, bucket_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = bucketRows.Close() }()

	for bucketRows.Next() {
		var b model.Bucket
		var debtID, category string
		if err := bucketRows.Scan(&b.ID, &debtID, &b.Name, &b.Balance, &b.APR, &b.PaymentPriority, &category); err != nil {
			return nil, err
		}
		b.Category = model.ParseCategory(category)
		if i, ok := idx[debtID]; ok {
			debts[i].Buckets = append(debts[i].Buckets, b)
		}
	}

	return debts, bucketRows.Err()
}

// DeleteDebt removes a debt and its buckets.
func (s *Store) DeleteDebt(id string) error {
	res, err := s.db.Exec("DELETE FROM debts WHERE debt_id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("debt %q not found", id)
	}
	return nil
}

// NextOrderIndex returns one past the highest order index in use.
func (s *Store) NextOrderIndex() (int, error) {
	var max sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(order_index) FROM debts").Scan(&max); err != nil {
		return 0, err
	}
	if !max.Valid {
		return 1, nil
	}
	return int(max.Int64) + 1, nil
}

// Run records one saved simulation run.
type Run struct {
	ID             int64
	RanAt          time.Time
	ExtraMonthly   float64
	TotalMonths    int
	TotalInterest  float64
	TotalPrincipal float64
	FreedomDate    time.Time
	CapReached     bool
}

// SaveRun appends a simulation result to the run history.
func (s *Store) SaveRun(extraMonthly float64, res model.SimulationResult) error {
	capReached := 0
	if res.CapReached {
		capReached = 1
	}
	_, err := s.db.Exec(`INSERT INTO runs
		(ran_at, extra_monthly, total_months, total_interest, total_principal, freedom_date, cap_reached)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		extraMonthly, res.TotalMonths, res.TotalInterest, res.TotalPrincipal,
		res.FreedomDate.UTC().Format(time.RFC3339), capReached,
	)
	return err
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`SELECT run_id, ran_at, extra_monthly, total_months,
		total_interest, total_principal, freedom_date, cap_reached
		FROM runs ORDER BY run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var ranAt, freedom string
		var capReached int
		if err := rows.Scan(&r.ID, &ranAt, &r.ExtraMonthly, &r.TotalMonths,
			&r.TotalInterest, &r.TotalPrincipal, &freedom, &capReached); err != nil {
			return nil, err
		}
		r.RanAt, _ = time.Parse(time.RFC3339, ranAt)
		r.FreedomDate, _ = time.Parse(time.RFC3339, freedom)
		r.CapReached = capReached != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
