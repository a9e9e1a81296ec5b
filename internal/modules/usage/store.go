// README: Completion-usage persistence (atomic monthly quota in Postgres).
package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles completion_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Consume atomically checks the monthly quota and deducts one completion call.
// It resets the counter to DefaultAllowance when last_reset_month is behind
// the current month. Returns ErrQuotaExhausted when 0 rows are updated
// (quota spent or client absent).
func (s *Store) Consume(ctx context.Context, clientID string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE completion_usage SET
			calls_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE calls_remaining - 1 END,
			last_reset_month = $1
		WHERE client_id = $3 AND (last_reset_month < $1 OR calls_remaining > 0)
	`, now, DefaultAllowance, clientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureClient inserts a new completion_usage row with the default allowance.
// If the row already exists the insert is silently skipped.
func (s *Store) EnsureClient(ctx context.Context, clientID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO completion_usage (client_id, calls_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (client_id) DO NOTHING
	`, clientID, DefaultAllowance, time.Now().Format("2006-01"))
	return err
}
