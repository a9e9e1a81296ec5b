// README: Completion-usage tests (lazy reset and quota boundary logic).
package usage

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestService(t *testing.T) (*Service, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("SKYLIFT_TEST_DSN")
	if dsn == "" {
		t.Skip("SKYLIFT_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS completion_usage (
			client_id TEXT PRIMARY KEY,
			calls_remaining INT NOT NULL,
			last_reset_month TEXT NOT NULL
		)
	`); err != nil {
		t.Fatalf("ensure completion_usage table: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE completion_usage"); err != nil {
		t.Fatalf("truncate completion_usage: %v", err)
	}

	return NewService(NewStore(db)), db
}

// TestConsumeCrossMonthReset verifies that a client with 0 calls left from a
// previous month is automatically reset and the request succeeds.
func TestConsumeCrossMonthReset(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if _, err := db.Exec(ctx, "INSERT INTO completion_usage VALUES ('c_reset', 0, '2000-01')"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Consume(ctx, "c_reset"); err != nil {
		t.Fatalf("Consume after cross-month reset: %v", err)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT calls_remaining FROM completion_usage WHERE client_id = 'c_reset'").Scan(&remaining); err != nil {
		t.Fatalf("query: %v", err)
	}
	if remaining != DefaultAllowance-1 {
		t.Fatalf("expected %d calls remaining, got %d", DefaultAllowance-1, remaining)
	}
}

// TestConsumeExhaustedCheck verifies that a client with 0 calls in the
// current month is blocked.
func TestConsumeExhaustedCheck(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if _, err := db.Exec(ctx, "INSERT INTO completion_usage (client_id, calls_remaining, last_reset_month) VALUES ('c_zero', 0, TO_CHAR(NOW(), 'YYYY-MM'))"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Consume(ctx, "c_zero"); err != ErrQuotaExhausted {
		t.Fatalf("expected ErrQuotaExhausted, got %v", err)
	}
}

// TestConsumeNewClient verifies that a client absent from the table is
// initialised on first call.
func TestConsumeNewClient(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if err := svc.Consume(ctx, "c_new"); err != nil {
		t.Fatalf("Consume for new client: %v", err)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT calls_remaining FROM completion_usage WHERE client_id = 'c_new'").Scan(&remaining); err != nil {
		t.Fatalf("query: %v", err)
	}
	if remaining != DefaultAllowance-1 {
		t.Fatalf("expected %d calls remaining after first use, got %d", DefaultAllowance-1, remaining)
	}
}
