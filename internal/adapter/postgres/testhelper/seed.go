package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termforge/termgate/internal/domain"
)

// SeedTerm inserts one term record directly, bypassing the repository layer.
func SeedTerm(t *testing.T, pool *pgxpool.Pool, name, meaning string, status domain.TermStatus) domain.Term {
	t.Helper()

	tm := domain.Term{
		Name:      name,
		Meaning:   meaning,
		Status:    status,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO terms (term, meaning, status, created_at) VALUES ($1, $2, $3, $4)`,
		tm.Name, tm.Meaning, tm.Status.String(), tm.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed term %q: %v", name, err)
	}

	return tm
}

// TruncateTerms empties the terms table so a test starts from a clean slate.
func TruncateTerms(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE terms`); err != nil {
		t.Fatalf("testhelper: truncate terms: %v", err)
	}
}
