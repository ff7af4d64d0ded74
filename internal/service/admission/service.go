// Package admission implements the admission filter: a stateless pipeline
// stage that decides which candidate terms pass through to the caller and
// inserts genuinely new terms as pending.
package admission

import (
	"context"
	"log/slog"

	"github.com/termforge/termgate/internal/config"
	"github.com/termforge/termgate/internal/domain"
)

//go:generate moq -out repo_mock_test.go . termRepo

type termRepo interface {
	StatusesByNames(ctx context.Context, names []string) (map[string]domain.TermStatus, error)
	InsertManyUnordered(ctx context.Context, terms []domain.Term) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service filters candidate terms by their recorded review status.
// It is stateless and safe for concurrent use.
type Service struct {
	terms        termRepo
	tx           txManager
	log          *slog.Logger
	maxBatchSize int
}

func New(terms termRepo, tx txManager, log *slog.Logger, cfg config.AdmissionConfig) *Service {
	return &Service{
		terms:        terms,
		tx:           tx,
		log:          log.With("service", "admission"),
		maxBatchSize: cfg.MaxBatchSize,
	}
}
