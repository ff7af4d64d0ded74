// Package review implements operator-facing term review: listing, stats,
// single-term edits, bulk status moves, and remote batch application of
// change entries.
package review

import (
	"context"
	"log/slog"

	"github.com/termforge/termgate/internal/config"
	"github.com/termforge/termgate/internal/domain"
)

//go:generate moq -out repo_mock_test.go . termRepo

type termRepo interface {
	List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error)
	CountsByStatus(ctx context.Context) (domain.StatusCounts, error)
	UpdateStatus(ctx context.Context, name string, status domain.TermStatus) error
	UpdateMeaning(ctx context.Context, name, meaning string) error
	UpdateStatusAll(ctx context.Context, from, to domain.TermStatus) (int, error)
	Delete(ctx context.Context, name string) error
	DeleteAll(ctx context.Context) (int, error)
}

// Service exposes the term review operations backed by the store.
type Service struct {
	terms termRepo
	log   *slog.Logger
	cfg   config.ListingConfig
}

func New(terms termRepo, log *slog.Logger, cfg config.ListingConfig) *Service {
	return &Service{
		terms: terms,
		log:   log.With("service", "review"),
		cfg:   cfg,
	}
}
