// Package editor implements the optimistic edit/sync engine: an in-memory
// edit session over the full term set with undo, plus a synchronizer that
// commits the session's diff to the store as grouped batch operations.
package editor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/termforge/termgate/internal/domain"
)

//go:generate moq -out repo_mock_test.go . termRepo

type termRepo interface {
	ListAll(ctx context.Context) ([]domain.Term, error)
	UpdateStatuses(ctx context.Context, changes []domain.StatusChange) ([]string, error)
	UpdateMeanings(ctx context.Context, changes []domain.MeaningChange) ([]string, error)
	DeleteMany(ctx context.Context, names []string) (int, error)
}

// Service loads edit sessions and commits them back to the store.
type Service struct {
	terms termRepo
	log   *slog.Logger
}

func New(terms termRepo, log *slog.Logger) *Service {
	return &Service{
		terms: terms,
		log:   log.With("service", "editor"),
	}
}

// Load fetches the entire term set in one call and returns a fresh session
// whose baseline and working snapshots both equal the fetched state.
func (s *Service) Load(ctx context.Context) (*Session, error) {
	terms, err := s.terms.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load edit session: %w", err)
	}

	s.log.Debug("edit session loaded", "terms", len(terms))

	return NewSession(terms), nil
}
