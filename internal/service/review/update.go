package review

import (
	"context"
	"fmt"

	"github.com/termforge/termgate/internal/domain"
)

// UpdateStatus moves one term to a new review status.
func (s *Service) UpdateStatus(ctx context.Context, name string, status domain.TermStatus) error {
	if name == "" {
		return domain.NewValidationError(domain.FieldError{Field: "term", Message: "must not be empty"})
	}
	if !status.IsValid() {
		return domain.NewValidationError(domain.FieldError{
			Field:   "status",
			Message: fmt.Sprintf("unknown status %q", status),
		})
	}

	if err := s.terms.UpdateStatus(ctx, name, status); err != nil {
		return fmt.Errorf("update status of %q: %w", name, err)
	}

	s.log.Info("term status updated", "term", name, "status", status)
	return nil
}

// UpdateMeaning replaces one term's meaning.
func (s *Service) UpdateMeaning(ctx context.Context, name, meaning string) error {
	if name == "" {
		return domain.NewValidationError(domain.FieldError{Field: "term", Message: "must not be empty"})
	}

	if err := s.terms.UpdateMeaning(ctx, name, meaning); err != nil {
		return fmt.Errorf("update meaning of %q: %w", name, err)
	}

	s.log.Info("term meaning updated", "term", name)
	return nil
}

// Delete removes one term record.
func (s *Service) Delete(ctx context.Context, name string) error {
	if name == "" {
		return domain.NewValidationError(domain.FieldError{Field: "term", Message: "must not be empty"})
	}

	if err := s.terms.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete term %q: %w", name, err)
	}

	s.log.Info("term deleted", "term", name)
	return nil
}
