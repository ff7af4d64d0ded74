package review

import (
	"context"
	"fmt"

	"github.com/termforge/termgate/internal/domain"
)

// BulkReview moves every pending term to the given verdict in one
// set-based update. Only approved and disapproved are valid verdicts.
// Returns the number of terms moved.
func (s *Service) BulkReview(ctx context.Context, verdict domain.TermStatus) (int, error) {
	if verdict != domain.StatusApproved && verdict != domain.StatusDisapproved {
		return 0, domain.NewValidationError(domain.FieldError{
			Field:   "status",
			Message: fmt.Sprintf("verdict must be approved or disapproved, got %q", verdict),
		})
	}

	n, err := s.terms.UpdateStatusAll(ctx, domain.StatusPending, verdict)
	if err != nil {
		return 0, fmt.Errorf("bulk review to %s: %w", verdict, err)
	}

	s.log.Info("bulk review applied", "verdict", verdict, "terms", n)
	return n, nil
}

// ClearAll wipes the whole term collection. Returns the deleted count.
func (s *Service) ClearAll(ctx context.Context) (int, error) {
	n, err := s.terms.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear terms: %w", err)
	}

	s.log.Warn("term collection cleared", "deleted", n)
	return n, nil
}
