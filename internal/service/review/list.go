package review

import (
	"context"
	"fmt"

	"github.com/termforge/termgate/internal/domain"
)

// ListInput filters the term listing. A zero Limit falls back to the
// configured default; statuses must be valid when given.
type ListInput struct {
	Statuses []domain.TermStatus
	Search   string
	Limit    int
}

func (in ListInput) Validate(maxLimit int) error {
	var fields []domain.FieldError

	for _, s := range in.Statuses {
		if !s.IsValid() {
			fields = append(fields, domain.FieldError{
				Field:   "status",
				Message: fmt.Sprintf("unknown status %q", s),
			})
		}
	}
	if in.Limit < 0 {
		fields = append(fields, domain.FieldError{
			Field:   "limit",
			Message: "must not be negative",
		})
	}
	if in.Limit > maxLimit {
		fields = append(fields, domain.FieldError{
			Field:   "limit",
			Message: fmt.Sprintf("must not exceed %d", maxLimit),
		})
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

// List returns term records matching the filter, newest first.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Term, error) {
	if err := in.Validate(s.cfg.MaxLimit); err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}

	terms, err := s.terms.List(ctx, domain.TermFilter{
		Statuses: in.Statuses,
		Search:   in.Search,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}

	return terms, nil
}

// Stats returns the per-status record counts.
func (s *Service) Stats(ctx context.Context) (domain.StatusCounts, error) {
	counts, err := s.terms.CountsByStatus(ctx)
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("term stats: %w", err)
	}
	return counts, nil
}
