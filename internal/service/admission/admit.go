package admission

import (
	"context"
	"fmt"
	"time"

	"github.com/termforge/termgate/internal/domain"
)

// AdmitInput carries a batch of candidate terms.
// Duplicates within the batch are the caller's responsibility.
type AdmitInput struct {
	Candidates []domain.Candidate
}

func (in AdmitInput) Validate(maxBatchSize int) error {
	var fields []domain.FieldError

	if len(in.Candidates) > maxBatchSize {
		fields = append(fields, domain.FieldError{
			Field:   "candidates",
			Message: fmt.Sprintf("batch exceeds %d candidates", maxBatchSize),
		})
	}
	for i, c := range in.Candidates {
		if c.Term == "" {
			fields = append(fields, domain.FieldError{
				Field:   fmt.Sprintf("candidates[%d].term", i),
				Message: "must not be empty",
			})
		}
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

// Admit classifies each candidate against its stored review status and
// returns the admitted subset in input order:
//
//   - unknown terms are admitted and inserted with status pending;
//   - pending and approved terms are admitted unchanged;
//   - disapproved terms are dropped without error.
//
// The store lookup is one round trip for the whole batch, and new terms go
// in as one unordered bulk insert, so a concurrent writer racing on the
// same term only costs a skipped redundant insert, never a failure.
// Admitted candidates keep the meaning given by the caller; stored meanings
// are never overwritten.
func (s *Service) Admit(ctx context.Context, in AdmitInput) ([]domain.Candidate, error) {
	if err := in.Validate(s.maxBatchSize); err != nil {
		return nil, err
	}
	if len(in.Candidates) == 0 {
		return []domain.Candidate{}, nil
	}

	names := make([]string, 0, len(in.Candidates))
	for _, c := range in.Candidates {
		names = append(names, c.Term)
	}

	var admitted []domain.Candidate

	// Lookup and insert share one transaction so the batch classifies
	// against a single snapshot. Cross-writer duplicate races are still
	// possible and absorbed by the ON CONFLICT insert.
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		statuses, err := s.terms.StatusesByNames(ctx, names)
		if err != nil {
			return fmt.Errorf("lookup candidate statuses: %w", err)
		}

		now := time.Now().UTC()
		admitted = make([]domain.Candidate, 0, len(in.Candidates))
		var staged []domain.Term
		stagedNames := make(map[string]struct{})

		for _, c := range in.Candidates {
			status, known := statuses[c.Term]
			switch {
			case !known:
				admitted = append(admitted, c)
				if _, dup := stagedNames[c.Term]; !dup {
					stagedNames[c.Term] = struct{}{}
					staged = append(staged, domain.Term{
						Name:      c.Term,
						Meaning:   c.Meaning,
						Status:    domain.StatusPending,
						CreatedAt: now,
					})
				}
			case status.Admissible():
				admitted = append(admitted, c)
			default:
				s.log.Debug("candidate dropped", "term", c.Term, "status", status)
			}
		}

		if len(staged) == 0 {
			return nil
		}

		inserted, err := s.terms.InsertManyUnordered(ctx, staged)
		if err != nil {
			return fmt.Errorf("insert new terms: %w", err)
		}
		if skipped := len(staged) - inserted; skipped > 0 {
			// Lost the insert race to a concurrent writer; their record
			// already satisfies uniqueness, so this is not a failure.
			s.log.Warn("skipped redundant inserts", "count", skipped)
		}
		s.log.Info("admitted new terms", "inserted", inserted, "batch", len(in.Candidates))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return admitted, nil
}
