package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/termforge/termgate/internal/domain"
)

// ChangeEntry is one remote change-log entry submitted for application.
// Old carries the submitter's last-seen value; application is
// last-write-wins, so it is informational only.
type ChangeEntry struct {
	Kind domain.ChangeKind `json:"type"`
	Term string            `json:"term"`
	Old  string            `json:"old,omitempty"`
	New  string            `json:"new,omitempty"`
}

func (e ChangeEntry) validate() error {
	if e.Term == "" {
		return errors.New("term must not be empty")
	}
	if !e.Kind.IsValid() {
		return fmt.Errorf("unknown change type %q", e.Kind)
	}
	if e.Kind == domain.ChangeStatus && !domain.TermStatus(e.New).IsValid() {
		return fmt.Errorf("unknown status %q", e.New)
	}
	return nil
}

// ChangeResult reports the outcome of applying one entry.
type ChangeResult struct {
	Term    string            `json:"term"`
	Kind    domain.ChangeKind `json:"type"`
	Applied bool              `json:"applied"`
	Error   string            `json:"error,omitempty"`
}

// ApplyChanges applies a batch of change entries one by one and reports a
// per-entry result. A failing entry never aborts the rest of the batch.
// Returns the results and the number of entries applied.
func (s *Service) ApplyChanges(ctx context.Context, entries []ChangeEntry) ([]ChangeResult, int, error) {
	results := make([]ChangeResult, 0, len(entries))
	applied := 0

	for _, e := range entries {
		res := ChangeResult{Term: e.Term, Kind: e.Kind}

		err := e.validate()
		if err == nil {
			err = s.applyOne(ctx, e)
		}

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, applied, ctxErr
			}
			res.Error = err.Error()
			s.log.Warn("change entry rejected", "term", e.Term, "type", e.Kind, "error", err)
		} else {
			res.Applied = true
			applied++
		}
		results = append(results, res)
	}

	s.log.Info("change batch applied", "entries", len(entries), "applied", applied)
	return results, applied, nil
}

func (s *Service) applyOne(ctx context.Context, e ChangeEntry) error {
	switch e.Kind {
	case domain.ChangeStatus:
		return s.terms.UpdateStatus(ctx, e.Term, domain.TermStatus(e.New))
	case domain.ChangeMeaning:
		return s.terms.UpdateMeaning(ctx, e.Term, e.New)
	case domain.ChangeDelete:
		return s.terms.Delete(ctx, e.Term)
	default:
		return fmt.Errorf("unknown change type %q", e.Kind)
	}
}
