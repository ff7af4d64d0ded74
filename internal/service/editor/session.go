package editor

import (
	"fmt"
	"sort"
	"time"

	"github.com/termforge/termgate/internal/domain"
)

// Session holds an in-memory edit buffer over the full term set: a baseline
// snapshot matching the store at last sync, a working snapshot the caller
// mutates, and an undo stack of reversible changes.
//
// A Session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	baseline  map[string]domain.Term
	working   map[string]domain.Term
	changeLog []domain.Change
}

// NewSession builds a session whose baseline and working snapshots both
// equal the given term set. Remote clients that fetch terms over HTTP use
// this directly; server-side callers go through Service.Load.
func NewSession(terms []domain.Term) *Session {
	baseline := make(map[string]domain.Term, len(terms))
	for _, t := range terms {
		baseline[t.Name] = t
	}
	return &Session{
		baseline: baseline,
		working:  cloneSnapshot(baseline),
	}
}

// Get returns the working copy of one term.
func (s *Session) Get(name string) (domain.Term, bool) {
	t, ok := s.working[name]
	return t, ok
}

// Terms returns the working snapshot sorted by term name.
func (s *Session) Terms() []domain.Term {
	out := make([]domain.Term, 0, len(s.working))
	for _, t := range s.working {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PendingChanges reports the number of entries on the undo stack.
func (s *Session) PendingChanges() int {
	return len(s.changeLog)
}

// SetStatus updates one term's status in the working snapshot and records
// the change. Setting a status to its current value records nothing.
func (s *Session) SetStatus(name string, status domain.TermStatus) error {
	if !status.IsValid() {
		return domain.NewValidationError(domain.FieldError{
			Field:   "status",
			Message: fmt.Sprintf("unknown status %q", status),
		})
	}

	t, ok := s.working[name]
	if !ok {
		return fmt.Errorf("term %q: %w", name, domain.ErrNotFound)
	}
	if t.Status == status {
		return nil
	}

	s.changeLog = append(s.changeLog, domain.Change{
		Kind:      domain.ChangeStatus,
		Term:      name,
		OldStatus: t.Status,
		NewStatus: status,
		At:        time.Now(),
	})
	t.Status = status
	s.working[name] = t

	return nil
}

// SetMeaning updates one term's meaning in the working snapshot and records
// the change. Setting a meaning to its current value records nothing.
func (s *Session) SetMeaning(name, meaning string) error {
	t, ok := s.working[name]
	if !ok {
		return fmt.Errorf("term %q: %w", name, domain.ErrNotFound)
	}
	if t.Meaning == meaning {
		return nil
	}

	s.changeLog = append(s.changeLog, domain.Change{
		Kind:       domain.ChangeMeaning,
		Term:       name,
		OldMeaning: t.Meaning,
		NewMeaning: meaning,
		At:         time.Now(),
	})
	t.Meaning = meaning
	s.working[name] = t

	return nil
}

// Delete removes one term from the working snapshot, capturing the full
// record so the deletion can be undone.
func (s *Session) Delete(name string) error {
	t, ok := s.working[name]
	if !ok {
		return fmt.Errorf("term %q: %w", name, domain.ErrNotFound)
	}

	snapshot := t
	s.changeLog = append(s.changeLog, domain.Change{
		Kind:    domain.ChangeDelete,
		Term:    name,
		Deleted: &snapshot,
		At:      time.Now(),
	})
	delete(s.working, name)

	return nil
}

// Undo reverses the most recent change. Undone entries are discarded, not
// converted into new log entries; there is no redo.
func (s *Session) Undo() error {
	if len(s.changeLog) == 0 {
		return domain.ErrEmptyHistory
	}

	last := s.changeLog[len(s.changeLog)-1]
	s.changeLog = s.changeLog[:len(s.changeLog)-1]

	switch last.Kind {
	case domain.ChangeStatus:
		t := s.working[last.Term]
		t.Status = last.OldStatus
		s.working[last.Term] = t
	case domain.ChangeMeaning:
		t := s.working[last.Term]
		t.Meaning = last.OldMeaning
		s.working[last.Term] = t
	case domain.ChangeDelete:
		if _, exists := s.working[last.Term]; !exists {
			s.working[last.Term] = *last.Deleted
		}
	}

	return nil
}

// Diff recomputes the difference between baseline and working snapshots.
// It is never cached; the working snapshot may change between calls.
func (s *Session) Diff() domain.Diff {
	return domain.ComputeDiff(s.baseline, s.working)
}

func cloneSnapshot(src map[string]domain.Term) map[string]domain.Term {
	dst := make(map[string]domain.Term, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
