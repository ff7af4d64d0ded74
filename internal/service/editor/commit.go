package editor

import (
	"context"
	"fmt"

	"github.com/termforge/termgate/internal/domain"
)

// Commit computes the session's diff and applies it to the store as grouped
// batch operations in a fixed order: status updates, then meaning updates,
// then one bulk deletion. An empty diff short-circuits with no store I/O.
//
// The commit is not transactional across groups. Only changes the store
// confirmed as applied are rebased into the session's baseline; unconfirmed
// changes stay in the working snapshot and the change log, so a later
// Commit retries them. Returns the number of confirmed record-level
// operations, alongside the first group failure if one occurred.
func (s *Service) Commit(ctx context.Context, sess *Session) (int, error) {
	diff := sess.Diff()
	if diff.Empty() {
		return 0, nil
	}

	statusConfirmed := make(map[string]bool, len(diff.StatusChanges))
	meaningConfirmed := make(map[string]bool, len(diff.MeaningChanges))
	deleteConfirmed := make(map[string]bool, len(diff.Deletions))

	var groupErr error

	if len(diff.StatusChanges) > 0 {
		applied, err := s.terms.UpdateStatuses(ctx, diff.StatusChanges)
		for _, name := range applied {
			statusConfirmed[name] = true
		}
		if err != nil {
			groupErr = fmt.Errorf("apply %d status updates: %w", len(diff.StatusChanges), err)
		}
	}

	if groupErr == nil && len(diff.MeaningChanges) > 0 {
		applied, err := s.terms.UpdateMeanings(ctx, diff.MeaningChanges)
		for _, name := range applied {
			meaningConfirmed[name] = true
		}
		if err != nil {
			groupErr = fmt.Errorf("apply %d meaning updates: %w", len(diff.MeaningChanges), err)
		}
	}

	if groupErr == nil && len(diff.Deletions) > 0 {
		// One set-based delete: on success every requested name is gone
		// from the store, whether or not it still existed.
		if _, err := s.terms.DeleteMany(ctx, diff.Deletions); err != nil {
			groupErr = fmt.Errorf("delete %d terms: %w", len(diff.Deletions), err)
		} else {
			for _, name := range diff.Deletions {
				deleteConfirmed[name] = true
			}
		}
	}

	confirmed := len(statusConfirmed) + len(meaningConfirmed) + len(deleteConfirmed)
	sess.rebase(diff, statusConfirmed, meaningConfirmed, deleteConfirmed)

	if groupErr != nil {
		s.log.Error("commit incomplete", "confirmed", confirmed, "error", groupErr)
		return confirmed, groupErr
	}

	if unmatched := diff.Count() - confirmed; unmatched > 0 {
		// Updates that matched no row: the record vanished under us.
		// They stay in the change log; a reload resolves them.
		s.log.Warn("commit left unmatched changes", "unmatched", unmatched)
	}
	s.log.Info("commit applied", "operations", confirmed)

	return confirmed, nil
}

type changeKey struct {
	kind domain.ChangeKind
	term string
}

// rebase folds the confirmed subset of the diff into the baseline and drops
// the corresponding change log entries. Unconfirmed changes keep their log
// entries so the next Diff and Commit still see them.
func (sess *Session) rebase(diff domain.Diff, statusConfirmed, meaningConfirmed, deleteConfirmed map[string]bool) {
	allConfirmed := len(statusConfirmed) == len(diff.StatusChanges) &&
		len(meaningConfirmed) == len(diff.MeaningChanges) &&
		len(deleteConfirmed) == len(diff.Deletions)
	if allConfirmed {
		sess.baseline = cloneSnapshot(sess.working)
		sess.changeLog = nil
		return
	}

	unconfirmed := make(map[changeKey]bool)

	for _, c := range diff.StatusChanges {
		if statusConfirmed[c.Term] {
			t := sess.baseline[c.Term]
			t.Status = c.To
			sess.baseline[c.Term] = t
		} else {
			unconfirmed[changeKey{domain.ChangeStatus, c.Term}] = true
		}
	}
	for _, c := range diff.MeaningChanges {
		if meaningConfirmed[c.Term] {
			t := sess.baseline[c.Term]
			t.Meaning = c.To
			sess.baseline[c.Term] = t
		} else {
			unconfirmed[changeKey{domain.ChangeMeaning, c.Term}] = true
		}
	}
	for _, name := range diff.Deletions {
		if deleteConfirmed[name] {
			delete(sess.baseline, name)
		} else {
			unconfirmed[changeKey{domain.ChangeDelete, name}] = true
		}
	}

	retained := sess.changeLog[:0]
	for _, entry := range sess.changeLog {
		if unconfirmed[changeKey{entry.Kind, entry.Term}] {
			retained = append(retained, entry)
		}
	}
	sess.changeLog = retained
}
