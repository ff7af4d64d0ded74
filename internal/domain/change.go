package domain

import (
	"sort"
	"time"
)

// ChangeKind identifies the kind of edit recorded in a session change log.
type ChangeKind string

const (
	ChangeStatus  ChangeKind = "status"
	ChangeMeaning ChangeKind = "meaning"
	ChangeDelete  ChangeKind = "delete"
)

func (k ChangeKind) String() string { return string(k) }

func (k ChangeKind) IsValid() bool {
	switch k {
	case ChangeStatus, ChangeMeaning, ChangeDelete:
		return true
	}
	return false
}

// Change records one reversible edit applied to a working snapshot.
// Which fields are meaningful depends on Kind: status changes carry
// OldStatus/NewStatus, meaning changes carry OldMeaning/NewMeaning,
// and deletes carry the full prior record in Deleted.
// At orders entries within a log; it is never persisted.
type Change struct {
	Kind       ChangeKind
	Term       string
	OldStatus  TermStatus
	NewStatus  TermStatus
	OldMeaning string
	NewMeaning string
	Deleted    *Term
	At         time.Time
}

// StatusChange is one status difference between baseline and working state.
type StatusChange struct {
	Term string
	From TermStatus
	To   TermStatus
}

// MeaningChange is one meaning difference between baseline and working state.
type MeaningChange struct {
	Term string
	From string
	To   string
}

// Diff is the net difference between a baseline and a working snapshot,
// grouped by kind. Deletions lists terms present in the baseline but
// absent from the working snapshot. Groups are sorted by term name so
// that identical states always produce identical diffs.
type Diff struct {
	StatusChanges  []StatusChange
	MeaningChanges []MeaningChange
	Deletions      []string
}

// Empty reports whether the diff contains no changes of any kind.
func (d Diff) Empty() bool {
	return len(d.StatusChanges) == 0 && len(d.MeaningChanges) == 0 && len(d.Deletions) == 0
}

// Count is the total number of record-level operations the diff implies.
func (d Diff) Count() int {
	return len(d.StatusChanges) + len(d.MeaningChanges) + len(d.Deletions)
}

// ComputeDiff compares a baseline snapshot against a working snapshot.
// A term present in both with identical fields contributes nothing.
// Terms present only in working are ignored: new terms enter the store
// through admission, never through an edit session.
func ComputeDiff(baseline, working map[string]Term) Diff {
	var d Diff

	for name, base := range baseline {
		cur, ok := working[name]
		if !ok {
			d.Deletions = append(d.Deletions, name)
			continue
		}
		if cur.Status != base.Status {
			d.StatusChanges = append(d.StatusChanges, StatusChange{
				Term: name,
				From: base.Status,
				To:   cur.Status,
			})
		}
		if cur.Meaning != base.Meaning {
			d.MeaningChanges = append(d.MeaningChanges, MeaningChange{
				Term: name,
				From: base.Meaning,
				To:   cur.Meaning,
			})
		}
	}

	sort.Slice(d.StatusChanges, func(i, j int) bool { return d.StatusChanges[i].Term < d.StatusChanges[j].Term })
	sort.Slice(d.MeaningChanges, func(i, j int) bool { return d.MeaningChanges[i].Term < d.MeaningChanges[j].Term })
	sort.Strings(d.Deletions)

	return d
}
