package domain

import "time"

// TermStatus is the human-review status of a term.
type TermStatus string

const (
	StatusPending     TermStatus = "pending"
	StatusApproved    TermStatus = "approved"
	StatusDisapproved TermStatus = "disapproved"
)

func (s TermStatus) String() string { return string(s) }

func (s TermStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDisapproved:
		return true
	}
	return false
}

// Admissible reports whether a stored term with this status passes the
// admission filter. Only disapproved terms are gated out.
func (s TermStatus) Admissible() bool {
	return s == StatusPending || s == StatusApproved
}

// AllStatuses lists every valid TermStatus, in review-flow order.
func AllStatuses() []TermStatus {
	return []TermStatus{StatusPending, StatusApproved, StatusDisapproved}
}

// Term is a vocabulary term under human review.
// Name is the unique key and is immutable once the record is created;
// Meaning and Status are mutable, CreatedAt is set once.
type Term struct {
	Name      string
	Meaning   string
	Status    TermStatus
	CreatedAt time.Time
}

// Candidate is a term submitted for admission: the name plus the
// caller-supplied meaning, used as the record meaning only when the
// term turns out to be new.
type Candidate struct {
	Term    string `json:"term"`
	Meaning string `json:"meaning"`
}

// StatusCounts holds per-status record counts from the store.
type StatusCounts struct {
	Pending     int
	Approved    int
	Disapproved int
}

// Total is the number of term records across all statuses.
func (c StatusCounts) Total() int {
	return c.Pending + c.Approved + c.Disapproved
}
