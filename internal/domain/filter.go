package domain

// TermFilter contains filtering parameters for term listings.
// Zero values mean "no constraint"; Limit 0 means unbounded.
type TermFilter struct {
	Statuses []TermStatus
	Search   string
	Limit    int
}
