// Package term implements the term store adapter backed by PostgreSQL.
// The terms table has a unique constraint on the term name; all bulk
// operations are single round trips (one query, one pgx batch, or one
// set-based statement).
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/termforge/termgate/internal/adapter/postgres"
	"github.com/termforge/termgate/internal/domain"
)

// qb builds queries with PostgreSQL placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// row mirrors the terms table.
type row struct {
	Term      string    `db:"term"`
	Meaning   string    `db:"meaning"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Term {
	return domain.Term{
		Name:      r.Term,
		Meaning:   r.Meaning,
		Status:    domain.TermStatus(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new term repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// StatusesByNames returns the stored status for each of the given term names
// in a single round trip. Names absent from the store have no map entry.
func (r *Repo) StatusesByNames(ctx context.Context, names []string) (map[string]domain.TermStatus, error) {
	statuses := make(map[string]domain.TermStatus, len(names))
	if len(names) == 0 {
		return statuses, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT term, status FROM terms WHERE term = ANY($1)`, names)
	if err != nil {
		return nil, fmt.Errorf("lookup term statuses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, status string
		if err := rows.Scan(&name, &status); err != nil {
			return nil, fmt.Errorf("scan term status: %w", err)
		}
		statuses[name] = domain.TermStatus(status)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lookup term statuses: %w", err)
	}

	return statuses, nil
}

// ListAll returns every term record in the store in one call.
// Used by edit sessions to load their baseline snapshot.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []row
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT term, meaning, status, created_at FROM terms ORDER BY term`)
	if err != nil {
		return nil, fmt.Errorf("list all terms: %w", err)
	}

	return toDomainSlice(rows), nil
}

// List returns term records matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error) {
	query := qb.Select("term", "meaning", "status", "created_at").
		From("terms").
		OrderBy("created_at DESC", "term ASC")

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		query = query.Where(squirrel.Eq{"status": statuses})
	}
	if filter.Search != "" {
		query = query.Where("term ILIKE '%' || ? || '%'", filter.Search)
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}

	return toDomainSlice(rows), nil
}

// CountsByStatus returns the number of term records per status,
// computed by the database in one aggregate query.
func (r *Repo) CountsByStatus(ctx context.Context) (domain.StatusCounts, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM terms GROUP BY status`)
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("count terms by status: %w", err)
	}
	defer rows.Close()

	var counts domain.StatusCounts
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return domain.StatusCounts{}, fmt.Errorf("scan status count: %w", err)
		}
		switch domain.TermStatus(status) {
		case domain.StatusPending:
			counts.Pending = n
		case domain.StatusApproved:
			counts.Approved = n
		case domain.StatusDisapproved:
			counts.Disapproved = n
		}
	}
	if err := rows.Err(); err != nil {
		return domain.StatusCounts{}, fmt.Errorf("count terms by status: %w", err)
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertManyUnordered inserts term records using pgx.Batch. Records whose
// name already exists are skipped via ON CONFLICT DO NOTHING, so a
// uniqueness race on one record never aborts the rest of the batch.
// Returns the number of actually inserted rows.
func (r *Repo) InsertManyUnordered(ctx context.Context, terms []domain.Term) (int, error) {
	if len(terms) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, t := range terms {
		batch.Queue(
			`INSERT INTO terms (term, meaning, status, created_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (term) DO NOTHING`,
			t.Name, t.Meaning, t.Status.String(), t.CreatedAt,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// UpdateStatus sets the status of one term.
// Returns domain.ErrNotFound if no record with that name exists.
func (r *Repo) UpdateStatus(ctx context.Context, name string, status domain.TermStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE terms SET status = $2 WHERE term = $1`, name, status.String())
	if err != nil {
		return postgres.MapError(err, "term", name)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %q: %w", name, domain.ErrNotFound)
	}

	return nil
}

// UpdateMeaning sets the meaning of one term.
// Returns domain.ErrNotFound if no record with that name exists.
func (r *Repo) UpdateMeaning(ctx context.Context, name, meaning string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE terms SET meaning = $2 WHERE term = $1`, name, meaning)
	if err != nil {
		return postgres.MapError(err, "term", name)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %q: %w", name, domain.ErrNotFound)
	}

	return nil
}

// UpdateStatuses applies a group of status changes through one pgx batch.
// Returns the names whose update matched a row. A change targeting a
// missing term is simply not included in the applied set; an execution
// error stops the batch and is returned alongside the names confirmed
// so far.
func (r *Repo) UpdateStatuses(ctx context.Context, changes []domain.StatusChange) ([]string, error) {
	if len(changes) == 0 {
		return nil, nil
	}

	batch := &pgx.Batch{}
	for _, c := range changes {
		batch.Queue(`UPDATE terms SET status = $2 WHERE term = $1`, c.Term, c.To.String())
	}

	return r.sendBatchApplied(ctx, batch, changeTerms(changes))
}

// UpdateMeanings applies a group of meaning changes through one pgx batch.
// Confirmation semantics match UpdateStatuses.
func (r *Repo) UpdateMeanings(ctx context.Context, changes []domain.MeaningChange) ([]string, error) {
	if len(changes) == 0 {
		return nil, nil
	}

	batch := &pgx.Batch{}
	names := make([]string, len(changes))
	for i, c := range changes {
		names[i] = c.Term
		batch.Queue(`UPDATE terms SET meaning = $2 WHERE term = $1`, c.Term, c.To)
	}

	return r.sendBatchApplied(ctx, batch, names)
}

// UpdateStatusAll moves every term with status from to status to.
// Returns the number of updated records.
func (r *Repo) UpdateStatusAll(ctx context.Context, from, to domain.TermStatus) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE terms SET status = $2 WHERE status = $1`, from.String(), to.String())
	if err != nil {
		return 0, fmt.Errorf("bulk update status %s -> %s: %w", from, to, err)
	}

	return int(tag.RowsAffected()), nil
}

// Delete removes one term record.
// Returns domain.ErrNotFound if no record with that name exists.
func (r *Repo) Delete(ctx context.Context, name string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM terms WHERE term = $1`, name)
	if err != nil {
		return postgres.MapError(err, "term", name)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %q: %w", name, domain.ErrNotFound)
	}

	return nil
}

// DeleteMany removes all records whose name is in names, as one set-based
// statement. Missing names are not an error. Returns the deleted count.
func (r *Repo) DeleteMany(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM terms WHERE term = ANY($1)`, names)
	if err != nil {
		return 0, fmt.Errorf("delete terms: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// DeleteAll wipes the terms table. Returns the deleted count.
func (r *Repo) DeleteAll(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM terms`)
	if err != nil {
		return 0, fmt.Errorf("delete all terms: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Batch helpers
// ---------------------------------------------------------------------------

// sendBatchExec sends the batch and sums affected rows across results.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var affected int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return affected, fmt.Errorf("batch exec: %w", err)
		}
		affected += int(tag.RowsAffected())
	}

	return affected, nil
}

// sendBatchApplied sends the batch and returns the subset of names whose
// statement matched at least one row. names must be index-aligned with the
// queued statements. On an execution error the remaining statements are
// not confirmed; the error is returned with the names confirmed before it.
func (r *Repo) sendBatchApplied(ctx context.Context, batch *pgx.Batch, names []string) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	applied := make([]string, 0, len(names))
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return applied, fmt.Errorf("batch exec for term %q: %w", names[i], err)
		}
		if tag.RowsAffected() > 0 {
			applied = append(applied, names[i])
		}
	}

	return applied, nil
}

func changeTerms(changes []domain.StatusChange) []string {
	names := make([]string, len(changes))
	for i, c := range changes {
		names[i] = c.Term
	}
	return names
}

func toDomainSlice(rows []row) []domain.Term {
	terms := make([]domain.Term, len(rows))
	for i, r := range rows {
		terms[i] = r.toDomain()
	}
	return terms
}
