package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/termforge/termgate/internal/domain"
	"github.com/termforge/termgate/internal/service/admission"
	"github.com/termforge/termgate/internal/service/review"
)

type admissionService interface {
	Admit(ctx context.Context, in admission.AdmitInput) ([]domain.Candidate, error)
}

type reviewService interface {
	List(ctx context.Context, in review.ListInput) ([]domain.Term, error)
	Stats(ctx context.Context) (domain.StatusCounts, error)
	UpdateStatus(ctx context.Context, name string, status domain.TermStatus) error
	UpdateMeaning(ctx context.Context, name, meaning string) error
	Delete(ctx context.Context, name string) error
	BulkReview(ctx context.Context, verdict domain.TermStatus) (int, error)
	ApplyChanges(ctx context.Context, entries []review.ChangeEntry) ([]review.ChangeResult, int, error)
	ClearAll(ctx context.Context) (int, error)
}

// TermHandler serves the term REST endpoints.
type TermHandler struct {
	admission admissionService
	review    reviewService
	log       *slog.Logger
}

// NewTermHandler creates a TermHandler.
func NewTermHandler(adm admissionService, rev reviewService, logger *slog.Logger) *TermHandler {
	return &TermHandler{
		admission: adm,
		review:    rev,
		log:       logger.With("handler", "terms"),
	}
}

type termResponse struct {
	Term      string `json:"term"`
	Meaning   string `json:"meaning"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func toTermResponse(t domain.Term) termResponse {
	return termResponse{
		Term:      t.Name,
		Meaning:   t.Meaning,
		Status:    t.Status.String(),
		CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// List returns terms with optional status filter, substring search, and limit.
// GET /terms?status=pending,approved&search=foo&limit=50
func (h *TermHandler) List(w http.ResponseWriter, r *http.Request) {
	in := review.ListInput{
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			in.Statuses = append(in.Statuses, domain.TermStatus(strings.TrimSpace(s)))
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		in.Limit = limit
	}

	terms, err := h.review.List(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]termResponse, len(terms))
	for i, t := range terms {
		out[i] = toTermResponse(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"terms": out, "count": len(out)})
}

// Stats returns per-status record counts.
// GET /terms/stats
func (h *TermHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.review.Stats(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"pending":     counts.Pending,
		"approved":    counts.Approved,
		"disapproved": counts.Disapproved,
		"total":       counts.Total(),
	})
}

// Admit filters a batch of candidate terms by review status.
// POST /terms/admit
func (h *TermHandler) Admit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Terms []domain.Candidate `json:"terms"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	admitted, err := h.admission.Admit(r.Context(), admission.AdmitInput{Candidates: req.Terms})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"admitted": admitted, "count": len(admitted)})
}

// UpdateStatus sets one term's review status.
// PUT /terms/{term}/status
func (h *TermHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	name := r.PathValue("term")
	if err := h.review.UpdateStatus(r.Context(), name, domain.TermStatus(req.Status)); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"term": name, "status": req.Status})
}

// UpdateMeaning replaces one term's meaning.
// PUT /terms/{term}/meaning
func (h *TermHandler) UpdateMeaning(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Meaning string `json:"meaning"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	name := r.PathValue("term")
	if err := h.review.UpdateMeaning(r.Context(), name, req.Meaning); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"term": name})
}

// Delete removes one term record.
// DELETE /terms/{term}
func (h *TermHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("term")
	if err := h.review.Delete(r.Context(), name); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"term": name})
}

// BatchUpdate applies a batch of change-log entries, reporting a per-entry
// result. This is the remote-callable form of a session commit.
// POST /terms/batch-update
func (h *TermHandler) BatchUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Changes []review.ChangeEntry `json:"changes"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	results, applied, err := h.review.ApplyChanges(r.Context(), req.Changes)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"results":         results,
		"processed_count": applied,
	})
}

// BulkReview moves every pending term to the requested verdict.
// POST /terms/review
func (h *TermHandler) BulkReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Verdict string `json:"verdict"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.review.BulkReview(r.Context(), domain.TermStatus(req.Verdict))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"verdict": req.Verdict, "updated": n})
}

// Clear wipes the whole term collection.
// DELETE /terms
func (h *TermHandler) Clear(w http.ResponseWriter, r *http.Request) {
	n, err := h.review.ClearAll(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"deleted": n})
}
