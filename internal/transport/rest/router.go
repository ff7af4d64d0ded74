package rest

import "net/http"

// NewRouter wires the term and health handlers onto a request mux.
func NewRouter(terms *TermHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /terms", terms.List)
	mux.HandleFunc("GET /terms/stats", terms.Stats)
	mux.HandleFunc("POST /terms/admit", terms.Admit)
	mux.HandleFunc("POST /terms/batch-update", terms.BatchUpdate)
	mux.HandleFunc("POST /terms/review", terms.BulkReview)
	mux.HandleFunc("DELETE /terms", terms.Clear)
	mux.HandleFunc("PUT /terms/{term}/status", terms.UpdateStatus)
	mux.HandleFunc("PUT /terms/{term}/meaning", terms.UpdateMeaning)
	mux.HandleFunc("DELETE /terms/{term}", terms.Delete)

	return mux
}
