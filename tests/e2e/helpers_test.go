//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/termforge/termgate/internal/adapter/postgres"
	"github.com/termforge/termgate/internal/adapter/postgres/term"
	"github.com/termforge/termgate/internal/adapter/postgres/testhelper"
	"github.com/termforge/termgate/internal/config"
	"github.com/termforge/termgate/internal/service/admission"
	"github.com/termforge/termgate/internal/service/review"
	"github.com/termforge/termgate/internal/transport/middleware"
	"github.com/termforge/termgate/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimSpace(p)))
	return len(p), nil
}

// setupTestServer starts the full HTTP stack against a containerized
// database with an empty terms table.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.TruncateTerms(t, pool)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	termRepo := term.New(pool)
	txManager := postgres.NewTxManager(pool)
	admissionSvc := admission.New(termRepo, txManager, logger, config.AdmissionConfig{MaxBatchSize: 5000})
	reviewSvc := review.New(termRepo, logger, config.ListingConfig{DefaultLimit: 100, MaxLimit: 1000})

	termHandler := rest.NewTermHandler(admissionSvc, reviewSvc, logger)
	healthHandler := rest.NewHealthHandler(pool, "e2e")

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{AllowedOrigins: "*"}),
	)(rest.NewRouter(termHandler, healthHandler))

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// postJSON marshals body, posts it, and decodes the JSON response.
func postJSON(t *testing.T, ts *testServer, path string, body any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp.Body)
}

// doJSON sends a bodyless or JSON-bodied request with an arbitrary method.
func doJSON(t *testing.T, ts *testServer, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp.Body)
}

func getJSON(t *testing.T, ts *testServer, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp.Body)
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

// admittedTerms extracts the admitted term names from an admit response.
func admittedTerms(t *testing.T, body map[string]any) []string {
	t.Helper()

	raw, ok := body["admitted"].([]any)
	require.True(t, ok, "expected admitted array, got %v", body)

	names := make([]string, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		require.True(t, ok)
		names = append(names, m["term"].(string))
	}
	return names
}

func candidate(term, meaning string) map[string]string {
	return map[string]string{"term": term, "meaning": meaning}
}
