// Package datagen produces realistic candidate-term corpora by scraping
// random Wikipedia article summaries, tokenizing them, and arranging the
// extracted terms into overlapping submission groups.
package datagen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://en.wikipedia.org/api/rest_v1"

// Summary is one random article summary.
type Summary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// WikipediaClient fetches random article summaries from the Wikipedia
// REST API.
type WikipediaClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewWikipediaClient creates a client against the public Wikipedia API.
func NewWikipediaClient(userAgent string, logger *slog.Logger) *WikipediaClient {
	return NewWikipediaClientWithURL(defaultBaseURL, userAgent, logger)
}

// NewWikipediaClientWithURL creates a client with a custom base URL (for testing).
func NewWikipediaClientWithURL(baseURL, userAgent string, logger *slog.Logger) *WikipediaClient {
	return &WikipediaClient{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "wikipedia"),
	}
}

// RandomSummary fetches one random article summary.
func (c *WikipediaClient) RandomSummary(ctx context.Context) (Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/page/random/summary", nil)
	if err != nil {
		return Summary{}, fmt.Errorf("wikipedia: create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "wikipedia request failed", slog.String("error", err.Error()))
		return Summary{}, fmt.Errorf("wikipedia: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Summary{}, fmt.Errorf("wikipedia: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Summary{}, fmt.Errorf("wikipedia: read body: %w", err)
	}

	var s Summary
	if err := json.Unmarshal(body, &s); err != nil {
		return Summary{}, fmt.Errorf("wikipedia: decode json: %w", err)
	}

	c.log.DebugContext(ctx, "scraped summary", slog.String("title", s.Title))

	return s, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *WikipediaClient) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "wikipedia retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return c.httpClient.Do(req)
}
