// Command loadtest replays a datagen corpus against a running server:
// it submits each group for admission, simulates a human reviewer moving
// a fraction of pending terms to approved or disapproved, and reports
// per-group throughput.
//
// Usage:
//
//	loadtest --addr=http://localhost:8080 --data=test_data.json
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/termforge/termgate/internal/datagen"
	"github.com/termforge/termgate/internal/domain"
	"github.com/termforge/termgate/internal/service/editor"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	data := flag.String("data", "test_data.json", "datagen corpus file")
	approveRate := flag.Float64("approve-rate", 0.7, "fraction of reviewed pending terms to approve")
	reviewRate := flag.Float64("review-rate", 0.8, "fraction of pending terms a reviewer gets to")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for simulated review decisions")
	flag.Parse()

	raw, err := os.ReadFile(*data)
	if err != nil {
		log.Fatalf("read %s: %v", *data, err)
	}
	var groups datagen.Groups
	if err := json.Unmarshal(raw, &groups); err != nil {
		log.Fatalf("decode %s: %v", *data, err)
	}

	lt := &loadTester{
		addr:   *addr,
		client: &http.Client{Timeout: 60 * time.Second},
		rng:    rand.New(rand.NewSource(*seed)),
	}

	for i, group := range [][]domain.Candidate{groups.Group1, groups.Group2, groups.Group3} {
		admitted, elapsed, err := lt.admit(group)
		if err != nil {
			log.Fatalf("admit group %d: %v", i+1, err)
		}
		fmt.Printf("group %d: submitted %d, admitted %d in %v (%.0f terms/sec)\n",
			i+1, len(group), admitted, elapsed.Round(time.Millisecond),
			float64(len(group))/elapsed.Seconds())

		reviewed, err := lt.simulateReview(*reviewRate, *approveRate)
		if err != nil {
			log.Fatalf("review after group %d: %v", i+1, err)
		}
		fmt.Printf("group %d: reviewer processed %d pending terms\n", i+1, reviewed)
	}

	stats, err := lt.stats()
	if err != nil {
		log.Fatalf("stats: %v", err)
	}
	fmt.Printf("final stats: %v\n", stats)
}

type loadTester struct {
	addr   string
	client *http.Client
	rng    *rand.Rand
}

func (lt *loadTester) admit(group []domain.Candidate) (int, time.Duration, error) {
	body, err := json.Marshal(map[string]any{"terms": group})
	if err != nil {
		return 0, 0, err
	}

	start := time.Now()
	var resp struct {
		Count int `json:"count"`
	}
	if err := lt.post("/terms/admit", body, &resp); err != nil {
		return 0, 0, err
	}
	return resp.Count, time.Since(start), nil
}

// simulateReview drives the optimistic edit flow the way an interactive
// reviewer would: load the pending terms into an edit session, give
// reviewRate of them a verdict (approveRate approved, the rest
// disapproved), second-guess a few decisions with undo, then submit the
// session's diff as one batch.
func (lt *loadTester) simulateReview(reviewRate, approveRate float64) (int, error) {
	res, err := lt.client.Get(lt.addr + "/terms?status=pending&limit=1000")
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	var listing struct {
		Terms []struct {
			Term    string `json:"term"`
			Meaning string `json:"meaning"`
			Status  string `json:"status"`
		} `json:"terms"`
	}
	if err := json.NewDecoder(res.Body).Decode(&listing); err != nil {
		return 0, err
	}

	terms := make([]domain.Term, len(listing.Terms))
	for i, t := range listing.Terms {
		terms[i] = domain.Term{
			Name:    t.Term,
			Meaning: t.Meaning,
			Status:  domain.TermStatus(t.Status),
		}
	}

	sess := editor.NewSession(terms)
	for _, t := range terms {
		if lt.rng.Float64() > reviewRate {
			continue
		}
		verdict := domain.StatusDisapproved
		if lt.rng.Float64() < approveRate {
			verdict = domain.StatusApproved
		}
		if err := sess.SetStatus(t.Name, verdict); err != nil {
			return 0, err
		}
	}

	// A reviewer occasionally takes back their last few decisions.
	for sess.PendingChanges() > 0 && lt.rng.Float64() < 0.05 {
		if err := sess.Undo(); err != nil {
			return 0, err
		}
	}

	diff := sess.Diff()
	if diff.Empty() {
		return 0, nil
	}

	changes := make([]map[string]string, 0, diff.Count())
	for _, c := range diff.StatusChanges {
		changes = append(changes, map[string]string{
			"type": "status",
			"term": c.Term,
			"old":  c.From.String(),
			"new":  c.To.String(),
		})
	}

	body, err := json.Marshal(map[string]any{"changes": changes})
	if err != nil {
		return 0, err
	}

	var resp struct {
		ProcessedCount int `json:"processed_count"`
	}
	if err := lt.post("/terms/batch-update", body, &resp); err != nil {
		return 0, err
	}
	return resp.ProcessedCount, nil
}

func (lt *loadTester) stats() (map[string]int, error) {
	res, err := lt.client.Get(lt.addr + "/terms/stats")
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var stats map[string]int
	if err := json.NewDecoder(res.Body).Decode(&stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (lt *loadTester) post(path string, body []byte, out any) error {
	res, err := lt.client.Post(lt.addr+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", path, res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
