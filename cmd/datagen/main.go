// Command datagen scrapes random Wikipedia article summaries and produces
// three overlapping candidate-term groups as JSON, for exercising the
// admission filter under realistic duplicate submission.
//
// Usage:
//
//	datagen --articles=30 --group-size=1000 --out=test_data.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/termforge/termgate/internal/datagen"
)

const (
	fetchConcurrency = 4
	topUpArticles    = 5
	maxTopUps        = 10
)

func main() {
	articles := flag.Int("articles", 30, "number of random articles to scrape")
	groupSize := flag.Int("group-size", 1000, "terms per group")
	minLength := flag.Int("min-length", 3, "minimum term length")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for group shuffling")
	out := flag.String("out", "test_data.json", "output file")
	userAgent := flag.String("user-agent", "termgate-datagen/1.0", "User-Agent header for Wikipedia requests")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := datagen.NewWikipediaClient(*userAgent, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	text, err := scrape(ctx, client, *articles)
	if err != nil {
		log.Fatalf("scrape: %v", err)
	}

	terms := datagen.ExtractTerms(text, *minLength)
	logger.Info("extracted terms", slog.Int("count", len(terms)))

	// Keep scraping until the vocabulary covers three full groups.
	for i := 0; len(terms) < 3**groupSize && i < maxTopUps; i++ {
		logger.Warn("not enough terms, scraping more", slog.Int("have", len(terms)))
		more, err := scrape(ctx, client, topUpArticles)
		if err != nil {
			log.Fatalf("scrape: %v", err)
		}
		text += " " + more
		terms = datagen.ExtractTerms(text, *minLength)
	}

	groups, err := datagen.BuildGroups(terms, *groupSize, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatalf("build groups: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(groups); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	fmt.Printf("Wrote %s: %d/%d/%d terms per group\n",
		*out, len(groups.Group1), len(groups.Group2), len(groups.Group3))
}

// scrape fetches n random summaries with bounded concurrency and returns
// their concatenated extracts. Individual fetch failures are fatal; the
// retry inside the client already absorbs transient errors.
func scrape(ctx context.Context, client *datagen.WikipediaClient, n int) (string, error) {
	var (
		mu    sync.Mutex
		parts []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for range n {
		g.Go(func() error {
			s, err := client.RandomSummary(ctx)
			if err != nil {
				return err
			}
			mu.Lock()
			parts = append(parts, s.Extract)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(parts, " "), nil
}
