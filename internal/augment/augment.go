// Package augment decides whether a query needs fresh external content and
// fetches it from official sources, cached for an hour per source.
package augment

import (
	"context"
	"log"
	"strings"

	"github.com/nyaya-ai/nyaya/internal/cache"
	"github.com/nyaya-ai/nyaya/internal/telemetry"
	"github.com/nyaya-ai/nyaya/models"
)

// recencyKeywords gate the whole augmentation step: without one of these in
// the query, no fetch happens at all.
var recencyKeywords = []string{"latest", "news", "update", "current", "today", "recent", "new"}

// DefaultSources lists the live sites worth scraping, in contribution order.
func DefaultSources() []Source {
	return []Source{
		{
			Key:          "doj_news",
			Name:         "Department of Justice",
			CanonicalURL: "https://doj.gov.in",
			FetchURL:     "https://doj.gov.in",
			Triggers:     []string{"news", "latest", "update", "announcement", "new"},
			Label:        "Latest from DoJ:",
		},
		{
			Key:          "ecourts_info",
			Name:         "eCourts",
			CanonicalURL: "https://ecourts.gov.in",
			FetchURL:     "https://ecourts.gov.in/ecourts_home/",
			Triggers:     []string{"ecourt", "case", "status", "filing", "e-court"},
			Label:        "eCourts Services:",
			ItemFilters:  []string{"service", "case", "filing", "court"},
		},
	}
}

// Augmenter runs the gate, cache and per-source fetches.
type Augmenter struct {
	cache     cache.Cache
	fetcher   Fetcher
	sources   []Source
	logger    *log.Logger
	telemetry *telemetry.Telemetry
}

// New creates an augmenter over the default live sources.
func New(c cache.Cache, f Fetcher, tele *telemetry.Telemetry, logger *log.Logger) *Augmenter {
	if logger == nil {
		logger = log.New(log.Writer(), "[AUGMENT] ", log.LstdFlags)
	}
	return &Augmenter{cache: c, fetcher: f, sources: DefaultSources(), logger: logger, telemetry: tele}
}

// WithSources overrides the live-source set.
func (a *Augmenter) WithSources(sources []Source) *Augmenter {
	a.sources = sources
	return a
}

// MaybeAugment returns fresh content for recency queries. It degrades per
// source: a failed fetch or parse contributes nothing and is only logged,
// never surfaced. When the gate does not fire the call is free.
func (a *Augmenter) MaybeAugment(ctx context.Context, query string) models.AugmentedContent {
	lower := strings.ToLower(query)
	if !containsAny(lower, recencyKeywords) {
		return models.AugmentedContent{}
	}

	var parts []string
	var sources []string
	for _, src := range a.sources {
		if !containsAny(lower, src.Triggers) {
			continue
		}
		text, ok := a.cache.Get(ctx, src.Key)
		if !ok {
			fetched, err := a.fetcher.Fetch(ctx, src)
			if err != nil {
				a.logger.Printf("scrape %s failed: %v", src.Key, err)
				a.telemetry.RecordScrapeFailure(src.Key)
				continue
			}
			text = fetched
			if err := a.cache.Put(ctx, src.Key, text); err != nil {
				a.logger.Printf("cache write for %s failed: %v", src.Key, err)
			}
		}
		parts = append(parts, text)
		sources = append(sources, src.CanonicalURL)
	}

	return models.AugmentedContent{
		Text:    strings.Join(parts, "\n\n"),
		Sources: sources,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
