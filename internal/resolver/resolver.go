// Package resolver orchestrates the resolution pipeline: classify the query,
// retrieve supporting documents, optionally augment with fresh content, ask
// the generation backend, and fall down the answer tiers until something can
// be served. Every query resolves; absence of an answer is not an error.
package resolver

import (
	"context"
	"log"

	"github.com/nyaya-ai/nyaya/internal/fallback"
	"github.com/nyaya-ai/nyaya/internal/intent"
	"github.com/nyaya-ai/nyaya/internal/sources"
	"github.com/nyaya-ai/nyaya/internal/telemetry"
	"github.com/nyaya-ai/nyaya/models"
	"github.com/nyaya-ai/nyaya/provider"
)

// genericResponse closes the bottom tier: it is served verbatim whenever
// nothing upstream produced an answer, so a resolution can never come back
// empty.
const genericResponse = `I apologize, but I couldn't find specific information on that topic.

I can help you with:
- **Case Status:** Check your case online
- **Tele-Law:** Free legal consultation
- **eCourts Services:** e-Filing, e-Payment
- **Traffic Challans:** Pay fines online
- **Legal Aid:** NALSA free lawyer services

Please try rephrasing your question or visit doj.gov.in for more information.`

// Classifier maps a query to an intent.
type Classifier func(query string) models.Intent

// Retriever returns up to k documents relevant to the query, best first.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) []models.KnowledgeDocument
}

// Augmenter contributes fresh live content when the query asks for it.
type Augmenter interface {
	MaybeAugment(ctx context.Context, query string) models.AugmentedContent
}

// FallbackFunc returns the canned entry for an intent, if one exists.
type FallbackFunc func(intent models.Intent) (fallback.Entry, bool)

// SourceFunc maps a query to its authoritative URLs.
type SourceFunc func(query string) []string

// Resolver runs the pipeline. The zero value is not usable; construct with
// New and override collaborators afterwards where a test needs to.
type Resolver struct {
	Classify  Classifier
	Retriever Retriever
	Augmenter Augmenter
	Provider  provider.Provider
	Fallback  FallbackFunc
	Sources   SourceFunc
	TopK      int
	Logger    *log.Logger
	Telemetry *telemetry.Telemetry
}

// New wires the production pipeline.
func New(ret Retriever, aug Augmenter, prov provider.Provider, topK int, tele *telemetry.Telemetry, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(log.Writer(), "[RESOLVER] ", log.LstdFlags)
	}
	if topK <= 0 {
		topK = 2
	}
	return &Resolver{
		Classify:  intent.Classify,
		Retriever: ret,
		Augmenter: aug,
		Provider:  prov,
		Fallback:  fallback.Lookup,
		Sources:   sources.Resolve,
		TopK:      topK,
		Logger:    logger,
		Telemetry: tele,
	}
}

// Resolve answers a query. The response and its sources are never empty: a
// generated answer cites the topic authorities plus whatever live sources
// contributed, and each fallback tier carries its own attribution.
func (r *Resolver) Resolve(ctx context.Context, query string) models.ResolvedResponse {
	detected := r.Classify(query)
	docs := r.Retriever.Retrieve(ctx, query, r.TopK)
	augmented := r.Augmenter.MaybeAugment(ctx, query)

	if r.Provider.IsAvailable(ctx) {
		text, err := r.Provider.Generate(ctx, query, docs, augmented.Text)
		if err != nil {
			r.Logger.Printf("generation failed, falling back: %v", err)
		} else {
			r.Telemetry.RecordResolution(detected, "generated")
			return models.ResolvedResponse{
				Response:    text,
				Sources:     dedup(append(r.Sources(query), augmented.Sources...)),
				Intent:      detected,
				AIGenerated: true,
			}
		}
	}

	if entry, ok := r.Fallback(detected); ok {
		r.Telemetry.RecordResolution(detected, "intent")
		return models.ResolvedResponse{
			Response: entry.Response,
			Sources:  dedup(entry.Sources),
			Intent:   detected,
		}
	}

	if len(docs) > 0 {
		best := docs[0]
		srcs := []string{sources.DefaultAuthorityURL}
		if best.Metadata.URL != "" {
			srcs = []string{best.Metadata.URL}
		}
		r.Telemetry.RecordResolution(detected, "document")
		return models.ResolvedResponse{
			Response: best.Content,
			Sources:  srcs,
			Intent:   detected,
		}
	}

	r.Telemetry.RecordResolution(detected, "generic")
	return models.ResolvedResponse{
		Response: genericResponse,
		Sources:  []string{sources.DefaultAuthorityURL},
		Intent:   detected,
	}
}

// dedup removes duplicate URLs keeping first-seen order.
func dedup(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
