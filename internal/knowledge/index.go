package knowledge

import (
	"context"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/blevesearch/bleve"

	"github.com/nyaya-ai/nyaya/models"
)

// Embedder turns texts into vectors. Satisfied by the generation provider.
type Embedder interface {
	CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error)
}

type bleveDoc struct {
	Content string `json:"content"`
}

// Index holds the pre-built retrieval structures: brute-force cosine vectors
// as the primary ranking, and an in-memory bleve BM25 index over the same
// documents so retrieval keeps working when no embedding model is reachable.
type Index struct {
	mu        sync.RWMutex
	ids       []string // insertion order; ties rank by it
	docs      map[string]models.KnowledgeDocument
	vectors   map[string][]float32
	bm        bleve.Index
	embedder  Embedder
	threshold float64
	logger    *log.Logger
}

// NewIndex creates an empty index. threshold <= 0 disables the similarity
// floor and top-k documents are returned regardless of score.
func NewIndex(embedder Embedder, threshold float64, logger *log.Logger) (*Index, error) {
	bm, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(log.Writer(), "[KNOWLEDGE] ", log.LstdFlags)
	}
	return &Index{
		docs:      make(map[string]models.KnowledgeDocument),
		vectors:   make(map[string][]float32),
		bm:        bm,
		embedder:  embedder,
		threshold: threshold,
		logger:    logger,
	}, nil
}

// Upsert indexes documents by id, replacing existing entries. Embedding
// failures leave the affected documents searchable via BM25 only; they never
// fail the load.
func (ix *Index) Upsert(ctx context.Context, docs []IndexedDocument) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	for _, d := range docs {
		if _, exists := ix.docs[d.ID]; !exists {
			ix.ids = append(ix.ids, d.ID)
		}
		ix.docs[d.ID] = d.Doc
		if err := ix.bm.Index(d.ID, bleveDoc{Content: d.Doc.Content}); err != nil {
			return err
		}
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Doc.Content
	}
	vecs, err := ix.embedder.CreateEmbedding(ctx, texts)
	if err != nil {
		ix.logger.Printf("embedding unavailable, %d documents indexed for keyword search only: %v", len(docs), err)
		return nil
	}
	for i, v := range vecs {
		if i < len(docs) {
			ix.vectors[docs[i].ID] = v
		}
	}
	return nil
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.ids)
}

// Retrieve returns up to k documents ordered by decreasing similarity, ties
// broken by corpus insertion order. It never fails: an empty corpus or an
// unreachable embedder yields whatever the BM25 side can produce, down to an
// empty slice.
func (ix *Index) Retrieve(ctx context.Context, query string, k int) []models.KnowledgeDocument {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if len(ix.ids) == 0 || k <= 0 {
		return nil
	}

	if len(ix.vectors) > 0 {
		if docs := ix.vectorRetrieve(ctx, query, k); docs != nil {
			return docs
		}
	}
	return ix.keywordRetrieve(query, k)
}

func (ix *Index) vectorRetrieve(ctx context.Context, query string, k int) []models.KnowledgeDocument {
	qvecs, err := ix.embedder.CreateEmbedding(ctx, []string{query})
	if err != nil || len(qvecs) == 0 {
		if err != nil {
			ix.logger.Printf("query embedding failed, falling back to keyword search: %v", err)
		}
		return nil
	}
	q := qvecs[0]

	type scored struct {
		id    string
		score float64
	}
	var hits []scored
	for _, id := range ix.ids {
		v, ok := ix.vectors[id]
		if !ok {
			continue
		}
		s := cosine(q, v)
		if ix.threshold > 0 && s < ix.threshold {
			continue
		}
		hits = append(hits, scored{id: id, score: s})
	}
	if len(hits) == 0 {
		return nil
	}
	// stable sort keeps insertion order for equal scores
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > k {
		hits = hits[:k]
	}
	out := make([]models.KnowledgeDocument, len(hits))
	for i, h := range hits {
		out[i] = ix.docs[h.id]
	}
	return out
}

func (ix *Index) keywordRetrieve(query string, k int) []models.KnowledgeDocument {
	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequestOptions(q, k, 0, false)
	res, err := ix.bm.Search(req)
	if err != nil {
		ix.logger.Printf("keyword search failed: %v", err)
		return nil
	}
	var out []models.KnowledgeDocument
	for _, hit := range res.Hits {
		if doc, ok := ix.docs[hit.ID]; ok {
			out = append(out, doc)
		}
		if len(out) >= k {
			break
		}
	}
	return out
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
