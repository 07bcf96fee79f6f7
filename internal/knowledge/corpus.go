// Package knowledge loads the curated corpus of scheme descriptions and FAQ
// entries and serves top-k retrieval over it.
package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nyaya-ai/nyaya/models"
)

// Scheme is one government scheme entry of the corpus file.
type Scheme struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	URL         string   `json:"url,omitempty"`
}

// FAQ is one question/answer entry of the corpus file.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Intent   string `json:"intent,omitempty"`
}

// Corpus is the versioned knowledge file loaded once at startup.
type Corpus struct {
	Schemes []Scheme `json:"schemes"`
	FAQs    []FAQ    `json:"faqs"`
}

// LoadCorpus reads and parses the corpus file.
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("reading corpus: %w", err)
	}
	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return Corpus{}, fmt.Errorf("parsing corpus: %w", err)
	}
	return c, nil
}

// IndexedDocument pairs a derived stable id with its document. The id scheme
// (scheme_<id>, faq_<index>) makes re-running the load an upsert.
type IndexedDocument struct {
	ID  string
	Doc models.KnowledgeDocument
}

// Documents flattens the corpus into indexable documents.
func (c Corpus) Documents() []IndexedDocument {
	var out []IndexedDocument
	for _, s := range c.Schemes {
		text := fmt.Sprintf("%s: %s Benefits: %s", s.Name, s.Description, strings.Join(s.Benefits, ", "))
		out = append(out, IndexedDocument{
			ID: "scheme_" + s.ID,
			Doc: models.KnowledgeDocument{
				Content:  text,
				Metadata: models.DocumentMetadata{Type: "scheme", URL: s.URL},
			},
		})
	}
	for i, f := range c.FAQs {
		in := f.Intent
		if in == "" {
			in = "info"
		}
		out = append(out, IndexedDocument{
			ID: fmt.Sprintf("faq_%d", i),
			Doc: models.KnowledgeDocument{
				Content:  fmt.Sprintf("Q: %s A: %s", f.Question, f.Answer),
				Metadata: models.DocumentMetadata{Type: "faq", Intent: in},
			},
		})
	}
	return out
}
