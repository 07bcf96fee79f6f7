package provider

import (
	"context"
	"errors"

	"github.com/nyaya-ai/nyaya/config"
	"github.com/nyaya-ai/nyaya/models"
	ollama_provider "github.com/nyaya-ai/nyaya/provider/ollama"
)

// Backend represents different text-generation backends.
type Backend string

const (
	Ollama Backend = "ollama"
)

// Provider is the interface all generation backends must satisfy. Generate
// and CreateEmbedding return errors for diagnostics only; the resolution
// pipeline collapses every failure mode to the same absence signal.
type Provider interface {
	Generate(ctx context.Context, query string, docs []models.KnowledgeDocument, augmented string) (string, error)
	CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error)
	// IsAvailable is a cheap probe used to skip generation entirely when the
	// backend is known to be down. Cost avoidance, not correctness.
	IsAvailable(ctx context.Context) bool
}

// NewProvider creates a generation backend client from configuration.
func NewProvider(backend Backend, cfg config.OllamaConfig) (Provider, error) {
	switch backend {
	case Ollama:
		return ollama_provider.NewClient(cfg), nil
	default:
		return nil, errors.New("unsupported generation backend")
	}
}
