package ollama_provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nyaya-ai/nyaya/config"
	"github.com/nyaya-ai/nyaya/models"
)

func testConfig(baseURL string) config.OllamaConfig {
	return config.OllamaConfig{
		BaseURL:        baseURL,
		Model:          "llama3:8b",
		EmbeddingModel: "nomic-embed-text",
		Temperature:    0.7,
		TopP:           0.9,
		NumPredict:     500,
		Timeout:        5 * time.Second,
		ProbeTimeout:   time.Second,
	}
}

func TestGenerateBuildsPromptAndDecodes(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "Visit services.ecourts.gov.in."})
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	docs := []models.KnowledgeDocument{{Content: "eCourts: online case services"}}
	text, err := c.Generate(context.Background(), "how to check case status?", docs, "eCourts Services:\n- Case status lookup")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "Visit services.ecourts.gov.in." {
		t.Errorf("unexpected text %q", text)
	}

	if got.Model != "llama3:8b" || got.Stream {
		t.Errorf("request model/stream = %s/%v", got.Model, got.Stream)
	}
	if got.Options.Temperature != 0.7 || got.Options.TopP != 0.9 || got.Options.NumPredict != 500 {
		t.Errorf("decoding options not fixed: %+v", got.Options)
	}
	if !strings.Contains(got.Prompt, "- eCourts: online case services") {
		t.Errorf("knowledge docs missing from prompt: %q", got.Prompt)
	}
	if !strings.Contains(got.Prompt, "Recent Information from Web Sources:") {
		t.Errorf("augmented block missing from prompt: %q", got.Prompt)
	}
	if !strings.Contains(got.Prompt, "User Question: how to check case status?") {
		t.Errorf("query missing from prompt: %q", got.Prompt)
	}
	if !strings.Contains(got.System, "Department of Justice") {
		t.Errorf("persona missing from system field")
	}
}

func TestGenerateNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	if _, err := c.Generate(context.Background(), "q", nil, ""); err == nil {
		t.Fatal("expected error on 500 status")
	}
}

func TestGenerateUnreachable(t *testing.T) {
	c := NewClient(testConfig("http://127.0.0.1:1"))
	if _, err := c.Generate(context.Background(), "q", nil, ""); err == nil {
		t.Fatal("expected error for unreachable backend")
	}
}

func TestCreateEmbedding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req embeddingRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "nomic-embed-text" {
			t.Errorf("embedding model = %s", req.Model)
		}
		_ = json.NewEncoder(w).Encode(embeddingResponse{Embedding: []float32{0.1, 0.2}})
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	vecs, err := c.CreateEmbedding(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("CreateEmbedding failed: %v", err)
	}
	if len(vecs) != 2 || len(vecs[0]) != 2 {
		t.Errorf("vecs = %v", vecs)
	}
}

func TestIsAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]string{{"name": "llama3:8b-instruct"}},
		})
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	if !c.IsAvailable(context.Background()) {
		t.Error("expected available when model listed")
	}

	missing := NewClient(config.OllamaConfig{BaseURL: srv.URL, Model: "mistral"})
	if missing.IsAvailable(context.Background()) {
		t.Error("expected unavailable when model missing")
	}

	down := NewClient(testConfig("http://127.0.0.1:1"))
	if down.IsAvailable(context.Background()) {
		t.Error("expected unavailable when backend unreachable")
	}
}
