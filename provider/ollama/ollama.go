package ollama_provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nyaya-ai/nyaya/config"
	"github.com/nyaya-ai/nyaya/models"
)

// systemPersona fixes the assistant's identity, scope of authority,
// citation discipline and tone for every generation call.
const systemPersona = `You are Nyaya, the official AI assistant for the Department of Justice, Government of India.

Your responsibilities:
1. Provide accurate information about Indian legal services, schemes, and procedures
2. Guide citizens on how to access eCourts, Tele-Law, and other DoJ services
3. Explain legal concepts in simple, accessible language
4. Direct users to appropriate official resources and portals

Guidelines:
- Be professional, helpful, and empathetic
- Always cite official government sources when possible
- If you don't know something, say so and direct to the official DoJ website
- Keep responses concise but comprehensive
- Use simple language that any citizen can understand
- For case-specific advice, recommend consulting a lawyer through Tele-Law

Key Services to Know:
- eCourts: Online case status, e-filing, e-payment (services.ecourts.gov.in)
- Tele-Law: Free legal advice via video call at CSCs (tele-law.in)
- Virtual Courts: Online traffic challan payment (vcourts.gov.in)
- NALSA: Free legal aid for eligible citizens (nalsa.gov.in)
- NJDG: National Judicial Data Grid for court statistics (njdg.ecourts.gov.in)`

// client talks to a local Ollama instance over its HTTP API.
type client struct {
	baseURL        string
	model          string
	embeddingModel string
	temperature    float64
	topP           float64
	numPredict     int
	httpClient     *http.Client
	probeClient    *http.Client
}

// NewClient creates a new Ollama client.
func NewClient(cfg config.OllamaConfig) *client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	probeTimeout := cfg.ProbeTimeout
	if probeTimeout <= 0 {
		probeTimeout = 5 * time.Second
	}
	return &client{
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		model:          cfg.Model,
		embeddingModel: cfg.EmbeddingModel,
		temperature:    cfg.Temperature,
		topP:           cfg.TopP,
		numPredict:     cfg.NumPredict,
		httpClient:     &http.Client{Timeout: timeout},
		probeClient:    &http.Client{Timeout: probeTimeout},
	}
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

// generateRequest is a request to the Ollama generate API.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

// generateResponse is a response from the Ollama generate API.
type generateResponse struct {
	Response string `json:"response"`
}

// Generate composes the prompt from retrieved documents and augmented text
// and performs exactly one generation call with fixed decoding parameters.
func (c *client) Generate(ctx context.Context, query string, docs []models.KnowledgeDocument, augmented string) (string, error) {
	reqBody := generateRequest{
		Model:  c.model,
		Prompt: buildPrompt(query, docs, augmented),
		System: systemPersona,
		Stream: false,
		Options: generateOptions{
			Temperature: c.temperature,
			TopP:        c.topP,
			NumPredict:  c.numPredict,
		},
	}

	var resp generateResponse
	if err := c.postJSON(ctx, c.httpClient, "/api/generate", reqBody, &resp); err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Response) == "" {
		return "", fmt.Errorf("empty generation response")
	}
	return resp.Response, nil
}

func buildPrompt(query string, docs []models.KnowledgeDocument, augmented string) string {
	var ctxParts []string
	if len(docs) > 0 {
		ctxParts = append(ctxParts, "Relevant Information from Knowledge Base:")
		for _, d := range docs {
			ctxParts = append(ctxParts, "- "+d.Content)
		}
	}
	if augmented != "" {
		ctxParts = append(ctxParts, "\nRecent Information from Web Sources:", augmented)
	}

	return fmt.Sprintf(`Based on the following context and your knowledge, answer the user's question.

%s

User Question: %s

Provide a helpful, accurate response. If the information is from official sources, mention them.`,
		strings.Join(ctxParts, "\n"), query)
}

type embeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embeddingResponse struct {
	Embedding []float32 `json:"embedding"`
}

// CreateEmbedding generates an embedding per text. Ollama's embeddings API
// takes one prompt per call, so texts are embedded sequentially.
func (c *client) CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		var resp embeddingResponse
		err := c.postJSON(ctx, c.httpClient, "/api/embeddings", embeddingRequest{Model: c.embeddingModel, Prompt: t}, &resp)
		if err != nil {
			return nil, err
		}
		out[i] = resp.Embedding
	}
	return out, nil
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// IsAvailable checks that Ollama answers and has the configured model.
func (c *client) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.probeClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}
	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return false
	}
	for _, m := range tags.Models {
		if strings.Contains(m.Name, c.model) {
			return true
		}
	}
	return false
}

func (c *client) postJSON(ctx context.Context, hc *http.Client, path string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
