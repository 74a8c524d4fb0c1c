package translation

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured for the gemini provider
const DefaultGeminiModel = "gemini-3-flash-preview"

// GeminiTransport talks to the Gemini API through the genai SDK. The client is
// created on first use so that a missing API key only fails the request.
type GeminiTransport struct {
	apiKey  string
	model   string
	baseURL string

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiTransport creates a Gemini transport. baseURL overrides the API
// endpoint and is empty in production.
func NewGeminiTransport(apiKey, model, baseURL string) *GeminiTransport {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiTransport{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
	}
}

// Name implements Transport
func (g *GeminiTransport) Name() string {
	return "gemini"
}

// Model returns the configured model name
func (g *GeminiTransport) Model() string {
	return g.model
}

// Complete implements Transport
func (g *GeminiTransport) Complete(ctx context.Context, prompt string) (string, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   geminiResponseSchema(),
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return resp.Text(), nil
}

func (g *GeminiTransport) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	cfg := &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client
	return client, nil
}

// geminiResponseSchema mirrors responseSchema for the genai structured output
func geminiResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			fieldFlashcards: {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						fieldTerm:       {Type: genai.TypeString, Description: "The original term"},
						fieldDefinition: {Type: genai.TypeString, Description: "The translated definition or equivalent term"},
						fieldContext:    {Type: genai.TypeString, Description: "Optional usage example"},
					},
					Required: []string{fieldTerm, fieldDefinition},
				},
			},
		},
		Required: []string{fieldFlashcards},
	}
}
