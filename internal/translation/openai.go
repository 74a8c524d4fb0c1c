package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// DefaultOpenAIModel is used when no model is configured for the openai provider
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAITransport requests structured output from the OpenAI chat completion API
type OpenAITransport struct {
	model  string
	client *openai.Client
}

// NewOpenAITransport creates an OpenAI transport. baseURL overrides the API
// endpoint and is empty in production.
func NewOpenAITransport(apiKey, model, baseURL string) *OpenAITransport {
	if model == "" {
		model = DefaultOpenAIModel
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAITransport{
		model:  model,
		client: openai.NewClientWithConfig(config),
	}
}

// Name implements Transport
func (o *OpenAITransport) Name() string {
	return "openai"
}

// Model returns the configured model name
func (o *OpenAITransport) Model() string {
	return o.model
}

// Complete implements Transport. A response without choices is returned as
// empty text rather than an error: the request itself went through.
func (o *OpenAITransport) Complete(ctx context.Context, prompt string) (string, error) {
	schema := openAIResponseSchema()

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   fieldFlashcards,
				Schema: &schema,
			},
		},
		Temperature: 0.3,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// openAIResponseSchema mirrors responseSchema as a JSON schema definition
func openAIResponseSchema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			fieldFlashcards: {
				Type: jsonschema.Array,
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						fieldTerm:       {Type: jsonschema.String, Description: "The original term"},
						fieldDefinition: {Type: jsonschema.String, Description: "The translated definition or equivalent term"},
						fieldContext:    {Type: jsonschema.String, Description: "Optional usage example"},
					},
					Required: []string{fieldTerm, fieldDefinition},
				},
			},
		},
		Required: []string{fieldFlashcards},
	}
}
