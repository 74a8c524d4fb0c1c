package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"codeberg.org/snonux/glossyflash/internal/translation"
)

// ErrMissingAPIKey is returned when listing is attempted without a key
var ErrMissingAPIKey = errors.New("API key not found. Set API_KEY (or GEMINI_API_KEY / OPENAI_API_KEY) or configure translation.api_key in .glossyflash.yaml")

// Lister lists the models of one provider
type Lister struct {
	cfg *translation.Config
	out io.Writer
}

// NewLister creates a model lister printing to out (stdout when nil)
func NewLister(cfg *translation.Config, out io.Writer) *Lister {
	if cfg == nil {
		cfg = translation.DefaultConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Lister{cfg: cfg, out: out}
}

// Models returns the sorted names of generation capable models
func (l *Lister) Models(ctx context.Context) ([]string, error) {
	if l.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var (
		names []string
		err   error
	)
	switch l.cfg.Provider {
	case translation.ProviderOpenAI:
		names, err = l.openAIModels(ctx)
	case translation.ProviderGemini, "":
		names, err = l.geminiModels(ctx)
	default:
		return nil, fmt.Errorf("unknown provider: %s", l.cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// ListAvailableModels prints the models of the configured provider
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	names, err := l.Models(ctx)
	if err != nil {
		return err
	}

	provider := l.cfg.Provider
	if provider == "" {
		provider = translation.ProviderGemini
	}

	fmt.Fprintf(l.out, "Available %s models for flashcard generation:\n", provider)
	if len(names) == 0 {
		fmt.Fprintln(l.out, "  No models found")
		return nil
	}
	for _, name := range names {
		marker := " "
		if name == l.defaultModel() {
			marker = "*"
		}
		fmt.Fprintf(l.out, " %s %s\n", marker, name)
	}
	fmt.Fprintln(l.out, "\n(* = default)")
	return nil
}

func (l *Lister) defaultModel() string {
	if l.cfg.Provider == translation.ProviderOpenAI {
		return translation.DefaultOpenAIModel
	}
	return translation.DefaultGeminiModel
}

func (l *Lister) geminiModels(ctx context.Context) ([]string, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  l.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if l.cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: l.cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, err
	}

	var names []string
	listCfg := &genai.ListModelsConfig{PageSize: 100}
	for {
		page, err := client.Models.List(ctx, listCfg)
		if err != nil {
			return nil, err
		}
		for _, m := range page.Items {
			if isGeminiGenerationModel(m) {
				names = append(names, strings.TrimPrefix(m.Name, "models/"))
			}
		}
		if page.NextPageToken == "" {
			return names, nil
		}
		listCfg.PageToken = page.NextPageToken
	}
}

func isGeminiGenerationModel(m *genai.Model) bool {
	if m == nil {
		return false
	}
	for _, action := range m.SupportedActions {
		if action == "generateContent" {
			return true
		}
	}
	return len(m.SupportedActions) == 0 && strings.Contains(m.Name, "gemini")
}

func (l *Lister) openAIModels(ctx context.Context) ([]string, error) {
	config := openai.DefaultConfig(l.cfg.APIKey)
	if l.cfg.BaseURL != "" {
		config.BaseURL = l.cfg.BaseURL
	}

	list, err := openai.NewClientWithConfig(config).ListModels(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, m := range list.Models {
		if isOpenAIChatModel(m.ID) {
			names = append(names, m.ID)
		}
	}
	return names, nil
}

// isOpenAIChatModel keeps text chat models and drops audio, image,
// embedding and moderation models
func isOpenAIChatModel(id string) bool {
	for _, skip := range []string{"audio", "tts", "realtime", "transcribe", "image", "search", "embedding", "moderation", "dall-e", "whisper"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	for _, prefix := range []string{"gpt-", "o1", "o3", "o4", "chatgpt-"} {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}
