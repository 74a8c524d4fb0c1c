package translation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frenchBody = `{"flashcards":[{"term":"Chat","definition":"Cat","context":"Le chat dort."},{"term":"Chien","definition":"Dog"}]}`

// recordingServer captures the last request path and body
type recordingServer struct {
	*httptest.Server

	mu   sync.Mutex
	path string
	body map[string]interface{}
}

func newRecordingServer(t *testing.T, status int, response interface{}) *recordingServer {
	t.Helper()

	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var decoded map[string]interface{}
		_ = json.Unmarshal(raw, &decoded)

		rs.mu.Lock()
		rs.path = r.URL.Path
		rs.body = decoded
		rs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) lastPath() string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.path
}

func (rs *recordingServer) lastBody() map[string]interface{} {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.body
}

func TestGeminiTransport_Complete(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": []map[string]interface{}{{"text": frenchBody}},
				},
				"finishReason": "STOP",
			},
		},
	})

	transport := NewGeminiTransport("test-key", "", srv.URL)
	assert.Equal(t, "gemini", transport.Name())
	assert.Equal(t, DefaultGeminiModel, transport.Model())

	body, err := transport.Complete(context.Background(), BuildPrompt("Chat, Chien", "French"))
	require.NoError(t, err)
	assert.Equal(t, frenchBody, body)

	assert.True(t, strings.HasSuffix(srv.lastPath(), ":generateContent"), "unexpected path %s", srv.lastPath())
	assert.Contains(t, srv.lastPath(), DefaultGeminiModel)

	config, ok := srv.lastBody()["generationConfig"].(map[string]interface{})
	require.True(t, ok, "request carries no generationConfig")
	assert.Equal(t, "application/json", config["responseMimeType"])
	assert.NotNil(t, config["responseSchema"])
}

func TestGeminiTransport_ServiceError(t *testing.T) {
	srv := newRecordingServer(t, http.StatusForbidden, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    403,
			"message": "API key not valid",
			"status":  "PERMISSION_DENIED",
		},
	})

	result := NewTranslator(NewGeminiTransport("bad-key", "", srv.URL), nil).
		Translate(context.Background(), "Chat", "French")

	assert.Equal(t, OutcomeTransportFailure, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrTransport)
}

func TestOpenAITransport_Complete(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, map[string]interface{}{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  DefaultOpenAIModel,
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"message":       map[string]interface{}{"role": "assistant", "content": frenchBody},
				"finish_reason": "stop",
			},
		},
	})

	transport := NewOpenAITransport("test-key", "", srv.URL+"/v1")
	assert.Equal(t, "openai", transport.Name())
	assert.Equal(t, DefaultOpenAIModel, transport.Model())

	body, err := transport.Complete(context.Background(), BuildPrompt("Chat, Chien", "French"))
	require.NoError(t, err)
	assert.Equal(t, frenchBody, body)

	assert.Equal(t, "/v1/chat/completions", srv.lastPath())

	format, ok := srv.lastBody()["response_format"].(map[string]interface{})
	require.True(t, ok, "request carries no response_format")
	assert.Equal(t, "json_schema", format["type"])
}

func TestOpenAITransport_NoChoices(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, map[string]interface{}{
		"id":      "chatcmpl-2",
		"object":  "chat.completion",
		"choices": []map[string]interface{}{},
	})

	result := NewTranslator(NewOpenAITransport("test-key", "", srv.URL+"/v1"), nil).
		Translate(context.Background(), "Chat", "French")

	assert.Equal(t, OutcomeMalformedResponse, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrEmptyResponse)
}

func TestOpenAITransport_ServiceError(t *testing.T) {
	srv := newRecordingServer(t, http.StatusUnauthorized, map[string]interface{}{
		"error": map[string]interface{}{
			"message": "Incorrect API key provided",
			"type":    "invalid_request_error",
		},
	})

	_, err := NewOpenAITransport("bad-key", "", srv.URL+"/v1").Complete(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestNewTransport(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{ProviderGemini, "gemini", false},
		{"", "gemini", false},
		{ProviderOpenAI, "openai", false},
		{"anthropic", "", true},
	}

	for _, tt := range tests {
		t.Run("provider_"+tt.provider, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Provider = tt.provider
			cfg.Model = ""

			transport, err := NewTransport(cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, transport.Name())

			_, isBreaker := transport.(*BreakerTransport)
			assert.True(t, isBreaker, "transport must be wrapped in a circuit breaker")
		})
	}
}
