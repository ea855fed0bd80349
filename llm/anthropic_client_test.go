package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicClientGenerateInference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-sonnet-4-20250514", req.Model)
		assert.Equal(t, 2048, req.MaxTokens)

		response := anthropicResponse{
			Content: []content{{Text: "Here is your summary.", Type: "text"}},
			Role:    "assistant",
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := &AnthropicClient{
		apiKey:     "test-key",
		httpClient: server.Client(),
		url:        server.URL,
		model:      "claude-sonnet-4-20250514",
	}

	var got string
	err := client.GenerateInference(context.Background(),
		[]Message{{Role: "user", Content: "Summarize this."}},
		func(chunk string) error {
			got += chunk
			return nil
		},
		WithMaxTokens(2048),
	)

	require.NoError(t, err)
	assert.Equal(t, "Here is your summary.", got)
}

func TestAnthropicClientGenerateInferenceEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicResponse{})
	}))
	defer server.Close()

	client := &AnthropicClient{
		apiKey:     "test-key",
		httpClient: server.Client(),
		url:        server.URL,
		model:      "claude-sonnet-4-20250514",
	}

	err := client.GenerateInference(context.Background(),
		[]Message{{Role: "user", Content: "Hi"}},
		func(chunk string) error { return nil },
	)

	require.Error(t, err)
}
