package llm

import (
	"context"
	"fmt"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

type OllamaClient struct {
	client *api.Client
	model  string
}

func NewOllamaClient(model string) LLMClient {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		logger.Fatal("Failed to create Ollama client", zap.Error(err))
		return nil
	}

	return &OllamaClient{
		client: client,
		model:  model,
	}
}

func (c *OllamaClient) GetModel() string {
	return c.model
}

// GenerateInference streams a chat completion from a local Ollama server.
// callback is invoked once per streamed fragment; the context is checked at
// every fragment boundary, so cancellation stops consumption mid-stream.
func (c *OllamaClient) GenerateInference(ctx context.Context, messages []Message, callback func(chunk string) error, opts ...LLMOption) error {
	settings := LLMSettings{
		model:       c.model,
		temperature: 0.7,
		maxTokens:   4096,
	}

	// Apply options
	for _, opt := range opts {
		opt(&settings)
	}

	apiMessages := make([]api.Message, 0, len(messages)+1)
	if settings.system != "" {
		apiMessages = append(apiMessages, api.Message{Role: "system", Content: settings.system})
	}
	for _, msg := range messages {
		apiMessages = append(apiMessages, api.Message{Role: msg.Role, Content: msg.Content})
	}

	stream := true
	request := &api.ChatRequest{
		Model:    settings.model,
		Messages: apiMessages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": settings.temperature,
			"num_predict": settings.maxTokens,
		},
	}

	err := c.client.Chat(ctx, request, func(resp api.ChatResponse) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if resp.Message.Content == "" {
			return nil
		}
		return callback(resp.Message.Content)
	})

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	return nil
}
