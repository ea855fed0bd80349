package llm

import (
	"context"
	"errors"
)

// ErrUpstreamUnavailable wraps transport and provider failures. Callers
// surface it to the user directly; no retries are layered on top.
var ErrUpstreamUnavailable = errors.New("llm upstream unavailable")

type LLMClient interface {
	// GenerateInference sends the conversation to the model and delivers the
	// response through callback. Streaming providers invoke callback once per
	// fragment; non-streaming providers invoke it once with the full text.
	GenerateInference(
		ctx context.Context,
		messages []Message,
		callback func(chunk string) error,
		opts ...LLMOption,
	) error

	GetModel() string
}

type LLMSettings struct {
	model       string  // model name
	temperature float64 // randomness (0.0 to 1.0)
	maxTokens   int     // maximum tokens to generate
	system      string  // system prompt
}

type LLMOption func(*LLMSettings)

// Common options for all LLM providers
func WithTemperature(temp float64) LLMOption {
	return func(s *LLMSettings) { s.temperature = temp }
}

func WithMaxTokens(tokens int) LLMOption {
	return func(s *LLMSettings) { s.maxTokens = tokens }
}

func WithSystemPrompt(prompt string) LLMOption {
	return func(s *LLMSettings) { s.system = prompt }
}

type Message struct {
	Role    string `json:"role"`    // "user", "assistant", "system"
	Content string `json:"content"` // the message content
}
