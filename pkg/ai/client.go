// Package ai wraps the text-completion providers used for advisories.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"farmbook/config"
)

// MaxTokens caps every completion.
const MaxTokens = 500

// ErrEmptyResponse means the provider answered without any candidate.
var ErrEmptyResponse = errors.New("ai: provider returned no choices")

type Client interface {
	// Complete sends one prompt and returns the generated text. A successful
	// call may return "" when the model produced no content.
	Complete(ctx context.Context, prompt string) (string, error)
}

// FromConfig builds the client selected by cfg.Provider().
func FromConfig(ctx context.Context, cfg config.AppConfig) (Client, error) {
	httpc := &http.Client{Timeout: cfg.LLMTimeout}
	switch cfg.Provider() {
	case "openai":
		return NewOpenAI(httpc, cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.Model()), nil
	case "gemini":
		return NewGemini(ctx, httpc, "", cfg.LLMAPIKey, cfg.Model())
	case "mock":
		return NewMock(), nil
	}
	return nil, fmt.Errorf("ai: unknown provider %q", cfg.Provider())
}
