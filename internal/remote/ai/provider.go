package ai

import (
	"context"
	"errors"
	"net/http"
)

// Provider is a chat model that can answer a single prompt.
type Provider interface {
	Name() string
	// Complete sends systemPrompt and content and returns the reply text.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
}

type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai/anthropic, required for compatible
	Model    string

	// HTTPClient carries proxy and timeout settings; nil uses the SDK default.
	HTTPClient *http.Client
}

const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient), nil
	default:
		return nil, ErrInvalidProvider
	}
}
