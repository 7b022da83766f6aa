// Package remote builds the configured text-understanding collaborator for
// the extraction engine.
package remote

import (
	"fmt"
	"net/http"
	"time"

	"caretask/internal/extraction"
	"caretask/pkg/llmprovider"
	"caretask/pkg/log"
	"caretask/pkg/n8n"
)

const (
	ProviderWebhook  = "webhook"
	ProviderGemini   = "gemini"
	ProviderQwen     = "qwen"
	ProviderDeepSeek = "deepseek"
	ProviderChain    = "chain"
	ProviderNone     = "none"
)

// Config selects and configures one provider. Chain uses Providers and
// the fallback settings; the single-model providers use APIKey, Model
// and BaseURL.
type Config struct {
	Provider   string
	WebhookURL string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client

	Providers       []llmprovider.ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration

	// Logger is required for the chain provider.
	Logger log.Logger
}

// New returns the Remote for cfg.Provider. ProviderNone yields a nil
// Remote, which makes the engine run locally only.
func New(cfg Config) (extraction.Remote, error) {
	switch cfg.Provider {
	case ProviderNone, "":
		return nil, nil

	case ProviderWebhook:
		client, err := n8n.New(n8n.Config{WebhookURL: cfg.WebhookURL, HTTPClient: cfg.HTTPClient})
		if err != nil {
			return nil, err
		}
		return NewWebhook(client), nil

	case ProviderGemini, ProviderQwen, ProviderDeepSeek:
		provider, err := llmprovider.NewProvider(llmprovider.ProviderConfig{
			Name:    cfg.Provider,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}, cfg.HTTPClient)
		if err != nil {
			return nil, err
		}
		return NewLLM(provider), nil

	case ProviderChain:
		if cfg.Logger == nil {
			return nil, fmt.Errorf("chain provider requires a logger")
		}
		providers, err := llmprovider.InitializeProviders(cfg.Providers, cfg.HTTPClient)
		if err != nil {
			return nil, err
		}
		return NewLLM(llmprovider.NewManager(providers, llmprovider.Config{
			FallbackEnabled: cfg.FallbackEnabled,
			RetryAttempts:   cfg.RetryAttempts,
			RetryDelay:      cfg.RetryDelay,
		}, cfg.Logger)), nil

	default:
		return nil, fmt.Errorf("unknown remote provider %q", cfg.Provider)
	}
}
