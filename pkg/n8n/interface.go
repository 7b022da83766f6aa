// Package n8n posts messages to an n8n workflow webhook.
package n8n

import "context"

// IWebhook sends a message to a workflow and returns the raw reply body.
// Implementations are safe for concurrent use.
type IWebhook interface {
	SendMessage(ctx context.Context, message string) ([]byte, error)
}

// New creates a webhook client.
func New(cfg Config) (IWebhook, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &webhookImpl{url: cfg.WebhookURL, httpClient: cfg.HTTPClient}, nil
}
