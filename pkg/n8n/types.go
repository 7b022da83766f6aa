package n8n

import (
	"fmt"
	"net/http"
	"net/url"
)

// Config holds webhook client configuration.
type Config struct {
	WebhookURL string
	HTTPClient *http.Client
}

// Validate checks the URL and fills defaults.
func (c *Config) Validate() error {
	if c.WebhookURL == "" {
		return fmt.Errorf("n8n: WebhookURL is required")
	}
	u, err := url.Parse(c.WebhookURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("n8n: invalid WebhookURL %q", c.WebhookURL)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type webhookImpl struct {
	url        string
	httpClient *http.Client
}

// messageRequest is the body every workflow receives.
type messageRequest struct {
	Message string `json:"message"`
}

// StatusError is returned for a non-2xx reply.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("n8n: webhook returned %d: %s", e.StatusCode, e.Body)
}
