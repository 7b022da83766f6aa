package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"caretask/pkg/log"
)

// Manager tries providers in priority order with per-provider retries.
// It satisfies Provider itself so a chain can stand in for one backend.
type Manager struct {
	providers []Provider
	config    Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole chain; zero leaves it to ctx.
	MaxTotalTimeout time.Duration
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config Config, logger log.Logger) *Manager {
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Name identifies the chain as a whole.
func (m *Manager) Name() string { return "chain" }

// Model lists the chained models in order.
func (m *Manager) Model() string {
	names := make([]string, len(m.providers))
	for i, p := range m.providers {
		names[i] = p.Name() + "/" + p.Model()
	}
	return strings.Join(names, ",")
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	// Bound the whole chain when a global timeout is set
	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	// Iterate through providers in priority order
	for i, provider := range m.providers {
		// Stop once the caller or the chain timeout has given up
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("chain stopped after %d provider(s): %w", i, err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			// On success, log and return response
			m.logger.Infof(ctx, "llmprovider.Manager: %s/%s succeeded", provider.Name(), provider.Model())
			return resp, nil
		}

		// On failure, log error and try next provider
		m.logger.Warnf(ctx, "llmprovider.Manager: %s/%s failed: %v", provider.Name(), provider.Model(), err)
		lastErr = err

		// If fallback is disabled, stop after first provider
		if !m.config.FallbackEnabled {
			break
		}
	}

	// Every provider failed
	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry waits attempt*RetryDelay between attempts.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		// Linear backoff before each retry
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		// Attempt generation
		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
