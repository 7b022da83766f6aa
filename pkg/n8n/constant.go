package n8n

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// maxBodyBytes caps how much of a webhook reply is read.
	maxBodyBytes = 1 << 20
)
