package extraction

import "time"

// ExtractInput is the raw patient text to analyze.
type ExtractInput struct {
	RawInput string
}

// Options tunes the engine. Zero values fall back to the defaults.
type Options struct {
	RemoteTimeout time.Duration
	MaxTasks      int
}

const (
	DefaultRemoteTimeout = 15 * time.Second
	DefaultMaxTasks      = 10
)
