package extraction

import (
	"context"

	"caretask/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Extract turns free text into a prioritized task list. Remote failures
	// are absorbed by the local pipeline; only ErrEmptyInput and
	// ErrLocalPipeline are returned.
	Extract(ctx context.Context, input ExtractInput) (model.ExtractionResult, error)
}

// Remote is a text-understanding service. Process makes exactly one
// attempt and returns the decoded payload in whatever shape the service
// produced.
type Remote interface {
	Process(ctx context.Context, rawInput string) (any, error)
	Name() string
}
