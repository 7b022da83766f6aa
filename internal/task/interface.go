package task

import (
	"context"

	"caretask/internal/model"
)

// UseCase is the caregiver-facing task list.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Add creates a task typed in by a caregiver, bypassing extraction.
	Add(ctx context.Context, input AddInput) (model.Task, error)
	// Append stores tasks produced by an extraction, in order.
	Append(ctx context.Context, tasks []model.Task) error
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (model.Task, error)
	// Update applies a partial update. Unknown ids are a no-op.
	Update(ctx context.Context, input UpdateInput) error
	// Delete removes a task. Unknown ids are a no-op.
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (Stats, error)
	// ForDate returns tasks whose time context falls on the given day.
	ForDate(ctx context.Context, input ForDateInput) ([]model.Task, error)
}
