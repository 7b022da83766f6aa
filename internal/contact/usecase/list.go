package usecase

import (
	"context"
	"slices"

	"caretask/internal/contact"
)

// List returns a copy of the configured call list in order.
func (uc *implUseCase) List(ctx context.Context) ([]contact.Contact, error) {
	return slices.Clone(uc.contacts), nil
}
