package contact

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) ([]Contact, error)
}
