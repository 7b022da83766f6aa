// Package memory is an in-process task store.
package memory

import (
	"fmt"
	"sync"

	"caretask/internal/model"
	"caretask/internal/task/repository"
	"caretask/pkg/log"
)

// implRepository keeps tasks in a slice for order and a map for lookup.
// All methods are safe for concurrent use; concurrent updates to the same
// id are last-write-wins.
type implRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]model.Task
	l     log.Logger
}

// New creates an empty in-memory Repository.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		byID: make(map[string]model.Task),
		l:    l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
