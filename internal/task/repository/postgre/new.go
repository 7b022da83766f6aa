// Package postgre is the durable task store backed by PostgreSQL through gorm.
package postgre

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caretask/internal/task/repository"
	"caretask/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository and migrates the tasks table.
func New(ctx context.Context, db *gorm.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("task/repository/postgre: db is required")
	}
	if err := db.WithContext(ctx).AutoMigrate(&taskRow{}); err != nil {
		return nil, fmt.Errorf("task/repository/postgre: migrate: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
