package repository

import (
	"context"

	"caretask/internal/model"
)

// Repository is the composed interface for the task store.
type Repository interface {
	TaskRepository
}

// TaskRepository keeps tasks in insertion order keyed by id.
//
// GetTask and UpdateTask return a zero-value Task (ID == "") when the id is
// unknown; that is not an error. DeleteTask on an unknown id is a no-op.
type TaskRepository interface {
	AppendTasks(ctx context.Context, tasks []model.Task) error
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
