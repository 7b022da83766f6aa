package http

import (
	"caretask/internal/extraction"
	"caretask/internal/task"
	"caretask/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    extraction.UseCase
	tasks task.UseCase
}

// New creates the extraction handler. tasks receives the extracted tasks
// when a request asks for them to be persisted.
func New(l log.Logger, uc extraction.UseCase, tasks task.UseCase) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		tasks: tasks,
	}
}
