package http

import (
	"time"

	"caretask/internal/task"
	"caretask/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  task.UseCase
	loc *time.Location
}

// New creates the caregiver task handler. loc is the timezone calendar
// dates are read in.
func New(l log.Logger, uc task.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
