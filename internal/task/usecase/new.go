package usecase

import (
	"time"

	"caretask/internal/model"
	"caretask/internal/task"
	"caretask/internal/task/repository"
	"caretask/pkg/datemath"
	"caretask/pkg/gcalendar"
	"caretask/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	dates      *datemath.Parser
	calendar   gcalendar.IClient
	calendarID string
	now        func() time.Time
	newID      func() string
}

// New creates a task UseCase. calendar may be nil, in which case stored
// tasks are not exported anywhere.
func New(l log.Logger, repo repository.Repository, dates *datemath.Parser, calendar gcalendar.IClient, calendarID string) task.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		dates:      dates,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
		newID:      model.NewTaskID,
	}
}
