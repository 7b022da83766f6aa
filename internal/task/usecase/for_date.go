package usecase

import (
	"context"

	"caretask/internal/model"
	"caretask/internal/task"
	"caretask/internal/task/repository"
)

// ForDate resolves each task's time context against the current time and
// keeps those landing on input.Date. Tasks with vague or missing time
// context never match.
func (uc *implUseCase) ForDate(ctx context.Context, input task.ForDateInput) ([]model.Task, error) {
	all, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.task.ForDate repo.ListTasks: %v", err)
		return nil, err
	}

	now := uc.now()
	out := make([]model.Task, 0)
	for _, t := range all {
		if !t.HasTimeContext() {
			continue
		}
		when, ok := uc.dates.Resolve(t.TimeContext, now)
		if ok && uc.dates.SameDay(when.At, input.Date) {
			out = append(out, t)
		}
	}
	return out, nil
}
