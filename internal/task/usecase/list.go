package usecase

import (
	"context"

	"caretask/internal/model"
	"caretask/internal/task"
	"caretask/internal/task/repository"
)

func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	all, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.task.List repo.ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	opt, err := listOptions(input.Filter)
	if err != nil {
		return task.ListOutput{}, err
	}

	tasks := make([]model.Task, 0, len(all))
	for _, t := range all {
		if opt.Match(t) {
			tasks = append(tasks, t)
		}
	}

	return task.ListOutput{Tasks: tasks, Stats: computeStats(all)}, nil
}

func (uc *implUseCase) Stats(ctx context.Context) (task.Stats, error) {
	all, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.task.Stats repo.ListTasks: %v", err)
		return task.Stats{}, err
	}
	return computeStats(all), nil
}

func listOptions(f task.Filter) (repository.ListTasksOptions, error) {
	high := model.PriorityHigh
	completed, pending := true, false

	switch f {
	case "", task.FilterAll:
		return repository.ListTasksOptions{}, nil
	case task.FilterHigh:
		return repository.ListTasksOptions{Priority: &high}, nil
	case task.FilterPending:
		return repository.ListTasksOptions{Completed: &pending}, nil
	case task.FilterCompleted:
		return repository.ListTasksOptions{Completed: &completed}, nil
	}
	return repository.ListTasksOptions{}, task.ErrInvalidFilter
}

func computeStats(tasks []model.Task) task.Stats {
	var s task.Stats
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Pending++
		if t.Priority == model.PriorityHigh {
			s.HighPriorityPending++
		}
	}
	return s
}
