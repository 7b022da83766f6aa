package usecase

import (
	"context"
	"strings"

	"caretask/internal/model"
	"caretask/internal/task"
	"caretask/internal/task/repository"
	"caretask/pkg/textnorm"
)

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.task.Detail repo.GetTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Update validates the changed fields and applies them. Whitespace-only
// text leaves the stored text unchanged.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) error {
	opt := repository.UpdateTaskOptions{
		ID:        input.ID,
		Completed: input.Completed,
	}

	if input.Text != nil {
		if text := textnorm.Finish(*input.Text); text != "" {
			opt.Text = &text
		}
	}

	if input.Priority != nil {
		p, ok := model.ParsePriority(string(*input.Priority))
		if !ok {
			return task.ErrInvalidPriority
		}
		opt.Priority = &p
	}

	if input.Category != nil {
		c, ok := model.ParseCategory(string(*input.Category))
		if !ok {
			return task.ErrInvalidCategory
		}
		opt.Category = &c
	}

	if input.TimeContext != nil {
		tc := strings.TrimSpace(*input.TimeContext)
		opt.TimeContext = &tc
	}

	if _, err := uc.repo.UpdateTask(ctx, opt); err != nil {
		uc.l.Errorf(ctx, "uc.task.Update repo.UpdateTask: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.task.Delete repo.DeleteTask: %v", err)
		return err
	}
	return nil
}
