package usecase

import (
	"context"
	"strings"

	"caretask/internal/model"
	"caretask/internal/task"
	"caretask/pkg/textnorm"
)

// Add stores a caregiver-authored task after normalizing its text.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (model.Task, error) {
	text := textnorm.Finish(input.Text)
	if text == "" {
		return model.Task{}, task.ErrEmptyText
	}

	priority := model.PriorityMedium
	if input.Priority != "" {
		p, ok := model.ParsePriority(string(input.Priority))
		if !ok {
			return model.Task{}, task.ErrInvalidPriority
		}
		priority = p
	}

	category := model.CategoryOther
	if input.Category != "" {
		c, ok := model.ParseCategory(string(input.Category))
		if !ok {
			return model.Task{}, task.ErrInvalidCategory
		}
		category = c
	}

	t := model.Task{
		ID:            uc.newID(),
		Text:          text,
		Priority:      priority,
		Category:      category,
		TimeContext:   strings.TrimSpace(input.TimeContext),
		ExtractedFrom: model.ExtractedFromCaregiver,
	}

	if err := uc.Append(ctx, []model.Task{t}); err != nil {
		return model.Task{}, err
	}
	return t, nil
}
