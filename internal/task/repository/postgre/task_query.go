package postgre

import (
	"context"

	"gorm.io/gorm"

	repo "caretask/internal/task/repository"
)

// buildListQuery applies the filters of opt and orders by insertion.
func (r *implRepository) buildListQuery(ctx context.Context, opt repo.ListTasksOptions) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&taskRow{})
	if opt.Priority != nil {
		q = q.Where("priority = ?", string(*opt.Priority))
	}
	if opt.Completed != nil {
		q = q.Where("completed = ?", *opt.Completed)
	}
	return q.Order("seq ASC")
}

// buildUpdates maps the non-nil fields of opt to column updates. A map is
// used so that false and empty values are written too.
func buildUpdates(opt repo.UpdateTaskOptions) map[string]any {
	updates := make(map[string]any)
	if opt.Text != nil {
		updates["text"] = *opt.Text
	}
	if opt.Priority != nil {
		updates["priority"] = string(*opt.Priority)
	}
	if opt.Category != nil {
		updates["category"] = string(*opt.Category)
	}
	if opt.TimeContext != nil {
		updates["time_context"] = *opt.TimeContext
	}
	if opt.Completed != nil {
		updates["completed"] = *opt.Completed
	}
	return updates
}
