package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"caretask/internal/model"
	repo "caretask/internal/task/repository"
)

// AppendTasks inserts tasks in one transaction so a duplicate id stores nothing.
func (r *implRepository) AppendTasks(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	rows := make([]taskRow, len(tasks))
	for i, t := range tasks {
		rows[i] = toRow(t)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrDuplicateID
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendTasks"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// GetTask returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	var row taskRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListTasks returns matching tasks in insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	var rows []taskRow
	if err := r.buildListQuery(ctx, opt).Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, nil
}

// UpdateTask writes the non-nil fields and returns the updated task, or the
// zero Task when id is unknown.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	var row taskRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", opt.ID).Take(&row).Error; err != nil {
			return err
		}
		if updates := buildUpdates(opt); len(updates) > 0 {
			if err := tx.Model(&row).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", opt.ID).Take(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteTask removes a task by ID. Unknown ids affect no rows.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&taskRow{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
