package repository

import "caretask/internal/model"

// ListTasksOptions filters ListTasks. Nil fields match everything.
// Results are always in insertion order.
type ListTasksOptions struct {
	Priority  *model.Priority
	Completed *bool
}

// Match reports whether t passes the filter.
func (o ListTasksOptions) Match(t model.Task) bool {
	if o.Priority != nil && t.Priority != *o.Priority {
		return false
	}
	if o.Completed != nil && t.Completed != *o.Completed {
		return false
	}
	return true
}

// UpdateTaskOptions replaces every non-nil field of the task with ID.
type UpdateTaskOptions struct {
	ID          string
	Text        *string
	Priority    *model.Priority
	Category    *model.Category
	TimeContext *string
	Completed   *bool
}

// Apply returns t with the non-nil fields of o written over it.
func (o UpdateTaskOptions) Apply(t model.Task) model.Task {
	if o.Text != nil {
		t.Text = *o.Text
	}
	if o.Priority != nil {
		t.Priority = *o.Priority
	}
	if o.Category != nil {
		t.Category = *o.Category
	}
	if o.TimeContext != nil {
		t.TimeContext = *o.TimeContext
	}
	if o.Completed != nil {
		t.Completed = *o.Completed
	}
	return t
}
