package memory

import (
	"context"
	"slices"

	"caretask/internal/model"
	repo "caretask/internal/task/repository"
)

// AppendTasks adds tasks at the end in the given order. The batch is
// rejected as a whole if any id is already stored or repeated.
func (r *implRepository) AppendTasks(ctx context.Context, tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		_, dup := seen[t.ID]
		if _, exists := r.byID[t.ID]; exists || dup || t.ID == "" {
			r.l.Warnf(ctx, "%s: rejected id %q", r.dsn("AppendTasks"), t.ID)
			return repo.ErrDuplicateID
		}
		seen[t.ID] = struct{}{}
	}

	for _, t := range tasks {
		r.order = append(r.order, t.ID)
		r.byID[t.ID] = t
	}
	return nil
}

// GetTask returns the zero Task when id is unknown.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// ListTasks returns a snapshot copy in insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		if t := r.byID[id]; opt.Match(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// UpdateTask is a no-op returning the zero Task when id is unknown.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t = opt.Apply(t)
	r.byID[opt.ID] = t
	return t, nil
}

// DeleteTask is a no-op when id is unknown.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}
