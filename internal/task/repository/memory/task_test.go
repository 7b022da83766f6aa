package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"caretask/internal/model"
	repo "caretask/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func seed(t *testing.T, r repo.Repository, ids ...string) {
	t.Helper()
	tasks := make([]model.Task, len(ids))
	for i, id := range ids {
		tasks[i] = model.Task{ID: id, Text: "Task " + id + ".", Priority: model.PriorityLow, Category: model.CategoryOther}
	}
	if err := r.AppendTasks(context.Background(), tasks); err != nil {
		t.Fatalf("AppendTasks: %v", err)
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestAppendAndList_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})
	seed(t, r, "c", "a")
	seed(t, r, "b")

	got, err := r.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if fmt.Sprint(ids(got)) != "[c a b]" {
		t.Errorf("order = %v; want [c a b]", ids(got))
	}

	// Snapshot: mutating the result must not affect the store.
	got[0].Text = "changed"
	again, _ := r.GetTask(ctx, "c")
	if again.Text == "changed" {
		t.Error("ListTasks must return a copy")
	}
}

func TestAppend_DuplicateRejectsBatch(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})
	seed(t, r, "a")

	err := r.AppendTasks(ctx, []model.Task{{ID: "b"}, {ID: "a"}})
	if !errors.Is(err, repo.ErrDuplicateID) {
		t.Fatalf("err = %v; want ErrDuplicateID", err)
	}
	err = r.AppendTasks(ctx, []model.Task{{ID: "x"}, {ID: "x"}})
	if !errors.Is(err, repo.ErrDuplicateID) {
		t.Fatalf("err = %v; want ErrDuplicateID for repeated id", err)
	}

	got, _ := r.ListTasks(ctx, repo.ListTasksOptions{})
	if len(got) != 1 {
		t.Errorf("partial batch stored: %v", ids(got))
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})
	seed(t, r, "a")

	done := true
	high := model.PriorityHigh
	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: "a", Completed: &done, Priority: &high})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !updated.Completed || updated.Priority != model.PriorityHigh || updated.Text != "Task a." {
		t.Errorf("updated = %#v", updated)
	}

	missing, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: "nope", Completed: &done})
	if err != nil || missing.ID != "" {
		t.Errorf("update of unknown id = %#v, %v; want zero, nil", missing, err)
	}
}

func TestListFilter(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})
	seed(t, r, "a", "b", "c")

	done := true
	high := model.PriorityHigh
	r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: "b", Completed: &done})
	r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: "c", Priority: &high})

	pending := false
	got, _ := r.ListTasks(ctx, repo.ListTasksOptions{Completed: &pending})
	if fmt.Sprint(ids(got)) != "[a c]" {
		t.Errorf("pending = %v", ids(got))
	}
	got, _ = r.ListTasks(ctx, repo.ListTasksOptions{Priority: &high})
	if fmt.Sprint(ids(got)) != "[c]" {
		t.Errorf("high = %v", ids(got))
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})
	seed(t, r, "a", "b", "c")

	if err := r.DeleteTask(ctx, "b"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if err := r.DeleteTask(ctx, "b"); err != nil {
		t.Fatalf("second DeleteTask should be a no-op: %v", err)
	}

	got, _ := r.ListTasks(ctx, repo.ListTasksOptions{})
	if fmt.Sprint(ids(got)) != "[a c]" {
		t.Errorf("after delete = %v", ids(got))
	}
	if g, _ := r.GetTask(ctx, "b"); g.ID != "" {
		t.Errorf("deleted task still retrievable: %#v", g)
	}
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("t%d", i)
			r.AppendTasks(ctx, []model.Task{{ID: id}})
			done := true
			r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: id, Completed: &done})
			r.ListTasks(ctx, repo.ListTasksOptions{})
		}(i)
	}
	wg.Wait()

	got, _ := r.ListTasks(ctx, repo.ListTasksOptions{})
	if len(got) != 50 {
		t.Errorf("got %d tasks; want 50", len(got))
	}
}
