package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"caretask/internal/extraction"
	"caretask/internal/model"
	"caretask/internal/task"
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

type mockExtractor struct {
	res   model.ExtractionResult
	err   error
	calls int
}

func (m *mockExtractor) Extract(ctx context.Context, in extraction.ExtractInput) (model.ExtractionResult, error) {
	m.calls++
	return m.res, m.err
}

// mockTasks only records Append; the other methods are unused here.
type mockTasks struct {
	task.UseCase
	appended []model.Task
	err      error
}

func (m *mockTasks) Append(ctx context.Context, tasks []model.Task) error {
	m.appended = append(m.appended, tasks...)
	return m.err
}

var sampleResult = model.ExtractionResult{
	Tasks: []model.Task{{
		ID:            "t1",
		Text:          "Take my medication at 9 AM.",
		Priority:      model.PriorityHigh,
		Category:      model.CategoryMedication,
		TimeContext:   "at 9 AM",
		ExtractedFrom: "I need to take my medication at 9 AM",
	}},
	Summary:    "I found 1 task from your input.",
	Confidence: 0.85,
	Source:     model.SourceRemote,
}

func setupRouter(ex extraction.UseCase, tasks task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, ex, tasks), nil)
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extractions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExtract(t *testing.T) {
	ex := &mockExtractor{res: sampleResult}
	tasks := &mockTasks{}
	r := setupRouter(ex, tasks)

	w := post(r, `{"message":"I need to take my medication at 9 AM"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data extractResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := resp.Data
	if len(got.Tasks) != 1 || got.Tasks[0].TimeContext != "at 9 AM" || got.Source != "remote" || got.Persisted {
		t.Errorf("response = %+v", got)
	}
	if len(tasks.appended) != 0 {
		t.Errorf("appended without persist")
	}
}

func TestExtract_Persist(t *testing.T) {
	tasks := &mockTasks{}
	r := setupRouter(&mockExtractor{res: sampleResult}, tasks)

	w := post(r, `{"message":"I need to take my medication at 9 AM","persist":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	if len(tasks.appended) != 1 || tasks.appended[0].ID != "t1" {
		t.Errorf("appended = %+v", tasks.appended)
	}
}

func TestExtract_PersistFailure(t *testing.T) {
	r := setupRouter(&mockExtractor{res: sampleResult}, &mockTasks{err: errors.New("db down")})

	w := post(r, `{"message":"I need to take my medication at 9 AM","persist":true}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want 500", w.Code)
	}
}

func TestExtract_ShortMessage(t *testing.T) {
	ex := &mockExtractor{res: sampleResult}
	r := setupRouter(ex, nil)

	for _, body := range []string{`{"message":"call mom"}`, `{"message":"   short message     "}`, `{}`} {
		w := post(r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d; want 400", body, w.Code)
		}
	}
	if ex.calls != 0 {
		t.Errorf("extractor called %d times for rejected input", ex.calls)
	}
}

func TestExtract_LocalPipelineError(t *testing.T) {
	r := setupRouter(&mockExtractor{err: extraction.ErrLocalPipeline}, nil)

	w := post(r, `{"message":"I need to take my medication at 9 AM"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d; want 422", w.Code)
	}
}
