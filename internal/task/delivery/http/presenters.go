package http

import (
	"strings"

	"caretask/internal/model"
	"caretask/internal/task"
)

// --- Request DTOs ---

type listReq struct {
	Filter string `form:"filter"`
}

func (r listReq) validate() error {
	_, err := task.ParseFilter(r.Filter)
	return err
}

func (r listReq) toInput() task.ListInput {
	f, _ := task.ParseFilter(r.Filter)
	return task.ListInput{Filter: f}
}

type addReq struct {
	Text        string `json:"text"         binding:"required,max=500"`
	Priority    string `json:"priority"     binding:"omitempty,oneof=high medium low"`
	Category    string `json:"category"     binding:"omitempty,oneof=medication appointment personal social household other"`
	TimeContext string `json:"time_context" binding:"max=100"`
}

func (r addReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return task.ErrEmptyText
	}
	return nil
}

func (r addReq) toInput() task.AddInput {
	return task.AddInput{
		Text:        r.Text,
		Priority:    model.Priority(r.Priority),
		Category:    model.Category(r.Category),
		TimeContext: r.TimeContext,
	}
}

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Text        *string `json:"text"         binding:"omitempty,max=500"`
	Priority    *string `json:"priority"     binding:"omitempty,oneof=high medium low"`
	Category    *string `json:"category"     binding:"omitempty,oneof=medication appointment personal social household other"`
	TimeContext *string `json:"time_context" binding:"omitempty,max=100"`
	Completed   *bool   `json:"completed"`
}

func (r updateReq) validate() error {
	if r.ID == "" {
		return errMissingID
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:          r.ID,
		Text:        r.Text,
		TimeContext: r.TimeContext,
		Completed:   r.Completed,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		in.Category = &c
	}
	return in
}

type calendarReq struct {
	Date string `form:"date" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Priority      string `json:"priority"`
	Category      string `json:"category"`
	TimeContext   string `json:"time_context,omitempty"`
	Completed     bool   `json:"completed"`
	ExtractedFrom string `json:"extracted_from"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Text:          t.Text,
		Priority:      string(t.Priority),
		Category:      string(t.Category),
		TimeContext:   t.TimeContext,
		Completed:     t.Completed,
		ExtractedFrom: t.ExtractedFrom,
	}
}

// newTaskResps renders a task list; the result is never nil.
func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type statsResp struct {
	Total               int `json:"total"`
	Completed           int `json:"completed"`
	Pending             int `json:"pending"`
	HighPriorityPending int `json:"high_priority_pending"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Stats statsResp  `json:"stats"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks: newTaskResps(out.Tasks),
		Stats: newStatsResp(out.Stats),
	}
}

func newStatsResp(s task.Stats) statsResp {
	return statsResp{
		Total:               s.Total,
		Completed:           s.Completed,
		Pending:             s.Pending,
		HighPriorityPending: s.HighPriorityPending,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

type calendarResp struct {
	Date  string     `json:"date"`
	Tasks []taskResp `json:"tasks"`
}
