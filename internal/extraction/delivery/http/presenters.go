package http

import (
	"strings"
	"unicode/utf8"

	"caretask/internal/extraction"
	"caretask/internal/model"
)

const minMessageLen = 20

type extractReq struct {
	Message string `json:"message" binding:"required,max=5000"`
	Persist bool   `json:"persist"`
}

func (r extractReq) validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(r.Message)) < minMessageLen {
		return errMessageTooShort
	}
	return nil
}

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{RawInput: r.Message}
}

type taskResp struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Priority      string `json:"priority"`
	Category      string `json:"category"`
	TimeContext   string `json:"time_context,omitempty"`
	Completed     bool   `json:"completed"`
	ExtractedFrom string `json:"extracted_from"`
}

type extractResp struct {
	Tasks      []taskResp `json:"tasks"`
	Summary    string     `json:"summary"`
	Confidence float64    `json:"confidence"`
	Source     string     `json:"source"`
	Persisted  bool       `json:"persisted"`
}

func (h *handler) newExtractResp(res model.ExtractionResult, persisted bool) extractResp {
	tasks := make([]taskResp, len(res.Tasks))
	for i, t := range res.Tasks {
		tasks[i] = taskResp{
			ID:            t.ID,
			Text:          t.Text,
			Priority:      string(t.Priority),
			Category:      string(t.Category),
			TimeContext:   t.TimeContext,
			Completed:     t.Completed,
			ExtractedFrom: t.ExtractedFrom,
		}
	}
	return extractResp{
		Tasks:      tasks,
		Summary:    res.Summary,
		Confidence: res.Confidence,
		Source:     string(res.Source),
		Persisted:  persisted,
	}
}
