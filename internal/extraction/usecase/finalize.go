package usecase

import (
	"strings"

	"caretask/internal/model"
	"caretask/pkg/airesponse"
	"caretask/pkg/classifier"
	"caretask/pkg/textnorm"
)

const (
	fallbackWords   = 15
	fallbackMaxLen  = 100
	fallbackDefault = "General reminder"
)

// draft pairs a candidate with the text it was taken from.
type draft struct {
	candidate     airesponse.Candidate
	extractedFrom string
}

// assemble finalizes drafts in order, synthesizes a single reminder when
// nothing usable remains, and caps the list at MaxTasks.
func (uc *implUseCase) assemble(rawInput string, drafts []draft) []model.Task {
	tasks := make([]model.Task, 0, len(drafts))
	for _, d := range drafts {
		if t, ok := uc.finalize(d); ok {
			tasks = append(tasks, t)
		}
	}

	if len(tasks) == 0 {
		tasks = append(tasks, uc.fallbackTask(rawInput))
	}

	if len(tasks) > uc.opts.MaxTasks {
		tasks = tasks[:uc.opts.MaxTasks]
	}
	return tasks
}

// finalize resolves the missing fields of a candidate. Heuristics read the
// raw candidate text; the stored text is the cleaned form. Values supplied
// by the remote service win when they are valid.
func (uc *implUseCase) finalize(d draft) (model.Task, bool) {
	raw := strings.TrimSpace(d.candidate.Text)
	if raw == "" {
		return model.Task{}, false
	}

	timeContext := strings.TrimSpace(d.candidate.TimeContext)
	if timeContext == "" {
		timeContext, _ = textnorm.ExtractTimeContext(raw)
	}

	priority, ok := model.ParsePriority(d.candidate.Priority)
	if !ok {
		priority = classifier.DeterminePriority(raw, timeContext)
	}

	category, ok := model.ParseCategory(d.candidate.Category)
	if !ok {
		category = classifier.CategorizeTask(raw)
	}

	return model.Task{
		ID:            uc.newID(),
		Text:          textnorm.CleanTaskText(raw),
		Priority:      priority,
		Category:      category,
		TimeContext:   timeContext,
		Completed:     false,
		ExtractedFrom: d.extractedFrom,
	}, true
}

func (uc *implUseCase) fallbackTask(rawInput string) model.Task {
	text := textnorm.FirstWords(rawInput, fallbackWords, fallbackMaxLen)
	if text == "" {
		text = fallbackDefault
	}
	return model.Task{
		ID:            uc.newID(),
		Text:          textnorm.CleanTaskText(text),
		Priority:      model.PriorityMedium,
		Category:      model.CategoryOther,
		ExtractedFrom: rawInput,
	}
}
