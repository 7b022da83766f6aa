// Package airesponse turns the loosely specified payloads returned by a
// remote text-understanding service into candidate tasks and a summary.
package airesponse

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"caretask/internal/model"
)

var (
	jsonFence    = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	numberMarker = regexp.MustCompile(`(?:^|\s)\d+\.\s*`)
)

// Decode parses a JSON response body into generic values.
func Decode(body []byte) (any, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return v, nil
}

// Adapt normalizes payload. Shapes are checked in a fixed order: a list
// whose first element has an "output" field, an object with a "tasks"
// list, an object with a "response" string, and finally a bare string.
//
// A recognized shape may legitimately yield zero candidates. An error
// means the payload could not be interpreted at all.
func Adapt(payload any) (Result, error) {
	switch p := payload.(type) {
	case nil:
		return Result{}, ErrNilPayload
	case []any:
		if len(p) > 0 {
			if first, ok := p[0].(map[string]any); ok {
				if out, ok := first["output"]; ok && out != nil {
					return adaptFencedOutput(out)
				}
			}
		}
	case map[string]any:
		if tasks, ok := p["tasks"].([]any); ok {
			return adaptTasks(tasks, p["summary"])
		}
		if resp, ok := p["response"].(string); ok {
			return Result{Candidates: parseNumberedList(resp), Summary: resp, Shape: ShapeResponse}, nil
		}
	case string:
		return Result{Candidates: parseNumberedList(p), Summary: p, Shape: ShapeString}, nil
	}
	return Result{}, fmt.Errorf("%w: %T", ErrUnrecognizedShape, payload)
}

func adaptFencedOutput(out any) (Result, error) {
	text, ok := out.(string)
	if !ok {
		return Result{}, fmt.Errorf("%w: %T", ErrInvalidOutput, out)
	}

	res := Result{Shape: ShapeFencedOutput}
	m := jsonFence.FindStringSubmatch(text)
	if m == nil {
		res.Summary = text
		return res, nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(m[1]), &parsed); err != nil {
		res.Summary = text
		return res, nil
	}

	items, ok := parsed.([]any)
	if !ok {
		return res, nil
	}
	cands, err := candidatesFrom(items)
	if err != nil {
		return Result{}, err
	}
	res.Candidates = cands
	res.Summary = SuccessSummary
	return res, nil
}

func adaptTasks(items []any, summary any) (Result, error) {
	cands, err := candidatesFrom(items)
	if err != nil {
		return Result{}, err
	}
	res := Result{Candidates: cands, Summary: SuccessSummary, Shape: ShapeTasks}
	if s, ok := summary.(string); ok && s != "" {
		res.Summary = s
	}
	return res, nil
}

func candidatesFrom(items []any) ([]Candidate, error) {
	out := make([]Candidate, 0, len(items))
	for i, item := range items {
		c, err := candidateFrom(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// candidateFrom accepts a bare string, an object, or any other scalar,
// which is formatted as text.
func candidateFrom(item any) (Candidate, error) {
	switch v := item.(type) {
	case nil:
		return Candidate{}, ErrInvalidCandidate
	case string:
		return Candidate{Text: v}, nil
	case map[string]any:
		return Candidate{
			Text:        firstString(v, "text", "task", "description"),
			Priority:    firstString(v, "priority"),
			Category:    firstString(v, "category"),
			TimeContext: firstString(v, "timeContext", "time_context"),
		}, nil
	case []any:
		return Candidate{}, ErrInvalidCandidate
	default:
		return Candidate{Text: fmt.Sprint(v)}, nil
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// parseNumberedList extracts "N. text" items. Each item runs until the
// next marker, so items may span lines. The first two items are high
// priority, the rest medium, and all are categorized as other.
func parseNumberedList(text string) []Candidate {
	locs := numberMarker.FindAllStringIndex(text, -1)
	out := make([]Candidate, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		item := strings.TrimSpace(text[loc[1]:end])
		if item == "" {
			continue
		}
		priority := model.PriorityMedium
		if len(out) < listLeadCount {
			priority = model.PriorityHigh
		}
		out = append(out, Candidate{Text: item, Priority: string(priority), Category: string(model.CategoryOther)})
	}
	return out
}
