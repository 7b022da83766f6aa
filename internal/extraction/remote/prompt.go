package remote

import (
	"regexp"
	"strings"
)

// SystemPrompt instructs the model to return the structured tasks shape.
const SystemPrompt = `You help caregivers by turning what a patient says about their day into a short list of tasks.

RULES:
1. Extract every concrete thing the patient needs or wants to do. Ignore small talk.
2. For each task return:
   - text: short imperative description, e.g. "Take blood pressure medication"
   - priority: exactly one of "high", "medium", "low"
   - category: exactly one of "medication", "appointment", "personal", "social", "household", "other"
   - timeContext: the time phrase used by the patient, e.g. "at 9 AM", "tomorrow"; empty string if none
3. Medication and anything due today is "high" priority.
4. Return at most 10 tasks.
5. Also return a one or two sentence friendly summary for the caregiver.
6. Return ONLY a JSON object: {"tasks": [...], "summary": "..."}. No markdown, no explanation text.`

// BuildPrompt wraps the patient's words for the user turn.
func BuildPrompt(rawInput string) string {
	return "PATIENT INPUT:\n" + rawInput + "\n\nReturn ONLY the JSON object:"
}

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFence.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
