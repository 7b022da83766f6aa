// Package classifier assigns a category and a priority to task text using
// ordered keyword rule tables.
package classifier

import (
	"strings"

	"caretask/internal/model"
)

// CategorizeTask returns the category of the first rule in CategoryRules
// matching text, or model.CategoryOther.
func CategorizeTask(text string) model.Category {
	lower := strings.ToLower(text)
	for _, rule := range CategoryRules {
		if containsAny(lower, rule.Keywords) {
			return rule.Category
		}
	}
	return model.CategoryOther
}

// DeterminePriority returns the priority of the first rule in PriorityRules
// matching text or timeContext, or model.PriorityLow.
func DeterminePriority(text, timeContext string) model.Priority {
	lower := strings.ToLower(text)
	lowerTime := strings.ToLower(timeContext)
	for _, rule := range PriorityRules {
		if containsAny(lower, rule.Keywords) || containsAny(lowerTime, rule.TimeKeywords) {
			return rule.Priority
		}
	}
	return model.PriorityLow
}

// HasActionKeyword reports whether text mentions any of ActionKeywords.
func HasActionKeyword(text string) bool {
	return containsAny(strings.ToLower(text), ActionKeywords)
}

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
