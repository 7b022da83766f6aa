package usecase

import (
	"fmt"
	"math"
	"strings"

	"caretask/internal/model"
)

const (
	summaryClosing = "Your caregiver can review and modify these tasks as needed."
	summaryNoTasks = "I couldn't identify specific tasks from your input, but I've created a general reminder for you."

	maxConfidence = 0.95
	localPenalty  = 0.8
)

// synthesizeSummary describes tasks when the remote service gave no summary.
func synthesizeSummary(tasks []model.Task) string {
	if len(tasks) == 0 {
		return summaryNoTasks
	}

	var sb strings.Builder
	plural := ""
	if len(tasks) > 1 {
		plural = "s"
	}
	fmt.Fprintf(&sb, "I found %d task%s from your input. ", len(tasks), plural)

	high := 0
	var categories []string
	seen := make(map[model.Category]bool)
	for _, t := range tasks {
		if t.Priority == model.PriorityHigh {
			high++
		}
		if !seen[t.Category] {
			seen[t.Category] = true
			categories = append(categories, string(t.Category))
		}
	}

	if high > 0 {
		verb := "is"
		if high > 1 {
			verb = "are"
		}
		fmt.Fprintf(&sb, "%d %s high priority. ", high, verb)
	}

	if len(categories) > 1 {
		fmt.Fprintf(&sb, "These include %s activities. ", strings.Join(categories, ", "))
	}

	sb.WriteString(summaryClosing)
	return sb.String()
}

func remoteConfidence(n int) float64 {
	return math.Min(maxConfidence, 0.8+0.05*float64(n))
}

func localConfidence(n int) float64 {
	return math.Min(maxConfidence, 0.6+0.1*float64(n)) * localPenalty
}
