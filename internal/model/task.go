package model

import (
	"strings"

	"github.com/google/uuid"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Category groups tasks by the kind of activity.
type Category string

const (
	CategoryMedication  Category = "medication"
	CategoryAppointment Category = "appointment"
	CategoryPersonal    Category = "personal"
	CategorySocial      Category = "social"
	CategoryHousehold   Category = "household"
	CategoryOther       Category = "other"
)

// ExtractedFromCaregiver marks a task typed in by a caregiver rather than derived from patient speech.
const ExtractedFromCaregiver = "Added by caregiver"

// Task is a single actionable item on a patient's list.
type Task struct {
	ID            string
	Text          string
	Priority      Priority
	Category      Category
	TimeContext   string // empty when no time cue was found
	Completed     bool
	ExtractedFrom string
}

// HasTimeContext reports whether a time phrase is attached to the task.
func (t Task) HasTimeContext() bool {
	return t.TimeContext != ""
}

// Source tells which path produced an ExtractionResult.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// ExtractionResult is the transient output of one extraction call.
// Tasks keep extraction order, not priority order.
type ExtractionResult struct {
	Tasks      []Task
	Summary    string
	Confidence float64
	Source     Source
}

// NewTaskID returns a fresh opaque task identifier.
func NewTaskID() string {
	return uuid.NewString()
}

// ParsePriority normalizes s into a Priority. ok is false for unknown values.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, true
	}
	return "", false
}

// ParseCategory normalizes s into a Category. ok is false for unknown values.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryMedication, CategoryAppointment, CategoryPersonal,
		CategorySocial, CategoryHousehold, CategoryOther:
		return c, true
	}
	return "", false
}
