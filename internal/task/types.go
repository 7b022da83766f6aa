package task

import (
	"time"

	"caretask/internal/model"
)

// Filter selects which tasks List returns.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterHigh      Filter = "high"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// ParseFilter maps an empty string to FilterAll and rejects unknown values.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterHigh, FilterPending, FilterCompleted:
		return f, nil
	}
	return "", ErrInvalidFilter
}

// --- UseCase Inputs ---

// AddInput carries a caregiver-authored task. Empty Priority and Category
// default to medium and other.
type AddInput struct {
	Text        string
	Priority    model.Priority
	Category    model.Category
	TimeContext string
}

type ListInput struct {
	Filter Filter
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	ID          string
	Text        *string
	Priority    *model.Priority
	Category    *model.Category
	TimeContext *string
	Completed   *bool
}

type ForDateInput struct {
	Date time.Time
}

// --- UseCase Outputs ---

// Stats are the dashboard counters.
type Stats struct {
	Total               int
	Completed           int
	Pending             int
	HighPriorityPending int
}

type ListOutput struct {
	Tasks []model.Task
	Stats Stats
}
