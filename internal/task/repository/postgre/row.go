package postgre

import (
	"time"

	"caretask/internal/model"
)

// taskRow is the persisted form of model.Task. Seq preserves insertion order.
type taskRow struct {
	Seq           int64  `gorm:"primaryKey;autoIncrement"`
	ID            string `gorm:"uniqueIndex;size:64;not null"`
	Text          string `gorm:"not null"`
	Priority      string `gorm:"size:16;not null;index"`
	Category      string `gorm:"size:16;not null"`
	TimeContext   string
	Completed     bool `gorm:"not null;default:false;index"`
	ExtractedFrom string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (taskRow) TableName() string { return "tasks" }

func toRow(t model.Task) taskRow {
	return taskRow{
		ID:            t.ID,
		Text:          t.Text,
		Priority:      string(t.Priority),
		Category:      string(t.Category),
		TimeContext:   t.TimeContext,
		Completed:     t.Completed,
		ExtractedFrom: t.ExtractedFrom,
	}
}

func (r taskRow) toModel() model.Task {
	return model.Task{
		ID:            r.ID,
		Text:          r.Text,
		Priority:      model.Priority(r.Priority),
		Category:      model.Category(r.Category),
		TimeContext:   r.TimeContext,
		Completed:     r.Completed,
		ExtractedFrom: r.ExtractedFrom,
	}
}
