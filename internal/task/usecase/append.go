package usecase

import (
	"context"
	"time"

	"caretask/internal/model"
	"caretask/pkg/gcalendar"
)

const eventLength = 30 * time.Minute

// Append stores tasks in order, then exports the ones with a resolvable
// time context to the calendar. Export failures are logged and dropped.
func (uc *implUseCase) Append(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	if err := uc.repo.AppendTasks(ctx, tasks); err != nil {
		uc.l.Errorf(ctx, "uc.task.Append repo.AppendTasks: %v", err)
		return err
	}

	uc.export(ctx, tasks)
	return nil
}

func (uc *implUseCase) export(ctx context.Context, tasks []model.Task) {
	if uc.calendar == nil {
		return
	}

	now := uc.now()
	for _, t := range tasks {
		if !t.HasTimeContext() {
			continue
		}
		when, ok := uc.dates.Resolve(t.TimeContext, now)
		if !ok {
			uc.l.Debugf(ctx, "uc.task.export: no date for %q", t.TimeContext)
			continue
		}

		_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     t.Text,
			Description: t.ExtractedFrom,
			StartTime:   when.At,
			EndTime:     when.At.Add(eventLength),
			AllDay:      when.AllDay,
			Timezone:    uc.dates.Location().String(),
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.task.export calendar.CreateEvent %s: %v", t.ID, err)
		}
	}
}
