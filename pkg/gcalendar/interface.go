package gcalendar

import "context"

// IClient is the subset of the Calendar API the task store exports to.
type IClient interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}
