package usecase

import (
	"context"

	"wellness-planner/pkg/gcalendar"
)

// CalendarSync mirrors a task's next occurrence into an external calendar.
// *gcalendar.Client implements it.
type CalendarSync interface {
	UpsertAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Config carries the optional collaborators and defaults of the use case.
type Config struct {
	DefaultReminderMinutes int

	// Calendar is nil when Google Calendar sync is disabled.
	Calendar   CalendarSync
	CalendarID string

	// NewID overrides task ID generation; nil uses random UUIDs.
	NewID func() string
}
