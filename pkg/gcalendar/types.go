package gcalendar

import "time"

const dateLayout = "2006-01-02"

// AllDayEventRequest describes an all-day event on Date. Recurrence holds
// RFC 5545 lines such as "RRULE:FREQ=WEEKLY;BYDAY=MO".
type AllDayEventRequest struct {
	CalendarID      string
	EventID         string // empty inserts a new event
	Summary         string
	Description     string
	Date            time.Time
	Recurrence      []string
	ReminderMinutes int
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Date        time.Time
}
