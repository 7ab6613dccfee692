package task

import (
	"time"

	"wellness-planner/internal/model"
	"wellness-planner/internal/recurrence"
)

// Status filters the task list by where the next occurrence stands.
type Status string

const (
	StatusAll       Status = "all"
	StatusDueToday  Status = "due_today"
	StatusOverdue   Status = "overdue"
	StatusUpcoming  Status = "upcoming"
	StatusExhausted Status = "exhausted"
)

// Valid reports whether s is a known filter. Empty means all.
func (s Status) Valid() bool {
	switch s {
	case "", StatusAll, StatusDueToday, StatusOverdue, StatusUpcoming, StatusExhausted:
		return true
	}
	return false
}

const (
	DefaultUpcomingCount = 5
	MaxUpcomingCount     = 50
)

// Summary is a task together with the display values derived from its
// recurrence at the time it was read.
type Summary struct {
	Task      model.Task
	Schedule  string // human description of the rule
	NextLabel string
	DueToday  bool
	Overdue   bool
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title          string
	Description    string
	Tags           []string
	ChatID         int64
	Rule           recurrence.Rule // nil creates a one-off task
	ReminderBefore *int            // minutes; nil uses the configured default
}

type ListInput struct {
	Status Status
	// ChatID scopes the list to one chat's tasks plus tasks with no chat;
	// zero lists everything.
	ChatID int64
	Limit  int
	Offset int
}

// UpdateInput is a partial update: nil fields keep their stored value.
type UpdateInput struct {
	ID             string
	Title          *string
	Description    *string
	Tags           []string
	ChatID         *int64
	Rule           recurrence.Rule
	ClearRule      bool
	ReminderBefore *int
}

type UpcomingInput struct {
	ID    string
	Count int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task Summary
}

type ListOutput struct {
	Tasks  []Summary
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task Summary
}

type UpdateOutput struct {
	Task Summary
}

type CompleteOutput struct {
	Task Summary
	// Completed is nil when there was no current occurrence to complete.
	Completed *recurrence.Occurrence
}

type UpcomingOutput struct {
	TaskID string
	Dates  []time.Time
}

type RemindersOutput struct {
	Tasks []Summary
}
