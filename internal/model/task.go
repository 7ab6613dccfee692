package model

import (
	"time"

	"wellness-planner/internal/recurrence"
)

// Task is a planner entry. One-off tasks leave the embedded recurrence fields
// at their zero values.
type Task struct {
	ID              string
	Title           string
	Description     string
	Tags            []string
	ChatID          int64  // Telegram chat for reminders; 0 uses the configured default
	CalendarEventID string // Google Calendar event mirroring the next occurrence
	CreatedAt       time.Time
	UpdatedAt       time.Time

	recurrence.Task
}
