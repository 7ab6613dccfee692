package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidRule     = errors.New("invalid recurrence rule")
	ErrInvalidStatus   = errors.New("invalid status filter")
	ErrInvalidReminder = errors.New("reminder lead time must not be negative")
)
