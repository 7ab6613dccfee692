package repository

import "wellness-planner/internal/model"

// CreateTaskOptions carries a fully built task. ID and timestamps are set by
// the caller.
type CreateTaskOptions struct {
	Task model.Task
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// Tasks are returned newest first.
type ListTasksOptions struct {
	RecurringOnly bool
	// ChatID, when non-zero, keeps tasks of that chat plus tasks with no chat.
	ChatID int64
	Limit  int
	Offset int
}

// UpdateTaskOptions replaces the stored task with the same ID.
type UpdateTaskOptions struct {
	Task model.Task
}
