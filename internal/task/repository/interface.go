package repository

import (
	"context"

	"wellness-planner/internal/model"
)

// Repository is the task data store.
type Repository interface {
	TaskRepository
	Close() error
}

// TaskRepository defines all data access methods for the Task entity.
// Lookups return a zero-value Task (ID == "") when nothing matches.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
