package memory

import (
	"fmt"
	"sync"

	"wellness-planner/internal/model"
	"wellness-planner/internal/task/repository"
	"wellness-planner/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	l     log.Logger
}

// New creates an in-process Repository. Data lives as long as the process.
func New(l log.Logger) repository.Repository {
	return &implRepository{tasks: make(map[string]model.Task), l: l}
}

func (r *implRepository) Close() error { return nil }

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
