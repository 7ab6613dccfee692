package usecase

import (
	"sync/atomic"

	"github.com/google/uuid"

	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task/repository"
	pkgLog "wellness-planner/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	engine     *recurrence.Engine
	calendar   CalendarSync
	calendarID string
	newID      func() string

	defaultReminder atomic.Int64
}

// New creates a new task UseCase. The engine's clock is the only source of
// "now".
func New(l pkgLog.Logger, repo repository.Repository, engine *recurrence.Engine, cfg Config) *implUseCase {
	uc := &implUseCase{
		l:          l,
		repo:       repo,
		engine:     engine,
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
		newID:      cfg.NewID,
	}
	if uc.newID == nil {
		uc.newID = uuid.NewString
	}
	uc.defaultReminder.Store(int64(cfg.DefaultReminderMinutes))
	return uc
}

// SetDefaultReminder changes the lead time applied to tasks created without
// one. Safe for concurrent use.
func (uc *implUseCase) SetDefaultReminder(minutes int) {
	uc.defaultReminder.Store(int64(minutes))
}
