// Package app assembles the task use case from configuration. Both the API
// server and the reminder worker start from here.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wellness-planner/config"
	"wellness-planner/config/sqlite"
	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task"
	"wellness-planner/internal/task/repository"
	memoryRepo "wellness-planner/internal/task/repository/memory"
	sqliteRepo "wellness-planner/internal/task/repository/sqlite"
	"wellness-planner/internal/task/usecase"
	"wellness-planner/pkg/gcalendar"
	"wellness-planner/pkg/log"
)

// TaskUseCase is the task use case plus its runtime knobs.
type TaskUseCase interface {
	task.UseCase
	SetDefaultReminder(minutes int)
}

// Planner holds the assembled domain.
type Planner struct {
	Location *time.Location
	TaskUC   TaskUseCase

	db   *sql.DB
	repo repository.Repository
}

// New opens storage, builds the engine on the planner timezone and, when
// credentials are configured, connects Google Calendar. Calendar failures
// are logged and sync is disabled.
func New(ctx context.Context, l log.Logger, cfg *config.Config) (*Planner, error) {
	loc, err := time.LoadLocation(cfg.Planner.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Planner.Timezone, err)
	}

	p := &Planner{Location: loc}

	switch cfg.Storage.Driver {
	case config.StorageSQLite:
		p.db, err = sqlite.Connect(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		p.repo, err = sqliteRepo.New(ctx, p.db, loc, l)
		if err != nil {
			_ = sqlite.Disconnect(ctx, p.db)
			return nil, fmt.Errorf("init sqlite repository: %w", err)
		}
		l.Infof(ctx, "Storage: sqlite at %s", cfg.Storage.Path)
	default:
		p.repo = memoryRepo.New(l)
		l.Info(ctx, "Storage: in-memory (tasks are lost on restart)")
	}

	var calendar usecase.CalendarSync
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			l.Infof(ctx, "Google Calendar sync enabled (calendar %s)", cfg.GoogleCalendar.CalendarID)
		}
	}

	engine := recurrence.NewEngine(recurrence.WithClock(recurrence.SystemClock{Location: loc}))
	p.TaskUC = usecase.New(l, p.repo, engine, usecase.Config{
		DefaultReminderMinutes: cfg.Planner.DefaultReminderMinutes,
		Calendar:               calendar,
		CalendarID:             cfg.GoogleCalendar.CalendarID,
	})
	return p, nil
}

// Ping reports whether storage is reachable.
func (p *Planner) Ping(ctx context.Context) error {
	if p.db == nil {
		return nil
	}
	return p.db.PingContext(ctx)
}

// Close releases storage.
func (p *Planner) Close() error {
	return p.repo.Close()
}
