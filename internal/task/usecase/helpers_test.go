package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task"
	"wellness-planner/internal/task/repository/memory"
	"wellness-planner/internal/task/usecase"
	"wellness-planner/pkg/gcalendar"
	pkgLog "wellness-planner/pkg/log"
)

// wed is a Wednesday morning.
var wed = time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// fakeClock is a settable clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fakeCalendar struct {
	mu        sync.Mutex
	upserts   []gcalendar.AllDayEventRequest
	deletes   []string
	upsertErr error
	seq       int
}

func (f *fakeCalendar) UpsertAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserts = append(f.upserts, req)
	id := req.EventID
	if id == "" {
		f.seq++
		id = fmt.Sprintf("evt-%d", f.seq)
	}
	return &gcalendar.Event{ID: id, Summary: req.Summary, Date: req.Date}, nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, eventID)
	return nil
}

type useCase interface {
	task.UseCase
	SetDefaultReminder(minutes int)
}

type fixture struct {
	clock    *fakeClock
	calendar *fakeCalendar
}

// newUseCase wires the use case over the in-memory store, a fake clock set to
// wed and sequential IDs. withCalendar enables the fake calendar sync.
func newUseCase(withCalendar bool) (*fixture, useCase) {
	f := &fixture{clock: &fakeClock{now: wed}}
	var n int
	cfg := usecase.Config{
		DefaultReminderMinutes: 30,
		NewID: func() string {
			n++
			return fmt.Sprintf("task-%d", n)
		},
	}
	if withCalendar {
		f.calendar = &fakeCalendar{}
		cfg.Calendar = f.calendar
		cfg.CalendarID = "primary"
	}

	l := pkgLog.NewNop()
	engine := recurrence.NewEngine(recurrence.WithClock(f.clock))
	return f, usecase.New(l, memory.New(l), engine, cfg)
}
