package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("recurring task is seeded from now", func(t *testing.T) {
		_, uc := newUseCase(false)

		out, err := uc.Create(ctx, task.CreateInput{
			Title: "  Stretch  ",
			Tags:  []string{"health", " ", " morning "},
			Rule:  recurrence.Daily{Interval: 1},
		})
		require.NoError(t, err)

		got := out.Task
		assert.Equal(t, "task-1", got.Task.ID)
		assert.Equal(t, "Stretch", got.Task.Title)
		assert.Equal(t, []string{"health", "morning"}, got.Task.Tags)
		assert.True(t, got.Task.IsRecurring)
		require.NotNil(t, got.Task.NextOccurrence)
		assert.Equal(t, date(2024, 5, 2), *got.Task.NextOccurrence)
		assert.Equal(t, 0, got.Task.Occurrences.Len())
		assert.Equal(t, 30, got.Task.ReminderBefore)
		assert.Equal(t, wed, got.Task.CreatedAt)
		assert.Equal(t, "Daily", got.Schedule)
		assert.Equal(t, "Tomorrow", got.NextLabel)
		assert.False(t, got.DueToday)
		assert.False(t, got.Overdue)
	})

	t.Run("one-off task has no schedule", func(t *testing.T) {
		_, uc := newUseCase(false)

		out, err := uc.Create(ctx, task.CreateInput{Title: "Book dentist"})
		require.NoError(t, err)
		assert.False(t, out.Task.Task.IsRecurring)
		assert.Nil(t, out.Task.Task.NextOccurrence)
		assert.Equal(t, "Does not repeat", out.Task.Schedule)
	})

	t.Run("explicit reminder overrides default", func(t *testing.T) {
		_, uc := newUseCase(false)

		out, err := uc.Create(ctx, task.CreateInput{Title: "Walk", Rule: recurrence.Daily{}, ReminderBefore: ptr(0)})
		require.NoError(t, err)
		assert.Equal(t, 0, out.Task.Task.ReminderBefore)
	})

	t.Run("default reminder can change at runtime", func(t *testing.T) {
		_, uc := newUseCase(false)
		uc.SetDefaultReminder(90)

		out, err := uc.Create(ctx, task.CreateInput{Title: "Walk", Rule: recurrence.Daily{}})
		require.NoError(t, err)
		assert.Equal(t, 90, out.Task.Task.ReminderBefore)
	})

	t.Run("rule ending before the first date is exhausted", func(t *testing.T) {
		_, uc := newUseCase(false)

		out, err := uc.Create(ctx, task.CreateInput{
			Title: "Trial",
			Rule:  recurrence.Daily{Interval: 1, EndDate: ptr(date(2024, 5, 1))},
		})
		require.NoError(t, err)
		assert.Nil(t, out.Task.Task.NextOccurrence)
		assert.True(t, out.Task.Task.Exhausted())
		assert.Equal(t, "No upcoming occurrences", out.Task.NextLabel)
	})

	tcs := []struct {
		name  string
		input task.CreateInput
		want  error
	}{
		{"blank title", task.CreateInput{Title: "   "}, task.ErrEmptyTitle},
		{"negative interval", task.CreateInput{Title: "x", Rule: recurrence.Daily{Interval: -1}}, task.ErrInvalidRule},
		{"bad weekday", task.CreateInput{Title: "x", Rule: recurrence.Custom{Days: []time.Weekday{9}}}, task.ErrInvalidRule},
		{"bad month day", task.CreateInput{Title: "x", Rule: recurrence.Monthly{DayOfMonth: 32}}, task.ErrInvalidRule},
		{"negative reminder", task.CreateInput{Title: "x", ReminderBefore: ptr(-5)}, task.ErrInvalidReminder},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, uc := newUseCase(false)
			_, err := uc.Create(ctx, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreate_CalendarSync(t *testing.T) {
	ctx := context.Background()

	t.Run("recurring task gets an event", func(t *testing.T) {
		f, uc := newUseCase(true)

		out, err := uc.Create(ctx, task.CreateInput{Title: "Stretch", Rule: recurrence.Daily{Interval: 2}})
		require.NoError(t, err)
		assert.Equal(t, "evt-1", out.Task.Task.CalendarEventID)

		require.Len(t, f.calendar.upserts, 1)
		req := f.calendar.upserts[0]
		assert.Equal(t, "primary", req.CalendarID)
		assert.Empty(t, req.EventID)
		assert.Equal(t, date(2024, 5, 3), req.Date)
		assert.Equal(t, 30, req.ReminderMinutes)
		require.Len(t, req.Recurrence, 1)
		assert.True(t, strings.HasPrefix(req.Recurrence[0], "RRULE:FREQ=DAILY"))
		assert.Contains(t, req.Recurrence[0], "INTERVAL=2")
	})

	t.Run("one-off task is not synced", func(t *testing.T) {
		f, uc := newUseCase(true)

		_, err := uc.Create(ctx, task.CreateInput{Title: "Call mom"})
		require.NoError(t, err)
		assert.Empty(t, f.calendar.upserts)
		assert.Empty(t, f.calendar.deletes)
	})

	t.Run("sync failure does not fail create", func(t *testing.T) {
		f, uc := newUseCase(true)
		f.calendar.upsertErr = errors.New("calendar down")

		out, err := uc.Create(ctx, task.CreateInput{Title: "Stretch", Rule: recurrence.Daily{}})
		require.NoError(t, err)
		assert.Empty(t, out.Task.Task.CalendarEventID)
		assert.NotNil(t, out.Task.Task.NextOccurrence)
	})
}
