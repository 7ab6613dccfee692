package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task"
)

func TestUpcoming(t *testing.T) {
	ctx := context.Background()
	_, uc := newUseCase(false)

	daily, err := uc.Create(ctx, task.CreateInput{Title: "Stretch", Rule: recurrence.Daily{Interval: 1}})
	require.NoError(t, err)
	monthly, err := uc.Create(ctx, task.CreateInput{Title: "Rent", Rule: recurrence.Monthly{Interval: 1, DayOfMonth: 31}})
	require.NoError(t, err)
	oneOff, err := uc.Create(ctx, task.CreateInput{Title: "Call mom"})
	require.NoError(t, err)

	t.Run("starts at the current due date", func(t *testing.T) {
		out, err := uc.Upcoming(ctx, task.UpcomingInput{ID: daily.Task.Task.ID, Count: 3})
		require.NoError(t, err)
		assert.Equal(t, daily.Task.Task.ID, out.TaskID)
		assert.Equal(t, []time.Time{date(2024, 5, 2), date(2024, 5, 3), date(2024, 5, 4)}, out.Dates)
	})

	t.Run("month end is clamped", func(t *testing.T) {
		out, err := uc.Upcoming(ctx, task.UpcomingInput{ID: monthly.Task.Task.ID, Count: 3})
		require.NoError(t, err)
		assert.Equal(t, []time.Time{date(2024, 6, 30), date(2024, 7, 31), date(2024, 8, 31)}, out.Dates)
	})

	t.Run("count defaults and caps", func(t *testing.T) {
		out, err := uc.Upcoming(ctx, task.UpcomingInput{ID: daily.Task.Task.ID})
		require.NoError(t, err)
		assert.Len(t, out.Dates, task.DefaultUpcomingCount)

		out, err = uc.Upcoming(ctx, task.UpcomingInput{ID: daily.Task.Task.ID, Count: 1000})
		require.NoError(t, err)
		assert.Len(t, out.Dates, task.MaxUpcomingCount)
	})

	t.Run("one-off task has none", func(t *testing.T) {
		out, err := uc.Upcoming(ctx, task.UpcomingInput{ID: oneOff.Task.Task.ID, Count: 3})
		require.NoError(t, err)
		assert.NotNil(t, out.Dates)
		assert.Empty(t, out.Dates)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := uc.Upcoming(ctx, task.UpcomingInput{ID: "missing"})
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})
}

func TestDueReminders(t *testing.T) {
	ctx := context.Background()
	f, uc := newUseCase(false)

	// All due May 2 at midnight.
	_, err := uc.Create(ctx, task.CreateInput{Title: "Stretch", Rule: recurrence.Daily{}, ReminderBefore: ptr(30)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, task.CreateInput{Title: "Water", Rule: recurrence.Daily{}, ReminderBefore: ptr(120)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, task.CreateInput{Title: "Silent", Rule: recurrence.Daily{}, ReminderBefore: ptr(0)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, task.CreateInput{Title: "Call mom", ReminderBefore: ptr(60 * 24)})
	require.NoError(t, err)

	tcs := []struct {
		name string
		now  time.Time
		want []string
	}{
		{"outside every window", wed, []string{}},
		{"only the longer lead", time.Date(2024, 5, 1, 22, 30, 0, 0, time.UTC), []string{"Water"}},
		{"both windows open", time.Date(2024, 5, 1, 23, 45, 0, 0, time.UTC), []string{"Stretch", "Water"}},
		{"closed at the due instant", date(2024, 5, 2), []string{}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			f.clock.Set(tc.now)
			out, err := uc.DueReminders(ctx)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, titles(out.Tasks))
		})
	}
}
