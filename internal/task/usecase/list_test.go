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

func titles(sums []task.Summary) []string {
	out := make([]string, len(sums))
	for i, s := range sums {
		out[i] = s.Task.Title
	}
	return out
}

func TestList(t *testing.T) {
	ctx := context.Background()
	f, uc := newUseCase(false)

	// Created on Wednesday May 1. Stretch is next due May 2, Review May 8.
	for _, in := range []task.CreateInput{
		{Title: "Stretch", Rule: recurrence.Daily{Interval: 1}},
		{Title: "Review", Rule: recurrence.Weekly{Interval: 1, Days: []time.Weekday{time.Wednesday}}},
		{Title: "Trial", Rule: recurrence.Daily{Interval: 1, EndDate: ptr(date(2024, 5, 1))}},
		{Title: "Call mom"},
	} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	tcs := []struct {
		name   string
		now    time.Time
		status task.Status
		want   []string
	}{
		{"due today", time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), task.StatusDueToday, []string{"Stretch"}},
		{"upcoming", time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), task.StatusUpcoming, []string{"Review"}},
		{"nothing overdue yet", time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), task.StatusOverdue, []string{}},
		{"overdue next day", time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), task.StatusOverdue, []string{"Stretch"}},
		{"exhausted", wed, task.StatusExhausted, []string{"Trial"}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			f.clock.Set(tc.now)
			out, err := uc.List(ctx, task.ListInput{Status: tc.status})
			require.NoError(t, err)
			assert.Equal(t, tc.want, titles(out.Tasks))
			assert.Equal(t, len(tc.want), out.Total)
		})
	}

	t.Run("all pages through every task", func(t *testing.T) {
		f.clock.Set(wed)
		out, err := uc.List(ctx, task.ListInput{Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 4, out.Total)
		assert.Len(t, out.Tasks, 3)

		rest, err := uc.List(ctx, task.ListInput{Status: task.StatusAll, Limit: 3, Offset: 3})
		require.NoError(t, err)
		assert.Len(t, rest.Tasks, 1)
		assert.NotContains(t, titles(out.Tasks), rest.Tasks[0].Task.Title)
	})

	t.Run("filtered pagination", func(t *testing.T) {
		f.clock.Set(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
		out, err := uc.List(ctx, task.ListInput{Status: task.StatusOverdue, Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, out.Total)
		assert.Len(t, out.Tasks, 1)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := uc.List(ctx, task.ListInput{Status: "someday"})
		assert.ErrorIs(t, err, task.ErrInvalidStatus)
	})
}

func TestList_ScopedToChat(t *testing.T) {
	ctx := context.Background()
	f, uc := newUseCase(false)

	for _, in := range []task.CreateInput{
		{Title: "Shared", Rule: recurrence.Daily{Interval: 1}},
		{Title: "Mine", Rule: recurrence.Daily{Interval: 1}, ChatID: 42},
		{Title: "Theirs", Rule: recurrence.Daily{Interval: 1}, ChatID: 99},
	} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}
	f.clock.Set(time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))

	tcs := []struct {
		name   string
		status task.Status
		chatID int64
		want   []string
	}{
		{"due today for chat", task.StatusDueToday, 42, []string{"Shared", "Mine"}},
		{"due today for other chat", task.StatusDueToday, 99, []string{"Shared", "Theirs"}},
		{"due today for every chat", task.StatusDueToday, 0, []string{"Shared", "Mine", "Theirs"}},
		{"all for chat", task.StatusAll, 42, []string{"Mine", "Shared"}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out, err := uc.List(ctx, task.ListInput{Status: tc.status, ChatID: tc.chatID})
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, titles(out.Tasks))
			assert.Equal(t, len(tc.want), out.Total)
		})
	}
}
