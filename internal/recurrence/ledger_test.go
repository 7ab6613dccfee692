package recurrence_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-planner/internal/recurrence"
)

func TestCompleteCurrentOccurrence_Cadence(t *testing.T) {
	d0 := date(2024, 5, 1)
	task := recurrence.Task{
		IsRecurring:    true,
		Recurrence:     recurrence.Daily{Interval: 1},
		NextOccurrence: ptr(d0),
	}

	// Completion times are irregular and late; the cadence must not drift.
	completions := []time.Time{
		time.Date(2024, 5, 3, 22, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 3, 22, 5, 0, 0, time.UTC),
		time.Date(2024, 5, 9, 7, 0, 0, 0, time.UTC),
	}
	for _, at := range completions {
		task = recurrence.CompleteCurrentOccurrence(task, at)
	}

	entries := task.Occurrences.Entries()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, d0.AddDate(0, 0, i), e.Date)
		assert.Equal(t, completions[i], e.CompletedAt)
	}
	require.NotNil(t, task.NextOccurrence)
	assert.Equal(t, d0.AddDate(0, 0, 3), *task.NextOccurrence)
}

func TestCompleteCurrentOccurrence_NoOp(t *testing.T) {
	tests := []struct {
		name string
		task recurrence.Task
	}{
		{name: "not recurring", task: recurrence.Task{Recurrence: recurrence.Daily{}, NextOccurrence: ptr(wed)}},
		{name: "no rule", task: recurrence.Task{IsRecurring: true, NextOccurrence: ptr(wed)}},
		{name: "exhausted", task: recurrence.Task{IsRecurring: true, Recurrence: recurrence.Daily{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recurrence.CompleteCurrentOccurrence(tt.task, wed)
			assert.Equal(t, tt.task, got)
			assert.Zero(t, got.Occurrences.Len())
		})
	}
}

func TestCompleteCurrentOccurrence_Exhausts(t *testing.T) {
	task := recurrence.Task{
		IsRecurring:    true,
		Recurrence:     recurrence.Daily{EndDate: ptr(date(2024, 5, 2))},
		NextOccurrence: ptr(date(2024, 5, 2)),
	}

	task = recurrence.CompleteCurrentOccurrence(task, wed)
	assert.Nil(t, task.NextOccurrence)
	assert.True(t, task.Exhausted())
	assert.Equal(t, 1, task.Occurrences.Len())

	again := recurrence.CompleteCurrentOccurrence(task, wed)
	assert.Equal(t, 1, again.Occurrences.Len())
}

func TestCompleteCurrentOccurrence_LeavesInputUntouched(t *testing.T) {
	base := recurrence.Task{
		IsRecurring:    true,
		Recurrence:     recurrence.Daily{},
		NextOccurrence: ptr(date(2024, 5, 1)),
		Occurrences:    recurrence.NewLedger(recurrence.Occurrence{Date: date(2024, 4, 30), CompletedAt: date(2024, 4, 30)}),
	}

	a := recurrence.CompleteCurrentOccurrence(base, date(2024, 5, 1))
	b := recurrence.CompleteCurrentOccurrence(base, date(2024, 5, 2))

	assert.Equal(t, 1, base.Occurrences.Len())
	assert.Equal(t, date(2024, 5, 1), *base.NextOccurrence)

	lastA, _ := a.Occurrences.Last()
	lastB, _ := b.Occurrences.Last()
	assert.Equal(t, date(2024, 5, 1), lastA.CompletedAt)
	assert.Equal(t, date(2024, 5, 2), lastB.CompletedAt)
}

func TestInitializeRecurringTask(t *testing.T) {
	t.Run("seeds next occurrence", func(t *testing.T) {
		got := recurrence.InitializeRecurringTask(recurrence.Task{IsRecurring: true, Recurrence: recurrence.Weekly{Days: []time.Weekday{time.Friday}}}, wed)
		require.NotNil(t, got.NextOccurrence)
		assert.Equal(t, date(2024, 5, 3), *got.NextOccurrence)
		assert.False(t, got.Exhausted())
	})

	t.Run("ended rule", func(t *testing.T) {
		got := recurrence.InitializeRecurringTask(recurrence.Task{IsRecurring: true, Recurrence: recurrence.Daily{EndDate: ptr(date(2024, 4, 1))}}, wed)
		assert.Nil(t, got.NextOccurrence)
		assert.True(t, got.Exhausted())
	})

	t.Run("one-off task unchanged", func(t *testing.T) {
		in := recurrence.Task{ReminderBefore: 15}
		assert.Equal(t, in, recurrence.InitializeRecurringTask(in, wed))
	})
}

func TestLedger(t *testing.T) {
	l := recurrence.Ledger{}
	_, ok := l.Last()
	assert.False(t, ok)

	o1 := recurrence.Occurrence{Date: date(2024, 5, 1), CompletedAt: wed}
	o2 := recurrence.Occurrence{Date: date(2024, 5, 2), CompletedAt: wed.Add(time.Hour)}
	l1 := l.Append(o1)
	l2 := l1.Append(o2)

	assert.Zero(t, l.Len())
	assert.Equal(t, 1, l1.Len())
	assert.Equal(t, []recurrence.Occurrence{o1, o2}, l2.Entries())

	entries := l2.Entries()
	entries[0].Date = date(1999, 1, 1)
	assert.Equal(t, o1, l2.Entries()[0])

	var seen []int
	for i, o := range l2.All() {
		seen = append(seen, i)
		assert.Equal(t, l2.Entries()[i], o)
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestLedger_JSON(t *testing.T) {
	empty, err := json.Marshal(recurrence.Ledger{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))

	loc := time.FixedZone("UTC+7", 7*3600)
	l := recurrence.NewLedger(recurrence.Occurrence{
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, loc),
		CompletedAt: time.Date(2024, 5, 1, 21, 4, 5, 123456789, loc),
	})
	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"date":"2024-05-01T00:00:00+07:00","completedAt":"2024-05-01T21:04:05.123456789+07:00"}]`, string(data))

	var back recurrence.Ledger
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, 1, back.Len())
	got, _ := back.Last()
	want, _ := l.Last()
	assert.True(t, want.Date.Equal(got.Date))
	assert.True(t, want.CompletedAt.Equal(got.CompletedAt))
}
