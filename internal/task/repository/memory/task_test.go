package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-planner/internal/model"
	"wellness-planner/internal/recurrence"
	repo "wellness-planner/internal/task/repository"
	"wellness-planner/internal/task/repository/memory"
	"wellness-planner/pkg/log"
)

func newTask(id string, created time.Time, recurring bool) model.Task {
	t := model.Task{ID: id, Title: "task " + id, Tags: []string{"health"}, CreatedAt: created, UpdatedAt: created}
	if recurring {
		next := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
		t.IsRecurring = true
		t.Recurrence = recurrence.Daily{}
		t.NextOccurrence = &next
	}
	return t
}

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := memory.New(log.NewNop())
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{Task: newTask("a", base, true)})
	require.NoError(t, err)
	assert.Equal(t, "a", created.ID)

	_, err = r.CreateTask(ctx, repo.CreateTaskOptions{Task: newTask("a", base, true)})
	assert.ErrorIs(t, err, repo.ErrDuplicateID)

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: "a"})
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Returned values never alias the store.
	got.Tags[0] = "changed"
	*got.NextOccurrence = base
	again, _ := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: "a"})
	assert.Equal(t, "health", again.Tags[0])
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), *again.NextOccurrence)

	again.Title = "renamed"
	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{Task: again})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)

	missing, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{Task: model.Task{ID: "zzz"}})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	require.NoError(t, r.DeleteTask(ctx, "a"))
	gone, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: "a"})
	require.NoError(t, err)
	assert.Empty(t, gone.ID)
}

func TestRepository_ListTasks(t *testing.T) {
	ctx := context.Background()
	r := memory.New(log.NewNop())
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	chats := map[string]int64{"b": 42, "c": 99, "d": 42}
	for i, id := range []string{"a", "b", "c", "d"} {
		task := newTask(id, base.Add(time.Duration(i)*time.Minute), id != "c")
		task.ChatID = chats[id]
		_, err := r.CreateTask(ctx, repo.CreateTaskOptions{Task: task})
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		opt     repo.ListTasksOptions
		wantIDs []string
		total   int
	}{
		{name: "all newest first", opt: repo.ListTasksOptions{}, wantIDs: []string{"d", "c", "b", "a"}, total: 4},
		{name: "page", opt: repo.ListTasksOptions{Limit: 2, Offset: 1}, wantIDs: []string{"c", "b"}, total: 4},
		{name: "recurring only", opt: repo.ListTasksOptions{RecurringOnly: true}, wantIDs: []string{"d", "b", "a"}, total: 3},
		{name: "offset past end", opt: repo.ListTasksOptions{Offset: 10}, wantIDs: []string{}, total: 4},
		{name: "chat keeps unassigned", opt: repo.ListTasksOptions{ChatID: 42}, wantIDs: []string{"d", "b", "a"}, total: 3},
		{name: "other chat", opt: repo.ListTasksOptions{ChatID: 99}, wantIDs: []string{"c", "a"}, total: 2},
		{name: "chat and recurring", opt: repo.ListTasksOptions{ChatID: 99, RecurringOnly: true}, wantIDs: []string{"a"}, total: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, total, err := r.ListTasks(ctx, tt.opt)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
			ids := make([]string, len(tasks))
			for i, task := range tasks {
				ids[i] = task.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
