package memory

import (
	"cmp"
	"context"
	"slices"

	"wellness-planner/internal/model"
	repo "wellness-planner/internal/task/repository"
)

// CreateTask stores a copy of opt.Task.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[opt.Task.ID]; ok {
		r.l.Errorf(ctx, "%s: id %s exists", r.dsn("CreateTask"), opt.Task.ID)
		return model.Task{}, repo.ErrDuplicateID
	}
	r.tasks[opt.Task.ID] = clone(opt.Task)
	return clone(opt.Task), nil
}

// GetOneTask returns a zero-value Task when the ID is unknown.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	return clone(t), nil
}

// ListTasks returns a page of tasks, newest first, and the unpaginated total.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	all := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.RecurringOnly && !t.IsRecurring {
			continue
		}
		if opt.ChatID != 0 && t.ChatID != 0 && t.ChatID != opt.ChatID {
			continue
		}
		all = append(all, clone(t))
	}
	r.mu.RUnlock()

	slices.SortFunc(all, func(a, b model.Task) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	total := len(all)
	start := min(max(opt.Offset, 0), total)
	end := total
	if opt.Limit > 0 {
		end = min(start+opt.Limit, total)
	}
	return all[start:end], total, nil
}

// UpdateTask replaces the stored task. Unknown IDs yield a zero-value Task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[opt.Task.ID]; !ok {
		return model.Task{}, nil
	}
	r.tasks[opt.Task.ID] = clone(opt.Task)
	return clone(opt.Task), nil
}

// DeleteTask removes a task. Deleting an unknown ID is not an error.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tasks, id)
	return nil
}

// clone detaches the mutable slices so callers never alias stored state.
// The ledger is an immutable value and needs no copy.
func clone(t model.Task) model.Task {
	t.Tags = slices.Clone(t.Tags)
	if t.NextOccurrence != nil {
		next := *t.NextOccurrence
		t.NextOccurrence = &next
	}
	return t
}
