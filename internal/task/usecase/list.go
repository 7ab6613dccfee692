package usecase

import (
	"context"
	"time"

	"wellness-planner/internal/model"
	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task"
	repo "wellness-planner/internal/task/repository"
	"wellness-planner/pkg/datemath"
)

// List returns a page of tasks. Status filters depend on the current day, so
// they are applied here over the recurring tasks rather than in the store.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if !input.Status.Valid() {
		return task.ListOutput{}, task.ErrInvalidStatus
	}
	now := uc.engine.Now()

	if input.Status == "" || input.Status == task.StatusAll {
		tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
			ChatID: input.ChatID,
			Limit:  input.Limit,
			Offset: input.Offset,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
			return task.ListOutput{}, err
		}
		return task.ListOutput{
			Tasks:  uc.summarizeAll(tasks, now),
			Total:  total,
			Limit:  input.Limit,
			Offset: input.Offset,
		}, nil
	}

	all, err := uc.recurringTasks(ctx, "List", input.ChatID)
	if err != nil {
		return task.ListOutput{}, err
	}

	var matched []model.Task
	for _, t := range all {
		if matchStatus(t, input.Status, now) {
			matched = append(matched, t)
		}
	}

	total := len(matched)
	start := min(max(input.Offset, 0), total)
	end := total
	if input.Limit > 0 {
		end = min(start+input.Limit, total)
	}
	return task.ListOutput{
		Tasks:  uc.summarizeAll(matched[start:end], now),
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

func matchStatus(t model.Task, status task.Status, now time.Time) bool {
	switch status {
	case task.StatusDueToday:
		return recurrence.IsDueToday(t.NextOccurrence, now)
	case task.StatusOverdue:
		return recurrence.IsOverdue(t.NextOccurrence, now)
	case task.StatusUpcoming:
		return t.NextOccurrence != nil && datemath.DaysBetween(now, *t.NextOccurrence) > 0
	case task.StatusExhausted:
		return t.Exhausted()
	default:
		return true
	}
}
