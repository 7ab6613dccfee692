package usecase

import (
	"context"

	"wellness-planner/internal/task"
	repo "wellness-planner/internal/task/repository"
)

// Complete records the current occurrence as done and advances the schedule.
// One-off and exhausted tasks are returned unchanged with Completed nil.
func (uc *implUseCase) Complete(ctx context.Context, id string) (task.CompleteOutput, error) {
	t, err := uc.getTask(ctx, "Complete", id)
	if err != nil {
		return task.CompleteOutput{}, err
	}
	now := uc.engine.Now()

	before := t.Occurrences.Len()
	t.Task = uc.engine.CompleteCurrentOccurrence(t.Task)
	if t.Occurrences.Len() == before {
		return task.CompleteOutput{Task: uc.summarize(t, now)}, nil
	}
	completed, _ := t.Occurrences.Last()

	uc.syncCalendar(ctx, &t)
	t.UpdatedAt = now

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		return task.CompleteOutput{}, err
	}
	if updated.ID == "" {
		return task.CompleteOutput{}, task.ErrTaskNotFound
	}

	if updated.Exhausted() {
		uc.l.Infof(ctx, "uc.Complete: task %s has no further occurrences", id)
	}
	return task.CompleteOutput{Task: uc.summarize(updated, now), Completed: &completed}, nil
}
