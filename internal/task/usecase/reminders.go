package usecase

import (
	"context"

	"wellness-planner/internal/model"
	"wellness-planner/internal/task"
)

// DueReminders returns the recurring tasks whose reminder window is open now.
func (uc *implUseCase) DueReminders(ctx context.Context) (task.RemindersOutput, error) {
	all, err := uc.recurringTasks(ctx, "DueReminders", 0)
	if err != nil {
		return task.RemindersOutput{}, err
	}
	now := uc.engine.Now()

	var due []model.Task
	for _, t := range all {
		if uc.engine.ShouldShowReminder(t.Task) {
			due = append(due, t)
		}
	}
	return task.RemindersOutput{Tasks: uc.summarizeAll(due, now)}, nil
}
