package usecase

import (
	"context"
	"strings"

	"wellness-planner/internal/model"
	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task"
	repo "wellness-planner/internal/task/repository"
)

// Create validates the input, seeds the first occurrence of a recurring task
// and persists it.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}
	if input.Rule != nil {
		if err := validateRule(input.Rule); err != nil {
			return task.CreateOutput{}, err
		}
	}

	reminder := int(uc.defaultReminder.Load())
	if input.ReminderBefore != nil {
		if *input.ReminderBefore < 0 {
			return task.CreateOutput{}, task.ErrInvalidReminder
		}
		reminder = *input.ReminderBefore
	}

	now := uc.engine.Now()
	t := model.Task{
		ID:          uc.newID(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Tags:        cleanTags(input.Tags),
		ChatID:      input.ChatID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.Task = uc.engine.InitializeRecurringTask(recurrence.Task{
		IsRecurring:    input.Rule != nil,
		Recurrence:     input.Rule,
		ReminderBefore: reminder,
	})
	uc.syncCalendar(ctx, &t)

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: task %s (%s)", created.ID, recurrence.Describe(created.Recurrence))
	return task.CreateOutput{Task: uc.summarize(created, now)}, nil
}
