package usecase

import (
	"context"
	"strings"

	"wellness-planner/internal/task"
	repo "wellness-planner/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	t, err := uc.getTask(ctx, "Detail", id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: uc.summarize(t, uc.engine.Now())}, nil
}

// Update applies a partial update. A new rule restarts the schedule from now
// while the ledger of past completions is kept.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return task.UpdateOutput{}, task.ErrEmptyTitle
	}
	if input.Rule != nil {
		if err := validateRule(input.Rule); err != nil {
			return task.UpdateOutput{}, err
		}
	}
	if input.ReminderBefore != nil && *input.ReminderBefore < 0 {
		return task.UpdateOutput{}, task.ErrInvalidReminder
	}

	t, err := uc.getTask(ctx, "Update", input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}
	now := uc.engine.Now()

	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		t.Description = strings.TrimSpace(*input.Description)
	}
	if input.Tags != nil {
		t.Tags = cleanTags(input.Tags)
	}
	if input.ChatID != nil {
		t.ChatID = *input.ChatID
	}
	if input.ReminderBefore != nil {
		t.ReminderBefore = *input.ReminderBefore
	}

	scheduleChanged := true
	switch {
	case input.ClearRule:
		t.IsRecurring, t.Recurrence, t.NextOccurrence = false, nil, nil
	case input.Rule != nil:
		t.IsRecurring, t.Recurrence, t.NextOccurrence = true, input.Rule, nil
		t.Task = uc.engine.InitializeRecurringTask(t.Task)
	default:
		scheduleChanged = input.Title != nil || input.Description != nil || input.ReminderBefore != nil
	}
	if scheduleChanged {
		uc.syncCalendar(ctx, &t)
	}
	t.UpdatedAt = now

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: uc.summarize(updated, now)}, nil
}

// Delete removes a Task by ID along with its calendar event.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.getTask(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if uc.calendar != nil && t.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.Delete DeleteEvent %s: %v", id, err)
		}
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
