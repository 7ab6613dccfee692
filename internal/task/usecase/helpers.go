package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wellness-planner/internal/model"
	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task"
	repo "wellness-planner/internal/task/repository"
	"wellness-planner/pkg/gcalendar"
)

// summarize attaches the display values derived at now.
func (uc *implUseCase) summarize(t model.Task, now time.Time) task.Summary {
	return task.Summary{
		Task:      t,
		Schedule:  recurrence.Describe(t.Recurrence),
		NextLabel: recurrence.DescribeNext(t.NextOccurrence, now),
		DueToday:  recurrence.IsDueToday(t.NextOccurrence, now),
		Overdue:   recurrence.IsOverdue(t.NextOccurrence, now),
	}
}

func (uc *implUseCase) summarizeAll(tasks []model.Task, now time.Time) []task.Summary {
	out := make([]task.Summary, len(tasks))
	for i, t := range tasks {
		out[i] = uc.summarize(t, now)
	}
	return out
}

// getTask loads a task or returns ErrTaskNotFound.
func (uc *implUseCase) getTask(ctx context.Context, method, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneTask: %v", method, err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// recurringTasks loads every recurring task visible to chatID (all of them
// when zero), unpaginated.
func (uc *implUseCase) recurringTasks(ctx context.Context, method string, chatID int64) ([]model.Task, error) {
	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{RecurringOnly: true, ChatID: chatID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s ListTasks: %v", method, err)
		return nil, err
	}
	return tasks, nil
}

func validateRule(rule recurrence.Rule) error {
	if err := recurrence.Validate(rule); err != nil {
		return fmt.Errorf("%w: %v", task.ErrInvalidRule, err)
	}
	return nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// syncCalendar mirrors the next occurrence into Google Calendar. Failures are
// logged and leave the task's event ID untouched.
func (uc *implUseCase) syncCalendar(ctx context.Context, t *model.Task) {
	if uc.calendar == nil {
		return
	}

	if !t.IsRecurring || t.NextOccurrence == nil {
		if t.CalendarEventID == "" {
			return
		}
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.syncCalendar DeleteEvent %s: %v", t.ID, err)
			return
		}
		t.CalendarEventID = ""
		return
	}

	req := gcalendar.AllDayEventRequest{
		CalendarID:      uc.calendarID,
		EventID:         t.CalendarEventID,
		Summary:         t.Title,
		Description:     t.Description,
		Date:            *t.NextOccurrence,
		ReminderMinutes: t.ReminderBefore,
	}
	if rule, err := recurrence.FormatRRule(t.Recurrence, *t.NextOccurrence); err == nil {
		req.Recurrence = []string{"RRULE:" + rule}
	} else {
		uc.l.Warnf(ctx, "uc.syncCalendar FormatRRule %s: %v", t.ID, err)
	}

	event, err := uc.calendar.UpsertAllDayEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncCalendar UpsertAllDayEvent %s: %v", t.ID, err)
		return
	}
	t.CalendarEventID = event.ID
}

// clampCount applies the upcoming preview bounds.
func clampCount(n int) int {
	switch {
	case n <= 0:
		return task.DefaultUpcomingCount
	case n > task.MaxUpcomingCount:
		return task.MaxUpcomingCount
	default:
		return n
	}
}
