package usecase

import (
	"context"
	"time"

	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task"
)

// Upcoming previews the current due date followed by the dates completion
// would advance to.
func (uc *implUseCase) Upcoming(ctx context.Context, input task.UpcomingInput) (task.UpcomingOutput, error) {
	t, err := uc.getTask(ctx, "Upcoming", input.ID)
	if err != nil {
		return task.UpcomingOutput{}, err
	}

	out := task.UpcomingOutput{TaskID: t.ID, Dates: []time.Time{}}
	if !t.IsRecurring || t.NextOccurrence == nil {
		return out, nil
	}

	count := clampCount(input.Count)
	out.Dates = append(out.Dates, *t.NextOccurrence)
	out.Dates = append(out.Dates, recurrence.CompletionCadence(t.Recurrence, count-1, *t.NextOccurrence)...)
	return out, nil
}
