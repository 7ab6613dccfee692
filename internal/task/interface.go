package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error

	// Recurrence
	Complete(ctx context.Context, id string) (CompleteOutput, error)
	Upcoming(ctx context.Context, input UpcomingInput) (UpcomingOutput, error)
	DueReminders(ctx context.Context) (RemindersOutput, error)

	// ExportCalendar renders every active recurring task as an iCalendar feed.
	ExportCalendar(ctx context.Context) ([]byte, error)
}
