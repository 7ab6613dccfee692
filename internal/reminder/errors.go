package reminder

import "errors"

var (
	ErrNoNotifier      = errors.New("reminder: notifier is required")
	ErrInvalidSchedule = errors.New("reminder: invalid cron schedule")
	ErrNoChat          = errors.New("reminder: no chat to deliver to")
)
