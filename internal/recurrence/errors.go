package recurrence

import "errors"

var (
	ErrUnknownKind      = errors.New("unknown recurrence kind")
	ErrInvalidInterval  = errors.New("interval must be at least 1")
	ErrInvalidWeekday   = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidMonthDay  = errors.New("day of month must be between 1 and 31")
	ErrNilRule          = errors.New("recurrence rule is required")
	ErrUnsupportedRRule = errors.New("rule cannot be expressed as RRULE")
)
