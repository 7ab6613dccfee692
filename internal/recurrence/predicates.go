package recurrence

import (
	"time"

	"github.com/samber/mo"

	"wellness-planner/pkg/datemath"
)

// IsDueToday reports whether next falls on now's calendar day.
func IsDueToday(next *time.Time, now time.Time) bool {
	if next == nil {
		return false
	}
	return datemath.DaysBetween(now, *next) == 0
}

// IsOverdue reports whether next's calendar day is strictly before now's.
// It is never true together with IsDueToday.
func IsOverdue(next *time.Time, now time.Time) bool {
	if next == nil {
		return false
	}
	return datemath.DaysBetween(now, *next) < 0
}

// ShouldShowReminder reports whether now lies in [next-lead, next), where lead
// is ReminderBefore minutes. Unlike the day predicates it compares instants.
func ShouldShowReminder(t Task, now time.Time) bool {
	if !t.IsRecurring || t.NextOccurrence == nil || t.ReminderBefore <= 0 {
		return false
	}
	at := *t.NextOccurrence
	from := at.Add(-time.Duration(t.ReminderBefore) * time.Minute)
	return !now.Before(from) && now.Before(at)
}

func optionPtr(o mo.Option[time.Time]) *time.Time {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return &v
}
