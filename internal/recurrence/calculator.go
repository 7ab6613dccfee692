package recurrence

import (
	"time"

	"github.com/samber/mo"

	"wellness-planner/pkg/datemath"
)

// NextOccurrence returns the first due date strictly after ref's day, or
// mo.None when the rule is nil or exhausted by its end date. ref is reduced to
// the start of its local day before any arithmetic.
func NextOccurrence(rule Rule, ref time.Time) mo.Option[time.Time] {
	if rule == nil {
		return mo.None[time.Time]()
	}

	day := datemath.StartOfDay(ref)
	if endedBy(rule, day) {
		return mo.None[time.Time]()
	}

	next := rule.advance(day)
	if endedBy(rule, next) {
		return mo.None[time.Time]()
	}
	return mo.Some(next)
}

// endedBy reports whether day lies past the rule's inclusive end day.
func endedBy(rule Rule, day time.Time) bool {
	end := rule.Until()
	if end == nil {
		return false
	}
	return day.After(datemath.StartOfDay(end.In(day.Location())))
}

func (r Daily) advance(ref time.Time) time.Time {
	return datemath.AddDays(ref, r.interval())
}

func (r Weekly) advance(ref time.Time) time.Time {
	if len(r.Days) == 0 {
		return datemath.AddDays(ref, 7*r.interval())
	}
	return nextWeekday(ref, r.Days, r.interval())
}

func (r Custom) advance(ref time.Time) time.Time {
	if len(r.Days) == 0 {
		return datemath.AddDays(ref, 7)
	}
	return nextWeekday(ref, r.Days, 1)
}

func (r Monthly) advance(ref time.Time) time.Time {
	// Day 1 keeps AddDate from normalizing e.g. Jan 31 + 1 month into March.
	first := time.Date(ref.Year(), ref.Month()+time.Month(r.interval()), 1, 0, 0, 0, 0, ref.Location())
	day := min(r.dayOfMonth(), datemath.DaysIn(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, ref.Location())
}

// nextWeekday picks the next listed weekday later in ref's week, or the
// earliest listed weekday of the week that lies weeks ahead.
func nextWeekday(ref time.Time, days []time.Weekday, weeks int) time.Time {
	days = sortedDays(days)
	cur := ref.Weekday()
	for _, d := range days {
		if d > cur {
			return datemath.AddDays(ref, int(d-cur))
		}
	}
	return datemath.AddDays(ref, 7-int(cur)+int(days[0])+(weeks-1)*7)
}
