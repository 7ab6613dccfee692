package recurrence

import (
	"slices"
	"time"
)

// Kind names a rule variant.
type Kind string

const (
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindCustom  Kind = "custom"
)

// Rule is a declarative repetition schedule. The set of implementations is
// closed: Daily, Weekly, Monthly and Custom.
type Rule interface {
	Kind() Kind
	// Until returns the inclusive end date, or nil when the rule never ends.
	Until() *time.Time
	// advance returns the candidate after the normalized reference day.
	advance(ref time.Time) time.Time
}

// Daily repeats every Interval days.
type Daily struct {
	Interval int
	EndDate  *time.Time
}

// Weekly repeats on Days every Interval weeks. Without Days it repeats on the
// reference weekday.
type Weekly struct {
	Interval int
	Days     []time.Weekday
	EndDate  *time.Time
}

// Monthly repeats on DayOfMonth every Interval months, clamped to the last day
// of short months.
type Monthly struct {
	Interval   int
	DayOfMonth int
	EndDate    *time.Time
}

// Custom repeats on an arbitrary weekday set, always moving to the following
// week once the set is exhausted.
type Custom struct {
	Days    []time.Weekday
	EndDate *time.Time
}

func (Daily) Kind() Kind   { return KindDaily }
func (Weekly) Kind() Kind  { return KindWeekly }
func (Monthly) Kind() Kind { return KindMonthly }
func (Custom) Kind() Kind  { return KindCustom }

func (r Daily) Until() *time.Time   { return r.EndDate }
func (r Weekly) Until() *time.Time  { return r.EndDate }
func (r Monthly) Until() *time.Time { return r.EndDate }
func (r Custom) Until() *time.Time  { return r.EndDate }

// Zero means absent and evaluates as 1. Negative values pass through.
func intervalOrDefault(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func (r Daily) interval() int   { return intervalOrDefault(r.Interval) }
func (r Weekly) interval() int  { return intervalOrDefault(r.Interval) }
func (r Monthly) interval() int { return intervalOrDefault(r.Interval) }

func (r Monthly) dayOfMonth() int {
	if r.DayOfMonth == 0 {
		return 1
	}
	return r.DayOfMonth
}

// sortedDays returns the distinct weekdays in ascending order (Sunday first).
func sortedDays(days []time.Weekday) []time.Weekday {
	out := slices.Clone(days)
	slices.Sort(out)
	return slices.Compact(out)
}
