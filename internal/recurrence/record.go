package recurrence

import (
	"fmt"
	"time"
)

// RuleRecord is the flat storage and wire form of a Rule. Fields a kind does
// not use are dropped when converting to a Rule.
type RuleRecord struct {
	Kind       Kind       `json:"kind"`
	Interval   int        `json:"interval,omitempty"`
	DaysOfWeek []int      `json:"daysOfWeek,omitempty"`
	DayOfMonth int        `json:"dayOfMonth,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
}

// RecordOf flattens rule. A nil rule yields nil.
func RecordOf(rule Rule) *RuleRecord {
	switch r := rule.(type) {
	case Daily:
		return &RuleRecord{Kind: KindDaily, Interval: r.Interval, EndDate: r.EndDate}
	case Weekly:
		return &RuleRecord{Kind: KindWeekly, Interval: r.Interval, DaysOfWeek: weekdayInts(r.Days), EndDate: r.EndDate}
	case Monthly:
		return &RuleRecord{Kind: KindMonthly, Interval: r.Interval, DayOfMonth: r.DayOfMonth, EndDate: r.EndDate}
	case Custom:
		return &RuleRecord{Kind: KindCustom, DaysOfWeek: weekdayInts(r.Days), EndDate: r.EndDate}
	default:
		return nil
	}
}

// Rule converts the record into its variant. The custom kind ignores Interval.
func (rec RuleRecord) Rule() (Rule, error) {
	switch rec.Kind {
	case KindDaily:
		return Daily{Interval: rec.Interval, EndDate: rec.EndDate}, nil
	case KindWeekly:
		return Weekly{Interval: rec.Interval, Days: weekdays(rec.DaysOfWeek), EndDate: rec.EndDate}, nil
	case KindMonthly:
		return Monthly{Interval: rec.Interval, DayOfMonth: rec.DayOfMonth, EndDate: rec.EndDate}, nil
	case KindCustom:
		return Custom{Days: weekdays(rec.DaysOfWeek), EndDate: rec.EndDate}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, rec.Kind)
	}
}

// Validate rejects rules the engine would evaluate into a non-advancing or
// invalid schedule. The engine itself never calls it; input boundaries do.
func Validate(rule Rule) error {
	var (
		interval int
		days     []time.Weekday
	)
	switch r := rule.(type) {
	case nil:
		return ErrNilRule
	case Daily:
		interval = r.Interval
	case Weekly:
		interval, days = r.Interval, r.Days
	case Monthly:
		interval = r.Interval
		if r.DayOfMonth < 0 || r.DayOfMonth > 31 {
			return fmt.Errorf("%w: %d", ErrInvalidMonthDay, r.DayOfMonth)
		}
	case Custom:
		days = r.Days
	default:
		return ErrUnknownKind
	}

	if interval < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidInterval, interval)
	}
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: %d", ErrInvalidWeekday, d)
		}
	}
	return nil
}

func weekdayInts(days []time.Weekday) []int {
	if len(days) == 0 {
		return nil
	}
	out := make([]int, len(days))
	for i, d := range days {
		out[i] = int(d)
	}
	return out
}

func weekdays(ints []int) []time.Weekday {
	if len(ints) == 0 {
		return nil
	}
	out := make([]time.Weekday, len(ints))
	for i, d := range ints {
		out[i] = time.Weekday(d)
	}
	return out
}
