package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"wellness-planner/pkg/datemath"
)

const untilDateLayout = "20060102"

var rruleWeekdays = [...]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// ToRRule expresses rule as an RFC 5545 recurrence anchored at dtstart, which
// should itself be a due date of the rule (normally the task's next
// occurrence). Weeks start on Sunday to match the calculator's wraparound.
func ToRRule(rule Rule, dtstart time.Time) (*rrule.RRule, error) {
	opt := rrule.ROption{
		Dtstart: dtstart,
		Wkst:    rrule.SU,
	}

	switch r := rule.(type) {
	case nil:
		return nil, ErrNilRule
	case Daily:
		opt.Freq, opt.Interval = rrule.DAILY, r.interval()
	case Weekly:
		opt.Freq, opt.Interval = rrule.WEEKLY, r.interval()
		opt.Byweekday = toRRuleWeekdays(r.Days)
	case Monthly:
		opt.Freq, opt.Interval = rrule.MONTHLY, r.interval()
		opt.Bymonthday, opt.Bysetpos = monthDaySet(r.dayOfMonth())
	case Custom:
		opt.Freq, opt.Interval = rrule.WEEKLY, 1
		opt.Byweekday = toRRuleWeekdays(r.Days)
	default:
		return nil, ErrUnknownKind
	}

	if opt.Interval < 1 {
		return nil, fmt.Errorf("%w: interval %d", ErrUnsupportedRRule, opt.Interval)
	}
	if end := rule.Until(); end != nil {
		opt.Until = datemath.StartOfDay(end.In(dtstart.Location()))
	}

	rr, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedRRule, err)
	}
	return rr, nil
}

// FormatRRule renders the RRULE value (without the "RRULE:" prefix) for an
// all-day anchor. UNTIL is written as a DATE holding the inclusive end day in
// dtstart's location, matching a DTSTART;VALUE=DATE.
func FormatRRule(rule Rule, dtstart time.Time) (string, error) {
	rr, err := ToRRule(rule, dtstart)
	if err != nil {
		return "", err
	}
	opt := rr.OrigOptions
	opt.Until = time.Time{}

	s := opt.RRuleString()
	if end := rule.Until(); end != nil {
		s += ";UNTIL=" + end.In(dtstart.Location()).Format(untilDateLayout)
	}
	return s, nil
}

// monthDaySet clamps like the calculator: the last existing day among
// 28..d is min(d, days in month).
func monthDaySet(d int) (bymonthday, bysetpos []int) {
	if d <= 28 {
		return []int{d}, nil
	}
	for day := 28; day <= min(d, 31); day++ {
		bymonthday = append(bymonthday, day)
	}
	return bymonthday, []int{-1}
}

func toRRuleWeekdays(days []time.Weekday) []rrule.Weekday {
	days = sortedDays(days)
	if len(days) == 0 {
		return nil
	}
	out := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		if d >= time.Sunday && d <= time.Saturday {
			out = append(out, rruleWeekdays[d])
		}
	}
	return out
}
