package recurrence

import (
	"fmt"
	"strings"
	"time"

	"wellness-planner/pkg/datemath"
)

const (
	labelNoUpcoming = "No upcoming occurrences"
	labelToday      = "Today"
	labelTomorrow   = "Tomorrow"
	labelOverdue    = "Overdue"
	labelCustom     = "Custom schedule"
	labelNoRepeat   = "Does not repeat"

	shortDateLayout = "Jan 2"
	untilLayout     = "Jan 2, 2006"
)

// Describe renders rule for display. It mirrors the calculator: a weekly rule
// listing all seven days reads "Daily".
func Describe(rule Rule) string {
	var s string
	switch r := rule.(type) {
	case nil:
		return labelNoRepeat
	case Daily:
		s = every(r.interval(), "Daily", "days")
	case Weekly:
		s = describeWeekly(r)
	case Monthly:
		s = fmt.Sprintf("%s on the %s", every(r.interval(), "Monthly", "months"), ordinal(r.dayOfMonth()))
	case Custom:
		if days := sortedDays(r.Days); len(days) > 0 {
			s = joinDays(days)
		} else {
			s = labelCustom
		}
	default:
		return labelCustom
	}

	if end := rule.Until(); end != nil {
		s += ", until " + end.Format(untilLayout)
	}
	return s
}

func describeWeekly(r Weekly) string {
	days := sortedDays(r.Days)
	n := r.interval()
	switch {
	case len(days) == 0:
		return every(n, "Weekly", "weeks")
	case len(days) == 7:
		return "Daily"
	case len(days) == 1 && n == 1:
		return "Every " + days[0].String()
	case len(days) == 1:
		return fmt.Sprintf("Every %d weeks on %s", n, days[0])
	default:
		return every(n, "Weekly", "weeks") + " on " + joinDays(days)
	}
}

func every(n int, single, unit string) string {
	if n == 1 {
		return single
	}
	return fmt.Sprintf("Every %d %s", n, unit)
}

func joinDays(days []time.Weekday) string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()[:3]
	}
	return strings.Join(names, ", ")
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// DescribeNext renders a cached next occurrence relative to now.
func DescribeNext(next *time.Time, now time.Time) string {
	if next == nil {
		return labelNoUpcoming
	}
	switch days := datemath.DaysBetween(now, *next); {
	case days == 0:
		return labelToday
	case days == 1:
		return labelTomorrow
	case days < 0:
		return labelOverdue
	case days <= 7:
		return fmt.Sprintf("In %d days", days)
	default:
		return next.In(now.Location()).Format(shortDateLayout)
	}
}
