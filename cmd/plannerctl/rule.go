package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wellness-planner/internal/recurrence"
	"wellness-planner/pkg/datemath"
)

// ruleFlags are the flags shared by every command that takes a rule.
type ruleFlags struct {
	kind       string
	interval   int
	days       []string
	dayOfMonth int
	until      string
	timezone   string
}

func (f *ruleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "daily", "Rule kind (daily, weekly, monthly, custom)")
	cmd.Flags().IntVarP(&f.interval, "interval", "i", 1, "Repeat every N days, weeks or months")
	cmd.Flags().StringSliceVarP(&f.days, "days", "d", nil, "Weekdays for weekly and custom rules, e.g. mon,thu")
	cmd.Flags().IntVar(&f.dayOfMonth, "day-of-month", 0, "Day of month for monthly rules (1-31)")
	cmd.Flags().StringVar(&f.until, "until", "", "Last allowed date: YYYY-MM-DD or a phrase like \"in 3 weeks\"")
	cmd.Flags().StringVar(&f.timezone, "tz", "UTC", "IANA timezone used to resolve dates")
}

func (f *ruleFlags) parser() (*datemath.Parser, error) {
	return datemath.NewParser(f.timezone)
}

// rule builds and validates the rule described by the flags. Relative
// phrases in --until resolve against now.
func (f *ruleFlags) rule(p *datemath.Parser, now time.Time) (recurrence.Rule, error) {
	rec := recurrence.RuleRecord{
		Kind:       recurrence.Kind(strings.ToLower(f.kind)),
		Interval:   f.interval,
		DayOfMonth: f.dayOfMonth,
	}
	for _, d := range f.days {
		wd, err := datemath.ParseWeekday(d)
		if err != nil {
			return nil, err
		}
		rec.DaysOfWeek = append(rec.DaysOfWeek, int(wd))
	}
	if f.until != "" {
		end, err := p.Parse(f.until, now)
		if err != nil {
			return nil, fmt.Errorf("--until: %w", err)
		}
		rec.EndDate = &end
	}

	rule, err := rec.Rule()
	if err != nil {
		return nil, err
	}
	if err := recurrence.Validate(rule); err != nil {
		return nil, err
	}
	return rule, nil
}
