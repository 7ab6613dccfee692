package recurrence

import (
	"iter"
	"time"

	"wellness-planner/pkg/datemath"
)

// Occurrences lazily yields the due dates of rule after start, advancing one
// day past each found date before asking the calculator again. It ends when
// the rule is exhausted; ranging over it again restarts from start.
func Occurrences(rule Rule, start time.Time) iter.Seq[time.Time] {
	return walk(rule, start, func(next time.Time) time.Time { return datemath.AddDays(next, 1) })
}

// UpcomingOccurrences collects at most count dates from Occurrences.
func UpcomingOccurrences(rule Rule, count int, start time.Time) []time.Time {
	return collect(Occurrences(rule, start), count)
}

// Cadence lazily yields the dates successive completions produce: each step
// is seeded at the previously yielded date, as CompleteCurrentOccurrence
// does. It also matches the rule's RRULE expansion from the same anchor.
func Cadence(rule Rule, start time.Time) iter.Seq[time.Time] {
	return walk(rule, start, func(next time.Time) time.Time { return next })
}

// CompletionCadence collects at most count dates from Cadence.
func CompletionCadence(rule Rule, count int, start time.Time) []time.Time {
	return collect(Cadence(rule, start), count)
}

func walk(rule Rule, start time.Time, reseed func(time.Time) time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		ref := start
		for {
			next, ok := NextOccurrence(rule, ref).Get()
			if !ok || !yield(next) {
				return
			}
			ref = reseed(next)
		}
	}
}

func collect(seq iter.Seq[time.Time], count int) []time.Time {
	if count <= 0 {
		return nil
	}
	out := make([]time.Time, 0, count)
	for d := range seq {
		out = append(out, d)
		if len(out) == count {
			break
		}
	}
	return out
}
