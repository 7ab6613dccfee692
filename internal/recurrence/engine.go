package recurrence

import (
	"time"

	"github.com/samber/mo"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock, optionally converted into Location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	now := time.Now()
	if c.Location != nil {
		return now.In(c.Location)
	}
	return now
}

// Engine binds the package functions to a Clock so callers that have no
// "now" of their own get the clock's time.
type Engine struct {
	clock Clock
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the default system clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// NewEngine returns an Engine reading the local wall clock unless configured
// otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{clock: SystemClock{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine clock's current time.
func (e *Engine) Now() time.Time { return e.clock.Now() }

func (e *Engine) NextOccurrence(rule Rule) mo.Option[time.Time] {
	return NextOccurrence(rule, e.Now())
}

func (e *Engine) UpcomingOccurrences(rule Rule, count int) []time.Time {
	return UpcomingOccurrences(rule, count, e.Now())
}

func (e *Engine) CompletionCadence(rule Rule, count int) []time.Time {
	return CompletionCadence(rule, count, e.Now())
}

func (e *Engine) IsDueToday(next *time.Time) bool { return IsDueToday(next, e.Now()) }

func (e *Engine) IsOverdue(next *time.Time) bool { return IsOverdue(next, e.Now()) }

func (e *Engine) ShouldShowReminder(t Task) bool { return ShouldShowReminder(t, e.Now()) }

func (e *Engine) DescribeNext(next *time.Time) string { return DescribeNext(next, e.Now()) }

func (e *Engine) InitializeRecurringTask(t Task) Task {
	return InitializeRecurringTask(t, e.Now())
}

// CompleteCurrentOccurrence stamps the completion with the engine clock.
func (e *Engine) CompleteCurrentOccurrence(t Task) Task {
	return CompleteCurrentOccurrence(t, e.Now())
}
