package recurrence

import (
	"encoding/json"
	"iter"
	"slices"
	"time"
)

// Occurrence is one satisfied due date.
type Occurrence struct {
	Date        time.Time `json:"date"`
	CompletedAt time.Time `json:"completedAt"`
}

// Ledger is an append-only record of occurrences in completion order. The
// zero value is an empty ledger. A Ledger is a value: Append returns a new
// ledger and never touches the receiver's entries.
type Ledger struct {
	entries []Occurrence
}

// NewLedger builds a ledger from previously stored entries.
func NewLedger(entries ...Occurrence) Ledger {
	return Ledger{entries: slices.Clip(slices.Clone(entries))}
}

// Append returns a ledger with o added at the end.
func (l Ledger) Append(o Occurrence) Ledger {
	// Clip forces a fresh backing array so sibling ledgers never share writes.
	return Ledger{entries: append(slices.Clip(l.entries), o)}
}

// Len returns the number of recorded occurrences.
func (l Ledger) Len() int { return len(l.entries) }

// Entries returns a copy of the recorded occurrences.
func (l Ledger) Entries() []Occurrence { return slices.Clone(l.entries) }

// Last returns the most recent occurrence.
func (l Ledger) Last() (Occurrence, bool) {
	if len(l.entries) == 0 {
		return Occurrence{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// All iterates the occurrences in completion order.
func (l Ledger) All() iter.Seq2[int, Occurrence] {
	return slices.All(l.entries)
}

func (l Ledger) MarshalJSON() ([]byte, error) {
	if l.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.entries)
}

func (l *Ledger) UnmarshalJSON(data []byte) error {
	var entries []Occurrence
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*l = NewLedger(entries...)
	return nil
}

// Task is the recurring part of a task record.
type Task struct {
	IsRecurring    bool
	Recurrence     Rule
	NextOccurrence *time.Time
	Occurrences    Ledger
	ReminderBefore int // minutes of lead time; 0 disables reminders
}

// Exhausted reports whether a recurring task has no further due date.
func (t Task) Exhausted() bool {
	return t.IsRecurring && t.Recurrence != nil && t.NextOccurrence == nil
}

// InitializeRecurringTask seeds NextOccurrence for a freshly created task from
// now. Non-recurring tasks are returned unchanged.
func InitializeRecurringTask(t Task, now time.Time) Task {
	if !t.IsRecurring || t.Recurrence == nil {
		return t
	}
	t.NextOccurrence = optionPtr(NextOccurrence(t.Recurrence, now))
	return t
}

// CompleteCurrentOccurrence records the current due date as satisfied at
// completedAt and advances NextOccurrence along the rule, seeded at the date
// just completed rather than at completedAt. Late completion therefore never
// shifts the cadence. Tasks that are not recurring, have no rule or have no
// current occurrence are returned unchanged.
func CompleteCurrentOccurrence(t Task, completedAt time.Time) Task {
	if !t.IsRecurring || t.Recurrence == nil || t.NextOccurrence == nil {
		return t
	}
	due := *t.NextOccurrence
	t.Occurrences = t.Occurrences.Append(Occurrence{Date: due, CompletedAt: completedAt})
	t.NextOccurrence = optionPtr(NextOccurrence(t.Recurrence, due))
	return t
}
