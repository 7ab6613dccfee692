package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"wellness-planner/internal/model"
	"wellness-planner/internal/recurrence"
)

// Fixed width and always UTC so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const taskColumns = `id, title, description, tags, chat_id, calendar_event_id, is_recurring,
	rule, next_occurrence, occurrences, reminder_before, created_at, updated_at`

type taskRow struct {
	ID              string
	Title           string
	Description     string
	Tags            string
	ChatID          int64
	CalendarEventID string
	IsRecurring     bool
	Rule            sql.NullString
	NextOccurrence  sql.NullString
	Occurrences     string
	ReminderBefore  int
	CreatedAt       string
	UpdatedAt       string
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (taskRow, error) {
	var row taskRow
	err := s.Scan(
		&row.ID, &row.Title, &row.Description, &row.Tags, &row.ChatID, &row.CalendarEventID, &row.IsRecurring,
		&row.Rule, &row.NextOccurrence, &row.Occurrences, &row.ReminderBefore, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

func (row taskRow) args() []any {
	return []any{
		row.ID, row.Title, row.Description, row.Tags, row.ChatID, row.CalendarEventID, row.IsRecurring,
		row.Rule, row.NextOccurrence, row.Occurrences, row.ReminderBefore, row.CreatedAt, row.UpdatedAt,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func toRow(t model.Task) (taskRow, error) {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return taskRow{}, err
	}
	ledgerJSON, err := json.Marshal(t.Occurrences)
	if err != nil {
		return taskRow{}, err
	}

	row := taskRow{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Tags:            string(tagsJSON),
		ChatID:          t.ChatID,
		CalendarEventID: t.CalendarEventID,
		IsRecurring:     t.IsRecurring,
		Occurrences:     string(ledgerJSON),
		ReminderBefore:  t.ReminderBefore,
		CreatedAt:       formatTime(t.CreatedAt),
		UpdatedAt:       formatTime(t.UpdatedAt),
	}
	if rec := recurrence.RecordOf(t.Recurrence); rec != nil {
		ruleJSON, err := json.Marshal(rec)
		if err != nil {
			return taskRow{}, err
		}
		row.Rule = sql.NullString{String: string(ruleJSON), Valid: true}
	}
	if t.NextOccurrence != nil {
		row.NextOccurrence = sql.NullString{String: formatTime(*t.NextOccurrence), Valid: true}
	}
	return row, nil
}

func (row taskRow) toTask(loc *time.Location) (model.Task, error) {
	t := model.Task{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		ChatID:          row.ChatID,
		CalendarEventID: row.CalendarEventID,
	}
	t.IsRecurring = row.IsRecurring
	t.ReminderBefore = row.ReminderBefore

	if err := json.Unmarshal([]byte(row.Tags), &t.Tags); err != nil {
		return model.Task{}, fmt.Errorf("tags: %w", err)
	}

	var err error
	if t.CreatedAt, err = parseTime(row.CreatedAt, loc); err != nil {
		return model.Task{}, fmt.Errorf("created_at: %w", err)
	}
	if t.UpdatedAt, err = parseTime(row.UpdatedAt, loc); err != nil {
		return model.Task{}, fmt.Errorf("updated_at: %w", err)
	}

	if row.Rule.Valid {
		var rec recurrence.RuleRecord
		if err := json.Unmarshal([]byte(row.Rule.String), &rec); err != nil {
			return model.Task{}, fmt.Errorf("rule: %w", err)
		}
		if t.Recurrence, err = rec.Rule(); err != nil {
			return model.Task{}, fmt.Errorf("rule: %w", err)
		}
	}
	if row.NextOccurrence.Valid {
		next, err := parseTime(row.NextOccurrence.String, loc)
		if err != nil {
			return model.Task{}, fmt.Errorf("next_occurrence: %w", err)
		}
		t.NextOccurrence = &next
	}

	var entries []recurrence.Occurrence
	if err := json.Unmarshal([]byte(row.Occurrences), &entries); err != nil {
		return model.Task{}, fmt.Errorf("occurrences: %w", err)
	}
	for i := range entries {
		entries[i].Date = entries[i].Date.In(loc)
		entries[i].CompletedAt = entries[i].CompletedAt.In(loc)
	}
	t.Occurrences = recurrence.NewLedger(entries...)
	return t, nil
}

func parseTime(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}
