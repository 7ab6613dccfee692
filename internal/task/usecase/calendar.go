package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/emersion/go-ical"

	"wellness-planner/internal/model"
	"wellness-planner/internal/recurrence"
)

const (
	productID = "-//wellness-planner//Recurring Tasks//EN"
	uidDomain = "wellness-planner"

	emptyCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + productID + "\r\nEND:VCALENDAR\r\n"
)

// CATEGORIES is a comma separated list, so each item is escaped on its own.
var textEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

// ExportCalendar renders active recurring tasks as VTODOs starting at their
// next occurrence, each carrying the rule as RRULE.
func (uc *implUseCase) ExportCalendar(ctx context.Context) ([]byte, error) {
	tasks, err := uc.recurringTasks(ctx, "ExportCalendar", 0)
	if err != nil {
		return nil, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropVersion, "2.0")

	for _, t := range tasks {
		if t.NextOccurrence == nil {
			continue
		}
		cal.Children = append(cal.Children, uc.todoOf(ctx, t))
	}
	// The encoder rejects a VCALENDAR without components.
	if len(cal.Children) == 0 {
		return []byte(emptyCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		uc.l.Errorf(ctx, "uc.ExportCalendar Encode: %v", err)
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func (uc *implUseCase) todoOf(ctx context.Context, t model.Task) *ical.Component {
	todo := ical.NewComponent(ical.CompToDo)
	todo.Props.SetText(ical.PropUID, t.ID+"@"+uidDomain)
	todo.Props.SetDateTime(ical.PropDateTimeStamp, t.UpdatedAt.UTC())
	todo.Props.SetText(ical.PropSummary, t.Title)
	if t.Description != "" {
		todo.Props.SetText(ical.PropDescription, t.Description)
	}
	if len(t.Tags) > 0 {
		categories := ical.NewProp(ical.PropCategories)
		escaped := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			escaped[i] = textEscaper.Replace(tag)
		}
		categories.Value = strings.Join(escaped, ",")
		todo.Props.Set(categories)
	}
	todo.Props.SetDate(ical.PropDateTimeStart, *t.NextOccurrence)
	todo.Props.SetDate(ical.PropDue, *t.NextOccurrence)

	if rule, err := recurrence.FormatRRule(t.Recurrence, *t.NextOccurrence); err == nil {
		prop := ical.NewProp(ical.PropRecurrenceRule)
		prop.Value = rule
		todo.Props.Set(prop)
	} else {
		uc.l.Warnf(ctx, "uc.ExportCalendar FormatRRule %s: %v", t.ID, err)
	}

	if t.ReminderBefore > 0 {
		alarm := ical.NewComponent(ical.CompAlarm)
		alarm.Props.SetText(ical.PropAction, "DISPLAY")
		alarm.Props.SetText(ical.PropDescription, t.Title)
		trigger := ical.NewProp(ical.PropTrigger)
		trigger.Value = fmt.Sprintf("-PT%dM", t.ReminderBefore)
		alarm.Props.Set(trigger)
		todo.Children = append(todo.Children, alarm)
	}
	return todo
}
