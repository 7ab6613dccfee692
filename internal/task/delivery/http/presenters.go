package http

import (
	"fmt"
	"time"

	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task"
	"wellness-planner/pkg/response"
)

// --- Request DTOs ---

type ruleReq struct {
	Kind       string `json:"kind"         binding:"required,oneof=daily weekly monthly custom"`
	Interval   int    `json:"interval"     binding:"omitempty,min=1,max=366"`
	DaysOfWeek []int  `json:"days_of_week" binding:"omitempty,max=7,dive,min=0,max=6"`
	DayOfMonth int    `json:"day_of_month" binding:"omitempty,min=1,max=31"`
	EndDate    string `json:"end_date"     binding:"omitempty"` // YYYY-MM-DD, inclusive
}

// toRule converts the request into a rule, reading EndDate as a calendar date
// in loc.
func (r ruleReq) toRule(loc *time.Location) (recurrence.Rule, error) {
	rec := recurrence.RuleRecord{
		Kind:       recurrence.Kind(r.Kind),
		Interval:   r.Interval,
		DaysOfWeek: r.DaysOfWeek,
		DayOfMonth: r.DayOfMonth,
	}
	if r.EndDate != "" {
		end, err := time.ParseInLocation(response.DateFormat, r.EndDate, loc)
		if err != nil {
			return nil, fmt.Errorf("end_date must be %s: %w", response.DateFormat, err)
		}
		rec.EndDate = &end
	}
	return rec.Rule()
}

type createReq struct {
	Title          string   `json:"title"           binding:"required,max=255"`
	Description    string   `json:"description"     binding:"max=2000"`
	Tags           []string `json:"tags"            binding:"max=20"`
	ChatID         int64    `json:"chat_id"`
	Rule           *ruleReq `json:"rule"`
	ReminderBefore *int     `json:"reminder_before"` // minutes
}

func (r createReq) toInput(loc *time.Location) (task.CreateInput, error) {
	in := task.CreateInput{
		Title:          r.Title,
		Description:    r.Description,
		Tags:           r.Tags,
		ChatID:         r.ChatID,
		ReminderBefore: r.ReminderBefore,
	}
	if r.Rule != nil {
		rule, err := r.Rule.toRule(loc)
		if err != nil {
			return task.CreateInput{}, err
		}
		in.Rule = rule
	}
	return in, nil
}

// ---

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		Status: task.Status(r.Status),
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type updateReq struct {
	ID             string   `json:"-"` // populated from URI param
	Title          *string  `json:"title"           binding:"omitempty,max=255"`
	Description    *string  `json:"description"     binding:"omitempty,max=2000"`
	Tags           []string `json:"tags"            binding:"omitempty,max=20"`
	ChatID         *int64   `json:"chat_id"`
	Rule           *ruleReq `json:"rule"`
	ClearRule      bool     `json:"clear_rule"`
	ReminderBefore *int     `json:"reminder_before"`
}

func (r updateReq) toInput(loc *time.Location) (task.UpdateInput, error) {
	in := task.UpdateInput{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Tags:           r.Tags,
		ChatID:         r.ChatID,
		ClearRule:      r.ClearRule,
		ReminderBefore: r.ReminderBefore,
	}
	if r.Rule != nil && !r.ClearRule {
		rule, err := r.Rule.toRule(loc)
		if err != nil {
			return task.UpdateInput{}, err
		}
		in.Rule = rule
	}
	return in, nil
}

// ---

type upcomingReq struct {
	ID    string `uri:"id"    binding:"required"`
	Count int    `form:"count"`
}

func (r upcomingReq) toInput() task.UpcomingInput {
	return task.UpcomingInput{ID: r.ID, Count: r.Count}
}

// --- Response DTOs ---

type ruleResp struct {
	Kind       string         `json:"kind"`
	Interval   int            `json:"interval,omitempty"`
	DaysOfWeek []int          `json:"days_of_week,omitempty"`
	DayOfMonth int            `json:"day_of_month,omitempty"`
	EndDate    *response.Date `json:"end_date,omitempty"`
}

func newRuleResp(rule recurrence.Rule) *ruleResp {
	rec := recurrence.RecordOf(rule)
	if rec == nil {
		return nil
	}
	resp := &ruleResp{
		Kind:       string(rec.Kind),
		Interval:   rec.Interval,
		DaysOfWeek: rec.DaysOfWeek,
		DayOfMonth: rec.DayOfMonth,
	}
	if rec.EndDate != nil {
		d := response.Date(*rec.EndDate)
		resp.EndDate = &d
	}
	return resp
}

type occurrenceResp struct {
	Date        response.Date     `json:"date"`
	CompletedAt response.DateTime `json:"completed_at"`
}

func newOccurrenceResp(o recurrence.Occurrence) occurrenceResp {
	return occurrenceResp{
		Date:        response.Date(o.Date),
		CompletedAt: response.DateTime(o.CompletedAt),
	}
}

type taskResp struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Tags            []string          `json:"tags"`
	ChatID          int64             `json:"chat_id,omitempty"`
	IsRecurring     bool              `json:"is_recurring"`
	Rule            *ruleResp         `json:"rule,omitempty"`
	Schedule        string            `json:"schedule"`
	NextOccurrence  *response.Date    `json:"next_occurrence"`
	NextLabel       string            `json:"next_label"`
	DueToday        bool              `json:"due_today"`
	Overdue         bool              `json:"overdue"`
	Exhausted       bool              `json:"exhausted"`
	ReminderBefore  int               `json:"reminder_before"`
	Occurrences     []occurrenceResp  `json:"occurrences"`
	CalendarEventID string            `json:"calendar_event_id,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

func newTaskResp(s task.Summary) taskResp {
	t := s.Task
	resp := taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Tags:            t.Tags,
		ChatID:          t.ChatID,
		IsRecurring:     t.IsRecurring,
		Rule:            newRuleResp(t.Recurrence),
		Schedule:        s.Schedule,
		NextLabel:       s.NextLabel,
		DueToday:        s.DueToday,
		Overdue:         s.Overdue,
		Exhausted:       t.Exhausted(),
		ReminderBefore:  t.ReminderBefore,
		Occurrences:     make([]occurrenceResp, 0, t.Occurrences.Len()),
		CalendarEventID: t.CalendarEventID,
		CreatedAt:       response.DateTime(t.CreatedAt),
		UpdatedAt:       response.DateTime(t.UpdatedAt),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.NextOccurrence != nil {
		d := response.Date(*t.NextOccurrence)
		resp.NextOccurrence = &d
	}
	for _, o := range t.Occurrences.All() {
		resp.Occurrences = append(resp.Occurrences, newOccurrenceResp(o))
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, s := range out.Tasks {
		tasks[i] = newTaskResp(s)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type completeResp struct {
	Task      taskResp        `json:"task"`
	Completed *occurrenceResp `json:"completed"`
}

func (h *handler) newCompleteResp(out task.CompleteOutput) completeResp {
	resp := completeResp{Task: newTaskResp(out.Task)}
	if out.Completed != nil {
		o := newOccurrenceResp(*out.Completed)
		resp.Completed = &o
	}
	return resp
}

type upcomingResp struct {
	TaskID string          `json:"task_id"`
	Dates  []response.Date `json:"dates"`
}

func (h *handler) newUpcomingResp(out task.UpcomingOutput) upcomingResp {
	dates := make([]response.Date, len(out.Dates))
	for i, d := range out.Dates {
		dates[i] = response.Date(d)
	}
	return upcomingResp{TaskID: out.TaskID, Dates: dates}
}

type remindersResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newRemindersResp(out task.RemindersOutput) remindersResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, s := range out.Tasks {
		tasks[i] = newTaskResp(s)
	}
	return remindersResp{Tasks: tasks}
}
