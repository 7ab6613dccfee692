package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellness-planner/pkg/response"
)

const calendarContentType = "text/calendar; charset=utf-8"

// Create godoc
// @Summary     Create a task
// @Description Creates a one-off task, or a recurring one when a rule is given. The first due date is computed from today.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}
	input, err := req.toInput(h.loc)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a page of tasks, optionally filtered by where the next occurrence stands.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status query string false "all, due_today, overdue, upcoming or exhausted"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task with its schedule and completion history.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. A new rule restarts the schedule from today; clear_rule turns the task into a one-off.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}
	input, err := req.toInput(h.loc)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task and its calendar event.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Complete godoc
// @Summary     Complete the current occurrence
// @Description Records the current due date as done and advances to the next one. Tasks without a current occurrence are returned unchanged with completed null.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Complete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Upcoming godoc
// @Summary     Preview upcoming due dates
// @Description Lists the current due date followed by the dates completion would advance to.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id    path  string true  "Task ID"
// @Param       count query int    false "Number of dates (default: 5, max: 50)"
// @Success     200 {object} upcomingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpcomingReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Upcoming(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpcomingResp(output))
}

// Reminders godoc
// @Summary     Tasks to remind about now
// @Description Returns recurring tasks whose reminder window is open.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} remindersResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/reminders [GET]
func (h *handler) Reminders(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.DueReminders(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.DueReminders: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRemindersResp(output))
}

// Calendar godoc
// @Summary     iCalendar feed
// @Description Active recurring tasks as VTODOs with RRULE, for calendar subscriptions.
// @Tags        Tasks
// @Produce     text/calendar
// @Success     200 {string} string "text/calendar"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/calendar.ics [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.ExportCalendar(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `inline; filename="tasks.ics"`)
	c.Data(http.StatusOK, calendarContentType, data)
}
