package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"wellness-planner/internal/task"
	"wellness-planner/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Complete(c *gin.Context)
	Upcoming(c *gin.Context)
	Reminders(c *gin.Context)
	Calendar(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	loc *time.Location
}

// New creates a new HTTP handler for the task domain. Calendar dates in
// requests (rule end dates) are read in loc.
func New(l log.Logger, uc task.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
