package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"wellness-planner/internal/task"
	pkgLog "wellness-planner/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers a reply to a chat. *telegram.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	bot Sender
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc task.UseCase, bot Sender) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
