package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"wellness-planner/internal/middleware"
	"wellness-planner/internal/task"
	tgDelivery "wellness-planner/internal/task/delivery/telegram"
	"wellness-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Task domain
	taskUC   task.UseCase
	location *time.Location

	// Telegram bot commands
	telegramHandler tgDelivery.Handler
	telegramWebhook middleware.WebhookConfig

	// readiness check of the storage backend
	ping func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Task domain
	TaskUseCase task.UseCase
	Location    *time.Location

	// Telegram bot commands (optional)
	TelegramHandler tgDelivery.Handler
	TelegramWebhook middleware.WebhookConfig

	// Ping reports storage readiness (optional).
	Ping func(ctx context.Context) error
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		taskUC:          cfg.TaskUseCase,
		location:        cfg.Location,
		telegramHandler: cfg.TelegramHandler,
		telegramWebhook: cfg.TelegramWebhook,
		ping:            cfg.Ping,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}
	if srv.location == nil {
		srv.location = time.UTC
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}
