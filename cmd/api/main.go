package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wellness-planner/config"
	_ "wellness-planner/docs" // Swagger docs
	"wellness-planner/internal/app"
	"wellness-planner/internal/httpserver"
	"wellness-planner/internal/middleware"
	tgDelivery "wellness-planner/internal/task/delivery/telegram"
	"wellness-planner/pkg/log"
	"wellness-planner/pkg/telegram"
)

// @title       Wellness planner API
// @description Recurring wellness tasks: schedules, completion ledger, reminders and calendar feed.
// @version     1
// @host        localhost:8080
// @BasePath    /api/v1
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting wellness planner API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Planner.Timezone)

	// 3. Task domain
	planner, err := app.New(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize planner: ", err)
		return
	}
	defer func() {
		if err := planner.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close storage: %v", err)
		}
	}()

	config.Watch(func(next *config.Config) {
		planner.TaskUC.SetDefaultReminder(next.Planner.DefaultReminderMinutes)
		logger.Infof(ctx, "Config reloaded: default reminder %d min", next.Planner.DefaultReminderMinutes)
	})

	// 4. Telegram commands (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot, botErr := telegram.NewBot(telegram.Config{
			Token:  cfg.Telegram.BotToken,
			APIURL: cfg.Telegram.APIURL,
		})
		if botErr != nil {
			logger.Warnf(ctx, "Telegram not available (optional): %v", botErr)
		} else {
			telegramHandler = tgDelivery.New(logger, planner.TaskUC, bot)
			if cfg.Telegram.WebhookURL != "" {
				if whErr := bot.SetWebhook(cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
					logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
				} else {
					logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
				}
			}
		}
	} else {
		logger.Warn(ctx, "Telegram commands disabled: telegram.bot_token is empty")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TaskUseCase:     planner.TaskUC,
		Location:        planner.Location,
		TelegramHandler: telegramHandler,
		TelegramWebhook: middleware.WebhookConfig{
			Secret:        cfg.Telegram.WebhookSecret,
			AllowedIPs:    cfg.Telegram.AllowedIPs,
			RatePerMinute: cfg.Telegram.WebhookRatePerMinute,
		},
		Ping:            planner.Ping,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
