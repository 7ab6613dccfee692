package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellness-planner/config"
	"wellness-planner/internal/app"
	"wellness-planner/internal/reminder"
	"wellness-planner/pkg/log"
	"wellness-planner/pkg/telegram"
)

// main runs the reminder worker. It shares storage with the API, so with the
// memory driver it only sees tasks created in its own process; use sqlite.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting reminder worker...")
	if cfg.Storage.Driver == config.StorageMemory {
		logger.Warn(ctx, "storage.driver is memory: the worker will not see tasks created by the API")
	}

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

	// Notifier: Telegram when configured, log otherwise
	var notifier reminder.Notifier = reminder.NewLogNotifier(logger)
	if cfg.Telegram.BotToken != "" {
		bot, botErr := telegram.NewBot(telegram.Config{
			Token:  cfg.Telegram.BotToken,
			APIURL: cfg.Telegram.APIURL,
		})
		if botErr != nil {
			logger.Warnf(ctx, "Telegram not available, reminders go to the log: %v", botErr)
		} else {
			notifier = reminder.NewTelegramNotifier(bot)
			logger.Info(ctx, "Reminders delivered via Telegram")
		}
	}

	worker, err := reminder.New(logger, planner.TaskUC, notifier, reminder.Config{
		Schedule:      cfg.Reminder.Schedule,
		Location:      planner.Location,
		DedupTTL:      cfg.Reminder.DedupTTL,
		DedupSize:     cfg.Reminder.DedupSize,
		RatePerMinute: cfg.Reminder.RatePerMinute,
		DefaultChatID: cfg.Telegram.DefaultChatID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize reminder worker: ", err)
		return
	}

	if err := worker.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start reminder worker: ", err)
		return
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := worker.Stop(stopCtx); err != nil {
		logger.Warnf(stopCtx, "Reminder worker did not stop cleanly: %v", err)
	}
	logger.Info(stopCtx, "Reminder worker stopped gracefully")
}
