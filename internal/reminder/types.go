package reminder

import (
	"context"
	"time"
)

// Reminder is one notification about an upcoming occurrence.
type Reminder struct {
	TaskID   string
	Title    string
	Schedule string
	ChatID   int64
	DueAt    time.Time
	Lead     time.Duration
}

// Notifier delivers a reminder. Implementations must be safe for concurrent
// use.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// Config configures a Worker.
type Config struct {
	// Schedule is a cron spec such as "@every 1m" or "*/5 * * * *".
	Schedule      string
	Location      *time.Location
	DedupTTL      time.Duration
	DedupSize     int
	RatePerMinute int
	// DefaultChatID is used for tasks that carry no chat of their own.
	DefaultChatID int64
}

const (
	defaultDedupTTL      = 24 * time.Hour
	defaultDedupSize     = 4096
	defaultRatePerMinute = 20
)
