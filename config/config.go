package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Planner
	Storage StorageConfig
	Planner PlannerConfig

	// Integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig

	// Worker
	Reminder ReminderConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	Driver      string // memory | sqlite
	Path        string
	BusyTimeout time.Duration
}

type PlannerConfig struct {
	Timezone               string
	DefaultReminderMinutes int
}

type TelegramConfig struct {
	BotToken      string
	APIURL        string
	WebhookURL    string
	DefaultChatID int64 // reminders for tasks without a chat go here

	// Webhook guard
	WebhookSecret        string
	AllowedIPs           []string
	WebhookRatePerMinute int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type ReminderConfig struct {
	Schedule      string // cron spec
	DedupTTL      time.Duration
	DedupSize     int
	RatePerMinute int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/planner/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/planner/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := build()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Watch re-reads the config file on change and hands the result to fn.
// Invalid edits are skipped. Only settings read per use (reminder lead
// default, log level) can take effect without a restart.
func Watch(fn func(*Config)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg := build()
		if err := cfg.validate(); err != nil {
			return
		}
		fn(cfg)
	})
	viper.WatchConfig()
}

func build() *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planner
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Path = viper.GetString("storage.path")
	cfg.Storage.BusyTimeout = viper.GetDuration("storage.busy_timeout")
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.DefaultReminderMinutes = viper.GetInt("planner.default_reminder_minutes")

	// Integrations
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.APIURL = viper.GetString("telegram.api_url")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.DefaultChatID = viper.GetInt64("telegram.default_chat_id")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")
	cfg.Telegram.AllowedIPs = viper.GetStringSlice("telegram.allowed_ips")
	cfg.Telegram.WebhookRatePerMinute = viper.GetInt("telegram.webhook_rate_per_minute")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Worker
	cfg.Reminder.Schedule = viper.GetString("reminder.schedule")
	cfg.Reminder.DedupTTL = viper.GetDuration("reminder.dedup_ttl")
	cfg.Reminder.DedupSize = viper.GetInt("reminder.dedup_size")
	cfg.Reminder.RatePerMinute = viper.GetInt("reminder.rate_per_minute")

	return cfg
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.driver", StorageMemory)
	viper.SetDefault("storage.path", "data/planner.db")
	viper.SetDefault("storage.busy_timeout", "5s")
	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.default_reminder_minutes", 0)

	viper.SetDefault("telegram.api_url", "https://api.telegram.org")
	viper.SetDefault("telegram.webhook_rate_per_minute", 60)
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("reminder.schedule", "@every 1m")
	viper.SetDefault("reminder.dedup_ttl", "24h")
	viper.SetDefault("reminder.dedup_size", 4096)
	viper.SetDefault("reminder.rate_per_minute", 20)
}

func (cfg *Config) validate() error {
	switch cfg.Storage.Driver {
	case StorageMemory:
	case StorageSQLite:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}
	if _, err := time.LoadLocation(cfg.Planner.Timezone); err != nil {
		return fmt.Errorf("invalid planner.timezone %q: %w", cfg.Planner.Timezone, err)
	}
	if cfg.Planner.DefaultReminderMinutes < 0 {
		return fmt.Errorf("planner.default_reminder_minutes must not be negative")
	}
	if cfg.Telegram.WebhookRatePerMinute < 0 {
		return fmt.Errorf("telegram.webhook_rate_per_minute must not be negative")
	}
	if cfg.Reminder.RatePerMinute <= 0 {
		return fmt.Errorf("reminder.rate_per_minute must be positive")
	}
	return nil
}
