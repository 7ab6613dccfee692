package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tele "gopkg.in/telebot.v4"
)

// DefaultAPIURL is the public Bot API endpoint.
const DefaultAPIURL = "https://api.telegram.org"

// Config configures a Bot.
type Config struct {
	Token   string
	APIURL  string // empty uses DefaultAPIURL
	Timeout time.Duration
}

// Bot is a send-only Telegram Bot API client. Incoming updates arrive through
// the webhook, so the bot never polls.
type Bot struct {
	tb *tele.Bot
}

// NewBot creates a Bot without contacting Telegram.
func NewBot(cfg Config) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.New("telegram token is empty")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	tb, err := tele.NewBot(tele.Settings{
		Token:   cfg.Token,
		URL:     cfg.APIURL,
		Client:  &http.Client{Timeout: cfg.Timeout},
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: new bot: %w", err)
	}
	return &Bot{tb: tb}, nil
}

// SetWebhook registers the public URL Telegram pushes updates to. A non-empty
// secret is echoed back by Telegram in the X-Telegram-Bot-Api-Secret-Token
// header of every update.
func (b *Bot) SetWebhook(webhookURL, secret string) error {
	err := b.tb.SetWebhook(&tele.Webhook{
		SecretToken: secret,
		Endpoint:    &tele.WebhookEndpoint{PublicURL: webhookURL},
	})
	if err != nil {
		return fmt.Errorf("telegram: set webhook: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with an optional parse mode such as
// "Markdown".
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := b.tb.Send(&tele.Chat{ID: chatID}, text, &tele.SendOptions{
		ParseMode:             tele.ParseMode(parseMode),
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	return nil
}
