package reminder

import (
	"context"
	"fmt"

	"wellness-planner/pkg/log"
)

// Sender is the part of the Telegram bot the notifier needs.
// *telegram.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// TelegramNotifier sends reminders as Telegram messages.
type TelegramNotifier struct {
	bot Sender
}

func NewTelegramNotifier(bot Sender) *TelegramNotifier {
	return &TelegramNotifier{bot: bot}
}

func (n *TelegramNotifier) Notify(ctx context.Context, r Reminder) error {
	if r.ChatID == 0 {
		return fmt.Errorf("%w: task %s", ErrNoChat, r.TaskID)
	}
	return n.bot.SendMessage(ctx, r.ChatID, Message(r))
}

// LogNotifier writes reminders to the log. It is the fallback when no bot is
// configured.
type LogNotifier struct {
	l log.Logger
}

func NewLogNotifier(l log.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) Notify(ctx context.Context, r Reminder) error {
	n.l.Infof(ctx, "reminder: %s", Message(r))
	return nil
}

// Message renders the reminder text.
func Message(r Reminder) string {
	msg := fmt.Sprintf("Reminder: %s is due %s", r.Title, r.DueAt.Format("Mon Jan 2"))
	if r.Schedule != "" {
		msg += fmt.Sprintf(" (%s)", r.Schedule)
	}
	return msg + fmt.Sprintf(". Reply /done %s when finished.", r.TaskID)
}
