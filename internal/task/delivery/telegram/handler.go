package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	tele "gopkg.in/telebot.v4"

	"wellness-planner/internal/task"
	pkgResponse "wellness-planner/pkg/response"
)

const (
	upcomingListLimit = 10
	dateLayout        = "Mon Jan 2"

	helpText = "Wellness planner commands:\n" +
		"/today - tasks due today and overdue\n" +
		"/upcoming - what comes next\n" +
		"/done <id> - complete the current occurrence\n" +
		"/next <id> - preview the next due dates"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// Commands only touch the local store, so they are answered inline.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update tele.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.ValidationError(c, err)
		return
	}

	// Ignore non-message updates (callbacks, channel posts, edits).
	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	reply := h.processMessage(ctx, msg.Chat.ID, msg.Text)
	if err := h.bot.SendMessage(ctx, msg.Chat.ID, reply); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send reply to %d: %v", msg.Chat.ID, err)
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs a single command and returns the reply text.
func (h *handler) processMessage(ctx context.Context, chatID int64, text string) string {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	// Group chats address the bot as /cmd@botname.
	cmd, _, _ = strings.Cut(cmd, "@")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/start", "/help":
		return helpText
	case "/today":
		return h.today(ctx, chatID)
	case "/upcoming":
		return h.upcoming(ctx, chatID)
	case "/done":
		if arg == "" {
			return "Usage: /done <id>"
		}
		return h.done(ctx, chatID, arg)
	case "/next":
		if arg == "" {
			return "Usage: /next <id>"
		}
		return h.next(ctx, chatID, arg)
	default:
		h.l.Debugf(ctx, "telegram handler: unknown command from %d: %q", chatID, cmd)
		return "Unknown command. Send /help for the list."
	}
}

// A chat sees its own tasks and tasks without a chat.
func (h *handler) today(ctx context.Context, chatID int64) string {
	overdue, err := h.uc.List(ctx, task.ListInput{Status: task.StatusOverdue, ChatID: chatID})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: List overdue: %v", err)
		return errorMessage(err)
	}
	due, err := h.uc.List(ctx, task.ListInput{Status: task.StatusDueToday, ChatID: chatID})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: List due today: %v", err)
		return errorMessage(err)
	}
	if len(overdue.Tasks)+len(due.Tasks) == 0 {
		return "Nothing due today."
	}

	var b strings.Builder
	writeSection(&b, "Overdue", overdue.Tasks)
	writeSection(&b, "Due today", due.Tasks)
	return strings.TrimSpace(b.String())
}

func (h *handler) upcoming(ctx context.Context, chatID int64) string {
	out, err := h.uc.List(ctx, task.ListInput{Status: task.StatusUpcoming, ChatID: chatID, Limit: upcomingListLimit})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: List upcoming: %v", err)
		return errorMessage(err)
	}
	if len(out.Tasks) == 0 {
		return "Nothing scheduled."
	}

	var b strings.Builder
	writeSection(&b, "Upcoming", out.Tasks)
	return strings.TrimSpace(b.String())
}

func (h *handler) done(ctx context.Context, chatID int64, id string) string {
	if err := h.checkOwner(ctx, chatID, id); err != nil {
		return errorMessage(err)
	}
	out, err := h.uc.Complete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Complete %s: %v", id, err)
		return errorMessage(err)
	}
	if out.Completed == nil {
		return fmt.Sprintf("%q has no occurrence to complete.", out.Task.Task.Title)
	}
	return fmt.Sprintf("Done: %s (%s). Next: %s",
		out.Task.Task.Title, out.Completed.Date.Format(dateLayout), out.Task.NextLabel)
}

func (h *handler) next(ctx context.Context, chatID int64, id string) string {
	if err := h.checkOwner(ctx, chatID, id); err != nil {
		return errorMessage(err)
	}
	out, err := h.uc.Upcoming(ctx, task.UpcomingInput{ID: id})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Upcoming %s: %v", id, err)
		return errorMessage(err)
	}
	if len(out.Dates) == 0 {
		return "No upcoming occurrences."
	}

	dates := make([]string, len(out.Dates))
	for i, d := range out.Dates {
		dates[i] = d.Format(dateLayout)
	}
	return "Next: " + strings.Join(dates, ", ")
}

// checkOwner reports a task bound to another chat as not found.
func (h *handler) checkOwner(ctx context.Context, chatID int64, id string) error {
	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Detail %s: %v", id, err)
		return err
	}
	if owner := out.Task.Task.ChatID; owner != 0 && owner != chatID {
		h.l.Warnf(ctx, "telegram handler: chat %d asked for task %s of chat %d", chatID, id, owner)
		return task.ErrTaskNotFound
	}
	return nil
}

func writeSection(b *strings.Builder, title string, tasks []task.Summary) {
	if len(tasks) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, s := range tasks {
		fmt.Fprintf(b, "- %s [%s] %s\n", s.Task.Title, s.Task.ID, s.NextLabel)
	}
	b.WriteString("\n")
}
