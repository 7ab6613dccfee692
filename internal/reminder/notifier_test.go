package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgLog "wellness-planner/pkg/log"
)

type fakeSender struct {
	chatID int64
	text   string
	err    error
}

func (f *fakeSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	f.chatID, f.text = chatID, text
	return f.err
}

func TestMessage(t *testing.T) {
	r := Reminder{
		TaskID:   "task-1",
		Title:    "Stretch",
		Schedule: "Every Thursday",
		DueAt:    time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "Reminder: Stretch is due Thu May 2 (Every Thursday). Reply /done task-1 when finished.", Message(r))

	r.Schedule = ""
	assert.Equal(t, "Reminder: Stretch is due Thu May 2. Reply /done task-1 when finished.", Message(r))
}

func TestTelegramNotifier(t *testing.T) {
	s := &fakeSender{}
	n := NewTelegramNotifier(s)
	r := Reminder{TaskID: "t", Title: "Walk", ChatID: 42, DueAt: may2}

	require.NoError(t, n.Notify(context.Background(), r))
	assert.Equal(t, int64(42), s.chatID)
	assert.Contains(t, s.text, "Walk")

	r.ChatID = 0
	assert.ErrorIs(t, n.Notify(context.Background(), r), ErrNoChat)

	s.err = errors.New("blocked")
	r.ChatID = 42
	assert.EqualError(t, n.Notify(context.Background(), r), "blocked")
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(pkgLog.NewNop())
	assert.NoError(t, n.Notify(context.Background(), Reminder{TaskID: "t", DueAt: may2}))
}
