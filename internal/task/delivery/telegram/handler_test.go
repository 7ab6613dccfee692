package telegram_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-planner/internal/model"
	"wellness-planner/internal/recurrence"
	"wellness-planner/internal/task"
	"wellness-planner/internal/task/delivery/telegram"
	pkgLog "wellness-planner/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockTaskUseCase struct {
	task.UseCase

	lists       map[task.Status]task.ListOutput
	listErr     error
	details     map[string]task.DetailOutput
	detailErr   error
	complete    task.CompleteOutput
	completeErr error
	upcoming    task.UpcomingOutput
	upcomingErr error

	completedID string
	listChats   []int64
}

func (m *mockTaskUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	m.listChats = append(m.listChats, input.ChatID)
	return m.lists[input.Status], m.listErr
}

// Detail returns the configured task, or an unassigned one with the given ID.
func (m *mockTaskUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	if m.detailErr != nil {
		return task.DetailOutput{}, m.detailErr
	}
	if out, ok := m.details[id]; ok {
		return out, nil
	}
	return task.DetailOutput{Task: task.Summary{Task: model.Task{ID: id}}}, nil
}

func (m *mockTaskUseCase) Complete(ctx context.Context, id string) (task.CompleteOutput, error) {
	m.completedID = id
	return m.complete, m.completeErr
}

func (m *mockTaskUseCase) Upcoming(ctx context.Context, input task.UpcomingInput) (task.UpcomingOutput, error) {
	return m.upcoming, m.upcomingErr
}

type mockSender struct {
	mu    sync.Mutex
	chats []int64
	texts []string
	err   error
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chats = append(m.chats, chatID)
	m.texts = append(m.texts, text)
	return m.err
}

func summary(id, title, label string) task.Summary {
	return task.Summary{Task: model.Task{ID: id, Title: title}, NextLabel: label}
}

func setup(uc task.UseCase, bot *mockSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := telegram.New(pkgLog.NewNop(), uc, bot)
	r.POST("/webhook/telegram", h.HandleWebhook)
	return r
}

func send(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(text string) string {
	return `{"update_id":1,"message":{"message_id":7,"date":1714550400,"chat":{"id":42,"type":"private"},"text":"` + text + `"}}`
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_Ignored(t *testing.T) {
	bot := &mockSender{}
	r := setup(&mockTaskUseCase{}, bot)

	w := send(r, `{"update_id":1}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
	assert.Empty(t, bot.texts)
}

func TestHandleWebhook_BadJSON(t *testing.T) {
	bot := &mockSender{}
	r := setup(&mockTaskUseCase{}, bot)

	w := send(r, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, bot.texts)
}

func TestHandleWebhook_Commands(t *testing.T) {
	done := recurrence.Occurrence{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)}

	tcs := []struct {
		name string
		uc   *mockTaskUseCase
		text string
		want []string
	}{
		{
			name: "help",
			uc:   &mockTaskUseCase{},
			text: "/help",
			want: []string{"/today", "/done <id>"},
		},
		{
			name: "today lists overdue then due",
			uc: &mockTaskUseCase{lists: map[task.Status]task.ListOutput{
				task.StatusOverdue:  {Tasks: []task.Summary{summary("t1", "Stretch", "Overdue")}},
				task.StatusDueToday: {Tasks: []task.Summary{summary("t2", "Water", "Today")}},
			}},
			text: "/today",
			want: []string{"Overdue:\n- Stretch [t1] Overdue", "Due today:\n- Water [t2] Today"},
		},
		{
			name: "today empty",
			uc:   &mockTaskUseCase{},
			text: "/today@planner_bot",
			want: []string{"Nothing due today."},
		},
		{
			name: "upcoming",
			uc: &mockTaskUseCase{lists: map[task.Status]task.ListOutput{
				task.StatusUpcoming: {Tasks: []task.Summary{summary("t3", "Review", "In 3 days")}},
			}},
			text: "/upcoming",
			want: []string{"Upcoming:\n- Review [t3] In 3 days"},
		},
		{
			name: "done",
			uc: &mockTaskUseCase{complete: task.CompleteOutput{
				Task:      task.Summary{Task: model.Task{Title: "Stretch"}, NextLabel: "Tomorrow"},
				Completed: &done,
			}},
			text: "/done t1",
			want: []string{"Done: Stretch (Thu May 2). Next: Tomorrow"},
		},
		{
			name: "done without occurrence",
			uc: &mockTaskUseCase{complete: task.CompleteOutput{
				Task: task.Summary{Task: model.Task{Title: "Call mom"}},
			}},
			text: "/done t9",
			want: []string{`"Call mom" has no occurrence to complete.`},
		},
		{
			name: "done unknown task",
			uc:   &mockTaskUseCase{detailErr: task.ErrTaskNotFound},
			text: "/done nope",
			want: []string{"No task with that ID."},
		},
		{
			name: "done needs an id",
			uc:   &mockTaskUseCase{},
			text: "/done",
			want: []string{"Usage: /done <id>"},
		},
		{
			name: "next",
			uc: &mockTaskUseCase{upcoming: task.UpcomingOutput{Dates: []time.Time{
				time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
			}}},
			text: "/next t1",
			want: []string{"Next: Thu May 2, Fri May 3"},
		},
		{
			name: "use case failure",
			uc:   &mockTaskUseCase{listErr: errors.New("disk on fire")},
			text: "/upcoming",
			want: []string{"Something went wrong"},
		},
		{
			name: "unknown command",
			uc:   &mockTaskUseCase{},
			text: "hello",
			want: []string{"Unknown command"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			bot := &mockSender{}
			r := setup(tc.uc, bot)

			w := send(r, message(tc.text))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "accepted")

			require.Len(t, bot.texts, 1)
			assert.Equal(t, int64(42), bot.chats[0])
			for _, want := range tc.want {
				assert.Contains(t, bot.texts[0], want)
			}
		})
	}
}

func TestHandleWebhook_DoneUsesArgument(t *testing.T) {
	uc := &mockTaskUseCase{}
	r := setup(uc, &mockSender{})

	send(r, message("/done   task-7 "))
	assert.Equal(t, "task-7", uc.completedID)
}

func TestHandleWebhook_SendFailureStillAcks(t *testing.T) {
	bot := &mockSender{err: errors.New("telegram down")}
	r := setup(&mockTaskUseCase{}, bot)

	w := send(r, message("/help"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, bot.texts, 1)
}

func TestHandleWebhook_ScopedToChat(t *testing.T) {
	other := map[string]task.DetailOutput{
		"t-other": {Task: task.Summary{Task: model.Task{ID: "t-other", Title: "Theirs", ChatID: 99}}},
		"t-mine":  {Task: task.Summary{Task: model.Task{ID: "t-mine", Title: "Mine", ChatID: 42}}},
	}
	done := recurrence.Occurrence{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)}

	t.Run("lists carry the sender chat", func(t *testing.T) {
		uc := &mockTaskUseCase{}
		r := setup(uc, &mockSender{})

		send(r, message("/today"))
		send(r, message("/upcoming"))
		assert.Equal(t, []int64{42, 42, 42}, uc.listChats)
	})

	t.Run("done on another chat's task", func(t *testing.T) {
		uc := &mockTaskUseCase{details: other}
		bot := &mockSender{}
		r := setup(uc, bot)

		send(r, message("/done t-other"))
		assert.Empty(t, uc.completedID)
		require.Len(t, bot.texts, 1)
		assert.Equal(t, "No task with that ID.", bot.texts[0])
	})

	t.Run("next on another chat's task", func(t *testing.T) {
		uc := &mockTaskUseCase{details: other, upcoming: task.UpcomingOutput{Dates: []time.Time{done.Date}}}
		bot := &mockSender{}
		r := setup(uc, bot)

		send(r, message("/next t-other"))
		require.Len(t, bot.texts, 1)
		assert.Equal(t, "No task with that ID.", bot.texts[0])
	})

	t.Run("done on own task", func(t *testing.T) {
		uc := &mockTaskUseCase{details: other, complete: task.CompleteOutput{
			Task:      task.Summary{Task: model.Task{Title: "Mine"}, NextLabel: "Tomorrow"},
			Completed: &done,
		}}
		bot := &mockSender{}
		r := setup(uc, bot)

		send(r, message("/done t-mine"))
		assert.Equal(t, "t-mine", uc.completedID)
		require.Len(t, bot.texts, 1)
		assert.Contains(t, bot.texts[0], "Done: Mine")
	})
}
