package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wellness-planner/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("broken JWT and OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		t.Chdir(t.TempDir())
		creds := `{"installed":{"client_id":"id.apps.googleusercontent.com","client_secret":"secret","redirect_uris":["http://localhost"]}}`
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(creds))
		if err == nil {
			t.Fatalf("expected missing token.json error")
		}
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		if err := os.WriteFile(path, []byte(`{"broken":true}`), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestUpsertAllDayEvent(t *testing.T) {
	t.Run("insert", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &body)
			_, _ = w.Write([]byte(`{"id":"event-123","summary":"Stretch","htmlLink":"https://calendar.google.com/event-uri"}`))
		})

		loc := time.FixedZone("UTC+7", 7*3600)
		event, err := client.UpsertAllDayEvent(context.Background(), gcalendar.AllDayEventRequest{
			Summary:         "Stretch",
			Date:            time.Date(2024, 5, 6, 0, 0, 0, 0, loc),
			Recurrence:      []string{"RRULE:FREQ=WEEKLY;BYDAY=MO"},
			ReminderMinutes: 30,
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected event: %+v", event)
		}

		start, _ := body["start"].(map[string]any)
		end, _ := body["end"].(map[string]any)
		if start["date"] != "2024-05-06" || end["date"] != "2024-05-07" {
			t.Errorf("unexpected all-day range: start=%v end=%v", start, end)
		}
		if rec, _ := body["recurrence"].([]any); len(rec) != 1 || rec[0] != "RRULE:FREQ=WEEKLY;BYDAY=MO" {
			t.Errorf("unexpected recurrence: %v", body["recurrence"])
		}
	})

	t.Run("update existing", func(t *testing.T) {
		var method string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/work/events/event-123" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			method = r.Method
			_, _ = w.Write([]byte(`{"id":"event-123"}`))
		})

		event, err := client.UpsertAllDayEvent(context.Background(), gcalendar.AllDayEventRequest{
			CalendarID: "work",
			EventID:    "event-123",
			Summary:    "Stretch",
			Date:       time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("failed to update event: %v", err)
		}
		if method != http.MethodPut || event.ID != "event-123" {
			t.Errorf("method=%s id=%s", method, event.ID)
		}
	})

	t.Run("api error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		if _, err := client.UpsertAllDayEvent(context.Background(), gcalendar.AllDayEventRequest{Date: time.Now()}); err == nil {
			t.Fatalf("expected save error")
		}
	})
}

func TestDeleteEvent(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "already gone", status: http.StatusGone},
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete || r.URL.Path != "/calendar/v3/calendars/primary/events/event-1" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.WriteHeader(tt.status)
			})
			err := client.DeleteEvent(context.Background(), "", "event-1")
			if (err != nil) != tt.wantErr {
				t.Errorf("DeleteEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
