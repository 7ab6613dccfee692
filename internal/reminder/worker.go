package reminder

import (
	"context"
	"fmt"
	"time"
)

// Start schedules the scan and returns immediately. Scans run with ctx, so
// cancelling it aborts an in-flight delivery.
func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	id, err := w.cron.AddFunc(w.cfg.Schedule, func() {
		if _, err := w.Scan(ctx); err != nil {
			w.l.Errorf(ctx, "reminder.Worker.Scan: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidSchedule, w.cfg.Schedule, err)
	}

	w.cron.Start()
	w.entry = id
	w.running = true
	w.l.Infof(ctx, "reminder worker started: schedule=%q tz=%s", w.cfg.Schedule, w.cfg.Location)
	return nil
}

// Stop stops scheduling and waits for a running scan until ctx is done.
func (w *Worker) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.cron.Remove(w.entry)
	w.mu.Unlock()

	done := w.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Scan delivers every due reminder not already sent and returns how many were
// delivered. A failed delivery is logged and retried on the next scan.
func (w *Worker) Scan(ctx context.Context) (int, error) {
	out, err := w.uc.DueReminders(ctx)
	if err != nil {
		return 0, fmt.Errorf("due reminders: %w", err)
	}

	delivered := 0
	for _, s := range out.Tasks {
		t := s.Task
		if t.NextOccurrence == nil {
			continue
		}
		key := dedupKey(t.ID, *t.NextOccurrence)
		if w.sent.Contains(key) {
			continue
		}

		r := Reminder{
			TaskID:   t.ID,
			Title:    t.Title,
			Schedule: s.Schedule,
			ChatID:   t.ChatID,
			DueAt:    *t.NextOccurrence,
			Lead:     time.Duration(t.ReminderBefore) * time.Minute,
		}
		if r.ChatID == 0 {
			r.ChatID = w.cfg.DefaultChatID
		}

		if err := w.limiter.Wait(ctx); err != nil {
			return delivered, err
		}
		if err := w.notifier.Notify(ctx, r); err != nil {
			w.l.Warnf(ctx, "reminder.Worker.Scan: notify %s: %v", t.ID, err)
			continue
		}
		w.sent.Add(key, struct{}{})
		delivered++
	}

	if delivered > 0 {
		w.l.Infof(ctx, "reminder.Worker.Scan: delivered %d reminder(s)", delivered)
	}
	return delivered, nil
}

// dedupKey identifies one occurrence of one task. Completing the task moves
// NextOccurrence, which yields a fresh key.
func dedupKey(taskID string, due time.Time) string {
	return taskID + "@" + due.UTC().Format(time.RFC3339)
}
