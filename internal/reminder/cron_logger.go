package reminder

import (
	"context"
	"fmt"
	"strings"

	"wellness-planner/pkg/log"
)

// cronLogger adapts log.Logger to cron.Logger.
type cronLogger struct {
	l log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debugf(context.Background(), "reminder.cron: %s%s", msg, formatKV(keysAndValues))
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Errorf(context.Background(), "reminder.cron: %s: %v%s", msg, err, formatKV(keysAndValues))
}

func formatKV(kv []any) string {
	if len(kv) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	return b.String()
}
