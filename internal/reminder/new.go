package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"wellness-planner/internal/task"
	"wellness-planner/pkg/log"
)

// Worker periodically asks the task use case which reminders are due and
// delivers each (task, due date) pair at most once per DedupTTL.
type Worker struct {
	l        log.Logger
	uc       task.UseCase
	notifier Notifier
	cfg      Config

	cron    *cron.Cron
	sent    *expirable.LRU[string, struct{}]
	limiter *rate.Limiter

	mu      sync.Mutex
	running bool
	entry   cron.EntryID
}

// New validates cfg and builds a stopped Worker.
func New(l log.Logger, uc task.UseCase, notifier Notifier, cfg Config) (*Worker, error) {
	if notifier == nil {
		return nil, ErrNoNotifier
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DedupTTL <= 0 {
		cfg.DedupTTL = defaultDedupTTL
	}
	if cfg.DedupSize <= 0 {
		cfg.DedupSize = defaultDedupSize
	}
	if cfg.RatePerMinute <= 0 {
		cfg.RatePerMinute = defaultRatePerMinute
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSchedule, cfg.Schedule, err)
	}

	w := &Worker{
		l:        l,
		uc:       uc,
		notifier: notifier,
		cfg:      cfg,
		sent:     expirable.NewLRU[string, struct{}](cfg.DedupSize, nil, cfg.DedupTTL),
		limiter:  rate.NewLimiter(rate.Limit(float64(cfg.RatePerMinute)/60.0), max(1, cfg.RatePerMinute/10)),
	}
	w.cron = cron.New(
		cron.WithParser(parser),
		cron.WithLocation(cfg.Location),
		cron.WithChain(cron.Recover(cronLogger{l: l}), cron.SkipIfStillRunning(cronLogger{l: l})),
	)
	return w, nil
}
