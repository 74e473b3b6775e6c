package scheduler

import (
	"context"
	"log/slog"
	"time"

	"fleet-console/internal/infra/repository"
	"fleet-console/internal/notify"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// Overdue threshold for pending fines that were never recharged.
const fineOverdueAfter = 60 * 24 * time.Hour

// Scheduler runs the periodic background work of the console: draining
// the notification outbox and flagging stale pending fines.
type Scheduler struct {
	cron       *cron.Cron
	dispatcher *notify.Dispatcher
	fineRepo   *repository.FineRepository
	clock      clock.Clock
	cfg        config.SchedulerConfig
}

func NewScheduler(
	cfg config.SchedulerConfig,
	dispatcher *notify.Dispatcher,
	fineRepo *repository.FineRepository,
	clk clock.Clock,
) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:       c,
		dispatcher: dispatcher,
		fineRepo:   fineRepo,
		clock:      clk,
		cfg:        cfg,
	}

	if _, err := c.AddFunc(cfg.OutboxDispatch, s.runOutboxDispatch); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(cfg.MarkOverdueFines, s.runMarkOverdueFines); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started",
		"outbox_dispatch", s.cfg.OutboxDispatch,
		"mark_overdue_fines", s.cfg.MarkOverdueFines)
}

// Stop waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) runOutboxDispatch() {
	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Second)
	defer cancel()

	n, err := s.dispatcher.Dispatch(ctx)
	if err != nil {
		slog.Error("outbox dispatch failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("outbox dispatched", "jobs", n)
	}
}

func (s *Scheduler) runMarkOverdueFines() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := s.clock.Now()
	n, err := s.fineRepo.MarkOverdueOlderThan(ctx, now.Add(-fineOverdueAfter), now)
	if err != nil {
		slog.Error("mark overdue fines failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("fines marked overdue", "count", n)
	}
}
