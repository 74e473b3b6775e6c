package bootstrap

import (
	"context"

	"fleet-console/internal/infra/repository"
	"fleet-console/internal/notify"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/config"
	"fleet-console/internal/scheduler"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(RunScheduler),
)

func NewScheduler(
	cfg config.Config,
	dispatcher *notify.Dispatcher,
	fineRepo *repository.FineRepository,
	clk clock.Clock,
) (*scheduler.Scheduler, error) {
	return scheduler.NewScheduler(cfg.Scheduler, dispatcher, fineRepo, clk)
}

func RunScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
