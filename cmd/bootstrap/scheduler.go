package bootstrap

import (
	"context"

	"hothour/internal/pkg/config"
	"hothour/internal/scheduler"
	"hothour/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(StartScheduler),
)

func NewScheduler(reconcile commands.ReconcileCommands, cancellation commands.CancellationCommands, cfg config.Config) *scheduler.Scheduler {
	return scheduler.New(reconcile, cancellation, cfg.Auction)
}

func StartScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
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
