package bootstrap

import (
	"context"
	"log/slog"

	"purchase-pipeline/internal/handler/api"
	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/lifecycle"
	"purchase-pipeline/internal/pkg/metrics"
	"purchase-pipeline/internal/usecase/commands"
	"purchase-pipeline/internal/usecase/ingest"

	"go.uber.org/fx"
)

// Dependencies are connected in slice order before the service reports ready.
type Dependencies []lifecycle.Dependency

type producerDependencies struct {
	fx.In
	Stream lifecycle.Dependency `name:"stream"`
}

type consumerDependencies struct {
	fx.In
	Store  lifecycle.Dependency `name:"store"`
	Stream lifecycle.Dependency `name:"stream"`
}

func ProducerDependencies(in producerDependencies) Dependencies {
	return Dependencies{in.Stream}
}

func ConsumerDependencies(in consumerDependencies) Dependencies {
	return Dependencies{in.Store, in.Stream}
}

var LifecycleModule = fx.Module("lifecycle",
	fx.Provide(
		NewLifecycle,
		func(t *lifecycle.Tracker) commands.ReadinessReader { return t },
		func(t *lifecycle.Tracker) api.StatusReader { return t },
		func(r *metrics.Registry) commands.StreamCounter { return r },
		func(r *metrics.Registry) ingest.StreamCounter { return r },
	),
)

func NewLifecycle(deps Dependencies, cfg config.Config, logger *slog.Logger, reg *metrics.Registry) (*lifecycle.Tracker, *lifecycle.Supervisor) {
	names := make([]string, len(deps))
	for i, d := range deps {
		names[i] = d.Name()
	}
	tracker := lifecycle.NewTracker(names...)
	tracker.OnChange(reg.ObserveLifecycle)
	tracker.OnChange(func(s lifecycle.Status) {
		logger.Info("lifecycle transition", "phase", s.Phase, "reason", s.Reason)
	})
	return tracker, lifecycle.NewSupervisor(tracker, cfg.Lifecycle, logger, deps...)
}

type backgroundParams struct {
	fx.In
	Lifecycle  fx.Lifecycle
	Config     config.Config
	Supervisor *lifecycle.Supervisor
	Ingestor   *ingest.Ingestor `optional:"true"`
}

// StartBackground runs the supervisor and, on the consumer, the ingestor. On stop the
// ingestor finishes its in-flight message before the supervisor is stopped.
func StartBackground(p backgroundParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p.Supervisor.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return p.Supervisor.Stop(ctx)
		},
	})

	if p.Ingestor == nil {
		return
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p.Ingestor.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, p.Config.Server.ShutdownTimeout)
			defer cancel()
			return p.Ingestor.Stop(ctx)
		},
	})
}
