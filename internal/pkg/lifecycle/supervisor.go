package lifecycle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

//go:generate mockgen -source=supervisor.go -destination=../../../tests/mock/lifecycle/dependency_mock.go -package=lifecycle

// Dependency is an external resource the service needs before it can report ready.
type Dependency interface {
	Name() string
	Connect(ctx context.Context) error
	Check(ctx context.Context) error
}

// Supervisor connects dependencies in order, then watches them and reconnects on loss.
// It never gives up and never exits the process.
type Supervisor struct {
	tracker  *Tracker
	deps     []Dependency
	backoff  time.Duration
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSupervisor(tracker *Tracker, cfg config.LifecycleConfig, logger *slog.Logger, deps ...Dependency) *Supervisor {
	return &Supervisor{
		tracker:  tracker,
		deps:     deps,
		backoff:  cfg.ReconnectBackoff,
		interval: cfg.HealthCheckInterval,
		logger:   logger,
	}
}

func (s *Supervisor) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		s.run(ctx)
	}()
}

// BeginShutdown reports STOPPING right away so readiness fails while HTTP drains.
// The watch loop keeps running until Stop.
func (s *Supervisor) BeginShutdown() {
	s.tracker.markStopping()
}

// Stop marks the process as stopping and waits for the watch loop to return.
func (s *Supervisor) Stop(ctx context.Context) error {
	s.tracker.markStopping()

	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "supervisor stop")
	}
}

func (s *Supervisor) run(ctx context.Context) {
	for _, dep := range s.deps {
		s.tracker.markConnecting(dep.Name())
		if err := s.connect(ctx, dep); err != nil {
			return
		}
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, dep := range s.deps {
				if err := dep.Check(ctx); err != nil {
					if ctx.Err() != nil {
						return
					}
					s.logger.Warn("dependency lost", "dependency", dep.Name(), "error", err)
					s.tracker.markLost(dep.Name())
					if err := s.connect(ctx, dep); err != nil {
						return
					}
				}
			}
		}
	}
}

// connect retries dep.Connect on a constant backoff until it succeeds or ctx is cancelled.
func (s *Supervisor) connect(ctx context.Context, dep Dependency) error {
	op := func() error {
		return dep.Connect(ctx)
	}
	notify := func(err error, next time.Duration) {
		s.logger.Warn("dependency connect failed, retrying",
			"dependency", dep.Name(), "error", err, "retry_in", next)
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(s.backoff), ctx)
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return errs.Wrapf(err, "connect %s", dep.Name())
	}

	s.logger.Info("dependency connected", "dependency", dep.Name())
	s.tracker.markConnected(dep.Name())
	return nil
}
