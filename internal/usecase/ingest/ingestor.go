package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/pkg/clock"
	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
)

// Ingestor persists stream messages one at a time with at-least-once semantics:
// the offset is committed only after the insert succeeded, so a crash in between
// redelivers the message and stores it twice.
type Ingestor struct {
	source  MessageSource
	store   PurchaseStore
	counter StreamCounter
	clock   clock.Clock
	logger  *slog.Logger
	backoff time.Duration

	mu        sync.Mutex
	stopFetch context.CancelFunc
	abortWork context.CancelFunc
	done      chan struct{}
}

func NewIngestor(source MessageSource, store PurchaseStore, counter StreamCounter, clk clock.Clock, cfg config.LifecycleConfig, logger *slog.Logger) *Ingestor {
	return &Ingestor{
		source:  source,
		store:   store,
		counter: counter,
		clock:   clk,
		logger:  logger,
		backoff: cfg.ReconnectBackoff,
	}
}

func (i *Ingestor) Start() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.done != nil {
		return
	}

	fetchCtx, stopFetch := context.WithCancel(context.Background())
	workCtx, abortWork := context.WithCancel(context.Background())
	i.stopFetch, i.abortWork = stopFetch, abortWork
	i.done = make(chan struct{})

	go func() {
		defer close(i.done)
		i.run(fetchCtx, workCtx)
	}()
}

// Stop lets the in-flight message finish. If ctx expires first the message is
// abandoned uncommitted and will be redelivered.
func (i *Ingestor) Stop(ctx context.Context) error {
	i.mu.Lock()
	stopFetch, abortWork, done := i.stopFetch, i.abortWork, i.done
	i.mu.Unlock()
	if done == nil {
		return nil
	}

	stopFetch()
	select {
	case <-done:
		abortWork()
		return nil
	case <-ctx.Done():
		abortWork()
		<-done
		return errs.Wrap(ctx.Err(), "ingestor stop")
	}
}

func (i *Ingestor) run(fetchCtx, workCtx context.Context) {
	i.logger.Info("purchase ingestion started")
	for {
		err := i.Step(fetchCtx, workCtx)
		if fetchCtx.Err() != nil {
			i.logger.Info("purchase ingestion stopped")
			return
		}
		if err != nil {
			i.logger.Error("purchase ingestion step failed", "error", err, "retry_in", i.backoff)
			select {
			case <-fetchCtx.Done():
				return
			case <-time.After(i.backoff):
			}
		}
	}
}

// Step fetches one message under fetchCtx and processes it under workCtx.
func (i *Ingestor) Step(fetchCtx, workCtx context.Context) error {
	msg, err := i.source.Fetch(fetchCtx)
	if err != nil {
		return errs.Wrap(err, "fetch message")
	}
	i.counter.CountStream(metrics.EventConsumed)

	p, err := purchase.DecodeEvent(msg.Value, i.clock.Now())
	if err != nil {
		i.counter.CountStream(metrics.EventDropped)
		i.logger.Warn("dropping undecodable purchase message",
			"partition", msg.Partition, "offset", msg.Offset, "error", err)
		return i.commit(workCtx, msg)
	}

	if err := i.insert(workCtx, msg, p); err != nil {
		return err
	}
	i.counter.CountStream(metrics.EventPersisted)

	return i.commit(workCtx, msg)
}

// insert retries on the fixed backoff until the store accepts the document.
func (i *Ingestor) insert(ctx context.Context, msg Message, p *purchase.Purchase) error {
	op := func() error {
		_, err := i.store.Insert(ctx, p)
		return err
	}
	notify := func(err error, next time.Duration) {
		i.counter.CountStream(metrics.EventStoreFailed)
		i.logger.Error("storing purchase failed, retrying",
			"partition", msg.Partition, "offset", msg.Offset, "userid", p.UserID(), "error", err, "retry_in", next)
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(i.backoff), ctx)
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return errs.Wrap(err, "store purchase")
	}
	return nil
}

func (i *Ingestor) commit(ctx context.Context, msg Message) error {
	if err := i.source.Commit(ctx, msg); err != nil {
		return errs.Wrapf(err, "commit partition %d offset %d", msg.Partition, msg.Offset)
	}
	return nil
}
