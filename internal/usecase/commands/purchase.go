package commands

import (
	"context"
	"log/slog"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/pkg/clock"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/pkg/lifecycle"
	"purchase-pipeline/internal/pkg/metrics"
)

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/commands/purchase_mock.go -package=commands

var (
	ErrStreamUnavailable = errs.New("event stream unavailable")
	ErrPublishFailed     = errs.New("publish purchase failed")
)

type SubmitPurchaseInput struct {
	Username string
	UserID   string
	Price    float64
}

type PurchaseCommands interface {
	Submit(ctx context.Context, in SubmitPurchaseInput) (*purchase.Purchase, error)
}

type purchaseCommandsImpl struct {
	publisher PurchasePublisher
	readiness ReadinessReader
	counter   StreamCounter
	clock     clock.Clock
	logger    *slog.Logger
}

func NewPurchaseCommands(publisher PurchasePublisher, readiness ReadinessReader, counter StreamCounter, clk clock.Clock, logger *slog.Logger) PurchaseCommands {
	return &purchaseCommandsImpl{
		publisher: publisher,
		readiness: readiness,
		counter:   counter,
		clock:     clk,
		logger:    logger,
	}
}

// Submit publishes one event keyed by userid. A failed publish is reported, not retried.
func (uc *purchaseCommandsImpl) Submit(ctx context.Context, in SubmitPurchaseInput) (*purchase.Purchase, error) {
	p, err := purchase.New(in.Username, in.UserID, in.Price, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if !uc.readiness.DependencyReady(lifecycle.DependencyStream) {
		return nil, ErrStreamUnavailable
	}

	payload, err := p.MarshalEvent()
	if err != nil {
		return nil, errs.Wrap(err, "encode purchase")
	}

	if err := uc.publisher.Publish(ctx, p.Key(), payload); err != nil {
		uc.counter.CountStream(metrics.EventPublishFailed)
		return nil, errs.Mark(errs.Wrap(err, "publish purchase"), ErrPublishFailed)
	}
	uc.counter.CountStream(metrics.EventPublished)

	uc.logger.DebugContext(ctx, "purchase published", "userid", p.UserID())
	return p, nil
}
