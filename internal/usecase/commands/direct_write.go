package commands

import (
	"context"
	"time"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/pkg/clock"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/pkg/patch"
	"purchase-pipeline/internal/usecase/readmodel"
)

//go:generate mockgen -source=direct_write.go -destination=../../../tests/mock/commands/direct_write_mock.go -package=commands

type DirectWriteInput struct {
	Username  string
	UserID    string
	Price     float64
	Timestamp *time.Time
}

// DirectWriteCommands stores a purchase without going through the stream.
type DirectWriteCommands interface {
	Write(ctx context.Context, in DirectWriteInput) (*readmodel.PurchaseRM, error)
}

type directWriteImpl struct {
	repo  PurchaseRepository
	clock clock.Clock
}

func NewDirectWriteCommands(repo PurchaseRepository, clk clock.Clock) DirectWriteCommands {
	return &directWriteImpl{repo: repo, clock: clk}
}

func (uc *directWriteImpl) Write(ctx context.Context, in DirectWriteInput) (*readmodel.PurchaseRM, error) {
	now := uc.clock.Now()
	ts := patch.Coalesce(in.Timestamp, now)
	if ts.IsZero() {
		ts = now
	}

	p, err := purchase.New(in.Username, in.UserID, in.Price, ts)
	if err != nil {
		return nil, err
	}

	stored, err := uc.repo.Insert(ctx, p)
	if err != nil {
		return nil, errs.Wrap(err, "store purchase")
	}
	return stored, nil
}
