package commands

import (
	"context"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/usecase/readmodel"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commands

type PurchasePublisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

type PurchaseRepository interface {
	Insert(ctx context.Context, p *purchase.Purchase) (*readmodel.PurchaseRM, error)
}

// ReadinessReader is the read side of the lifecycle tracker.
type ReadinessReader interface {
	DependencyReady(name string) bool
}

type StreamCounter interface {
	CountStream(event string)
}
