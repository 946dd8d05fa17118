package ingest

import (
	"context"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/usecase/readmodel"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/ingest/ports_mock.go -package=ingest

// Message is one record delivered by the stream to this group member.
type Message struct {
	Topic     string
	Partition int
	Offset    int64
	Key       []byte
	Value     []byte
}

// MessageSource delivers messages one at a time. Commit marks msg and everything
// before it on the same partition as processed for the consumer group.
type MessageSource interface {
	Fetch(ctx context.Context) (Message, error)
	Commit(ctx context.Context, msg Message) error
}

type PurchaseStore interface {
	Insert(ctx context.Context, p *purchase.Purchase) (*readmodel.PurchaseRM, error)
}

type StreamCounter interface {
	CountStream(event string)
}
