package queries

import (
	"context"

	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/usecase/readmodel"
)

//go:generate mockgen -source=remote.go -destination=../../../tests/mock/queries/remote_mock.go -package=queries

// ErrDownstreamUnavailable marks failures to reach the consumer service or a non-2xx answer from it.
var ErrDownstreamUnavailable = errs.New("downstream purchase service unavailable")

// PurchaseSource is the consumer service as seen from the producer.
type PurchaseSource interface {
	FetchByUser(ctx context.Context, userID string) ([]*readmodel.PurchaseRM, error)
	FetchRecent(ctx context.Context) ([]*readmodel.PurchaseRM, error)
}

type remotePurchaseQueriesImpl struct {
	source PurchaseSource
}

// NewRemotePurchaseQueries returns the downstream order unchanged; it does not retry.
func NewRemotePurchaseQueries(source PurchaseSource) PurchaseQueries {
	return &remotePurchaseQueriesImpl{source: source}
}

func (q *remotePurchaseQueriesImpl) ListByUser(ctx context.Context, userID string) ([]*readmodel.PurchaseRM, error) {
	items, err := q.source.FetchByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrapf(err, "fetch purchases for %q from consumer", userID)
	}
	return nonNil(items), nil
}

func (q *remotePurchaseQueriesImpl) ListRecent(ctx context.Context) ([]*readmodel.PurchaseRM, error) {
	items, err := q.source.FetchRecent(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "fetch recent purchases from consumer")
	}
	return nonNil(items), nil
}
