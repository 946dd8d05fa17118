package queries

import (
	"context"

	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/usecase/readmodel"
)

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/queries/purchase_mock.go -package=queries

// RecentLimit caps the unfiltered listing.
const RecentLimit = 500

type PurchaseReadStore interface {
	ListByUser(ctx context.Context, userID string) ([]*readmodel.PurchaseRM, error)
	ListRecent(ctx context.Context, limit int) ([]*readmodel.PurchaseRM, error)
}

// PurchaseQueries is served from the local store on the consumer and
// from the consumer service on the producer.
type PurchaseQueries interface {
	ListByUser(ctx context.Context, userID string) ([]*readmodel.PurchaseRM, error)
	ListRecent(ctx context.Context) ([]*readmodel.PurchaseRM, error)
}

type purchaseQueriesImpl struct {
	store PurchaseReadStore
}

func NewPurchaseQueries(store PurchaseReadStore) PurchaseQueries {
	return &purchaseQueriesImpl{store: store}
}

func (q *purchaseQueriesImpl) ListByUser(ctx context.Context, userID string) ([]*readmodel.PurchaseRM, error) {
	items, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "list purchases by user")
	}
	return nonNil(items), nil
}

func (q *purchaseQueriesImpl) ListRecent(ctx context.Context) ([]*readmodel.PurchaseRM, error) {
	items, err := q.store.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, errs.Wrap(err, "list recent purchases")
	}
	if len(items) > RecentLimit {
		items = items[:RecentLimit]
	}
	return nonNil(items), nil
}

func nonNil(items []*readmodel.PurchaseRM) []*readmodel.PurchaseRM {
	if items == nil {
		return []*readmodel.PurchaseRM{}
	}
	return items
}
