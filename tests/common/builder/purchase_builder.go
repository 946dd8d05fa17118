//go:build unit || e2e

package builder

import (
	"time"

	"purchase-pipeline/internal/domain/purchase"
	reqdto "purchase-pipeline/internal/handler/dto/request"
	"purchase-pipeline/internal/usecase/commands"
	"purchase-pipeline/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PurchaseBuilder struct {
	Username  string
	UserID    string
	Price     float64
	Timestamp time.Time
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		Username:  "alice",
		UserID:    "u1",
		Price:     19.99,
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PurchaseBuilder) BuildDomain() (*purchase.Purchase, error) {
	return purchase.New(b.Username, b.UserID, b.Price, b.Timestamp)
}

func (b *PurchaseBuilder) MustBuildDomain() *purchase.Purchase {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *PurchaseBuilder) BuildEventPayload() []byte {
	payload, err := b.MustBuildDomain().MarshalEvent()
	if err != nil {
		panic(err)
	}
	return payload
}

func (b *PurchaseBuilder) BuildSubmitInput() commands.SubmitPurchaseInput {
	return commands.SubmitPurchaseInput{
		Username: b.Username,
		UserID:   b.UserID,
		Price:    b.Price,
	}
}

func (b *PurchaseBuilder) BuildBuyRequestDTO() reqdto.BuyRequest {
	return reqdto.BuyRequest{
		Username: b.Username,
		UserID:   b.UserID,
		Price:    b.Price,
	}
}

func (b *PurchaseBuilder) BuildDirectWriteRequestDTO() reqdto.DirectWriteRequest {
	ts := b.Timestamp
	return reqdto.DirectWriteRequest{
		Username:  b.Username,
		UserID:    b.UserID,
		Price:     b.Price,
		Timestamp: &ts,
	}
}

func (b *PurchaseBuilder) BuildReadModel() *readmodel.PurchaseRM {
	return &readmodel.PurchaseRM{
		ID:        uuid.New(),
		Username:  b.Username,
		UserID:    b.UserID,
		Price:     b.Price,
		Timestamp: b.Timestamp,
	}
}

// Fluent builder methods
func (b *PurchaseBuilder) WithUsername(username string) *PurchaseBuilder {
	b.Username = username
	return b
}

func (b *PurchaseBuilder) WithUserID(userID string) *PurchaseBuilder {
	b.UserID = userID
	return b
}

func (b *PurchaseBuilder) WithPrice(price float64) *PurchaseBuilder {
	b.Price = price
	return b
}

func (b *PurchaseBuilder) WithTimestamp(ts time.Time) *PurchaseBuilder {
	b.Timestamp = ts
	return b
}
