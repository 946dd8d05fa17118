package response

import (
	"time"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PurchaseResponse struct {
	ID        string    `json:"id,omitempty"`
	Username  string    `json:"username"`
	UserID    string    `json:"userid"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

type BuyResponse struct {
	Message  string           `json:"message"`
	Purchase PurchaseResponse `json:"purchase"`
}

// FromDomain has no id: the producer never sees the stored document.
func FromDomain(p *purchase.Purchase) PurchaseResponse {
	return PurchaseResponse{
		Username:  p.Username(),
		UserID:    p.UserID(),
		Price:     p.Price(),
		Timestamp: p.Timestamp(),
	}
}

func FromReadModel(rm *readmodel.PurchaseRM) PurchaseResponse {
	res := PurchaseResponse{
		Username:  rm.Username,
		UserID:    rm.UserID,
		Price:     rm.Price,
		Timestamp: rm.Timestamp,
	}
	if rm.ID != uuid.Nil {
		res.ID = rm.ID.String()
	}
	return res
}

// FromReadModels always returns a non-nil slice so an empty result encodes as [].
func FromReadModels(items []*readmodel.PurchaseRM) []PurchaseResponse {
	res := make([]PurchaseResponse, len(items))
	for i, it := range items {
		res[i] = FromReadModel(it)
	}
	return res
}
