package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseRM is a stored purchase document as returned by the read APIs.
type PurchaseRM struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	UserID    string    `json:"userid"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}
