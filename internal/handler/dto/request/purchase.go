package request

import (
	"time"

	"purchase-pipeline/internal/usecase/commands"
)

// BuyRequest rejects a string price at binding time; business rules run in the domain.
type BuyRequest struct {
	Username string  `json:"username" binding:"required"`
	UserID   string  `json:"userid" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

func (r BuyRequest) ToInput() commands.SubmitPurchaseInput {
	return commands.SubmitPurchaseInput{
		Username: r.Username,
		UserID:   r.UserID,
		Price:    r.Price,
	}
}

type DirectWriteRequest struct {
	Username  string     `json:"username" binding:"required"`
	UserID    string     `json:"userid" binding:"required"`
	Price     float64    `json:"price" binding:"required,gt=0"`
	Timestamp *time.Time `json:"timestamp"`
}

func (r DirectWriteRequest) ToInput() commands.DirectWriteInput {
	return commands.DirectWriteInput{
		Username:  r.Username,
		UserID:    r.UserID,
		Price:     r.Price,
		Timestamp: r.Timestamp,
	}
}
