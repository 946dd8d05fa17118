package purchase

import (
	"math"
	"strings"

	"purchase-pipeline/internal/pkg/errs"
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Username{}, errs.Mark(ErrEmptyUsername, ErrValidation)
	}
	return Username{value: t}, nil
}

func (u Username) String() string { return u.value }

// UserID is the partition key on the stream and the lookup key in the store.
type UserID struct {
	value string
}

func NewUserID(s string) (UserID, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return UserID{}, errs.Mark(ErrEmptyUserID, ErrValidation)
	}
	return UserID{value: t}, nil
}

func (u UserID) String() string { return u.value }

type Price struct {
	value float64
}

func NewPrice(v float64) (Price, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Price{}, errs.Mark(ErrInvalidPrice, ErrValidation)
	}
	return Price{value: v}, nil
}

func (p Price) Value() float64 { return p.value }
