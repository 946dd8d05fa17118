package purchase

import "purchase-pipeline/internal/pkg/errs"

var (
	// ErrValidation marks every business-rule rejection so the boundary can map it to 400.
	ErrValidation = errs.New("purchase validation failed")
	// ErrDecode marks a stream payload that cannot be turned into a Purchase.
	ErrDecode = errs.New("purchase event decode failed")

	ErrEmptyUsername = errs.New("username is required")
	ErrEmptyUserID   = errs.New("userid is required")
	ErrInvalidPrice  = errs.New("price must be a positive number")
)
