package domain

import "errors"

var (
	// ErrNotFound — no order with the requested uid exists.
	ErrNotFound = errors.New("order not found")
	// ErrDuplicate — an order with this uid already exists. The storage
	// layer's uniqueness constraint is the authoritative source of this
	// error; the cache only provides a fast pre-check.
	ErrDuplicate = errors.New("order already exists")
)

// ValidationError reports the first field group that failed validation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
