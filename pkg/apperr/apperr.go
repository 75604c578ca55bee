// Package apperr defines sentinel errors shared by repositories, services
// and controllers. Controllers translate them into HTTP statuses: not-found
// to 404, forbidden to 403, validation to 400, capacity and order-state
// violations to 409. Anything else is logged and surfaced as a generic 500.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound signals an unknown item, order or user.
var ErrNotFound = errors.New("not found")

// ErrForbidden signals an operation on a resource owned by someone else.
var ErrForbidden = errors.New("forbidden")

// ErrValidation signals missing or malformed input, rejected before any
// lock is taken.
var ErrValidation = errors.New("validation error")

// ErrCapacity signals a route booking that would exceed remaining group
// capacity. The surrounding transaction is rolled back.
var ErrCapacity = errors.New("insufficient capacity")

// ErrOrderState signals a state transition the order's current status does
// not allow, e.g. cancelling a paid order.
var ErrOrderState = errors.New("cannot transition in current state")

// Validationf wraps ErrValidation with a user-facing detail message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
