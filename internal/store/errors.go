package store

import (
	"fmt"

	"tableside/internal/domain"
)

// ValidationError covers missing or malformed input. The HTTP layer maps
// it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError covers unknown ids. The HTTP layer maps it to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// InvalidTransitionError covers illegal order status changes. The HTTP
// layer maps it to 400.
type InvalidTransitionError struct {
	From domain.OrderStatus
	To   domain.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("Cannot change order status from %s to %s", e.From, e.To)
}
