package entities

import (
	"errors"
	"fmt"

	"mecanica_workorders/internal/domain/valueobjects"
)

// Domain errors raised synchronously by the work order aggregate and its items.
// Callers match them with errors.Is; messages carry the offending ids.
var (
	ErrInvalidAmount           = valueobjects.ErrInvalidAmount
	ErrInvalidQuantity         = errors.New("invalid quantity")
	ErrInvalidPrice            = errors.New("invalid price")
	ErrInvalidTransition       = errors.New("invalid transition")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidOperation        = errors.New("invalid operation")
	ErrDuplicateService        = errors.New("service already added to work order")
	ErrServiceNotFound         = errors.New("service not found in work order")
	ErrPartNotFound            = errors.New("part not found in work order")
	ErrPartNotApproved         = errors.New("part not approved")
	ErrInvalidDescription      = errors.New("invalid description")
	ErrInvalidReference        = errors.New("invalid reference")
)

// StatusTransitionError reports a rejected order-level status change.
type StatusTransitionError struct {
	From WorkOrderStatus
	To   WorkOrderStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidStatusTransition.Error(), e.From, e.To)
}

func (e *StatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}
