package invoice

import "errors"

// Domain errors for invoice service
var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrEmptyDueDate      = errors.New("due date cannot be empty")
	ErrEmptyDescription  = errors.New("description cannot be empty")
)
