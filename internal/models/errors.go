package models

import "errors"

// Domain-specific errors for parsing user-supplied values
var (
	// ErrInvalidID indicates an id that is not a positive integer
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrInvalidNumber indicates an amount or hour count that is not a number
	ErrInvalidNumber = errors.New("not a valid number")
)
