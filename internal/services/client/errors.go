package client

import "errors"

// Domain errors for client service
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrEmptyContact = errors.New("contact number cannot be empty")
	ErrEmptyEmail   = errors.New("email cannot be empty")
)
