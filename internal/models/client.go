package models

import "github.com/thenoetrevino/trench/internal/types"

// Client represents a customer of the excavation business
type Client struct {
	ID            types.ClientID `json:"id"`
	Name          string         `json:"name"`
	ContactNumber string         `json:"contact_number"`
	Email         string         `json:"email"`
}
