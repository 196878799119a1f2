package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
)

// ClientRepo is pure data access for the clients table.
// No validation happens here; that belongs to the client service.
type ClientRepo struct {
	db querier
}

// Create inserts a client and returns it with its assigned id
func (r *ClientRepo) Create(ctx context.Context, name, contactNumber, email string) (*models.Client, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (name, contact_number, email) VALUES (?, ?, ?)`,
		name, contactNumber, email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	id, err := insertedID(result)
	if err != nil {
		return nil, err
	}

	return &models.Client{
		ID:            types.ClientIDFromInt(id),
		Name:          name,
		ContactNumber: contactNumber,
		Email:         email,
	}, nil
}

// GetAll returns every client in insertion order
func (r *ClientRepo) GetAll(ctx context.Context) ([]*models.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT client_id, name, contact_number, email FROM clients ORDER BY client_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []*models.Client{}
	for rows.Next() {
		var (
			c                     models.Client
			name, contact, email sql.NullString
		)
		if err := rows.Scan(&c.ID, &name, &contact, &email); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		c.Name = NullStringToString(name)
		c.ContactNumber = NullStringToString(contact)
		c.Email = NullStringToString(email)
		clients = append(clients, &c)
	}

	return clients, rows.Err()
}
