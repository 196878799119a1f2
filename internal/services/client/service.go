package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/trench/internal/events"
	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/validation"
)

// Service defines all client-related business operations
type Service interface {
	// Read operations
	ListClients(ctx context.Context) ([]*models.Client, error)

	// Write operations
	AddClient(ctx context.Context, req AddClientRequest) (*models.Client, error)
}

// AddClientRequest encapsulates data for creating a client
type AddClientRequest struct {
	Name          string
	ContactNumber string
	Email         string
}

// repository defines the data access methods needed by the client service
// This interface is private to the service layer
type repository interface {
	AddClient(ctx context.Context, name, contactNumber, email string) (*models.Client, error)
	ListClients(ctx context.Context) ([]*models.Client, error)
}

// service implements Service interface with private repository
type service struct {
	repo        repository
	eventClient events.EventPublisher
}

// NewService creates a new client service. eventClient may be nil.
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// ListClients retrieves all clients
func (s *service) ListClients(ctx context.Context) ([]*models.Client, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// AddClient validates and inserts a client
func (s *service) AddClient(ctx context.Context, req AddClientRequest) (*models.Client, error) {
	if err := validateAddClient(req); err != nil {
		slog.Debug("client rejected", "error", err)
		return nil, err
	}

	c, err := s.repo.AddClient(ctx, req.Name, req.ContactNumber, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to add client: %w", err)
	}

	slog.Info("client added", "client_id", c.ID)
	events.Publish(s.eventClient, events.Event{
		Type:     events.EventClientAdded,
		EntityID: c.ID.ToInt(),
		Summary:  c.Name,
	})

	return c, nil
}

func validateAddClient(req AddClientRequest) error {
	v := validation.Violations{}
	v.Required("name", req.Name, ErrEmptyName)
	v.Required("contact_number", req.ContactNumber, ErrEmptyContact)
	v.Required("email", req.Email, ErrEmptyEmail)
	return v.Err()
}
