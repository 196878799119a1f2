package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/thenoetrevino/trench/internal/events"
	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
	"github.com/thenoetrevino/trench/internal/validation"
)

// Service defines all invoice-related business operations
type Service interface {
	// Read operations
	ListInvoices(ctx context.Context) ([]*models.Invoice, error)

	// Write operations
	GenerateInvoice(ctx context.Context, req GenerateInvoiceRequest) (*models.Invoice, error)
	// MarkPaid reports whether an invoice matched id. An unknown id is
	// not an error.
	MarkPaid(ctx context.Context, id types.InvoiceID) (bool, error)
}

// GenerateInvoiceRequest encapsulates data for creating an invoice
type GenerateInvoiceRequest struct {
	JobID       types.JobID
	Amount      float64
	DueDate     string
	Description string
}

// repository defines the data access methods needed by the invoice service
type repository interface {
	GenerateInvoice(ctx context.Context, jobID types.JobID, amount float64, dueDate, description string) (*models.Invoice, error)
	ListInvoices(ctx context.Context) ([]*models.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id types.InvoiceID) (bool, error)
}

type service struct {
	repo        repository
	eventClient events.EventPublisher
}

// NewService creates a new invoice service. eventClient may be nil.
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// ListInvoices retrieves all invoices
func (s *service) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	invoices, err := s.repo.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// GenerateInvoice validates and inserts an unpaid invoice
func (s *service) GenerateInvoice(ctx context.Context, req GenerateInvoiceRequest) (*models.Invoice, error) {
	if err := validateGenerateInvoice(req); err != nil {
		slog.Debug("invoice rejected", "job_id", req.JobID, "error", err)
		return nil, err
	}

	inv, err := s.repo.GenerateInvoice(ctx, req.JobID, req.Amount, req.DueDate, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice: %w", err)
	}

	slog.Info("invoice generated", "invoice_id", inv.ID, "job_id", inv.JobID, "amount", inv.Amount)
	events.Publish(s.eventClient, events.Event{
		Type:     events.EventInvoiceGenerated,
		EntityID: inv.ID.ToInt(),
		Summary:  strconv.FormatFloat(inv.Amount, 'f', 2, 64),
	})

	return inv, nil
}

// MarkPaid sets the paid flag on an invoice
func (s *service) MarkPaid(ctx context.Context, id types.InvoiceID) (bool, error) {
	matched, err := s.repo.MarkInvoicePaid(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark invoice paid: %w", err)
	}

	if !matched {
		slog.Debug("mark paid matched no invoice", "invoice_id", id)
		return false, nil
	}

	slog.Info("invoice paid", "invoice_id", id)
	events.Publish(s.eventClient, events.Event{
		Type:     events.EventInvoicePaid,
		EntityID: id.ToInt(),
	})

	return true, nil
}

func validateGenerateInvoice(req GenerateInvoiceRequest) error {
	v := validation.Violations{}
	v.PositiveFloat("amount", req.Amount, ErrNonPositiveAmount)
	v.Required("due_date", req.DueDate, ErrEmptyDueDate)
	v.Required("description", req.Description, ErrEmptyDescription)
	return v.Err()
}
