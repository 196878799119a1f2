package database

import (
	"context"

	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
)

// ClientReader defines read operations for clients.
type ClientReader interface {
	ListClients(ctx context.Context) ([]*models.Client, error)
}

// ClientWriter defines write operations for clients.
type ClientWriter interface {
	AddClient(ctx context.Context, name, contactNumber, email string) (*models.Client, error)
}

// JobReader defines read operations for jobs.
type JobReader interface {
	ListJobs(ctx context.Context) ([]*models.Job, error)
}

// JobWriter defines write operations for jobs.
type JobWriter interface {
	AddJob(ctx context.Context, clientID types.ClientID, jobType, startDate, endDate string) (*models.Job, error)
}

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	ListInvoices(ctx context.Context) ([]*models.Invoice, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	GenerateInvoice(ctx context.Context, jobID types.JobID, amount float64, dueDate, description string) (*models.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id types.InvoiceID) (bool, error)
}

// TimeEntryReader defines read operations for time tracking.
type TimeEntryReader interface {
	ListTimeEntries(ctx context.Context) ([]*models.TimeEntry, error)
}

// TimeEntryWriter defines write operations for time tracking.
type TimeEntryWriter interface {
	LogTime(ctx context.Context, jobID types.JobID, hoursWorked float64) (*models.TimeEntry, error)
}
