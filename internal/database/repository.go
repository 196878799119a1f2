package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
)

// Repository provides a unified interface to all data operations.
// It composes the per-table repositories using struct embedding.
type Repository struct {
	*ClientRepo
	*JobRepo
	*InvoiceRepo
	*TimeEntryRepo

	db  *sql.DB
	now func() time.Time
}

// RepositoryOption configures a Repository
type RepositoryOption func(*Repository)

// WithClock replaces time.Now as the source of time_tracking.date_logged
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, opts ...RepositoryOption) *Repository {
	r := &Repository{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	r.bind(db)
	return r
}

func (r *Repository) bind(q querier) {
	r.ClientRepo = &ClientRepo{db: q}
	r.JobRepo = &JobRepo{db: q}
	r.InvoiceRepo = &InvoiceRepo{db: q}
	r.TimeEntryRepo = &TimeEntryRepo{db: q, now: r.now}
}

// RunInTx runs fn with a Repository whose statements all belong to one
// transaction. The transaction commits when fn returns nil.
func (r *Repository) RunInTx(ctx context.Context, fn func(tx *Repository) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		scoped := &Repository{db: r.db, now: r.now}
		scoped.bind(tx)
		return fn(scoped)
	})
}

// Wrapper methods for ClientRepo
func (r *Repository) AddClient(ctx context.Context, name, contactNumber, email string) (*models.Client, error) {
	return r.ClientRepo.Create(ctx, name, contactNumber, email)
}

func (r *Repository) ListClients(ctx context.Context) ([]*models.Client, error) {
	return r.ClientRepo.GetAll(ctx)
}

// Wrapper methods for JobRepo
func (r *Repository) AddJob(ctx context.Context, clientID types.ClientID, jobType, startDate, endDate string) (*models.Job, error) {
	return r.JobRepo.Create(ctx, clientID, jobType, startDate, endDate)
}

func (r *Repository) ListJobs(ctx context.Context) ([]*models.Job, error) {
	return r.JobRepo.GetAll(ctx)
}

// Wrapper methods for InvoiceRepo
func (r *Repository) GenerateInvoice(ctx context.Context, jobID types.JobID, amount float64, dueDate, description string) (*models.Invoice, error) {
	return r.InvoiceRepo.Create(ctx, jobID, amount, dueDate, description)
}

func (r *Repository) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	return r.InvoiceRepo.GetAll(ctx)
}

func (r *Repository) MarkInvoicePaid(ctx context.Context, id types.InvoiceID) (bool, error) {
	return r.InvoiceRepo.MarkPaid(ctx, id)
}

// Wrapper methods for TimeEntryRepo
func (r *Repository) LogTime(ctx context.Context, jobID types.JobID, hoursWorked float64) (*models.TimeEntry, error) {
	return r.TimeEntryRepo.Create(ctx, jobID, hoursWorked)
}

func (r *Repository) ListTimeEntries(ctx context.Context) ([]*models.TimeEntry, error) {
	return r.TimeEntryRepo.GetAll(ctx)
}
