// Package app wires the store, the event bus and the services together
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/trench/internal/database"
	"github.com/thenoetrevino/trench/internal/events"
	clientservice "github.com/thenoetrevino/trench/internal/services/client"
	invoiceservice "github.com/thenoetrevino/trench/internal/services/invoice"
	jobservice "github.com/thenoetrevino/trench/internal/services/job"
	"github.com/thenoetrevino/trench/internal/services/timelog"
)

// App holds all application services and provides dependency injection.
// It owns the database handle and closes it in Close.
type App struct {
	db *sql.DB

	// Repository layer (direct database access)
	repo *database.Repository

	// Event system for the audit log
	eventClient events.EventPublisher
	metrics     *events.Metrics

	// Service layer (business logic)
	ClientService  clientservice.Service
	JobService     jobservice.Service
	InvoiceService invoiceservice.Service
	TimeService    timelog.Service
}

// New creates a new App over an initialized database. The App takes
// ownership of db.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	eventClient := cfg.eventClient
	if eventClient == nil {
		eventClient = events.NewBus()
		logger := cfg.logger
		if logger == nil {
			logger = slog.Default()
		}
		if err := events.AttachAuditLog(eventClient, logger); err != nil {
			slog.Warn("audit log disabled", "error", err)
		}
	}

	metrics := events.NewMetrics()
	if err := events.AttachMetrics(eventClient, metrics); err != nil {
		slog.Warn("write metrics disabled", "error", err)
	}

	repo := database.NewRepository(db, database.WithClock(cfg.now))

	return &App{
		db:             db,
		repo:           repo,
		eventClient:    eventClient,
		metrics:        metrics,
		ClientService:  clientservice.NewService(repo, eventClient),
		JobService:     jobservice.NewService(repo, eventClient),
		InvoiceService: invoiceservice.NewService(repo, eventClient),
		TimeService:    timelog.NewService(repo, eventClient),
	}
}

// Open initializes the database at path and builds an App on it
func Open(ctx context.Context, path string, dbOpts database.Options, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, path, dbOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return New(db, opts...), nil
}

// Repo returns the underlying repository for direct database access.
// Only the seed command uses it, for its transaction.
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Events returns the publisher services send to
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Metrics returns the counts of writes made through the services
func (a *App) Metrics() events.MetricsSnapshot {
	return a.metrics.Snapshot()
}

// Close logs a summary of the run, stops the event bus and releases the
// database handle
func (a *App) Close() error {
	snap := a.metrics.Snapshot()
	slog.Info("session summary",
		"writes", snap.Total(),
		"clients_added", snap.ClientsAdded,
		"jobs_added", snap.JobsAdded,
		"invoices_generated", snap.InvoicesGenerated,
		"invoices_paid", snap.InvoicesPaid,
		"time_logged", snap.TimeLogged,
		"uptime", snap.Uptime)

	var errs []error
	if a.eventClient != nil {
		errs = append(errs, a.eventClient.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}
