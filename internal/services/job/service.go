package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/trench/internal/events"
	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
	"github.com/thenoetrevino/trench/internal/validation"
)

// Service defines all job-related business operations
type Service interface {
	// Read operations
	ListJobs(ctx context.Context) ([]*models.Job, error)

	// Write operations
	AddJob(ctx context.Context, req AddJobRequest) (*models.Job, error)
}

// AddJobRequest encapsulates data for creating a job. The client is not
// checked for existence.
type AddJobRequest struct {
	ClientID  types.ClientID
	JobType   string
	StartDate string
	EndDate   string
}

// repository defines the data access methods needed by the job service
type repository interface {
	AddJob(ctx context.Context, clientID types.ClientID, jobType, startDate, endDate string) (*models.Job, error)
	ListJobs(ctx context.Context) ([]*models.Job, error)
}

type service struct {
	repo        repository
	eventClient events.EventPublisher
}

// NewService creates a new job service. eventClient may be nil.
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// ListJobs retrieves all jobs
func (s *service) ListJobs(ctx context.Context) ([]*models.Job, error) {
	jobs, err := s.repo.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// AddJob validates and inserts a job in the Scheduled state
func (s *service) AddJob(ctx context.Context, req AddJobRequest) (*models.Job, error) {
	if err := validateAddJob(req); err != nil {
		slog.Debug("job rejected", "client_id", req.ClientID, "error", err)
		return nil, err
	}

	j, err := s.repo.AddJob(ctx, req.ClientID, req.JobType, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to add job: %w", err)
	}

	slog.Info("job added", "job_id", j.ID, "client_id", j.ClientID)
	events.Publish(s.eventClient, events.Event{
		Type:     events.EventJobAdded,
		EntityID: j.ID.ToInt(),
		Summary:  j.JobType,
	})

	return j, nil
}

func validateAddJob(req AddJobRequest) error {
	v := validation.Violations{}
	v.Required("job_type", req.JobType, ErrEmptyJobType)
	v.Required("start_date", req.StartDate, ErrEmptyStartDate)
	v.Required("end_date", req.EndDate, ErrEmptyEndDate)
	return v.Err()
}
