// Package timelog records hours worked against jobs
package timelog

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

// Service defines all time tracking business operations
type Service interface {
	ListTimeEntries(ctx context.Context) ([]*models.TimeEntry, error)
	LogTime(ctx context.Context, req LogTimeRequest) (*models.TimeEntry, error)
}

// LogTimeRequest encapsulates data for a time entry. The timestamp is
// assigned by the store at insertion.
type LogTimeRequest struct {
	JobID       types.JobID
	HoursWorked float64
}

type repository interface {
	LogTime(ctx context.Context, jobID types.JobID, hoursWorked float64) (*models.TimeEntry, error)
	ListTimeEntries(ctx context.Context) ([]*models.TimeEntry, error)
}

type service struct {
	repo        repository
	eventClient events.EventPublisher
}

// NewService creates a new time tracking service. eventClient may be nil.
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

func (s *service) ListTimeEntries(ctx context.Context) ([]*models.TimeEntry, error) {
	entries, err := s.repo.ListTimeEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return entries, nil
}

func (s *service) LogTime(ctx context.Context, req LogTimeRequest) (*models.TimeEntry, error) {
	v := validation.Violations{}
	v.PositiveFloat("hours_worked", req.HoursWorked, ErrNonPositiveHours)
	if err := v.Err(); err != nil {
		slog.Debug("time entry rejected", "job_id", req.JobID, "error", err)
		return nil, err
	}

	entry, err := s.repo.LogTime(ctx, req.JobID, req.HoursWorked)
	if err != nil {
		return nil, fmt.Errorf("failed to log time: %w", err)
	}

	slog.Info("time logged", "time_id", entry.ID, "job_id", entry.JobID, "hours", entry.HoursWorked)
	events.Publish(s.eventClient, events.Event{
		Type:     events.EventTimeLogged,
		EntityID: entry.ID.ToInt(),
		Summary:  strconv.FormatFloat(entry.HoursWorked, 'f', -1, 64) + "h",
	})

	return entry, nil
}
