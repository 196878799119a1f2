package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
)

// TimeEntryRepo is pure data access for the time_tracking table
type TimeEntryRepo struct {
	db  querier
	now func() time.Time
}

// Create inserts a time entry stamped with the current local time
func (r *TimeEntryRepo) Create(ctx context.Context, jobID types.JobID, hoursWorked float64) (*models.TimeEntry, error) {
	dateLogged := r.now().Local().Format(models.DateLoggedLayout)

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO time_tracking (job_id, hours_worked, date_logged) VALUES (?, ?, ?)`,
		jobID, hoursWorked, dateLogged,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert time entry: %w", err)
	}

	id, err := insertedID(result)
	if err != nil {
		return nil, err
	}

	return &models.TimeEntry{
		ID:          types.TimeEntryIDFromInt(id),
		JobID:       jobID,
		HoursWorked: hoursWorked,
		DateLogged:  dateLogged,
	}, nil
}

// GetAll returns every time entry in insertion order
func (r *TimeEntryRepo) GetAll(ctx context.Context) ([]*models.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT time_id, job_id, hours_worked, date_logged
		FROM time_tracking
		ORDER BY time_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.TimeEntry{}
	for rows.Next() {
		var (
			e          models.TimeEntry
			jobID      sql.NullInt64
			hours      sql.NullFloat64
			dateLogged sql.NullString
		)
		if err := rows.Scan(&e.ID, &jobID, &hours, &dateLogged); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		e.JobID = types.JobID(jobID.Int64)
		e.HoursWorked = NullFloatToFloat(hours)
		e.DateLogged = NullStringToString(dateLogged)
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
