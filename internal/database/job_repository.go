package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
)

// JobRepo is pure data access for the jobs table
type JobRepo struct {
	db querier
}

// Create inserts a job. Status is always models.JobStatusScheduled.
func (r *JobRepo) Create(ctx context.Context, clientID types.ClientID, jobType, startDate, endDate string) (*models.Job, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO jobs (client_id, job_type, start_date, end_date, status) VALUES (?, ?, ?, ?, ?)`,
		clientID, jobType, startDate, endDate, models.JobStatusScheduled,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert job: %w", err)
	}

	id, err := insertedID(result)
	if err != nil {
		return nil, err
	}

	return &models.Job{
		ID:        types.JobIDFromInt(id),
		ClientID:  clientID,
		JobType:   jobType,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    models.JobStatusScheduled,
	}, nil
}

// GetAll returns every job in insertion order
func (r *JobRepo) GetAll(ctx context.Context) ([]*models.Job, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT job_id, client_id, job_type, start_date, end_date, status
		FROM jobs
		ORDER BY job_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		var (
			j                                 models.Job
			clientID                          sql.NullInt64
			jobType, start, end, status sql.NullString
		)
		if err := rows.Scan(&j.ID, &clientID, &jobType, &start, &end, &status); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		j.ClientID = types.ClientID(clientID.Int64)
		j.JobType = NullStringToString(jobType)
		j.StartDate = NullStringToString(start)
		j.EndDate = NullStringToString(end)
		j.Status = NullStringToString(status)
		jobs = append(jobs, &j)
	}

	return jobs, rows.Err()
}
