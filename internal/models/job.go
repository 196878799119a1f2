package models

import "github.com/thenoetrevino/trench/internal/types"

// Job is a unit of work performed for a client.
// Dates are stored as entered (the shells ask for YYYY-MM-DD).
type Job struct {
	ID        types.JobID    `json:"id"`
	ClientID  types.ClientID `json:"client_id"`
	JobType   string         `json:"job_type"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Status    string         `json:"status"`
}
