package models

import (
	"time"

	"github.com/thenoetrevino/trench/internal/types"
)

// TimeEntry is a record of hours worked against a job
type TimeEntry struct {
	ID          types.TimeEntryID `json:"id"`
	JobID       types.JobID       `json:"job_id"`
	HoursWorked float64           `json:"hours_worked"`
	DateLogged  string            `json:"date_logged"`
}

// LoggedAt parses DateLogged in the local time zone
func (e *TimeEntry) LoggedAt() (time.Time, error) {
	return time.ParseInLocation(DateLoggedLayout, e.DateLogged, time.Local)
}
