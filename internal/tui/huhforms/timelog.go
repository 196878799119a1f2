package huhforms

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
)

// TimeInput holds the values collected by the log time form
type TimeInput struct {
	JobID types.JobID
	Hours string
}

// CreateTimeForm creates a huh form for logging hours against one of jobs
func CreateTimeForm(in *TimeInput, jobs []*models.Job) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[types.JobID]().
			Key("job").
			Title("Job").
			Options(JobOptions(jobs)...).
			Value(&in.JobID),

		huh.NewInput().
			Key("hours").
			Title("Hours Worked").
			Placeholder("8").
			Validate(validateNumber).
			Value(&in.Hours),
	))
}
