package huhforms

import (
	"fmt"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
)

// JobInput holds the values collected by the add job form
type JobInput struct {
	ClientID  types.ClientID
	JobType   string
	StartDate string
	EndDate   string
}

// CreateJobForm creates a huh form for scheduling a job for one of clients
func CreateJobForm(in *JobInput, clients []*models.Client) *huh.Form {
	fields := []huh.Field{
		huh.NewSelect[types.ClientID]().
			Key("client").
			Title("Client").
			Options(ClientOptions(clients)...).
			Value(&in.ClientID),

		huh.NewInput().
			Key("type").
			Title("Job Type").
			Placeholder("Trenching, grading, drainage...").
			Value(&in.JobType),

		huh.NewInput().
			Key("start").
			Title("Start Date").
			Placeholder("YYYY-MM-DD").
			Value(&in.StartDate),

		huh.NewInput().
			Key("end").
			Title("End Date").
			Placeholder("YYYY-MM-DD").
			Value(&in.EndDate),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// JobOptions returns one select option per job
func JobOptions(jobs []*models.Job) []huh.Option[types.JobID] {
	options := make([]huh.Option[types.JobID], len(jobs))
	for i, j := range jobs {
		label := fmt.Sprintf("#%d %s (client %d, %s to %s)", j.ID, j.JobType, j.ClientID, j.StartDate, j.EndDate)
		options[i] = huh.NewOption(label, j.ID)
	}
	return options
}

// validateNumber accepts anything cli.ParseNumber accepts. Range checks
// happen in the services.
func validateNumber(s string) error {
	_, err := cli.ParseNumber(s)
	return err
}
