package timelog

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/cli/handler"
	"github.com/thenoetrevino/trench/internal/cli/styles"
	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/render"
	timeservice "github.com/thenoetrevino/trench/internal/services/timelog"
)

// LogCmd returns the time log subcommand
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log hours worked on a job",
		Long: `Log hours worked on a job. The entry is stamped with the current local time.

Examples:
  trench time log --job=1 --hours=7.5
  trench time log --job=1 --hours=8 --quiet
`,
		RunE: handler.Command(handler.HandlerFunc(runLog), parseLogFlags),
	}

	cmd.Flags().Int("job", 0, "Job ID (required)")
	cmd.Flags().Float64("hours", 0, "Hours worked, greater than 0 (required)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runLog(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	jobID, err := handler.NewFlagParser(args.GetCmd()).ParseJobID("job")
	if err != nil {
		return nil, cli.UsageError(err)
	}

	entry, err := cliInstance.App.TimeService.LogTime(ctx, timeservice.LogTimeRequest{
		JobID:       jobID,
		HoursWorked: args.GetFloat64("hours", 0),
	})
	if err != nil {
		return nil, err
	}
	return &logResult{Entry: entry}, nil
}

type logResult struct {
	Entry *models.TimeEntry `json:"time_entry"`
}

// GetID implements the GetID interface for quiet mode output
func (r *logResult) GetID() int {
	return r.Entry.ID.ToInt()
}

// WriteHuman implements cli.HumanWriter
func (r *logResult) WriteHuman(w io.Writer) error {
	msg := fmt.Sprintf("Logged %sh on job %d at %s (ID %d)",
		render.Hours(r.Entry.HoursWorked), r.Entry.JobID, r.Entry.DateLogged, r.Entry.ID)
	_, err := fmt.Fprintln(w, styles.Apply(w, styles.SuccessStyle, msg))
	return err
}

func parseLogFlags(cmd *cobra.Command) error {
	return handler.RequireFlags(cmd, "job", "hours")
}
