package job

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/cli/handler"
	"github.com/thenoetrevino/trench/internal/cli/styles"
	"github.com/thenoetrevino/trench/internal/models"
	jobservice "github.com/thenoetrevino/trench/internal/services/job"
)

// AddCmd returns the job add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a new job for a client",
		Long: `Add a job for a client. New jobs always start as Scheduled.
The client ID is not checked unless foreign keys are enabled in the config.

Examples:
  # Add job (human-readable output)
  trench job add --client=1 --type="Trenching" --start=2025-05-01 --end=2025-05-09

  # Quiet mode for bash capture
  JOB_ID=$(trench job add --client=$CLIENT_ID --type="Grading" --start=2025-06-02 --end=2025-06-04 --quiet)
`,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	// Required flags
	cmd.Flags().Int("client", 0, "Client ID (required)")
	cmd.Flags().String("type", "", "Job type, e.g. Trenching (required)")
	cmd.Flags().String("start", "", "Start date (required)")
	cmd.Flags().String("end", "", "End date (required)")

	// Agent-friendly flags
	handler.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for job creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	clientID, err := handler.NewFlagParser(args.GetCmd()).ParseClientID("client")
	if err != nil {
		return nil, cli.UsageError(err)
	}

	j, err := cliInstance.App.JobService.AddJob(ctx, jobservice.AddJobRequest{
		ClientID:  clientID,
		JobType:   args.GetString("type", ""),
		StartDate: args.GetString("start", ""),
		EndDate:   args.GetString("end", ""),
	})
	if err != nil {
		return nil, err
	}

	return &addResult{Job: j}, nil
}

// addResult represents the result of job creation
type addResult struct {
	Job *models.Job `json:"job"`
}

// GetID implements the GetID interface for quiet mode output
func (r *addResult) GetID() int {
	return r.Job.ID.ToInt()
}

// WriteHuman implements cli.HumanWriter
func (r *addResult) WriteHuman(w io.Writer) error {
	msg := fmt.Sprintf("Job added successfully (ID %d): %s for client %d, %s", r.Job.ID, r.Job.JobType, r.Job.ClientID, r.Job.Status)
	_, err := fmt.Fprintln(w, styles.Apply(w, styles.SuccessStyle, msg))
	return err
}

func parseAddFlags(cmd *cobra.Command) error {
	return handler.RequireFlags(cmd, "client", "type", "start", "end")
}
