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
	"github.com/thenoetrevino/trench/internal/render"
)

// ListCmd returns the job list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all jobs",
		Long: `List all jobs in the order they were added, with their status.

Examples:
  trench job list
  trench job list --json
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, _ *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	jobs, err := cliInstance.App.JobService.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	return &listResult{Jobs: jobs}, nil
}

type listResult struct {
	Jobs []*models.Job `json:"jobs"`
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *listResult) GetIDs() []int {
	ids := make([]int, len(r.Jobs))
	for i, j := range r.Jobs {
		ids[i] = j.ID.ToInt()
	}
	return ids
}

// WriteHuman implements cli.HumanWriter
func (r *listResult) WriteHuman(w io.Writer) error {
	return styles.WriteTable(w, render.Jobs(r.Jobs))
}
