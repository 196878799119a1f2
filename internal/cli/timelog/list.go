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
)

// ListCmd returns the time list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all time entries",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, _ *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	entries, err := cliInstance.App.TimeService.ListTimeEntries(ctx)
	if err != nil {
		return nil, err
	}
	return &listResult{Entries: entries}, nil
}

type listResult struct {
	Entries []*models.TimeEntry `json:"time_entries"`
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *listResult) GetIDs() []int {
	ids := make([]int, len(r.Entries))
	for i, e := range r.Entries {
		ids[i] = e.ID.ToInt()
	}
	return ids
}

// WriteHuman implements cli.HumanWriter
func (r *listResult) WriteHuman(w io.Writer) error {
	return styles.WriteTable(w, render.TimeEntries(r.Entries))
}
