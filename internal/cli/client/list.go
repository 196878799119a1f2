package client

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

// ListCmd returns the client list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		Long: `List all clients in the order they were added.

Examples:
  # Human-readable table
  trench client list

  # JSON output for agents
  trench client list --json

  # Quiet mode (one ID per line)
  trench client list --quiet
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

	clients, err := cliInstance.App.ClientService.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	return &listResult{Clients: clients}, nil
}

type listResult struct {
	Clients []*models.Client `json:"clients"`
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *listResult) GetIDs() []int {
	ids := make([]int, len(r.Clients))
	for i, c := range r.Clients {
		ids[i] = c.ID.ToInt()
	}
	return ids
}

// WriteHuman implements cli.HumanWriter
func (r *listResult) WriteHuman(w io.Writer) error {
	return styles.WriteTable(w, render.Clients(r.Clients))
}
