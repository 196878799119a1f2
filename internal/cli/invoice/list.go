package invoice

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

// ListCmd returns the invoice list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all invoices",
		Long: `List all invoices with their paid status.

Examples:
  trench invoice list
  trench invoice list --json
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

	invoices, err := cliInstance.App.InvoiceService.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	return &listResult{Invoices: invoices, money: cliInstance.Money}, nil
}

type listResult struct {
	Invoices []*models.Invoice `json:"invoices"`
	money    render.Money
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *listResult) GetIDs() []int {
	ids := make([]int, len(r.Invoices))
	for i, inv := range r.Invoices {
		ids[i] = inv.ID.ToInt()
	}
	return ids
}

// WriteHuman implements cli.HumanWriter
func (r *listResult) WriteHuman(w io.Writer) error {
	return styles.WriteTable(w, render.Invoices(r.Invoices, r.money))
}
