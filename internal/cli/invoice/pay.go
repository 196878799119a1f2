package invoice

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/trench/internal/cli"
	"github.com/thenoetrevino/trench/internal/cli/handler"
	"github.com/thenoetrevino/trench/internal/cli/styles"
	"github.com/thenoetrevino/trench/internal/types"
)

// PayCmd returns the invoice pay subcommand
func PayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Mark an invoice as paid",
		Long: `Mark an invoice as paid. Paying an unknown invoice changes nothing
and is not an error; the output reports whether an invoice matched.

Examples:
  trench invoice pay --id=3
  trench invoice pay --id=3 --json
`,
		RunE: handler.Command(handler.HandlerFunc(runPay), parsePayFlags),
	}

	cmd.Flags().Int("id", 0, "Invoice ID (required)")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runPay(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	id, err := handler.NewFlagParser(args.GetCmd()).ParseInvoiceID("id")
	if err != nil {
		return nil, cli.UsageError(err)
	}

	matched, err := cliInstance.App.InvoiceService.MarkPaid(ctx, id)
	if err != nil {
		return nil, err
	}
	return &payResult{ID: id, Matched: matched}, nil
}

type payResult struct {
	ID      types.InvoiceID `json:"id"`
	Matched bool            `json:"matched"`
}

// GetID implements the GetID interface for quiet mode output
func (r *payResult) GetID() int {
	return r.ID.ToInt()
}

// WriteHuman implements cli.HumanWriter
func (r *payResult) WriteHuman(w io.Writer) error {
	if !r.Matched {
		msg := fmt.Sprintf("No invoice with ID %d; nothing changed", r.ID)
		_, err := fmt.Fprintln(w, styles.Apply(w, styles.WarningStyle, msg))
		return err
	}
	msg := fmt.Sprintf("Invoice %d marked as paid", r.ID)
	_, err := fmt.Fprintln(w, styles.Apply(w, styles.SuccessStyle, msg))
	return err
}

func parsePayFlags(cmd *cobra.Command) error {
	return handler.RequireFlags(cmd, "id")
}
