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
	invoiceservice "github.com/thenoetrevino/trench/internal/services/invoice"
)

// GenerateCmd returns the invoice generate subcommand
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an invoice for a job",
		Long: `Generate an unpaid invoice against a job.

Examples:
  # Generate invoice (human-readable output)
  trench invoice generate --job=1 --amount=850 --due=2025-06-01 --description="Progress billing"

  # Quiet mode for bash capture
  INVOICE_ID=$(trench invoice generate --job=$JOB_ID --amount=1200.50 --due=2025-07-01 --description="Final" --quiet)
`,
		RunE: handler.Command(&generateHandler{}, parseGenerateFlags),
	}

	// Required flags
	cmd.Flags().Int("job", 0, "Job ID (required)")
	cmd.Flags().Float64("amount", 0, "Amount, greater than 0 (required)")
	cmd.Flags().String("due", "", "Due date (required)")
	cmd.Flags().String("description", "", "Description (required)")

	// Agent-friendly flags
	handler.AddOutputFlags(cmd)

	return cmd
}

// generateHandler implements handler.Handler for invoice creation
type generateHandler struct{}

// Execute implements the Handler interface
func (h *generateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	jobID, err := handler.NewFlagParser(args.GetCmd()).ParseJobID("job")
	if err != nil {
		return nil, cli.UsageError(err)
	}

	inv, err := cliInstance.App.InvoiceService.GenerateInvoice(ctx, invoiceservice.GenerateInvoiceRequest{
		JobID:       jobID,
		Amount:      args.GetFloat64("amount", 0),
		DueDate:     args.GetString("due", ""),
		Description: args.GetString("description", ""),
	})
	if err != nil {
		return nil, err
	}

	return &generateResult{Invoice: inv, money: cliInstance.Money}, nil
}

// generateResult represents the result of invoice creation
type generateResult struct {
	Invoice *models.Invoice `json:"invoice"`
	money   render.Money
}

// GetID implements the GetID interface for quiet mode output
func (r *generateResult) GetID() int {
	return r.Invoice.ID.ToInt()
}

// WriteHuman implements cli.HumanWriter
func (r *generateResult) WriteHuman(w io.Writer) error {
	msg := fmt.Sprintf("Invoice generated successfully (ID %d): %s for job %d, due %s",
		r.Invoice.ID, r.money.Format(r.Invoice.Amount), r.Invoice.JobID, r.Invoice.DueDate)
	_, err := fmt.Fprintln(w, styles.Apply(w, styles.SuccessStyle, msg))
	return err
}

func parseGenerateFlags(cmd *cobra.Command) error {
	return handler.RequireFlags(cmd, "job", "amount", "due", "description")
}
