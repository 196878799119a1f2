// Package invoice holds all cli commands related to invoices
// e.g., trench invoice ...
package invoice

import (
	"github.com/spf13/cobra"
)

// InvoiceCmd returns the invoice parent command
func InvoiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Manage invoices",
	}

	cmd.AddCommand(GenerateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(PayCmd())

	return cmd
}
