// Package client holds all cli commands related to clients
// e.g., trench client ...
package client

import (
	"github.com/spf13/cobra"
)

// ClientCmd returns the client parent command
func ClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
