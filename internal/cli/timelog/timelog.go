// Package timelog holds all cli commands related to time tracking
// e.g., trench time ...
package timelog

import (
	"github.com/spf13/cobra"
)

// TimeCmd returns the time parent command
func TimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Track hours worked on jobs",
	}

	cmd.AddCommand(LogCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
