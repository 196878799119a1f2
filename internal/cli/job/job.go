// Package job holds all cli commands related to jobs
// e.g., trench job ...
package job

import (
	"github.com/spf13/cobra"
)

// JobCmd returns the job parent command
func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage jobs",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
