package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Synchronize the local license cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Sync(cmd.Context(), c.opts)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).syncReport(report)
		},
	}
}
