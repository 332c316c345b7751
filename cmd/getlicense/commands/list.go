package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [ids...]",
		Short: "List cached licenses",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.List(cmd.Context(), c.opts, args)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).licenseList(entries)
		},
	}
}

func (c *CLI) newDetailedListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detailed-list [ids...]",
		Short: "List cached licenses with their rules",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.List(cmd.Context(), c.opts, args)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).detailedList(entries)
		},
	}
}
