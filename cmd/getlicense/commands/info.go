package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show everything known about a license",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := c.app.Info(cmd.Context(), c.opts, args[0])
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).licenseInfo(info)
		},
	}
}

func (c *CLI) newShowPlaceholdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-placeholders <id>",
		Short: "Show the placeholders of a license and how to fill them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := c.app.Info(cmd.Context(), c.opts, args[0])
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).placeholderTable(info)
		},
	}
}
