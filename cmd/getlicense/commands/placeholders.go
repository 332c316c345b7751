package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSetPlaceholderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-placeholder <key> <value>",
		Short: "Remember a placeholder value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.SetPlaceholder(cmd.Context(), c.opts, args[0], args[1]); err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).placeholderSet(args[0], args[1])
		},
	}
}

func (c *CLI) newGetPlaceholderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-placeholder [key]",
		Short: "Show remembered placeholder values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			values, err := c.app.GetPlaceholders(cmd.Context(), c.opts, key)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).placeholderValues(key, values)
		},
	}
}

func (c *CLI) newClearPlaceholdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-placeholders [keys...]",
		Short: "Forget remembered placeholder values",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleared, err := c.app.ClearPlaceholders(cmd.Context(), c.opts, args)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).placeholdersCleared(cleared)
		},
	}
}
