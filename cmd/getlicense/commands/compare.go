package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [ids...]",
		Short: "Compare the key rules of licenses side by side",
		Long:  "Compare the key rules of the given licenses, or of every cached license when none are given.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := c.app.Compare(cmd.Context(), c.opts, args)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).comparison(cmp)
		},
	}
}

func (c *CLI) newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find licenses by the rules they carry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			required, _ := cmd.Flags().GetStringSlice("require")
			disallowed, _ := cmd.Flags().GetStringSlice("disallow")

			res, err := c.app.Find(cmd.Context(), c.opts, required, disallowed)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).findResult(res)
		},
	}
	cmd.Flags().StringSliceP("require", "r", nil, "Rule tags a license must carry")
	cmd.Flags().StringSliceP("disallow", "d", nil, "Rule tags a license must not carry")
	return cmd
}
