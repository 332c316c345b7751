package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/getlicense/internal/app"
	"go.trai.ch/getlicense/internal/engine/placeholder"
)

func (c *CLI) newLicenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "license <id>",
		Short: "Write a license with its placeholders filled in",
		Long: "Write a license with its placeholders filled in.\n\n" +
			"Values given on the command line are remembered for later runs, except the year.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string)
			for flag, key := range fillFlags {
				if v, _ := cmd.Flags().GetString(flag); v != "" {
					values[key] = v
				}
			}
			output, _ := cmd.Flags().GetString("output")

			res, err := c.app.Fill(cmd.Context(), c.opts, app.FillRequest{
				ID:     args[0],
				Values: values,
				Output: output,
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout()).fillResult(res)
		},
	}
	cmd.Flags().StringP("fullname", "f", "", "Full name of the copyright holder")
	cmd.Flags().StringP("year", "y", "", "Copyright year (default current year)")
	cmd.Flags().StringP("project", "p", "", "Project name")
	cmd.Flags().StringP("email", "e", "", "Contact email")
	cmd.Flags().StringP("projecturl", "u", "", "Project URL")
	cmd.Flags().StringP("output", "o", "", "Output file (default LICENSE)")
	return cmd
}

// fillFlags maps fill flags to standard placeholder keys.
var fillFlags = map[string]string{
	"fullname":   placeholder.KeyFullname,
	"year":       placeholder.KeyYear,
	"project":    placeholder.KeyProject,
	"email":      placeholder.KeyEmail,
	"projecturl": placeholder.KeyProjectURL,
}
