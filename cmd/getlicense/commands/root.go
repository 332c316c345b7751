// Package commands implements the CLI commands for getlicense.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/getlicense/internal/app"
	"go.trai.ch/getlicense/internal/build"
	"go.trai.ch/getlicense/internal/core/domain"
)

// CLI represents the command line interface for getlicense.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Sync(ctx context.Context, opts app.Options) (*app.SyncReport, error)
	List(ctx context.Context, opts app.Options, ids []string) ([]domain.LicenseEntry, error)
	Info(ctx context.Context, opts app.Options, id string) (*app.LicenseInfo, error)
	Compare(ctx context.Context, opts app.Options, ids []string) (*app.Comparison, error)
	Find(ctx context.Context, opts app.Options, required, disallowed []string) (*app.FindResult, error)
	Fill(ctx context.Context, opts app.Options, req app.FillRequest) (*app.FillResult, error)
	SetPlaceholder(ctx context.Context, opts app.Options, key, value string) error
	GetPlaceholders(ctx context.Context, opts app.Options, key string) ([]app.PlaceholderValue, error)
	ClearPlaceholders(ctx context.Context, opts app.Options, keys []string) ([]string, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "getlicense",
		Short:         "Fetch, inspect and fill open source license templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// Persistent flags go first so that -v is taken by --verbose before the
	// default version flag claims it.
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&c.opts.Refresh, "refresh", false, "Re-download every license and data file")
	pf.StringVar(&c.opts.CacheFile, "cache-file", "", "Path of the license cache (default $HOME/.getlicense/license_cache.json)")
	pf.StringVar(&c.opts.ConfigPath, "config", "", "Path of the settings file (default $HOME/.getlicense/config.yaml)")
	pf.StringVar(&c.opts.SourceDir, "source-dir", "", "Read the corpus from a local checkout instead of GitHub")
	pf.BoolVarP(&c.opts.Verbose, "verbose", "v", false, "Print debug output")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newDetailedListCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newShowPlaceholdersCmd())
	rootCmd.AddCommand(c.newCompareCmd())
	rootCmd.AddCommand(c.newFindCmd())
	rootCmd.AddCommand(c.newLicenseCmd())
	rootCmd.AddCommand(c.newSetPlaceholderCmd())
	rootCmd.AddCommand(c.newGetPlaceholderCmd())
	rootCmd.AddCommand(c.newClearPlaceholdersCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
