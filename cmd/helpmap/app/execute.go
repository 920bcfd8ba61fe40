package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/helpmap/internal/cmd/output"
	"github.com/agentstation/helpmap/pkg/logging"
)

// Execute runs the helpmap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "helpmap",
		Short:   "Self-documenting API server for the /help protocol",
		Version: a.version,
		Long: `Helpmap serves an API whose every route area has a sibling /help route
returning plain-text markdown documentation.

GET /help lists every topic, GET /{topic}/help returns one topic's
documentation and POST /search finds topics mentioning a query. The same
documentation can be browsed from the command line with topics, show and
search.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "docs",
		Title: "Documentation Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.helpmap.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, json, yaml, text")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.String("docs-dir", "", "directory with topics.yaml and topic documents (default is the embedded set)")

	rootCmd.SetVersionTemplate("helpmap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := LoadConfigFile(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(Flags{
		Verbose:    mustGetBool(cmd, "verbose"),
		VerboseSet: cmd.Flags().Changed("verbose"),
		Quiet:      mustGetBool(cmd, "quiet"),
		QuietSet:   cmd.Flags().Changed("quiet"),
		NoColor:    mustGetBool(cmd, "no-color"),
		NoColorSet: cmd.Flags().Changed("no-color"),
		Format:     mustGetString(cmd, "format"),
		LogLevel:   mustGetString(cmd, "log-level"),
		DocsDir:    mustGetString(cmd, "docs-dir"),
	})

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	// Reinitialize logger with updated config
	a.setLogger()
	logging.SetDefault(*a.logger)

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
