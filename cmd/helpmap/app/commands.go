package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/helpmap/cmd/helpmap/cmd/search"
	"github.com/agentstation/helpmap/cmd/helpmap/cmd/serve"
	"github.com/agentstation/helpmap/cmd/helpmap/cmd/show"
	"github.com/agentstation/helpmap/cmd/helpmap/cmd/topics"
	"github.com/agentstation/helpmap/cmd/helpmap/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(serve.NewCommand(a))

	// Documentation commands
	rootCmd.AddCommand(topics.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))

	rootCmd.AddCommand(version.NewCommand(a))
}
