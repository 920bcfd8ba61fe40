// Package show provides the command that prints a topic's documentation.
package show

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/helpmap/internal/appcontext"
	"github.com/agentstation/helpmap/pkg/help"
)

// NewCommand creates the show command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "show [topic]",
		Aliases: []string{"cat"},
		GroupID: "docs",
		Short:   "Print a topic's documentation",
		Long: `Show prints the documentation served at a topic's help route, byte for
byte. Without an argument it prints the discovery document served at /help.`,
		Example: `  helpmap show          # Discovery document
  helpmap show auth     # Same as GET /auth/help`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			registry, err := app.Registry()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return registry.Topics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := app.Registry()
			if err != nil {
				return err
			}

			topic := help.RootTopic
			if len(args) == 1 {
				topic = args[0]
			}

			entry, err := registry.Get(topic)
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(registry.Topics(), ", "))
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprint(out, entry.Content); err != nil {
				return err
			}
			if !strings.HasSuffix(entry.Content, "\n") {
				_, err = fmt.Fprintln(out)
			}
			return err
		},
	}
}
