// Package topics provides the command that lists documentation topics.
package topics

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/helpmap/internal/appcontext"
	"github.com/agentstation/helpmap/internal/cmd/output"
)

// NewCommand creates the topics command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Aliases: []string{"ls", "list"},
		GroupID: "docs",
		Short:   "List documentation topics and their help routes",
		Example: `  helpmap topics                 # Table of topics
  helpmap topics -o json         # JSON for scripts
  helpmap topics --docs-dir ./docs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := app.Registry()
			if err != nil {
				return err
			}

			app.Logger().Debug().Int("topics", registry.Len()).Msg("Listing topics")

			format := output.DetectFormat(app.OutputFormat())
			return output.FormatTopics(cmd.OutOrStdout(), registry.Entries(), format)
		},
	}
}
