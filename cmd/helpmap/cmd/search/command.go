// Package search provides the command that searches topic documentation.
package search

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/helpmap/internal/appcontext"
	"github.com/agentstation/helpmap/internal/cmd/output"
	"github.com/agentstation/helpmap/pkg/help"
)

// NewCommand creates the search command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "search [query...]",
		Aliases: []string{"find"},
		GroupID: "docs",
		Short:   "Search every topic for a case-insensitive substring",
		Long: `Search returns every topic whose documentation contains the query,
ignoring case, in topic order. Multiple arguments are joined with single
spaces. An empty query matches every topic.

The default output is the same text POST /search returns, whether or not
stdout is a terminal. Use -o table for a table of matches.`,
		Example: `  helpmap search token
  helpmap search "patch /users"
  helpmap search refresh -o json
  helpmap search token -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := app.Registry()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			results := help.Search(registry, query)

			app.Logger().Debug().
				Str("query", results.Query).
				Int("matches", len(results.Matches)).
				Msg("Search completed")

			// Without an explicit format, print what POST /search returns.
			format := output.FormatText
			if f := app.OutputFormat(); f != "" {
				format = output.Format(f)
			}
			return output.FormatSearch(cmd.OutOrStdout(), results, format)
		},
	}
}
