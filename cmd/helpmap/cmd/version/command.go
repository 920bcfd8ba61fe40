// Package version provides the command that prints build information.
package version

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/helpmap/internal/appcontext"
)

// NewCommand creates the version command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("helpmap %s\n", app.Version())
			cmd.Printf("  commit:   %s\n", app.Commit())
			cmd.Printf("  built:    %s\n", app.Date())
			cmd.Printf("  built by: %s\n", app.BuiltBy())
		},
	}
}
