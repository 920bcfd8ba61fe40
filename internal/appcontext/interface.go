// Package appcontext provides the shared application context interface
// used by all commands and by the HTTP server.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/helpmap/pkg/help"
)

// Interface defines the application context that commands need.
// The App struct from cmd/helpmap/app implements this interface.
//
// Commands accept this interface rather than the concrete App type so they
// can be tested with Mock.
type Interface interface {
	// Registry returns the help registry, loading it on first use.
	// The registry is immutable and safe to share between goroutines.
	Registry() (*help.Registry, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml,
	// text), or an empty string when none was set.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
