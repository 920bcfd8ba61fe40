// Package app provides the application context and dependency management
// for the helpmap CLI. It centralizes configuration, logging and the help
// registry, and hands them to commands through appcontext.Interface.
package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/helpmap/internal/appcontext"
	"github.com/agentstation/helpmap/internal/embedded"
	"github.com/agentstation/helpmap/pkg/errors"
	"github.com/agentstation/helpmap/pkg/help"
)

// App represents the helpmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config    *Config
	logger    *zerolog.Logger
	logCloser io.Closer

	// Registry is loaded once on first use and never reloaded.
	mu       sync.RWMutex
	registry *help.Registry
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment and the
// default config file; functional options override it.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.setLogger()
	}

	return app, nil
}

// setLogger rebuilds the logger from the current config and releases the
// log file held by the previous one.
func (a *App) setLogger() {
	logger, closer := NewLogger(a.config)
	a.closeLog()
	a.logger = &logger
	a.logCloser = closer
}

// closeLog releases the current log file, if any.
func (a *App) closeLog() {
	if a.logCloser == nil {
		return
	}
	if err := a.logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing log output: %v\n", err)
	}
	a.logCloser = nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the format set by --format, HELPMAP_FORMAT or the
// config file, lower-cased. It is empty when none was set.
func (a *App) OutputFormat() string {
	return strings.ToLower(a.config.Format)
}

// Registry returns the help registry, loading it on first use.
// Concurrent callers all receive the same instance.
func (a *App) Registry() (*help.Registry, error) {
	a.mu.RLock()
	if a.registry != nil {
		r := a.registry
		a.mu.RUnlock()
		return r, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.registry != nil {
		return a.registry, nil
	}

	r, err := a.loadRegistry()
	if err != nil {
		return nil, err
	}

	a.registry = r
	return r, nil
}

// loadRegistry reads the documentation set from --docs-dir when given,
// otherwise from the copy embedded in the binary.
func (a *App) loadRegistry() (*help.Registry, error) {
	var (
		fsys   fs.FS = embedded.FS
		source       = "embedded"
	)
	if dir := a.config.DocsDir; dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, errors.WrapIO("stat", dir, err)
		}
		if !info.IsDir() {
			return nil, errors.NewConfigError("docs", dir+" is not a directory", nil)
		}
		fsys = os.DirFS(dir)
		source = dir
	}

	r, err := help.Load(fsys)
	if err != nil {
		return nil, errors.WrapResource("load", "registry", source, err)
	}

	a.logger.Debug().
		Str("source", source).
		Int("topics", r.Len()).
		Msg("Loaded help registry")

	return r, nil
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Application shutdown")
	a.closeLog()
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithRegistry sets a prebuilt registry (useful for testing).
func WithRegistry(r *help.Registry) Option {
	return func(a *App) error {
		a.registry = r
		return nil
	}
}
