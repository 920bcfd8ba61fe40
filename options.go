package helpmap

import (
	"io/fs"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/helpmap/internal/server"
	"github.com/agentstation/helpmap/pkg/errors"
	"github.com/agentstation/helpmap/pkg/help"
)

// Option is a function that configures a Helpmap instance
type Option func(*config) error

// config holds the settings New applies.
type config struct {
	docsFS   fs.FS
	registry *help.Registry
	logger   *zerolog.Logger
	server   server.Config
}

func defaultConfig() *config {
	logger := zerolog.Nop()
	return &config{
		logger: &logger,
		server: server.DefaultConfig(),
	}
}

// WithDocsFS loads topics.yaml and the topic documents from fsys
func WithDocsFS(fsys fs.FS) Option {
	return func(c *config) error {
		if fsys == nil {
			return errors.NewValidationError("docs_fs", nil, "cannot be nil")
		}
		c.docsFS = fsys
		return nil
	}
}

// WithDocsDir loads topics.yaml and the topic documents from a directory
func WithDocsDir(dir string) Option {
	return func(c *config) error {
		fsys, err := dirFS(dir)
		if err != nil {
			return err
		}
		c.docsFS = fsys
		return nil
	}
}

// WithRegistry serves a registry built by the caller instead of loading one
func WithRegistry(r *help.Registry) Option {
	return func(c *config) error {
		if r == nil {
			return errors.NewValidationError("registry", nil, "cannot be nil")
		}
		c.registry = r
		return nil
	}
}

// WithLogger configures the logger used for request logging
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "cannot be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithPathPrefix prepends prefix to every route
func WithPathPrefix(prefix string) Option {
	return func(c *config) error {
		c.server.PathPrefix = prefix
		return nil
	}
}

// WithCORS enables CORS; no origins allows every origin
func WithCORS(origins ...string) Option {
	return func(c *config) error {
		c.server.CORSEnabled = true
		c.server.CORSOrigins = origins
		return nil
	}
}

// WithCacheTTL configures how long rendered search results are cached
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *config) error {
		if ttl <= 0 {
			return errors.NewValidationError("cache_ttl", ttl, "must be positive")
		}
		c.server.CacheTTL = ttl
		return nil
	}
}
