package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/helpmap/internal/appcontext"
	"github.com/agentstation/helpmap/internal/server/cache"
	"github.com/agentstation/helpmap/pkg/constants"
	"github.com/agentstation/helpmap/pkg/errors"
	"github.com/agentstation/helpmap/pkg/help"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	registry  *help.Registry
	cache     *cache.Cache
	logger    *zerolog.Logger
	config    Config
	startTime time.Time
}

// New creates a new server instance with the given configuration.
// The registry is resolved once; it is immutable for the server's lifetime.
func New(app appcontext.Interface, cfg Config) (*Server, error) {
	logger := app.Logger()

	logger.Debug().Msg("Creating new server instance")

	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = constants.CacheTTL
	}

	registry, err := app.Registry()
	if err != nil {
		return nil, errors.WrapResource("load", "registry", "", err)
	}

	logger.Debug().
		Int("topics", registry.Len()).
		Strs("topic_names", registry.Topics()).
		Msg("Help registry loaded")

	server := &Server{
		registry:  registry,
		cache:     cache.New(cfg.CacheTTL, constants.CacheCleanupInterval),
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}

	logger.Debug().Msg("Server instance created successfully")
	return server, nil
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Shutdown releases server resources.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Info().
		Int("cached_searches", s.cache.ItemCount()).
		Msg("Shutting down server")
	s.cache.Clear()
	return nil
}

// Registry returns the help registry being served.
func (s *Server) Registry() *help.Registry {
	return s.registry
}

// Cache returns the server's search result cache.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}
