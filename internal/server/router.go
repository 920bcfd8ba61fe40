package server

import (
	"net/http"
	"strings"

	"github.com/agentstation/helpmap/internal/server/handlers"
	"github.com/agentstation/helpmap/internal/server/middleware"
	"github.com/agentstation/helpmap/pkg/help"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(
		s.registry,
		s.cache,
		s.logger,
		s.startTime,
	)

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes. Only known topics get a help
// route; any other path falls through to the mux's 404.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := normalizePrefix(s.config.PathPrefix)

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, topic := range s.registry.Topics() {
		route := prefix + help.Route(topic)
		mux.HandleFunc(route, h.HandleHelp(topic))
		s.logger.Debug().
			Str("topic", topic).
			Str("route", route).
			Msg("Registered help route")
	}

	mux.HandleFunc(prefix+"/search", h.HandleSearch)
	mux.HandleFunc(prefix+"/status", h.HandleStatus)
	mux.HandleFunc(prefix+"/ready", h.HandleReady)
}

// applyMiddleware wraps handler with middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Request IDs, logging and recovery (always enabled)
	return middleware.Chain(
		middleware.Recovery(s.logger),
		middleware.RequestID(),
		middleware.Logger(s.logger),
	)(handler)
}

// normalizePrefix returns prefix with a leading slash and no trailing slash.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
