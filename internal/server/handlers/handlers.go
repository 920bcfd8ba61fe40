package handlers

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/helpmap/internal/server/cache"
	"github.com/agentstation/helpmap/pkg/help"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	registry  *help.Registry
	cache     *cache.Cache
	logger    *zerolog.Logger
	startTime time.Time
}

// New creates a new Handlers instance.
func New(
	registry *help.Registry,
	cache *cache.Cache,
	logger *zerolog.Logger,
	startTime time.Time,
) *Handlers {
	return &Handlers{
		registry:  registry,
		cache:     cache,
		logger:    logger,
		startTime: startTime,
	}
}
