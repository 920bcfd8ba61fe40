package server

import (
	"time"

	"github.com/agentstation/helpmap/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// PathPrefix is prepended to every route ("" serves at the root).
	PathPrefix string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// CacheTTL bounds how long rendered search results are kept.
	CacheTTL time.Duration

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:         constants.DefaultHost,
		Port:         constants.DefaultPort,
		PathPrefix:   "",
		CORSEnabled:  false,
		CORSOrigins:  []string{},
		CacheTTL:     constants.CacheTTL,
		ReadTimeout:  constants.DefaultReadTimeout,
		WriteTimeout: constants.DefaultWriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}
}
