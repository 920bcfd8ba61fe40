// Package constants provides shared constants used throughout the helpmap codebase.
// This includes timeouts, defaults and file permissions that should be
// consistent across the CLI and the HTTP server.
package constants

import "time"

// Server timeout constants
const (
	// DefaultReadTimeout is the HTTP server read timeout
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the HTTP server write timeout
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the HTTP server keep-alive idle timeout
	DefaultIdleTimeout = 120 * time.Second

	// ShutdownTimeout bounds graceful shutdown of the HTTP server
	ShutdownTimeout = 30 * time.Second
)

// Server defaults
const (
	// DefaultPort is the port the server listens on
	DefaultPort = 8080

	// DefaultHost is the bind address
	DefaultHost = "localhost"

	// MaxSearchBodyBytes limits the size of a search request body
	MaxSearchBodyBytes = 64 * 1024

	// MaxCachedQueryBytes is the longest normalized query whose result is cached
	MaxCachedQueryBytes = 256

	// MaxCachedSearches caps the number of cached search results
	MaxCachedSearches = 1024
)

// Cache constants
const (
	// CacheTTL is the default time-to-live for cached search results
	CacheTTL = 5 * time.Minute

	// CacheCleanupInterval is how often to clean expired cache entries
	CacheCleanupInterval = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Help protocol constants
const (
	// RootTopic is the distinguished topic served at the discovery route
	RootTopic = "root"

	// HelpSuffix is appended to a topic path to form its help route
	HelpSuffix = "/help"

	// ManifestFile is the name of the topic manifest inside a docs directory
	ManifestFile = "topics.yaml"

	// TextContentType is the content type of documentation responses
	TextContentType = "text/plain; charset=utf-8"
)
