// Package serve provides the HTTP server command for the helpmap CLI.
package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/helpmap/internal/appcontext"
	"github.com/agentstation/helpmap/internal/server"
	"github.com/agentstation/helpmap/pkg/constants"
)

// NewCommand creates the serve command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		GroupID: "core",
		Short:   "Start the /help protocol HTTP server",
		Long: `Start an HTTP server that documents itself through /help routes.

Routes:
  GET  /help            - discovery document listing every topic
  GET  /{topic}/help    - documentation for one topic
  POST /search          - {"q": "..."} case-insensitive search across topics
  GET  /status          - liveness check
  GET  /ready           - readiness check with topic and cache counts

Documentation is loaded once at startup, from --docs-dir when given,
otherwise from the set embedded in the binary.

Environment Variables:
  HTTP_PORT             - Override --port
  HTTP_HOST             - Override --host`,
		Example: `  # Start on default port 8080
  helpmap serve

  # Serve a custom documentation set under /api
  helpmap serve --docs-dir ./docs --prefix /api

  # Enable CORS for specific origins
  helpmap serve --cors-origins "https://example.com,https://app.example.com"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, args, app)
		},
	}

	// Server configuration flags
	cmd.Flags().Int("port", constants.DefaultPort, "Server port")
	cmd.Flags().String("host", constants.DefaultHost, "Bind address")
	cmd.Flags().String("prefix", "", "Path prefix for every route")

	// CORS flags
	cmd.Flags().Bool("cors", false, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")

	// Performance flags
	cmd.Flags().Int("cache-ttl", int(constants.CacheTTL.Seconds()), "Search cache TTL in seconds")

	// Timeout flags
	cmd.Flags().Duration("read-timeout", constants.DefaultReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", constants.DefaultWriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", constants.DefaultIdleTimeout, "HTTP idle timeout")

	return cmd
}

// runServer starts the HTTP server.
func runServer(cmd *cobra.Command, _ []string, app appcontext.Interface) error {
	cfg, err := parseConfig(cmd)
	if err != nil {
		return err
	}
	logger := app.Logger()

	logger.Info().
		Int("port", cfg.Port).
		Str("host", cfg.Host).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Starting help server")

	srv, err := server.New(app, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// cmd.Context() carries signal handling from main.go
	return startWithGracefulShutdown(cmd.Context(), httpServer, srv, logger)
}

// parseConfig parses command flags into server configuration.
func parseConfig(cmd *cobra.Command) (server.Config, error) {
	port := mustGetInt(cmd, "port")
	host := mustGetString(cmd, "host")
	pathPrefix := mustGetString(cmd, "prefix")
	corsEnabled := mustGetBool(cmd, "cors")
	corsOrigins := mustGetStringSlice(cmd, "cors-origins")
	cacheTTL := mustGetInt(cmd, "cache-ttl")
	readTimeout := mustGetDuration(cmd, "read-timeout")
	writeTimeout := mustGetDuration(cmd, "write-timeout")
	idleTimeout := mustGetDuration(cmd, "idle-timeout")

	// Environment overrides flags
	if envPort := os.Getenv("HTTP_PORT"); envPort != "" {
		p, err := parsePort(envPort)
		if err != nil {
			return server.Config{}, fmt.Errorf("HTTP_PORT: %w", err)
		}
		port = p
	}
	if envHost := os.Getenv("HTTP_HOST"); envHost != "" {
		host = envHost
	}

	if port < 1 || port > 65535 {
		return server.Config{}, fmt.Errorf("port out of range: %d", port)
	}
	if cacheTTL < 1 {
		return server.Config{}, fmt.Errorf("cache-ttl must be positive: %d", cacheTTL)
	}

	return server.Config{
		Host:         host,
		Port:         port,
		PathPrefix:   pathPrefix,
		CORSEnabled:  corsEnabled || len(corsOrigins) > 0,
		CORSOrigins:  corsOrigins,
		CacheTTL:     time.Duration(cacheTTL) * time.Second,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

// parsePort safely parses a port string to integer.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number: %s", portStr)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port out of range: %d", port)
	}
	return port, nil
}

// startWithGracefulShutdown starts the HTTP server and shuts it down when
// ctx is cancelled.
func startWithGracefulShutdown(ctx context.Context, httpServer *http.Server, srv *server.Server, logger *zerolog.Logger) error {
	serverErr := make(chan error, 1)

	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Int("topics", srv.Registry().Len()).
			Msg("HTTP server listening")

		fmt.Printf("Help server listening on http://%s/help\n", httpServer.Addr)
		fmt.Println("   Press Ctrl+C to stop")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received via context")
		fmt.Println("\nShutting down help server...")

		// The parent context is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Server resources shutdown had issues")
		}

		logger.Info().Msg("Server stopped gracefully")
		fmt.Println("Help server stopped gracefully")
		return nil
	}
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetStringSlice retrieves a string slice flag value or panics if the flag doesn't exist.
func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetDuration retrieves a duration flag value or panics if the flag doesn't exist.
func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}
