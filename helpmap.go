// Package helpmap mounts a /help protocol server inside another program.
//
// Every documented route area gets a sibling /help route returning markdown
// as plain text, plus POST /search and GET /status:
//
//	hm, err := helpmap.New(helpmap.WithDocsDir("./docs"), helpmap.WithPathPrefix("/api"))
//	if err != nil {
//		return err
//	}
//	mux.Handle("/api/", hm.Handler())
package helpmap

import (
	"context"
	"io/fs"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/helpmap/internal/appcontext"
	"github.com/agentstation/helpmap/internal/embedded"
	"github.com/agentstation/helpmap/internal/server"
	"github.com/agentstation/helpmap/pkg/errors"
	"github.com/agentstation/helpmap/pkg/help"
)

// Version is reported by embedded servers.
const Version = "dev"

// Helpmap serves an immutable help registry over HTTP.
type Helpmap interface {
	// Registry returns the loaded documentation.
	Registry() *help.Registry

	// Search runs a case-insensitive substring search over every topic.
	Search(query string) help.Results

	// Handler returns the HTTP handler serving the help routes.
	Handler() http.Handler

	// Shutdown releases cached search results.
	Shutdown(ctx context.Context) error
}

// helpmap is the internal implementation of the Helpmap interface
type helpmap struct {
	registry *help.Registry
	server   *server.Server
	handler  http.Handler
	config   *config
}

// New loads the documentation once and builds the server.
func New(opts ...Option) (Helpmap, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	registry := cfg.registry
	if registry == nil {
		fsys := cfg.docsFS
		if fsys == nil {
			fsys = embedded.FS
		}
		r, err := help.Load(fsys)
		if err != nil {
			return nil, errors.WrapResource("load", "registry", "", err)
		}
		registry = r
	}

	hm := &helpmap{registry: registry, config: cfg}

	srv, err := server.New(&serverContext{hm: hm}, cfg.server)
	if err != nil {
		return nil, err
	}
	hm.server = srv
	hm.handler = srv.Handler()

	return hm, nil
}

// Registry returns the loaded documentation.
func (h *helpmap) Registry() *help.Registry {
	return h.registry
}

// Search runs a case-insensitive substring search over every topic.
func (h *helpmap) Search(query string) help.Results {
	return help.Search(h.registry, query)
}

// Handler returns the HTTP handler serving the help routes.
func (h *helpmap) Handler() http.Handler {
	return h.handler
}

// Shutdown releases cached search results.
func (h *helpmap) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// serverContext adapts helpmap to the context the server package expects.
type serverContext struct {
	hm *helpmap
}

var _ appcontext.Interface = (*serverContext)(nil)

func (c *serverContext) Registry() (*help.Registry, error) { return c.hm.registry, nil }
func (c *serverContext) Logger() *zerolog.Logger           { return c.hm.config.logger }
func (c *serverContext) OutputFormat() string              { return "json" }
func (c *serverContext) Version() string                   { return Version }
func (c *serverContext) Commit() string                    { return "" }
func (c *serverContext) Date() string                      { return "" }
func (c *serverContext) BuiltBy() string                   { return "library" }

// dirFS validates dir and returns it as a filesystem.
func dirFS(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WrapIO("stat", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewValidationError("docs_dir", dir, "not a directory")
	}
	return os.DirFS(dir), nil
}
