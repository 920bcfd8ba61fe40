package helpmap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/helpmap/pkg/errors"
	"github.com/agentstation/helpmap/pkg/help"
)

func TestNew_Embedded(t *testing.T) {
	hm, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = hm.Shutdown(context.Background()) })

	assert.Equal(t, []string{"root", "auth", "users", "products"}, hm.Registry().Topics())

	w := httptest.NewRecorder()
	hm.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/help", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	entry, err := hm.Registry().Get("users")
	require.NoError(t, err)
	assert.Equal(t, entry.Content, w.Body.String())
}

func TestNew_DocsFS(t *testing.T) {
	fsys := fstest.MapFS{
		"topics.yaml": {Data: []byte("name: Orders API\ntopics:\n  - name: orders\n    file: orders.md\n")},
		"orders.md":   {Data: []byte("# Orders\n\nPOST /orders creates an order.\n")},
	}

	hm, err := New(WithDocsFS(fsys), WithPathPrefix("/api"), WithCacheTTL(time.Minute))
	require.NoError(t, err)

	res := hm.Search("POST /ORDERS")
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "/orders/help", res.Matches[0].Route)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"q":"post /orders"}`))
	hm.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, res.String(), w.Body.String())
}

func TestNew_DocsDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "topics.yaml"),
		[]byte("name: Files API\ntopics:\n  - name: files\n    file: files.md\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "files.md"), []byte("# Files\n"), 0o644))

	hm, err := New(WithDocsDir(dir))
	require.NoError(t, err)
	assert.True(t, hm.Registry().Has("files"))
}

func TestNew_Registry(t *testing.T) {
	r, err := help.NewRegistry(help.Entry{Topic: help.RootTopic, Content: "# Only root"})
	require.NoError(t, err)

	hm, err := New(WithRegistry(r), WithCORS("https://docs.example.com"))
	require.NoError(t, err)
	assert.Same(t, r, hm.Registry())

	req := httptest.NewRequest(http.MethodGet, "/help", nil)
	req.Header.Set("Origin", "https://docs.example.com")
	w := httptest.NewRecorder()
	hm.Handler().ServeHTTP(w, req)
	assert.Equal(t, "# Only root", w.Body.String())
	assert.Equal(t, "https://docs.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "missing dir", opt: WithDocsDir(filepath.Join(t.TempDir(), "missing"))},
		{name: "nil fs", opt: WithDocsFS(nil)},
		{name: "nil registry", opt: WithRegistry(nil)},
		{name: "zero ttl", opt: WithCacheTTL(0)},
		{name: "nil logger", opt: WithLogger(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = New(tt.opt) })
			assert.Error(t, err)
		})
	}
}

func TestNew_InvalidManifest(t *testing.T) {
	fsys := fstest.MapFS{
		"topics.yaml": {Data: []byte("name: Broken\ntopics:\n  - name: a\n    file: missing.md\n")},
	}

	_, err := New(WithDocsFS(fsys))
	require.Error(t, err)
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}
