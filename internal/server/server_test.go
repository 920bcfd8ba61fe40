package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/helpmap/internal/appcontext"
	"github.com/agentstation/helpmap/internal/embedded"
	"github.com/agentstation/helpmap/internal/server/middleware"
	"github.com/agentstation/helpmap/pkg/errors"
	"github.com/agentstation/helpmap/pkg/help"
)

// newMockApplication returns an app context serving the embedded documentation.
func newMockApplication(t *testing.T) *appcontext.Mock {
	t.Helper()
	registry, err := help.Load(embedded.FS)
	if err != nil {
		t.Fatalf("help.Load() failed: %v", err)
	}
	return &appcontext.Mock{
		RegistryFunc: func() (*help.Registry, error) { return registry, nil },
		LoggerFunc: func() *zerolog.Logger {
			logger := zerolog.Nop()
			return &logger
		},
	}
}

func newTestServer(t *testing.T, cfg Config) (*Server, http.Handler) {
	t.Helper()
	srv, err := New(newMockApplication(t), cfg)
	if err != nil {
		t.Fatalf("server.New() failed: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv, srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// errorCode extracts error.code from an enveloped JSON response.
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Data  any `json:"data"`
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v: %s", err, w.Body.String())
	}
	if resp.Error == nil {
		t.Fatalf("response has no error: %s", w.Body.String())
	}
	return resp.Error.Code
}

func TestNew_RegistryError(t *testing.T) {
	app := &appcontext.Mock{
		RegistryFunc: func() (*help.Registry, error) {
			return nil, errors.NewIOError("read", "topics.yaml", io.ErrUnexpectedEOF)
		},
	}

	if _, err := New(app, DefaultConfig()); err == nil {
		t.Fatal("expected error when registry fails to load")
	}
}

func TestNew_DefaultCacheTTL(t *testing.T) {
	srv, _ := newTestServer(t, Config{})
	if srv.Cache() == nil {
		t.Fatal("expected cache to be created")
	}
	if srv.Registry().Len() != 4 {
		t.Errorf("expected 4 topics, got %d", srv.Registry().Len())
	}
}

func TestHelpRoutes(t *testing.T) {
	srv, h := newTestServer(t, DefaultConfig())

	for _, entry := range srv.Registry().Entries() {
		t.Run(entry.Topic, func(t *testing.T) {
			w := do(t, h, http.MethodGet, entry.Route(), "")

			if w.Code != http.StatusOK {
				t.Fatalf("GET %s: expected 200, got %d", entry.Route(), w.Code)
			}
			if w.Body.String() != entry.Content {
				t.Errorf("GET %s: body differs from stored entry", entry.Route())
			}
			if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
				t.Errorf("GET %s: unexpected Content-Type %q", entry.Route(), ct)
			}
		})
	}
}

func TestHelpRoot(t *testing.T) {
	srv, h := newTestServer(t, DefaultConfig())

	w := do(t, h, http.MethodGet, "/help", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != srv.Registry().Root().Content {
		t.Error("GET /help did not return the root entry")
	}
	for _, topic := range []string{"auth", "users", "products"} {
		if !strings.Contains(w.Body.String(), "`/"+topic+"/help`") {
			t.Errorf("discovery document does not list %s", topic)
		}
	}
}

func TestHelp_Head(t *testing.T) {
	_, h := newTestServer(t, DefaultConfig())

	w := do(t, h, http.MethodHead, "/auth/help", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for HEAD, got %d", w.Code)
	}
}

func TestHelp_MethodNotAllowed(t *testing.T) {
	_, h := newTestServer(t, DefaultConfig())

	w := do(t, h, http.MethodPost, "/auth/help", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "METHOD_NOT_ALLOWED" {
		t.Errorf("expected METHOD_NOT_ALLOWED, got %s", code)
	}
}

func TestHelp_UnknownTopic(t *testing.T) {
	_, h := newTestServer(t, DefaultConfig())

	for _, path := range []string{"/billing/help", "/root/help", "/auth", "/auth/help/extra"} {
		w := do(t, h, http.MethodGet, path, "")
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestSearch(t *testing.T) {
	_, h := newTestServer(t, DefaultConfig())

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "empty query matches every topic",
			body: `{"q": ""}`,
			want: "# Search Results for ''\n\n" +
				"- `/help` - Example API\n" +
				"- `/auth/help` - Authentication\n" +
				"- `/users/help` - User Management\n" +
				"- `/products/help` - Product Catalog",
		},
		{
			name: "token in one topic",
			body: `{"q": "laptop"}`,
			want: "# Search Results for 'laptop'\n\n- `/products/help` - Product Catalog",
		},
		{
			name: "case-insensitive",
			body: `{"q": "REFRESH"}`,
			want: "# Search Results for 'refresh'\n\n- `/auth/help` - Authentication",
		},
		{
			name: "absent token",
			body: `{"q": "zzz-not-present"}`,
			want: "# Search Results\n\nNo results found.",
		},
		{
			name: "missing q searches for empty string",
			body: `{}`,
			want: "",
		},
		{
			name: "null body searches for empty string",
			body: `null`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/search", tt.body)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
				t.Errorf("unexpected Content-Type %q", ct)
			}

			got := w.Body.String()
			if tt.want == "" {
				if strings.Count(got, "\n- `") != 4 {
					t.Errorf("expected all four topics, got %q", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("unexpected body\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestSearch_BadRequest(t *testing.T) {
	_, h := newTestServer(t, DefaultConfig())

	for _, body := range []string{"", "{", `{"q": 5}`, `"laptop"`, `{"q": "token"} garbage`, `{"q": "a"}{"q": "b"}`} {
		w := do(t, h, http.MethodPost, "/search", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
			continue
		}
		if code := errorCode(t, w); code != "BAD_REQUEST" {
			t.Errorf("body %q: expected BAD_REQUEST, got %s", body, code)
		}
	}
}

func TestSearch_UniqueLongQueriesNotCached(t *testing.T) {
	srv, h := newTestServer(t, DefaultConfig())

	for i := 0; i < 100; i++ {
		q := fmt.Sprintf("%03d%s", i, strings.Repeat("z", 60*1024))
		w := do(t, h, http.MethodPost, "/search", `{"q": "`+q+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("query %d: expected 200, got %d", i, w.Code)
		}
		if w.Body.String() != help.NoResults {
			t.Fatalf("query %d: expected no results, got %q", i, w.Body.String())
		}
	}

	if n := srv.Cache().ItemCount(); n != 0 {
		t.Errorf("expected long queries to bypass the cache, got %d cached items", n)
	}
}

func TestSearch_MethodNotAllowed(t *testing.T) {
	_, h := newTestServer(t, DefaultConfig())

	w := do(t, h, http.MethodGet, "/search", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	srv, h := newTestServer(t, DefaultConfig())

	first := do(t, h, http.MethodPost, "/search", `{"q": "token"}`).Body.String()
	if srv.Cache().ItemCount() != 1 {
		t.Errorf("expected 1 cached search, got %d", srv.Cache().ItemCount())
	}

	for i := 0; i < 3; i++ {
		if got := do(t, h, http.MethodPost, "/search", `{"q": "TOKEN"}`).Body.String(); got != first {
			t.Fatalf("call %d returned a different result", i)
		}
	}
	if srv.Cache().ItemCount() != 1 {
		t.Errorf("expected queries differing in case to share a cache entry, got %d", srv.Cache().ItemCount())
	}
}

func TestStatus(t *testing.T) {
	_, h := newTestServer(t, DefaultConfig())

	w := do(t, h, http.MethodGet, "/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "{\"status\":\"healthy\"}\n" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected Content-Type %q", ct)
	}
}

func TestReady(t *testing.T) {
	_, h := newTestServer(t, DefaultConfig())

	w := do(t, h, http.MethodGet, "/ready", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			Status string `json:"status"`
			Topics int    `json:"topics"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Data.Status != "ready" || resp.Data.Topics != 4 {
		t.Errorf("unexpected readiness payload: %s", w.Body.String())
	}
}

func TestPathPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PathPrefix = "api/"
	_, h := newTestServer(t, cfg)

	if w := do(t, h, http.MethodGet, "/api/help", ""); w.Code != http.StatusOK {
		t.Errorf("GET /api/help: expected 200, got %d", w.Code)
	}
	if w := do(t, h, http.MethodGet, "/api/auth/help", ""); w.Code != http.StatusOK {
		t.Errorf("GET /api/auth/help: expected 200, got %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, "/api/search", `{"q":"user"}`); w.Code != http.StatusOK {
		t.Errorf("POST /api/search: expected 200, got %d", w.Code)
	}
	if w := do(t, h, http.MethodGet, "/help", ""); w.Code != http.StatusNotFound {
		t.Errorf("GET /help without prefix: expected 404, got %d", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	_, h := newTestServer(t, DefaultConfig())

	w := do(t, h, http.MethodGet, "/status", "")
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected X-Request-ID response header")
	}
}

func TestCORS(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CORSEnabled = true
	_, h := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/search", nil)
	req.Header.Set("Origin", "https://docs.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected Allow-Origin *, got %q", got)
	}
}

func TestNormalizePrefix(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"/":      "",
		"api":    "/api",
		"/api/":  "/api",
		"/v1/x/": "/v1/x",
	}
	for in, want := range tests {
		if got := normalizePrefix(in); got != want {
			t.Errorf("normalizePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}
