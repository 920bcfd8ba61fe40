package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/helpmap/internal/server/cache"
	"github.com/agentstation/helpmap/pkg/constants"
	"github.com/agentstation/helpmap/pkg/help"
)

func newHandlers(t *testing.T, registry *help.Registry) *Handlers {
	t.Helper()
	logger := zerolog.Nop()
	return New(registry, cache.New(time.Minute, time.Minute), &logger, time.Now())
}

func testRegistry(t *testing.T) *help.Registry {
	t.Helper()
	r, err := help.NewRegistry(
		help.Entry{Topic: help.RootTopic, Content: "# Demo\n\n- `/orders/help`"},
		help.Entry{Topic: "orders", Content: "# Orders API\n\nGET /orders lists orders."},
	)
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}
	return r
}

func TestHandleHelp(t *testing.T) {
	h := newHandlers(t, testRegistry(t))

	w := httptest.NewRecorder()
	h.HandleHelp("orders")(w, httptest.NewRequest(http.MethodGet, "/orders/help", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "# Orders API\n\nGET /orders lists orders." {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestHandleHelp_UnknownTopic(t *testing.T) {
	h := newHandlers(t, testRegistry(t))

	w := httptest.NewRecorder()
	h.HandleHelp("billing")(w, httptest.NewRequest(http.MethodGet, "/billing/help", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"NOT_FOUND"`) {
		t.Errorf("expected NOT_FOUND envelope, got %s", w.Body.String())
	}
}

func TestHandleSearch_CachesResult(t *testing.T) {
	h := newHandlers(t, testRegistry(t))

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"q":"Orders"}`))
	w := httptest.NewRecorder()
	h.HandleSearch(w, req)

	want := "# Search Results for 'orders'\n\n- `/help` - Demo\n- `/orders/help` - Orders API"
	if w.Body.String() != want {
		t.Errorf("unexpected body\n got: %q\nwant: %q", w.Body.String(), want)
	}

	cached, found := h.cache.Get("search:orders")
	if !found {
		t.Fatal("expected search result to be cached")
	}
	if cached.(string) != want {
		t.Errorf("cached value differs from response")
	}
}

func TestHandleSearch_BodyTooLarge(t *testing.T) {
	h := newHandlers(t, testRegistry(t))

	body := `{"q":"` + strings.Repeat("a", 70*1024) + `"}`
	w := httptest.NewRecorder()
	h.HandleSearch(w, httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body)))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleSearch_LongQueriesNotCached(t *testing.T) {
	h := newHandlers(t, testRegistry(t))

	for i := 0; i < 50; i++ {
		q := fmt.Sprintf("%d-%s", i, strings.Repeat("x", 60*1024))
		w := httptest.NewRecorder()
		h.HandleSearch(w, httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"q":"`+q+`"}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("query %d: expected 200, got %d", i, w.Code)
		}
		if !strings.Contains(w.Body.String(), "No results found.") {
			t.Fatalf("query %d: expected no results, got %q", i, w.Body.String())
		}
	}

	if n := h.cache.ItemCount(); n != 0 {
		t.Errorf("expected long queries to bypass the cache, got %d items", n)
	}
}

func TestHandleSearch_CacheBounded(t *testing.T) {
	h := newHandlers(t, testRegistry(t))

	for i := 0; i < constants.MaxCachedSearches+100; i++ {
		w := httptest.NewRecorder()
		body := fmt.Sprintf(`{"q":"missing-%d"}`, i)
		h.HandleSearch(w, httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body)))
		if w.Code != http.StatusOK {
			t.Fatalf("query %d: expected 200, got %d", i, w.Code)
		}
	}

	if n := h.cache.ItemCount(); n != constants.MaxCachedSearches {
		t.Errorf("expected cache capped at %d items, got %d", constants.MaxCachedSearches, n)
	}
}

func TestHandleSearch_TrailingData(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"trailing garbage", `{"q":"orders"} garbage`, http.StatusBadRequest},
		{"second object", `{"q":"orders"}{"q":"demo"}`, http.StatusBadRequest},
		{"trailing whitespace", "{\"q\":\"orders\"}\n  ", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlers(t, testRegistry(t))
			w := httptest.NewRecorder()
			h.HandleSearch(w, httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(tt.body)))
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleReady_NoRegistry(t *testing.T) {
	h := newHandlers(t, nil)

	w := httptest.NewRecorder()
	h.HandleReady(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestHandleStatus_MethodNotAllowed(t *testing.T) {
	h := newHandlers(t, testRegistry(t))

	w := httptest.NewRecorder()
	h.HandleStatus(w, httptest.NewRequest(http.MethodDelete, "/status", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
