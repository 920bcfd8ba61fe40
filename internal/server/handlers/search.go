package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/agentstation/helpmap/internal/server/response"
	"github.com/agentstation/helpmap/pkg/constants"
	"github.com/agentstation/helpmap/pkg/help"
	"github.com/agentstation/helpmap/pkg/logging"
)

// SearchRequest represents the POST /search request body.
// Only q is read; a missing q searches for the empty string.
type SearchRequest struct {
	Q string `json:"q"`
}

// HandleSearch handles POST /search.
// @Summary Search documentation
// @Description Case-insensitive substring search across every topic
// @Tags help
// @Accept json
// @Produce plain
// @Param search body SearchRequest true "Search query"
// @Success 200 {string} string "Markdown list of matching topics"
// @Failure 400 {object} response.Response{error=response.Error}
// @Failure 405 {object} response.Response{error=response.Error}
// @Router /search [post].
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	var req SearchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, constants.MaxSearchBodyBytes))
	if err := dec.Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON request body", err.Error())
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid JSON request body", "body must contain a single JSON object")
		return
	}

	q := help.NormalizeQuery(req.Q)
	logger := logging.FromContext(r.Context())

	// Long queries bypass the cache.
	cacheable := len(q) <= constants.MaxCachedQueryBytes
	cacheKey := "search:" + q
	if cacheable {
		if cached, found := h.cache.Get(cacheKey); found {
			if text, ok := cached.(string); ok {
				logger.Debug().Str("query", q).Msg("Search cache hit")
				response.Text(w, http.StatusOK, text)
				return
			}
		}
	}

	results := help.Search(h.registry, q)
	text := results.String()

	logger.Debug().
		Str("query", q).
		Int("matches", len(results.Matches)).
		Msg("Search completed")

	if cacheable && h.cache.ItemCount() < constants.MaxCachedSearches {
		h.cache.Set(cacheKey, text)
	}

	response.Text(w, http.StatusOK, text)
}
