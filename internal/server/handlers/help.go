package handlers

import (
	"net/http"

	"github.com/agentstation/helpmap/internal/server/response"
	"github.com/agentstation/helpmap/pkg/logging"
)

// HandleHelp returns the handler for a topic's help route.
// @Summary Topic documentation
// @Description Returns the markdown documentation for a topic as plain text. The root topic is served at /help.
// @Tags help
// @Produce plain
// @Success 200 {string} string "Markdown documentation"
// @Failure 405 {object} response.Response{error=response.Error}
// @Router /{topic}/help [get].
func (h *Handlers) HandleHelp(topic string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			response.MethodNotAllowed(w, r.Method)
			return
		}

		entry, err := h.registry.Get(topic)
		if err != nil {
			response.ErrorFromType(w, err)
			return
		}

		logging.FromContext(logging.WithTopic(r.Context(), topic)).Debug().
			Int("bytes", len(entry.Content)).
			Msg("Serving help topic")

		response.Text(w, http.StatusOK, entry.Content)
	}
}
