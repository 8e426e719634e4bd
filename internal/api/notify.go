package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/surjithprasanna/proz-portal/internal/notify"
	"github.com/surjithprasanna/proz-portal/pkg/handlers"
	"github.com/surjithprasanna/proz-portal/pkg/routes"
)

// notifyHandler exposes the outbound relay for the marketing site's contact
// forms. An unconfigured relay accepts and drops payloads so the forms never
// break on a missing integration.
type notifyHandler struct {
	notifier notify.System
	logger   *slog.Logger
}

func newNotifyHandler(notifier notify.System, logger *slog.Logger) *notifyHandler {
	return &notifyHandler{
		notifier: notifier,
		logger:   logger.With("handler", "notify"),
	}
}

func (h *notifyHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/notify",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/admin", Handler: h.relay},
		},
	}
}

func (h *notifyHandler) relay(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if !h.notifier.Enabled() {
		h.logger.Warn("notification relay not configured; payload dropped")
		handlers.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "disabled"})
		return
	}

	if err := h.notifier.Send(r.Context(), payload); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadGateway, err)
		return
	}

	handlers.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}
