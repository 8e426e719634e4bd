package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/internal/auth"
	"github.com/surjithprasanna/proz-portal/internal/phases"
	"github.com/surjithprasanna/proz-portal/internal/projects"
	"github.com/surjithprasanna/proz-portal/pkg/handlers"
	"github.com/surjithprasanna/proz-portal/pkg/routes"
)

const watchKeepalive = 25 * time.Second

// clientPortal serves the client-facing read model: the client's project,
// its phase plan, and a live change stream.
type clientPortal struct {
	projects projects.System
	phases   phases.System
	logger   *slog.Logger
}

func newClientPortal(projects projects.System, phases phases.System, logger *slog.Logger) *clientPortal {
	return &clientPortal{
		projects: projects,
		phases:   phases,
		logger:   logger.With("handler", "client-portal"),
	}
}

func (h *clientPortal) routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/project", Handler: h.project},
			{Method: "GET", Pattern: "/phases", Handler: h.listPhases},
			{Method: "GET", Pattern: "/phases/watch", Handler: h.watchPhases},
		},
	}
}

// project returns the authenticated client's current project.
func (h *clientPortal) project(w http.ResponseWriter, r *http.Request) {
	p, err := h.resolveProject(r)
	if err != nil {
		handlers.RespondError(w, h.logger, portalStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

// listPhases returns the phase plan of the client's current project.
func (h *clientPortal) listPhases(w http.ResponseWriter, r *http.Request) {
	p, err := h.resolveProject(r)
	if err != nil {
		handlers.RespondError(w, h.logger, portalStatus(err), err)
		return
	}

	items, err := h.phases.List(r.Context(), p.ID)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// watchPhases streams phase-change notifications over SSE until the client
// disconnects. Each event is a refetch signal, not a data payload.
func (h *clientPortal) watchPhases(w http.ResponseWriter, r *http.Request) {
	p, err := h.resolveProject(r)
	if err != nil {
		handlers.RespondError(w, h.logger, portalStatus(err), err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError,
			fmt.Errorf("streaming unsupported"))
		return
	}

	messages, cancel, err := h.phases.Watch(r.Context(), p.ID)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepalive := time.NewTicker(watchKeepalive)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, open := <-messages:
			if !open {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		}
	}
}

func portalStatus(err error) int {
	if errors.Is(err, auth.ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	return projects.MapHTTPStatus(err)
}

func (h *clientPortal) resolveProject(r *http.Request) (*projects.Project, error) {
	clientID, err := uuid.Parse(auth.ClientID(r.Context()))
	if err != nil {
		return nil, auth.ErrUnauthorized
	}
	return h.projects.FindByClient(r.Context(), clientID)
}
