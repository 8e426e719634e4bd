package requests

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/internal/auth"
	"github.com/surjithprasanna/proz-portal/pkg/handlers"
	"github.com/surjithprasanna/proz-portal/pkg/pagination"
	"github.com/surjithprasanna/proz-portal/pkg/routes"
)

// Handler provides HTTP endpoints for project request operations across the
// public, admin, and client route surfaces.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// ProposalRequest targets a request with proposal data for the admin
// submit-proposal and update-proposal endpoints.
type ProposalRequest struct {
	RequestID uuid.UUID `json:"request_id"`
	ProposalCommand
}

// UpdateProposalRequest targets a request with a proposal patch.
type UpdateProposalRequest struct {
	RequestID uuid.UUID `json:"request_id"`
	UpdateProposalCommand
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "requests"),
		pagination: pagination,
	}
}

// PublicRoutes returns the unauthenticated intake route group.
func (h *Handler) PublicRoutes() routes.Group {
	return routes.Group{
		Prefix: "/requests",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Submit},
		},
	}
}

// AdminRoutes returns the admin route group for request management.
func (h *Handler) AdminRoutes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/get-requests", Handler: h.List},
			{Method: "GET", Pattern: "/get-requests/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "/get-requests/search", Handler: h.Search},
			{Method: "POST", Pattern: "/submit-proposal", Handler: h.SubmitProposal},
			{Method: "POST", Pattern: "/update-proposal", Handler: h.UpdateProposal},
		},
	}
}

// ClientRoutes returns the client-gated route group for proposal actions.
func (h *Handler) ClientRoutes() routes.Group {
	return routes.Group{
		Prefix: "/requests",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.ListOwn},
			{Method: "POST", Pattern: "/{id}/accept", Handler: h.Accept},
			{Method: "POST", Pattern: "/{id}/modify", Handler: h.Modify},
			{Method: "POST", Pattern: "/{id}/reject", Handler: h.Reject},
		},
	}
}

// Submit accepts a public intake submission.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var cmd SubmitCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	pr, err := h.sys.Submit(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, pr)
}

// List returns a paginated list of requests with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single request by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	pr, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pr)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching requests.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// SubmitProposal issues a proposal on a request from a ProposalRequest JSON body.
func (h *Handler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	var req ProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	pr, err := h.sys.SubmitProposal(r.Context(), req.RequestID, req.ProposalCommand)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pr)
}

// UpdateProposal patches an issued proposal from an UpdateProposalRequest JSON body.
func (h *Handler) UpdateProposal(w http.ResponseWriter, r *http.Request) {
	var req UpdateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	pr, err := h.sys.UpdateProposal(r.Context(), req.RequestID, req.UpdateProposalCommand)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pr)
}

// ListOwn returns the authenticated client's requests.
func (h *Handler) ListOwn(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(auth.ClientID(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrUnauthorized)
		return
	}

	items, err := h.sys.FindByClient(r.Context(), clientID)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// Accept moves the client's proposal to proposal_ready.
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	h.clientTransition(w, r, h.sys.AcceptProposal)
}

// Modify moves the client's proposal to modification_requested.
func (h *Handler) Modify(w http.ResponseWriter, r *http.Request) {
	h.clientTransition(w, r, h.sys.RequestModification)
}

// Reject moves the client's proposal to rejected.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.clientTransition(w, r, h.sys.RejectProposal)
}

func (h *Handler) clientTransition(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, id, clientID uuid.UUID) (*ProjectRequest, error),
) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	clientID, err := uuid.Parse(auth.ClientID(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrUnauthorized)
		return
	}

	pr, err := action(r.Context(), id, clientID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pr)
}
