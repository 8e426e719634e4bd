package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/surjithprasanna/proz-portal/internal/auth"
	"github.com/surjithprasanna/proz-portal/internal/clients"
	"github.com/surjithprasanna/proz-portal/pkg/handlers"
	"github.com/surjithprasanna/proz-portal/pkg/routes"
)

type sessionHandler struct {
	runtime *Runtime
	clients clients.System
	logger  *slog.Logger
}

func newSessionHandler(runtime *Runtime, clients clients.System) *sessionHandler {
	return &sessionHandler{
		runtime: runtime,
		clients: clients,
		logger:  runtime.Logger.With("handler", "session"),
	}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

// adminLogin verifies the shared admin secret and sets the admin session cookie.
func (h *sessionHandler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if !h.runtime.Authenticator.Authenticate(req.Password) {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrUnauthorized)
		return
	}

	token, err := h.runtime.Sessions.IssueAdmin()
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	http.SetCookie(w, auth.SessionCookie(
		auth.AdminCookie, token, h.runtime.Sessions, h.runtime.CookieSecure))
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"role": "admin"})
}

// adminLogout clears the admin session cookie.
func (h *sessionHandler) adminLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, expiredCookie(auth.AdminCookie, h.runtime.CookieSecure))
	w.WriteHeader(http.StatusNoContent)
}

// clientLogin verifies an access code, sets the client session cookie, and
// returns the client profile.
func (h *sessionHandler) clientLogin(w http.ResponseWriter, r *http.Request) {
	var cmd clients.LoginCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cl, err := h.clients.Login(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, clients.MapHTTPStatus(err), err)
		return
	}

	token, err := h.runtime.Sessions.IssueClient(cl.ID.String())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	http.SetCookie(w, auth.SessionCookie(
		auth.ClientCookie, token, h.runtime.Sessions, h.runtime.CookieSecure))
	handlers.RespondJSON(w, http.StatusOK, cl)
}

// clientLogout clears the client session cookie.
func (h *sessionHandler) clientLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, expiredCookie(auth.ClientCookie, h.runtime.CookieSecure))
	w.WriteHeader(http.StatusNoContent)
}

func (h *sessionHandler) publicRoutes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/admin/login", Handler: h.adminLogin},
			{Method: "POST", Pattern: "/admin/logout", Handler: h.adminLogout},
			{Method: "POST", Pattern: "/client/login", Handler: h.clientLogin},
			{Method: "POST", Pattern: "/client/logout", Handler: h.clientLogout},
		},
	}
}

func expiredCookie(name string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
