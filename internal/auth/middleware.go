package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/surjithprasanna/proz-portal/pkg/handlers"
)

type contextKey string

// ClientIDKey carries the authenticated client profile id in the request context.
const ClientIDKey contextKey = "client-id"

// RequireAdmin returns middleware that rejects requests lacking a valid
// admin session cookie.
func RequireAdmin(sessions *Sessions, logger *slog.Logger) func(http.Handler) http.Handler {
	log := logger.With("middleware", "admin-auth")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AdminCookie)
			if err != nil {
				handlers.RespondError(w, log, http.StatusUnauthorized, ErrUnauthorized)
				return
			}
			if err := sessions.VerifyAdmin(cookie.Value); err != nil {
				handlers.RespondError(w, log, http.StatusUnauthorized, ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireClient returns middleware that rejects requests lacking a valid
// client session cookie and stores the profile id in the request context.
func RequireClient(sessions *Sessions, logger *slog.Logger) func(http.Handler) http.Handler {
	log := logger.With("middleware", "client-auth")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(ClientCookie)
			if err != nil {
				handlers.RespondError(w, log, http.StatusUnauthorized, ErrUnauthorized)
				return
			}
			profileID, err := sessions.VerifyClient(cookie.Value)
			if err != nil {
				handlers.RespondError(w, log, http.StatusUnauthorized, ErrUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ClientIDKey, profileID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientID extracts the authenticated client profile id from the context.
func ClientID(ctx context.Context) string {
	id, _ := ctx.Value(ClientIDKey).(string)
	return id
}

// SessionCookie builds the HTTP-only session cookie for the given name and token.
func SessionCookie(name, token string, sessions *Sessions, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
