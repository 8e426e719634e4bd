package auth_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/surjithprasanna/proz-portal/internal/auth"
	"github.com/surjithprasanna/proz-portal/internal/config"
)

func testSessions(t *testing.T) *auth.Sessions {
	t.Helper()
	cfg := &config.AuthConfig{
		SigningKey: "test-signing-key",
		SessionTTL: "1h",
	}
	return auth.NewSessions(cfg)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSharedSecretAuthenticate(t *testing.T) {
	authn := auth.NewSharedSecret("hunter2")

	if !authn.Authenticate("hunter2") {
		t.Error("matching secret rejected")
	}
	if authn.Authenticate("wrong") {
		t.Error("wrong secret accepted")
	}
	if auth.NewSharedSecret("").Authenticate("") {
		t.Error("empty configured secret must never authenticate")
	}
}

func TestAdminSessionRoundTrip(t *testing.T) {
	sessions := testSessions(t)

	token, err := sessions.IssueAdmin()
	if err != nil {
		t.Fatalf("IssueAdmin() failed: %v", err)
	}
	if err := sessions.VerifyAdmin(token); err != nil {
		t.Errorf("VerifyAdmin() failed: %v", err)
	}
}

func TestClientSessionCarriesProfileID(t *testing.T) {
	sessions := testSessions(t)

	token, err := sessions.IssueClient("profile-123")
	if err != nil {
		t.Fatalf("IssueClient() failed: %v", err)
	}

	profileID, err := sessions.VerifyClient(token)
	if err != nil {
		t.Fatalf("VerifyClient() failed: %v", err)
	}
	if profileID != "profile-123" {
		t.Errorf("profile id = %q, want profile-123", profileID)
	}
}

func TestRoleSeparation(t *testing.T) {
	sessions := testSessions(t)

	adminToken, _ := sessions.IssueAdmin()
	clientToken, _ := sessions.IssueClient("profile-123")

	if _, err := sessions.VerifyClient(adminToken); err == nil {
		t.Error("admin token accepted as client session")
	}
	if err := sessions.VerifyAdmin(clientToken); err == nil {
		t.Error("client token accepted as admin session")
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	sessions := testSessions(t)
	other := auth.NewSessions(&config.AuthConfig{
		SigningKey: "different-key",
		SessionTTL: "1h",
	})

	token, _ := other.IssueAdmin()
	if err := sessions.VerifyAdmin(token); err == nil {
		t.Error("token signed with a different key accepted")
	}
}

func TestRequireAdmin(t *testing.T) {
	sessions := testSessions(t)
	mw := auth.RequireAdmin(sessions, discard())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, httptest.NewRequest("GET", "/admin/get-requests", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/get-requests", nil)
		req.AddCookie(&http.Cookie{Name: auth.AdminCookie, Value: "garbage"})

		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid session", func(t *testing.T) {
		token, _ := sessions.IssueAdmin()
		req := httptest.NewRequest("GET", "/admin/get-requests", nil)
		req.AddCookie(&http.Cookie{Name: auth.AdminCookie, Value: token})

		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestRequireClientStoresProfileID(t *testing.T) {
	sessions := testSessions(t)
	mw := auth.RequireClient(sessions, discard())

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.ClientID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	token, _ := sessions.IssueClient("profile-456")
	req := httptest.NewRequest("GET", "/client/project", nil)
	req.AddCookie(&http.Cookie{Name: auth.ClientCookie, Value: token})

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen != "profile-456" {
		t.Errorf("context profile id = %q, want profile-456", seen)
	}
}

func TestSessionCookieAttributes(t *testing.T) {
	sessions := testSessions(t)
	cookie := auth.SessionCookie(auth.AdminCookie, "token-value", sessions, true)

	if !cookie.HttpOnly {
		t.Error("session cookie must be HTTP-only")
	}
	if !cookie.Secure {
		t.Error("secure flag not propagated")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", cookie.SameSite)
	}
	if cookie.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", cookie.MaxAge)
	}
}
