package notify_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/surjithprasanna/proz-portal/internal/config"
	"github.com/surjithprasanna/proz-portal/internal/notify"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendRelaysPayload(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sys := notify.New(&config.NotifyConfig{
		Endpoint: server.URL,
		Timeout:  "5s",
	}, discard())

	if !sys.Enabled() {
		t.Fatal("Enabled() = false with configured endpoint")
	}

	err := sys.Send(context.Background(), map[string]any{
		"subject": "New project request",
		"email":   "priya@example.com",
	})
	if err != nil {
		t.Fatalf("Send() failed: %v", err)
	}

	if received["email"] != "priya@example.com" {
		t.Errorf("relayed payload = %v", received)
	}
}

func TestSendReportsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sys := notify.New(&config.NotifyConfig{
		Endpoint: server.URL,
		Timeout:  "5s",
	}, discard())

	if err := sys.Send(context.Background(), map[string]any{"k": "v"}); err == nil {
		t.Error("Send() should fail on 5xx response")
	}
}

func TestUnconfiguredRelayDropsSilently(t *testing.T) {
	sys := notify.New(&config.NotifyConfig{Timeout: "5s"}, discard())

	if sys.Enabled() {
		t.Error("Enabled() = true with no endpoint")
	}

	if err := sys.Send(context.Background(), map[string]any{"k": "v"}); err != nil {
		t.Errorf("Send() on unconfigured relay should be a no-op, got %v", err)
	}
}
