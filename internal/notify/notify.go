// Package notify relays form submissions to a third-party notification
// endpoint. Delivery is best effort: failures are logged and never propagate
// to the operation that triggered them.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/surjithprasanna/proz-portal/internal/config"
)

// System sends outbound notifications.
type System interface {
	// Send posts the payload to the relay endpoint. Returns an error for
	// callers that surface delivery results (the relay route); intake
	// callers invoke it fire-and-forget and only log.
	Send(ctx context.Context, payload map[string]any) error
	// Enabled reports whether a relay endpoint is configured.
	Enabled() bool
}

type relay struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// New creates a notification relay from the given configuration.
// With no endpoint configured the relay warns once per send and drops
// the payload instead of failing.
func New(cfg *config.NotifyConfig, logger *slog.Logger) System {
	return &relay{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.TimeoutDuration()},
		logger:   logger.With("system", "notify"),
	}
}

func (r *relay) Enabled() bool {
	return r.endpoint != ""
}

func (r *relay) Send(ctx context.Context, payload map[string]any) error {
	if !r.Enabled() {
		r.logger.Warn("notify endpoint not configured, dropping notification")
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notification rejected: status %d", resp.StatusCode)
	}

	r.logger.Info("notification relayed", "status", resp.StatusCode)
	return nil
}

// SendAsync dispatches the payload on a background goroutine, logging any
// failure. Used by request intake where notification failure must never
// roll back or fail the triggering operation.
func SendAsync(sys System, logger *slog.Logger, payload map[string]any) {
	go func() {
		if err := sys.Send(context.Background(), payload); err != nil {
			logger.Warn("best-effort notification failed", "error", err)
		}
	}()
}
