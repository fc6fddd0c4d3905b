package notification

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/maqala/maqala/internal/setup/config"
	"go.uber.org/zap"
)

// WebhookDispatcher posts notifications to a configured webhook endpoint.
type WebhookDispatcher struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewWebhook creates a webhook dispatcher. Returns a no-op dispatcher when no
// URL is configured so callers never have to nil-check.
func NewWebhook(cfg *config.Notification, logger *zap.Logger) Dispatcher {
	if cfg.WebhookURL == "" {
		return &noopDispatcher{logger: logger.Named("notification")}
	}

	timeout := time.Duration(cfg.RequestTimeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &WebhookDispatcher{
		url:    cfg.WebhookURL,
		client: &http.Client{Timeout: timeout},
		logger: logger.Named("notification"),
	}
}

// Dispatch posts the notification once. Errors are logged and dropped; the
// pipeline only guarantees one delivery attempt per resolution.
func (d *WebhookDispatcher) Dispatch(ctx context.Context, n *Notification) {
	body, err := sonic.Marshal(n)
	if err != nil {
		d.logger.Error("Failed to marshal notification", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		d.logger.Error("Failed to build notification request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Warn("Failed to dispatch notification",
			zap.String("type", n.Type),
			zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		d.logger.Warn("Notification endpoint returned error",
			zap.String("type", n.Type),
			zap.String("status", fmt.Sprintf("%d", resp.StatusCode)))
		return
	}

	d.logger.Debug("Dispatched notification", zap.String("type", n.Type))
}

// noopDispatcher logs notifications when no webhook is configured.
type noopDispatcher struct {
	logger *zap.Logger
}

func (d *noopDispatcher) Dispatch(_ context.Context, n *Notification) {
	d.logger.Debug("Notification dispatch skipped, no webhook configured",
		zap.String("type", n.Type),
		zap.String("title", n.Title))
}
