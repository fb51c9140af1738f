package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shipment-ledger/internal/core/httpclient"
	"shipment-ledger/internal/features/shipments/ports"
)

// WebhookNotifier implements ports.Notifier by POSTing update payloads to the
// notification collaborator (the service that renders and sends customer
// emails). A configured empty URL disables dispatch.
type WebhookNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(webhookURL string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{
		webhookURL: webhookURL,
		client:     httpclient.NewClient(timeout),
	}
}

// NotifyUpdate delivers one update notification. Best effort: the caller
// logs failures and never retries synchronously.
func (n *WebhookNotifier) NotifyUpdate(ctx context.Context, notification ports.UpdateNotification) error {
	if n.webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification dispatch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
