package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/trinity-ai/trinity/pkg/models"
)

// webhookTimeout bounds each outbound webhook POST.
const webhookTimeout = 10 * time.Second

// WebhookSink POSTs notification messages as JSON to named endpoints.
// Recipients resolve through the endpoint map; unknown recipients are
// counted as failures.
type WebhookSink struct {
	endpoints map[string]string
	client    *http.Client
	logger    *slog.Logger
}

// NewWebhookSink creates a webhook sink over a recipient → URL map.
func NewWebhookSink(endpoints map[string]string, client *http.Client, logger *slog.Logger) *WebhookSink {
	if client == nil {
		client = &http.Client{}
	}
	return &WebhookSink{
		endpoints: endpoints,
		client:    client,
		logger:    logger.With("component", "webhook_sink"),
	}
}

type webhookPayload struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

// Deliver implements Sink.
func (s *WebhookSink) Deliver(ctx context.Context, _ []string, recipients []string, message string) (int, error) {
	delivered := 0
	var lastErr error
	for _, recipient := range recipients {
		url, ok := s.endpoints[recipient]
		if !ok {
			s.logger.Warn("No webhook endpoint for recipient", "recipient", recipient)
			lastErr = models.NewError(models.KindValidation, "no webhook endpoint for recipient %q", recipient)
			continue
		}
		if err := s.post(ctx, url, recipient, message); err != nil {
			s.logger.Warn("Webhook delivery failed", "recipient", recipient, "error", err)
			lastErr = err
			continue
		}
		delivered++
	}
	if delivered == 0 && lastErr != nil {
		return 0, lastErr
	}
	return delivered, nil
}

func (s *WebhookSink) post(ctx context.Context, url, recipient, message string) error {
	ctx, cancel := context.WithTimeout(ctx, webhookTimeout)
	defer cancel()

	body, err := json.Marshal(webhookPayload{Recipient: recipient, Message: message})
	if err != nil {
		return models.WrapError(models.KindInternalError, err, "marshal webhook payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.WrapError(models.KindInternalError, err, "build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.WrapError(models.KindInternalError, err, "webhook POST %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return models.NewError(models.KindInternalError, "webhook %s returned status %d", url, resp.StatusCode)
	}
	return nil
}
