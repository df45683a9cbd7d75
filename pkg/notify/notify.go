// Package notify delivers rendered notification messages to external
// channels. The engine's notification handler talks to the Sink interface;
// concrete sinks exist for Slack and generic webhooks, composed by Router.
package notify

import (
	"context"
	"log/slog"

	"github.com/trinity-ai/trinity/pkg/models"
)

// Sink delivers a message to recipients over one or more channels. It
// returns the number of successful deliveries; an error means no recipient
// could be reached.
type Sink interface {
	Deliver(ctx context.Context, channels, recipients []string, message string) (int, error)
}

// Masker scrubs secret-shaped substrings from outbound messages.
// Implemented by masking.Service.
type Masker interface {
	MaskString(text string) string
}

// Router fans deliveries out to channel-specific sinks. Unknown channels are
// skipped with a warning so a definition typo degrades instead of failing
// the whole step.
type Router struct {
	sinks  map[string]Sink
	masker Masker
	logger *slog.Logger
}

// NewRouter creates a router over named channel sinks ("slack", "webhook").
func NewRouter(sinks map[string]Sink, logger *slog.Logger) *Router {
	return &Router{sinks: sinks, logger: logger.With("component", "notifier")}
}

// SetMasker installs message masking for all sinks.
func (r *Router) SetMasker(m Masker) {
	r.masker = m
}

// Deliver implements Sink.
func (r *Router) Deliver(ctx context.Context, channels, recipients []string, message string) (int, error) {
	if r.masker != nil {
		message = r.masker.MaskString(message)
	}
	delivered := 0
	var lastErr error
	for _, ch := range channels {
		sink, ok := r.sinks[ch]
		if !ok {
			r.logger.Warn("No sink for notification channel, skipping", "channel", ch)
			continue
		}
		n, err := sink.Deliver(ctx, []string{ch}, recipients, message)
		delivered += n
		if err != nil {
			r.logger.Warn("Notification delivery failed", "channel", ch, "error", err)
			lastErr = err
		}
	}
	if delivered == 0 && lastErr != nil {
		return 0, lastErr
	}
	if delivered == 0 && len(channels) > 0 {
		return 0, models.NewError(models.KindInternalError, "no notification channel accepted the message")
	}
	return delivered, nil
}
