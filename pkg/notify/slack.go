package notify

import (
	"context"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/trinity-ai/trinity/pkg/models"
)

// slackTimeout bounds each chat.postMessage call.
const slackTimeout = 10 * time.Second

// SlackSink posts notification messages to Slack. Recipients are channel IDs
// or user IDs; each gets its own chat.postMessage call.
type SlackSink struct {
	api    *goslack.Client
	logger *slog.Logger
}

// NewSlackSink creates a Slack sink from a bot token.
func NewSlackSink(token string, logger *slog.Logger) *SlackSink {
	return &SlackSink{
		api:    goslack.New(token),
		logger: logger.With("component", "slack_sink"),
	}
}

// NewSlackSinkWithAPIURL targets a custom API URL. Useful for tests.
func NewSlackSinkWithAPIURL(token, apiURL string, logger *slog.Logger) *SlackSink {
	return &SlackSink{
		api:    goslack.New(token, goslack.OptionAPIURL(apiURL)),
		logger: logger.With("component", "slack_sink"),
	}
}

// Deliver implements Sink.
func (s *SlackSink) Deliver(ctx context.Context, _ []string, recipients []string, message string) (int, error) {
	delivered := 0
	var lastErr error
	for _, recipient := range recipients {
		callCtx, cancel := context.WithTimeout(ctx, slackTimeout)
		_, _, err := s.api.PostMessageContext(callCtx, recipient,
			goslack.MsgOptionText(message, false))
		cancel()
		if err != nil {
			s.logger.Warn("chat.postMessage failed", "recipient", recipient, "error", err)
			lastErr = err
			continue
		}
		delivered++
	}
	if delivered == 0 && lastErr != nil {
		return 0, models.WrapError(models.KindInternalError, lastErr, "slack delivery failed for all recipients")
	}
	return delivered, nil
}
