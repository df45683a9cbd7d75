package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

type fakeSink struct {
	delivered int
	err       error
	calls     int
}

func (f *fakeSink) Deliver(ctx context.Context, channels, recipients []string, message string) (int, error) {
	f.calls++
	return f.delivered, f.err
}

func TestRouter_RoutesToConfiguredSinks(t *testing.T) {
	slack := &fakeSink{delivered: 2}
	webhook := &fakeSink{delivered: 1}
	r := NewRouter(map[string]Sink{"slack": slack, "webhook": webhook}, slog.Default())

	n, err := r.Deliver(context.Background(), []string{"slack", "webhook"}, []string{"a", "b"}, "hello")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, slack.calls)
	assert.Equal(t, 1, webhook.calls)
}

func TestRouter_UnknownChannelSkipped(t *testing.T) {
	slack := &fakeSink{delivered: 1}
	r := NewRouter(map[string]Sink{"slack": slack}, slog.Default())

	n, err := r.Deliver(context.Background(), []string{"pager", "slack"}, []string{"a"}, "hello")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRouter_AllChannelsFail(t *testing.T) {
	failing := &fakeSink{err: models.NewError(models.KindInternalError, "boom")}
	r := NewRouter(map[string]Sink{"slack": failing}, slog.Default())

	n, err := r.Deliver(context.Background(), []string{"slack"}, []string{"a"}, "hello")
	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, models.IsKind(err, models.KindInternalError))
}

func TestRouter_NoMatchingChannelAtAll(t *testing.T) {
	r := NewRouter(map[string]Sink{}, slog.Default())

	n, err := r.Deliver(context.Background(), []string{"pager"}, []string{"a"}, "hello")
	require.Error(t, err)
	assert.Zero(t, n)
}

func TestWebhookSink_Deliver(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := NewWebhookSink(map[string]string{"ops": srv.URL}, srv.Client(), slog.Default())
	n, err := sink.Deliver(context.Background(), nil, []string{"ops"}, "deploy finished")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "ops", got.Recipient)
	assert.Equal(t, "deploy finished", got.Message)
}

func TestWebhookSink_PartialFailureStillCountsDeliveries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := NewWebhookSink(map[string]string{"ops": srv.URL}, srv.Client(), slog.Default())
	n, err := sink.Deliver(context.Background(), nil, []string{"ops", "missing"}, "msg")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWebhookSink_ServerErrorFailsDelivery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sink := NewWebhookSink(map[string]string{"ops": srv.URL}, srv.Client(), slog.Default())
	n, err := sink.Deliver(context.Background(), nil, []string{"ops"}, "msg")
	require.Error(t, err)
	assert.Zero(t, n)
}
