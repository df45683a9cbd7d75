package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trinity-ai/trinity/pkg/models"
)

func TestDecideRetry(t *testing.T) {
	policy := models.RetryPolicy{
		MaxAttempts:  3,
		Backoff:      models.BackoffFixed,
		InitialDelay: time.Second,
		MaxDelay:     time.Minute,
	}

	tests := []struct {
		name           string
		policy         models.RetryPolicy
		kind           models.Kind
		attempt        int
		wantRetry      bool
		wantDelay      time.Duration
		wantConsumeYes bool
	}{
		{
			name:           "retryable kind below max attempts",
			policy:         policy,
			kind:           models.KindTimeout,
			attempt:        0,
			wantRetry:      true,
			wantDelay:      time.Second,
			wantConsumeYes: true,
		},
		{
			name:           "final attempt still schedules a retry record",
			policy:         policy,
			kind:           models.KindTimeout,
			attempt:        2,
			wantRetry:      true,
			wantDelay:      time.Second,
			wantConsumeYes: true,
		},
		{
			name:      "exhausted attempts stop retrying",
			policy:    policy,
			kind:      models.KindTimeout,
			attempt:   3,
			wantRetry: false,
		},
		{
			name:      "max_attempts of one means no retry",
			policy:    models.RetryPolicy{MaxAttempts: 1, Backoff: models.BackoffFixed, InitialDelay: time.Second},
			kind:      models.KindTimeout,
			attempt:   0,
			wantRetry: false,
		},
		{
			name:      "non-retryable kind",
			policy:    policy,
			kind:      models.KindValidation,
			attempt:   0,
			wantRetry: false,
		},
		{
			name:      "fatal kind never retries",
			policy:    models.RetryPolicy{MaxAttempts: 5, Backoff: models.BackoffFixed, InitialDelay: time.Second},
			kind:      models.KindBudgetExceeded,
			attempt:   0,
			wantRetry: false,
		},
		{
			name:           "queue full does not consume an attempt",
			policy:         policy,
			kind:           models.KindQueueFull,
			attempt:        2,
			wantRetry:      true,
			wantDelay:      queueFullRetryDelay,
			wantConsumeYes: false,
		},
		{
			name:           "internal error gets exactly one retry",
			policy:         policy,
			kind:           models.KindInternalError,
			attempt:        0,
			wantRetry:      true,
			wantDelay:      time.Second,
			wantConsumeYes: true,
		},
		{
			name:      "internal error second failure is final",
			policy:    policy,
			kind:      models.KindInternalError,
			attempt:   1,
			wantRetry: false,
		},
		{
			name: "retryable_kinds narrows the default set",
			policy: models.RetryPolicy{
				MaxAttempts:    3,
				Backoff:        models.BackoffFixed,
				InitialDelay:   time.Second,
				RetryableKinds: []models.Kind{models.KindRateLimit},
			},
			kind:      models.KindTimeout,
			attempt:   0,
			wantRetry: false,
		},
		{
			name: "non_retryable_kinds overrides default",
			policy: models.RetryPolicy{
				MaxAttempts:       3,
				Backoff:           models.BackoffFixed,
				InitialDelay:      time.Second,
				NonRetryableKinds: []models.Kind{models.KindTimeout},
			},
			kind:      models.KindTimeout,
			attempt:   0,
			wantRetry: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := decideRetry(tt.policy, tt.kind, tt.attempt)
			assert.Equal(t, tt.wantRetry, dec.retry)
			if tt.wantRetry {
				assert.Equal(t, tt.wantDelay, dec.delay)
				assert.Equal(t, tt.wantConsumeYes, dec.consumeAttempt)
			}
		})
	}
}

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		name   string
		policy models.RetryPolicy
		retry  int
		want   time.Duration
	}{
		{
			name:   "fixed",
			policy: models.RetryPolicy{Backoff: models.BackoffFixed, InitialDelay: 2 * time.Second, MaxDelay: time.Minute},
			retry:  3,
			want:   2 * time.Second,
		},
		{
			name:   "linear grows with retry number",
			policy: models.RetryPolicy{Backoff: models.BackoffLinear, InitialDelay: 2 * time.Second, MaxDelay: time.Minute},
			retry:  3,
			want:   6 * time.Second,
		},
		{
			name:   "exponential doubles",
			policy: models.RetryPolicy{Backoff: models.BackoffExponential, InitialDelay: time.Second, MaxDelay: time.Minute},
			retry:  4,
			want:   8 * time.Second,
		},
		{
			name:   "exponential capped at max delay",
			policy: models.RetryPolicy{Backoff: models.BackoffExponential, InitialDelay: time.Second, MaxDelay: 5 * time.Second},
			retry:  10,
			want:   5 * time.Second,
		},
		{
			name:   "linear capped at max delay",
			policy: models.RetryPolicy{Backoff: models.BackoffLinear, InitialDelay: 30 * time.Second, MaxDelay: time.Minute},
			retry:  5,
			want:   time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backoffDelay(tt.policy, tt.retry))
		})
	}
}
