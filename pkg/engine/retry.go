package engine

import (
	"time"

	"github.com/trinity-ai/trinity/pkg/models"
)

// queueFullRetryDelay is the short fixed delay applied when an agent queue
// rejects a submission. Queue-full retries do not consume an attempt.
const queueFullRetryDelay = 2 * time.Second

// retryDecision says what to do with a failed step attempt.
type retryDecision struct {
	retry bool
	// delay before the next attempt.
	delay time.Duration
	// consumeAttempt is false for queue-full backpressure.
	consumeAttempt bool
}

// decideRetry applies the step's retry policy to a classified failure.
// attempt is the number of attempts consumed so far (retry_count).
func decideRetry(policy models.RetryPolicy, kind models.Kind, attempt int) retryDecision {
	if kind.Fatal() {
		return retryDecision{}
	}

	for _, k := range policy.NonRetryableKinds {
		if k == kind {
			return retryDecision{}
		}
	}

	if kind == models.KindQueueFull {
		return retryDecision{retry: true, delay: queueFullRetryDelay, consumeAttempt: false}
	}

	// Uncategorized failures get exactly one retry, then go fatal.
	if kind == models.KindInternalError {
		if attempt > 0 {
			return retryDecision{}
		}
		return retryDecision{retry: true, delay: backoffDelay(policy, 1), consumeAttempt: true}
	}

	retryable := kind.Retryable()
	if len(policy.RetryableKinds) > 0 {
		retryable = false
		for _, k := range policy.RetryableKinds {
			if k == kind {
				retryable = true
				break
			}
		}
	}
	if !retryable {
		return retryDecision{}
	}

	// Every failed attempt within max_attempts emits a retry; exhaustion is
	// detected at re-dispatch, so max_attempts failures produce max_attempts
	// retry events. max_attempts of 1 means no retry at all.
	if policy.MaxAttempts <= 1 || attempt+1 > policy.MaxAttempts {
		return retryDecision{}
	}

	return retryDecision{retry: true, delay: backoffDelay(policy, attempt+1), consumeAttempt: true}
}

// backoffDelay computes the delay before the given (1-based) retry.
func backoffDelay(policy models.RetryPolicy, retry int) time.Duration {
	if retry < 1 {
		retry = 1
	}
	var d time.Duration
	switch policy.Backoff {
	case models.BackoffLinear:
		d = policy.InitialDelay * time.Duration(retry)
	case models.BackoffExponential:
		d = policy.InitialDelay
		for i := 1; i < retry; i++ {
			d *= 2
			if d >= policy.MaxDelay {
				break
			}
		}
	default:
		d = policy.InitialDelay
	}
	if policy.MaxDelay > 0 && d > policy.MaxDelay {
		d = policy.MaxDelay
	}
	return d
}
