package queue

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/config"
	"github.com/trinity-ai/trinity/pkg/models"
)

func newTestQueue(t *testing.T, cfg *config.QueueConfig) *AgentExecutionQueue {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultQueueConfig()
	}
	if cfg.GracefulShutdownTimeout == 0 {
		cfg.GracefulShutdownTimeout = 2 * time.Second
	}
	q := NewAgentExecutionQueue(cfg, slog.Default())
	require.NoError(t, q.Start(context.Background()))
	t.Cleanup(q.Stop)
	return q
}

// blockingTask returns a task that signals start and blocks until released.
func blockingTask(execID, stepID string, started chan<- string, release <-chan struct{}) Task {
	return Task{
		ExecutionID: execID,
		StepID:      stepID,
		Priority:    PriorityNormal,
		Run: func(ctx context.Context) {
			select {
			case started <- execID + "/" + stepID:
			case <-ctx.Done():
				return
			}
			select {
			case <-release:
			case <-ctx.Done():
			}
		},
	}
}

func TestSubmit_SingleInFlightPerAgent(t *testing.T) {
	q := newTestQueue(t, nil)

	var mu sync.Mutex
	concurrent, maxConcurrent := 0, 0
	done := make(chan struct{}, 5)

	for i := 0; i < 5; i++ {
		_, err := q.Submit(context.Background(), "writer", Task{
			ExecutionID: "exec-1",
			Priority:    PriorityNormal,
			Run: func(ctx context.Context) {
				mu.Lock()
				concurrent++
				if concurrent > maxConcurrent {
					maxConcurrent = concurrent
				}
				mu.Unlock()
				time.Sleep(10 * time.Millisecond)
				mu.Lock()
				concurrent--
				mu.Unlock()
				done <- struct{}{}
			},
		})
		require.NoError(t, err)
	}

	for i := 0; i < 5; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("task did not finish")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, maxConcurrent, "agent must never run two tasks at once")
}

func TestSubmit_DifferentAgentsRunInParallel(t *testing.T) {
	q := newTestQueue(t, nil)

	started := make(chan string, 2)
	release := make(chan struct{})
	defer close(release)

	_, err := q.Submit(context.Background(), "agent-a", blockingTask("e1", "s1", started, release))
	require.NoError(t, err)
	_, err = q.Submit(context.Background(), "agent-b", blockingTask("e1", "s2", started, release))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatal("expected both agents to start concurrently")
		}
	}
}

func TestSubmit_PriorityOrdering(t *testing.T) {
	q := newTestQueue(t, nil)

	started := make(chan string, 4)
	release := make(chan struct{})

	// Occupy the agent so subsequent submissions queue up.
	_, err := q.Submit(context.Background(), "agent", blockingTask("e0", "hold", started, release))
	require.NoError(t, err)
	<-started

	order := make(chan string, 3)
	enqueue := func(execID string, prio Priority) {
		_, err := q.Submit(context.Background(), "agent", Task{
			ExecutionID: execID,
			Priority:    prio,
			Run:         func(ctx context.Context) { order <- execID },
		})
		require.NoError(t, err)
	}
	enqueue("low", PriorityLow)
	enqueue("normal", PriorityNormal)
	enqueue("high", PriorityHigh)

	close(release)

	var got []string
	for i := 0; i < 3; i++ {
		select {
		case id := <-order:
			got = append(got, id)
		case <-time.After(2 * time.Second):
			t.Fatal("queued tasks did not run")
		}
	}
	assert.Equal(t, []string{"high", "normal", "low"}, got)
}

func TestSubmit_RoundRobinAcrossExecutions(t *testing.T) {
	q := newTestQueue(t, nil)

	started := make(chan string, 1)
	release := make(chan struct{})

	_, err := q.Submit(context.Background(), "agent", blockingTask("hold", "hold", started, release))
	require.NoError(t, err)
	<-started

	order := make(chan string, 6)
	enqueue := func(execID, stepID string) {
		_, err := q.Submit(context.Background(), "agent", Task{
			ExecutionID: execID,
			StepID:      stepID,
			Priority:    PriorityNormal,
			Run:         func(ctx context.Context) { order <- execID + "/" + stepID },
		})
		require.NoError(t, err)
	}
	// Execution A floods the queue before B submits.
	enqueue("a", "1")
	enqueue("a", "2")
	enqueue("a", "3")
	enqueue("b", "1")
	enqueue("b", "2")

	close(release)

	var got []string
	for i := 0; i < 5; i++ {
		select {
		case id := <-order:
			got = append(got, id)
		case <-time.After(2 * time.Second):
			t.Fatal("queued tasks did not run")
		}
	}
	// Round-robin alternates executions instead of draining A first.
	assert.Equal(t, []string{"a/1", "b/1", "a/2", "b/2", "a/3"}, got)
}

func TestSubmit_OverflowReject(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.MaxDepth = 2
	cfg.Overflow = config.OverflowReject
	q := newTestQueue(t, cfg)

	started := make(chan string, 1)
	release := make(chan struct{})
	defer close(release)

	// First runs, second queues, third must be rejected.
	_, err := q.Submit(context.Background(), "agent", blockingTask("e1", "s1", started, release))
	require.NoError(t, err)
	<-started

	_, err = q.Submit(context.Background(), "agent", blockingTask("e2", "s1", started, release))
	require.NoError(t, err)

	_, err = q.Submit(context.Background(), "agent", blockingTask("e3", "s1", started, release))
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindQueueFull))
}

func TestSubmit_OverflowDelayTimesOut(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.MaxDepth = 1
	cfg.Overflow = config.OverflowDelay
	cfg.QueueTimeout = 50 * time.Millisecond
	q := newTestQueue(t, cfg)

	started := make(chan string, 1)
	release := make(chan struct{})
	defer close(release)

	_, err := q.Submit(context.Background(), "agent", blockingTask("e1", "s1", started, release))
	require.NoError(t, err)
	<-started

	begin := time.Now()
	_, err = q.Submit(context.Background(), "agent", blockingTask("e2", "s1", started, release))
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindQueueFull))
	assert.GreaterOrEqual(t, time.Since(begin), 50*time.Millisecond)
}

func TestSubmit_OverflowDelayAcquiresFreedSlot(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.MaxDepth = 1
	cfg.Overflow = config.OverflowDelay
	cfg.QueueTimeout = 2 * time.Second
	q := newTestQueue(t, cfg)

	started := make(chan string, 2)
	release := make(chan struct{})

	_, err := q.Submit(context.Background(), "agent", blockingTask("e1", "s1", started, release))
	require.NoError(t, err)
	<-started

	go func() {
		time.Sleep(30 * time.Millisecond)
		close(release)
	}()

	h, err := q.Submit(context.Background(), "agent", Task{
		ExecutionID: "e2",
		Priority:    PriorityNormal,
		Run:         func(ctx context.Context) {},
	})
	require.NoError(t, err)

	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("delayed submission never ran")
	}
}

func TestHandle_CancelQueuedTask(t *testing.T) {
	q := newTestQueue(t, nil)

	started := make(chan string, 1)
	release := make(chan struct{})
	defer close(release)

	_, err := q.Submit(context.Background(), "agent", blockingTask("e1", "s1", started, release))
	require.NoError(t, err)
	<-started

	ran := make(chan struct{})
	h, err := q.Submit(context.Background(), "agent", Task{
		ExecutionID: "e2",
		Priority:    PriorityNormal,
		Run:         func(ctx context.Context) { close(ran) },
	})
	require.NoError(t, err)
	require.Equal(t, 1, q.QueuedCount("agent"))

	h.Cancel()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("cancelled handle never completed")
	}
	assert.Equal(t, 0, q.QueuedCount("agent"))
	assert.Equal(t, -1, h.Position())

	select {
	case <-ran:
		t.Fatal("cancelled queued task must not run")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandle_CancelRunningTask(t *testing.T) {
	q := newTestQueue(t, nil)

	started := make(chan string, 1)
	cancelled := make(chan struct{})

	h, err := q.Submit(context.Background(), "agent", Task{
		ExecutionID: "e1",
		Priority:    PriorityNormal,
		Run: func(ctx context.Context) {
			started <- "e1"
			<-ctx.Done()
			close(cancelled)
		},
	})
	require.NoError(t, err)
	<-started
	assert.Equal(t, 0, h.Position())

	h.Cancel()

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("running task did not observe cancellation")
	}
}

func TestObservability(t *testing.T) {
	q := newTestQueue(t, nil)

	// Sized for every submission so drained tasks never block on the signal.
	started := make(chan string, 3)
	release := make(chan struct{})
	defer close(release)

	_, err := q.Submit(context.Background(), "agent", blockingTask("e1", "s1", started, release))
	require.NoError(t, err)
	<-started

	h2, err := q.Submit(context.Background(), "agent", blockingTask("e2", "s1", started, release))
	require.NoError(t, err)
	h3, err := q.Submit(context.Background(), "agent", blockingTask("e3", "s1", started, release))
	require.NoError(t, err)

	running, ok := q.RunningTask("agent")
	require.True(t, ok)
	assert.Equal(t, "e1", running.ExecutionID)
	assert.Equal(t, 2, q.QueuedCount("agent"))
	assert.Equal(t, 1, h2.Position())
	assert.Equal(t, 2, h3.Position())

	_, ok = q.RunningTask("unknown")
	assert.False(t, ok)
	assert.Equal(t, 0, q.QueuedCount("unknown"))
}

func TestSubmit_Validation(t *testing.T) {
	q := newTestQueue(t, nil)

	_, err := q.Submit(context.Background(), "", Task{Run: func(ctx context.Context) {}})
	assert.True(t, models.IsKind(err, models.KindValidation))

	_, err = q.Submit(context.Background(), "agent", Task{})
	assert.True(t, models.IsKind(err, models.KindValidation))
}

func TestStop_DiscardsQueuedAndRejectsNewWork(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.GracefulShutdownTimeout = time.Second
	q := NewAgentExecutionQueue(cfg, slog.Default())
	require.NoError(t, q.Start(context.Background()))

	started := make(chan string, 1)
	release := make(chan struct{})

	_, err := q.Submit(context.Background(), "agent", blockingTask("e1", "s1", started, release))
	require.NoError(t, err)
	<-started

	h, err := q.Submit(context.Background(), "agent", blockingTask("e2", "s1", started, release))
	require.NoError(t, err)

	close(release)
	q.Stop()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("queued handle not resolved at shutdown")
	}

	_, err = q.Submit(context.Background(), "agent", Task{Run: func(ctx context.Context) {}})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindCancelled))
}
