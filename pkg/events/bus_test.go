package events

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

// collectorSink records events under a mutex so tests can poll.
type collectorSink struct {
	mu     sync.Mutex
	events []models.Event
}

func (c *collectorSink) Handle(evt models.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, evt)
}

func (c *collectorSink) snapshot() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Event, len(c.events))
	copy(out, c.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}

func TestBus_DeliversInOrder(t *testing.T) {
	bus := NewBus(64, slog.Default())
	defer bus.Close()

	sink := &collectorSink{}
	bus.Subscribe(sink)

	var batch []models.Event
	for i := int64(1); i <= 10; i++ {
		batch = append(batch, models.Event{
			Type:        models.EventStepCompleted,
			ExecutionID: "exec-1",
			Seq:         i,
			Timestamp:   time.Now(),
		})
	}
	bus.Publish(batch)

	waitFor(t, func() bool { return len(sink.snapshot()) == 10 })

	got := sink.snapshot()
	for i, evt := range got {
		assert.Equal(t, int64(i+1), evt.Seq)
	}
}

func TestBus_FansOutToAllSinks(t *testing.T) {
	bus := NewBus(64, slog.Default())
	defer bus.Close()

	a := &collectorSink{}
	b := &collectorSink{}
	bus.Subscribe(a)
	bus.Subscribe(b)

	bus.Publish([]models.Event{{Type: models.EventProcessStarted, ExecutionID: "exec-1", Seq: 1}})

	waitFor(t, func() bool { return len(a.snapshot()) == 1 && len(b.snapshot()) == 1 })
	require.Equal(t, models.EventProcessStarted, a.snapshot()[0].Type)
	require.Equal(t, models.EventProcessStarted, b.snapshot()[0].Type)
}

func TestBus_PublishAfterCloseDoesNotBlock(t *testing.T) {
	bus := NewBus(1, slog.Default())
	bus.Close()

	done := make(chan struct{})
	go func() {
		bus.Publish([]models.Event{{Seq: 1}, {Seq: 2}, {Seq: 3}})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked after Close")
	}
}

func TestExecutionChannel(t *testing.T) {
	assert.Equal(t, "execution:abc", ExecutionChannel("abc"))
}

func TestIsLifecycleEvent(t *testing.T) {
	assert.True(t, isLifecycleEvent(models.EventProcessCompleted))
	assert.True(t, isLifecycleEvent(models.EventProcessPaused))
	assert.False(t, isLifecycleEvent(models.EventStepCompleted))
	assert.False(t, isLifecycleEvent(models.EventApprovalRequested))
}
