// Package events carries domain events from the execution engine to
// interested consumers: WebSocket clients, the awareness feed, parent
// executions waiting on children, and the audit trail.
//
// The bus is in-process. Events are already persisted (as rows written in
// the same transaction as the execution state) before they reach the bus, so
// a dropped in-flight event is recoverable via catchup; the bus itself makes
// no durability promises.
package events

import (
	"log/slog"
	"sync"

	"github.com/trinity-ai/trinity/pkg/models"
)

// Sink consumes published events. Handle is called from the single dispatch
// goroutine, so events for one execution arrive in sequence order. Handlers
// must not block; slow consumers should buffer internally.
type Sink interface {
	Handle(event models.Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(event models.Event)

// Handle implements Sink.
func (f SinkFunc) Handle(event models.Event) { f(event) }

// Bus fans out domain events to registered sinks. A single dispatch
// goroutine drains a buffered channel, preserving publish order across all
// sinks. Publish never blocks the engine: when the buffer is full the event
// is dropped with a warning (consumers recover via catchup).
type Bus struct {
	ch     chan models.Event
	done   chan struct{}
	logger *slog.Logger

	mu    sync.RWMutex
	sinks []Sink

	closeOnce sync.Once
}

// NewBus creates a bus with the given buffer size.
func NewBus(buffer int, logger *slog.Logger) *Bus {
	if buffer <= 0 {
		buffer = 1024
	}
	b := &Bus{
		ch:     make(chan models.Event, buffer),
		done:   make(chan struct{}),
		logger: logger.With("component", "event_bus"),
	}
	go b.dispatch()
	return b
}

// Subscribe registers a sink. Sinks registered after events were dispatched
// do not see past events.
func (b *Bus) Subscribe(s Sink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks = append(b.sinks, s)
}

// Publish enqueues events for dispatch. Call only after the events have been
// durably persisted.
func (b *Bus) Publish(events []models.Event) {
	for _, evt := range events {
		select {
		case b.ch <- evt:
		case <-b.done:
			return
		default:
			b.logger.Warn("Event bus buffer full, dropping event",
				"type", evt.Type, "execution_id", evt.ExecutionID, "seq", evt.Seq)
		}
	}
}

// Close stops the dispatch goroutine. Buffered events are discarded.
func (b *Bus) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

func (b *Bus) dispatch() {
	for {
		select {
		case <-b.done:
			return
		case evt := <-b.ch:
			b.mu.RLock()
			sinks := b.sinks
			b.mu.RUnlock()
			for _, s := range sinks {
				s.Handle(evt)
			}
		}
	}
}
