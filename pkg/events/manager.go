package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/trinity-ai/trinity/pkg/models"
)

// catchupLimit is the maximum number of events returned in a catchup
// response. If more events were missed, a catchup.overflow message tells the
// client to do a full REST reload.
const catchupLimit = 200

// CatchupEvent is one stored event returned by the catchup query.
type CatchupEvent struct {
	Seq     int64
	Payload map[string]any
}

// CatchupQuerier queries persisted events for catchup. Implemented by
// services.EventService.
type CatchupQuerier interface {
	CatchupEvents(ctx context.Context, channel string, sinceSeq int64, limit int) ([]CatchupEvent, error)
}

// ChannelAuthorizer decides whether the identity bound to a connection may
// read a channel. Implemented by the API layer over the auth package.
type ChannelAuthorizer interface {
	CanSubscribe(ctx context.Context, actor, channel string) bool
}

// ConnectionManager tracks WebSocket connections and their channel
// subscriptions, and broadcasts bus events to subscribers.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	// channel → set of connection ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	catchup    CatchupQuerier
	authorizer ChannelAuthorizer

	writeTimeout time.Duration
}

// Connection is a single WebSocket client.
//
// subscriptions is accessed without a lock: all reads and writes happen on
// the goroutine that owns the connection (HandleConnection's read loop and
// its deferred cleanup).
type Connection struct {
	ID            string
	Actor         string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a ConnectionManager.
func NewConnectionManager(catchup CatchupQuerier, authorizer ChannelAuthorizer, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		channels:     make(map[string]map[string]bool),
		catchup:      catchup,
		authorizer:   authorizer,
		writeTimeout: writeTimeout,
	}
}

// Sink returns a bus sink that broadcasts each event to its execution
// channel, and lifecycle events additionally to the global channel.
func (m *ConnectionManager) Sink() Sink {
	return SinkFunc(func(evt models.Event) {
		payload, err := json.Marshal(eventEnvelope(evt))
		if err != nil {
			slog.Warn("Failed to marshal event for broadcast", "type", evt.Type, "error", err)
			return
		}
		m.Broadcast(ExecutionChannel(evt.ExecutionID), payload)
		if isLifecycleEvent(evt.Type) {
			m.Broadcast(GlobalExecutionsChannel, payload)
		}
	})
}

// eventEnvelope is the wire form of a domain event.
func eventEnvelope(evt models.Event) map[string]any {
	env := map[string]any{
		"type":         evt.Type,
		"execution_id": evt.ExecutionID,
		"process_id":   evt.ProcessID,
		"seq":          evt.Seq,
		"timestamp":    evt.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if evt.StepID != "" {
		env["step_id"] = evt.StepID
	}
	if evt.Payload != nil {
		env["payload"] = evt.Payload
	}
	return env
}

// isLifecycleEvent reports whether an event belongs on the global channel.
func isLifecycleEvent(eventType string) bool {
	switch eventType {
	case models.EventProcessStarted, models.EventProcessCompleted, models.EventProcessFailed,
		models.EventProcessCancelled, models.EventProcessPaused, models.EventProcessResumed:
		return true
	}
	return false
}

// HandleConnection manages the lifecycle of one WebSocket connection. Called
// by the WebSocket HTTP handler after upgrade; blocks until the connection
// closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, actor string) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Actor:         actor,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast sends a payload to every connection subscribed to the channel.
func (m *ConnectionManager) Broadcast(channel string, payload []byte) {
	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers, then send outside the lock so a slow
	// write (up to writeTimeout) cannot stall register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, payload); err != nil {
			slog.Warn("Failed to send to WebSocket client", "connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount is used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		if m.authorizer != nil && !m.authorizer.CanSubscribe(ctx, c.Actor, msg.Channel) {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "not authorized for channel",
			})
			return
		}
		m.subscribe(c, msg.Channel)
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up so late subscribers see the full event history.
		m.handleCatchup(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastSeq != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastSeq)
		}

	case "refresh":
		// Re-check channel authorization so role or ownership changes take
		// effect without reconnecting.
		for channel := range c.subscriptions {
			if m.authorizer != nil && !m.authorizer.CanSubscribe(ctx, c.Actor, channel) {
				m.unsubscribe(c, channel)
				m.sendJSON(c, map[string]string{
					"type":    "subscription.revoked",
					"channel": channel,
				})
			}
		}
		m.sendJSON(c, map[string]string{"type": "refresh.complete"})

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

func (m *ConnectionManager) subscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	c.subscriptions[channel] = true
}

func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// handleCatchup sends stored events with seq > lastSeq to the client.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, channel string, lastSeq int64) {
	if m.catchup == nil {
		return
	}

	// Query one past the limit to detect overflow.
	stored, err := m.catchup.CatchupEvents(ctx, channel, lastSeq, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(stored) > catchupLimit
	if hasMore {
		stored = stored[:catchupLimit]
	}

	for _, evt := range stored {
		evt.Payload["seq"] = evt.Seq
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event", "connection_id", c.ID, "error", err)
			return
		}
	}

	// More events were missed than the catchup limit: tell the client to do
	// a full REST reload instead of paginating catchup requests.
	if hasMore {
		m.sendJSON(c, map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
