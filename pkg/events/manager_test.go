package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) CatchupEvents(_ context.Context, _ string, sinceSeq int64, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []CatchupEvent
	for _, evt := range m.events {
		if evt.Seq > sinceSeq {
			out = append(out, evt)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// mockAuthorizer allows channels by name; nil set allows everything.
type mockAuthorizer struct {
	mu      sync.Mutex
	allowed map[string]bool
}

func (m *mockAuthorizer) CanSubscribe(_ context.Context, _ string, channel string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.allowed == nil {
		return true
	}
	return m.allowed[channel]
}

func (m *mockAuthorizer) setAllowed(allowed map[string]bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allowed = allowed
}

func setupManagerServer(t *testing.T, manager *ConnectionManager) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn, "alice|viewer|")
	}))
	t.Cleanup(server.Close)
	return server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	manager := NewConnectionManager(&mockCatchupQuerier{}, nil, 5*time.Second)
	return manager, setupManagerServer(t, manager)
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readWSJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeWSJSON(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readWSJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeAndBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readWSJSON(t, conn) // connection.established

	channel := ExecutionChannel("exec-1")
	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})

	msg := readWSJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, channel, msg["channel"])

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "step.started", "step_id": "triage"})
	manager.Broadcast(channel, payload)

	got := readWSJSON(t, conn)
	assert.Equal(t, "step.started", got["type"])
	assert.Equal(t, "triage", got["step_id"])
}

func TestConnectionManager_SubscriptionDenied(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{},
		&mockAuthorizer{allowed: map[string]bool{ExecutionChannel("mine"): true}}, 5*time.Second)
	server := setupManagerServer(t, manager)

	conn := connectWS(t, server)
	readWSJSON(t, conn) // connection.established

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalExecutionsChannel})
	msg := readWSJSON(t, conn)
	assert.Equal(t, "subscription.error", msg["type"])
	assert.Equal(t, GlobalExecutionsChannel, msg["channel"])

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ExecutionChannel("mine")})
	msg = readWSJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
}

func TestConnectionManager_Refresh(t *testing.T) {
	authorizer := &mockAuthorizer{allowed: map[string]bool{ExecutionChannel("exec-1"): true}}
	manager := NewConnectionManager(&mockCatchupQuerier{}, authorizer, 5*time.Second)
	server := setupManagerServer(t, manager)

	conn := connectWS(t, server)
	readWSJSON(t, conn) // connection.established

	channel := ExecutionChannel("exec-1")
	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readWSJSON(t, conn) // subscription.confirmed

	// Refresh while still authorized: subscription survives.
	writeWSJSON(t, conn, ClientMessage{Action: "refresh"})
	msg := readWSJSON(t, conn)
	assert.Equal(t, "refresh.complete", msg["type"])

	// Revoke access and refresh again: subscription is dropped.
	authorizer.setAllowed(map[string]bool{})
	writeWSJSON(t, conn, ClientMessage{Action: "refresh"})

	msg = readWSJSON(t, conn)
	assert.Equal(t, "subscription.revoked", msg["type"])
	assert.Equal(t, channel, msg["channel"])
	msg = readWSJSON(t, conn)
	assert.Equal(t, "refresh.complete", msg["type"])

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readWSJSON(t, conn) // connection.established

	writeWSJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readWSJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_CatchupNormal(t *testing.T) {
	events := []CatchupEvent{
		{Seq: 1, Payload: map[string]any{"type": "process.started"}},
		{Seq: 2, Payload: map[string]any{"type": "step.started"}},
		{Seq: 3, Payload: map[string]any{"type": "step.completed"}},
	}
	manager := NewConnectionManager(&mockCatchupQuerier{events: events}, nil, 5*time.Second)
	server := setupManagerServer(t, manager)

	conn := connectWS(t, server)
	readWSJSON(t, conn) // connection.established

	channel := ExecutionChannel("exec-1")
	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readWSJSON(t, conn) // subscription.confirmed

	// Subscribe auto-catches-up from seq 0: all three stored events arrive
	// in order with their seq stamped in.
	for i := 1; i <= 3; i++ {
		msg := readWSJSON(t, conn)
		assert.Equal(t, float64(i), msg["seq"])
	}

	// A later catchup from seq 2 replays only the tail.
	lastSeq := int64(2)
	writeWSJSON(t, conn, ClientMessage{Action: "catchup", Channel: channel, LastSeq: &lastSeq})
	msg := readWSJSON(t, conn)
	assert.Equal(t, float64(3), msg["seq"])
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			Seq:     int64(i + 1),
			Payload: map[string]any{"type": "step.completed"},
		}
	}
	manager := NewConnectionManager(&mockCatchupQuerier{events: manyEvents}, nil, 5*time.Second)
	server := setupManagerServer(t, manager)

	conn := connectWS(t, server)
	readWSJSON(t, conn) // connection.established

	channel := ExecutionChannel("exec-overflow")
	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readWSJSON(t, conn) // subscription.confirmed

	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readWSJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["has_more"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// A failing catchup query is logged, not fatal: the connection stays up.
	manager := NewConnectionManager(&mockCatchupQuerier{err: fmt.Errorf("database unreachable")}, nil, 5*time.Second)
	server := setupManagerServer(t, manager)

	conn := connectWS(t, server)
	readWSJSON(t, conn) // connection.established

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ExecutionChannel("exec-err")})
	readWSJSON(t, conn) // subscription.confirmed

	writeWSJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readWSJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readWSJSON(t, conn1) // connection.established
	readWSJSON(t, conn2) // connection.established

	ch1 := ExecutionChannel("exec-a")
	ch2 := ExecutionChannel("exec-b")
	writeWSJSON(t, conn1, ClientMessage{Action: "subscribe", Channel: ch1})
	readWSJSON(t, conn1)
	writeWSJSON(t, conn2, ClientMessage{Action: "subscribe", Channel: ch2})
	readWSJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(ch1) == 1 && manager.subscriberCount(ch2) == 1
	}, time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "test", "target": "a"})
	manager.Broadcast(ch1, payload)

	msg := readWSJSON(t, conn1)
	assert.Equal(t, "a", msg["target"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive exec-a broadcast")
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readWSJSON(t, conn) // connection.established

	channel := ExecutionChannel("exec-unsub")
	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readWSJSON(t, conn) // subscription.confirmed

	writeWSJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	manager.Broadcast(channel, payload)

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readWSJSON(t, conn) // connection.established

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ""})
	msg := readWSJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	writeWSJSON(t, conn, ClientMessage{Action: "ping"})
	msg = readWSJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	channel := ExecutionChannel("exec-cleanup")
	data, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && manager.subscriberCount(channel) == 0
	}, time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast(channel, payload)
	})
}
