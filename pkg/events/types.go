package events

import "fmt"

// Channel names. Per-execution channels carry the full event stream of one
// execution; the global channel carries a transient copy of lifecycle events
// for list views.
const GlobalExecutionsChannel = "executions"

// ExecutionChannel returns the channel name for a single execution.
func ExecutionChannel(executionID string) string {
	return fmt.Sprintf("execution:%s", executionID)
}

// ClientMessage is a message sent from a WebSocket client to the server.
type ClientMessage struct {
	Action string `json:"action"`
	// Channel to subscribe/unsubscribe/catchup on.
	Channel string `json:"channel,omitempty"`
	// LastSeq for catchup requests: replay events with seq > LastSeq.
	LastSeq *int64 `json:"last_seq,omitempty"`
}
