package queue

import (
	"context"
	"time"
)

// Priority orders tasks within an agent's queue.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// rank maps priorities to band indexes. Unknown priorities run as normal.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	}
	return 1
}

// Task is one unit of agent work. Run is invoked by the agent's dispatcher
// goroutine with a context that is cancelled on handle cancellation and on
// queue shutdown. Run owns completion reporting; the queue only serializes.
type Task struct {
	ExecutionID string
	StepID      string
	Priority    Priority
	Run         func(ctx context.Context)
}

// TaskInfo describes a running or queued task for observability.
type TaskInfo struct {
	ExecutionID string    `json:"execution_id"`
	StepID      string    `json:"step_id"`
	Priority    Priority  `json:"priority"`
	EnqueuedAt  time.Time `json:"enqueued_at"`
}

type taskState int

const (
	statePending taskState = iota
	stateRunning
	stateDone
	stateCancelled
)

// Handle identifies a submitted task and supports cancellation and position
// queries.
type Handle struct {
	id string
	aq *agentQueue
	it *item
}

// ID returns the opaque task id.
func (h *Handle) ID() string { return h.id }

// Done is closed when the task finishes, is cancelled, or is discarded at
// shutdown.
func (h *Handle) Done() <-chan struct{} { return h.it.done }

// Cancel removes a queued task or, for an in-flight task, cancels its
// context. In-flight cancellation is best-effort: the task's Run decides how
// promptly to honor it.
func (h *Handle) Cancel() {
	h.aq.cancelItem(h.it)
}

// Position returns the task's place in line for its agent: 0 while running,
// a 1-based queue position while queued, and -1 once finished or cancelled.
func (h *Handle) Position() int {
	return h.aq.position(h.it)
}
