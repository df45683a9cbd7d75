// Package queue serializes agent work. Every agent gets at most one
// in-flight task at any instant; waiting tasks are ordered by priority band
// and, within a band, round-robin across executions so one process cannot
// starve others sharing an agent.
package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trinity-ai/trinity/pkg/config"
	"github.com/trinity-ai/trinity/pkg/models"
)

// item is the internal queued representation of a task.
type item struct {
	id         string
	task       Task
	enqueuedAt time.Time

	// Guarded by the owning agentQueue's mutex.
	state           taskState
	cancel          context.CancelFunc
	cancelRequested bool

	done chan struct{}
}

// band holds queued items of one priority, round-robin across execution ids.
type band struct {
	order  []string
	next   int
	byExec map[string][]*item
}

func newBand() *band {
	return &band{byExec: make(map[string][]*item)}
}

func (b *band) push(it *item) {
	execID := it.task.ExecutionID
	if _, ok := b.byExec[execID]; !ok {
		b.order = append(b.order, execID)
	}
	b.byExec[execID] = append(b.byExec[execID], it)
}

// pop returns the next item by round-robin over executions, or nil.
func (b *band) pop() *item {
	if len(b.order) == 0 {
		return nil
	}
	if b.next >= len(b.order) {
		b.next = 0
	}
	execID := b.order[b.next]
	items := b.byExec[execID]
	it := items[0]
	items = items[1:]
	if len(items) == 0 {
		delete(b.byExec, execID)
		b.order = append(b.order[:b.next], b.order[b.next+1:]...)
		// Cursor now points at the following execution already.
	} else {
		b.byExec[execID] = items
		b.next++
	}
	return it
}

// remove deletes a specific queued item. Returns false if not present.
func (b *band) remove(target *item) bool {
	execID := target.task.ExecutionID
	items := b.byExec[execID]
	for i, it := range items {
		if it != target {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if len(items) == 0 {
			delete(b.byExec, execID)
			for j, id := range b.order {
				if id == execID {
					b.order = append(b.order[:j], b.order[j+1:]...)
					if b.next > j {
						b.next--
					}
					break
				}
			}
		} else {
			b.byExec[execID] = items
		}
		return true
	}
	return false
}

func (b *band) size() int {
	n := 0
	for _, items := range b.byExec {
		n += len(items)
	}
	return n
}

// agentQueue owns the state and dispatcher goroutine of a single agent.
type agentQueue struct {
	agent string
	q     *AgentExecutionQueue

	mu      sync.Mutex
	bands   [3]*band
	queued  int
	running *item

	// wake nudges the dispatcher after a push; space is closed and replaced
	// whenever a depth slot frees, waking delay-policy submitters.
	wake  chan struct{}
	space chan struct{}
}

// AgentExecutionQueue is the registry of per-agent queues. Dispatcher
// goroutines are created lazily on first submit for an agent.
type AgentExecutionQueue struct {
	cfg    *config.QueueConfig
	logger *slog.Logger

	mu     sync.RWMutex
	agents map[string]*agentQueue

	rootCtx    context.Context
	rootCancel context.CancelFunc
	quit       chan struct{}
	wg         sync.WaitGroup

	started bool
	stopped bool
}

// NewAgentExecutionQueue creates a stopped queue registry.
func NewAgentExecutionQueue(cfg *config.QueueConfig, logger *slog.Logger) *AgentExecutionQueue {
	return &AgentExecutionQueue{
		cfg:    cfg,
		logger: logger.With("component", "agent_queue"),
		agents: make(map[string]*agentQueue),
		quit:   make(chan struct{}),
	}
}

// Start prepares the registry for submissions. Safe to call once.
func (q *AgentExecutionQueue) Start(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		q.logger.Warn("Agent queue already started, ignoring duplicate Start call")
		return nil
	}
	q.rootCtx, q.rootCancel = context.WithCancel(context.WithoutCancel(ctx))
	q.started = true
	q.logger.Info("Agent queue started",
		"max_depth", q.cfg.MaxDepth, "overflow", string(q.cfg.Overflow))
	return nil
}

// Stop drains the registry: no new submissions are accepted, in-flight tasks
// get GracefulShutdownTimeout to finish, then their contexts are cancelled.
// Queued tasks are discarded with their handles marked done.
func (q *AgentExecutionQueue) Stop() {
	q.mu.Lock()
	if !q.started || q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	close(q.quit)
	agents := make([]*agentQueue, 0, len(q.agents))
	for _, aq := range q.agents {
		agents = append(agents, aq)
	}
	q.mu.Unlock()

	q.logger.Info("Stopping agent queue gracefully")

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(q.cfg.GracefulShutdownTimeout):
		q.logger.Warn("Graceful shutdown timeout exceeded, cancelling in-flight tasks")
		q.rootCancel()
		// A task that ignores its context would otherwise wedge shutdown.
		select {
		case <-done:
		case <-time.After(q.cfg.GracefulShutdownTimeout):
			q.logger.Error("In-flight task ignored cancellation, abandoning it")
		}
	}
	q.rootCancel()

	// Discard whatever is still queued so handle waiters unblock.
	for _, aq := range agents {
		aq.discardQueued()
	}
	q.logger.Info("Agent queue stopped")
}

// Submit enqueues a task for the agent. Behavior at the depth limit follows
// the configured overflow policy: reject fails immediately with QueueFull,
// delay waits up to QueueTimeout, queue accepts unbounded.
func (q *AgentExecutionQueue) Submit(ctx context.Context, agent string, task Task) (*Handle, error) {
	if agent == "" {
		return nil, models.NewError(models.KindValidation, "agent name is required")
	}
	if task.Run == nil {
		return nil, models.NewError(models.KindValidation, "task has no run function")
	}
	q.mu.Lock()
	if !q.started || q.stopped {
		q.mu.Unlock()
		return nil, models.NewError(models.KindCancelled, "agent queue is not accepting tasks")
	}
	aq := q.agents[agent]
	if aq == nil {
		aq = &agentQueue{
			agent: agent,
			q:     q,
			bands: [3]*band{newBand(), newBand(), newBand()},
			wake:  make(chan struct{}, 1),
			space: make(chan struct{}),
		}
		q.agents[agent] = aq
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			aq.run()
		}()
	}
	q.mu.Unlock()

	return aq.submit(ctx, task)
}

// RunningTask returns the in-flight task for the agent, if any.
func (q *AgentExecutionQueue) RunningTask(agent string) (TaskInfo, bool) {
	aq := q.lookup(agent)
	if aq == nil {
		return TaskInfo{}, false
	}
	aq.mu.Lock()
	defer aq.mu.Unlock()
	if aq.running == nil {
		return TaskInfo{}, false
	}
	return infoOf(aq.running), true
}

// QueuedCount returns the number of waiting (not running) tasks for an agent.
func (q *AgentExecutionQueue) QueuedCount(agent string) int {
	aq := q.lookup(agent)
	if aq == nil {
		return 0
	}
	aq.mu.Lock()
	defer aq.mu.Unlock()
	return aq.queued
}

func (q *AgentExecutionQueue) lookup(agent string) *agentQueue {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.agents[agent]
}

func infoOf(it *item) TaskInfo {
	return TaskInfo{
		ExecutionID: it.task.ExecutionID,
		StepID:      it.task.StepID,
		Priority:    it.task.Priority,
		EnqueuedAt:  it.enqueuedAt,
	}
}

// --- agentQueue internals ---

func (aq *agentQueue) submit(ctx context.Context, task Task) (*Handle, error) {
	cfg := aq.q.cfg
	var deadline time.Time
	if cfg.Overflow == config.OverflowDelay {
		deadline = time.Now().Add(cfg.QueueTimeout)
	}

	for {
		aq.mu.Lock()
		inFlight := aq.queued
		if aq.running != nil {
			inFlight++
		}
		if cfg.Overflow == config.OverflowQueue || inFlight < cfg.MaxDepth {
			it := &item{
				id:         uuid.New().String(),
				task:       task,
				enqueuedAt: time.Now(),
				done:       make(chan struct{}),
			}
			aq.bands[task.Priority.rank()].push(it)
			aq.queued++
			aq.mu.Unlock()
			select {
			case aq.wake <- struct{}{}:
			default:
			}
			return &Handle{id: it.id, aq: aq, it: it}, nil
		}

		if cfg.Overflow == config.OverflowReject {
			aq.mu.Unlock()
			return nil, models.NewError(models.KindQueueFull,
				"agent %q queue is full (depth %d)", aq.agent, cfg.MaxDepth)
		}

		// Delay policy: wait for a slot until the deadline.
		if !time.Now().Before(deadline) {
			aq.mu.Unlock()
			return nil, models.NewError(models.KindQueueFull,
				"agent %q queue wait timed out after %s", aq.agent, cfg.QueueTimeout)
		}
		waitCh := aq.space
		aq.mu.Unlock()

		timer := time.NewTimer(time.Until(deadline))
		select {
		case <-waitCh:
			timer.Stop()
		case <-timer.C:
			return nil, models.NewError(models.KindQueueFull,
				"agent %q queue wait timed out after %s", aq.agent, cfg.QueueTimeout)
		case <-ctx.Done():
			timer.Stop()
			return nil, models.WrapError(models.KindCancelled, ctx.Err(), "submit cancelled")
		case <-aq.q.quit:
			timer.Stop()
			return nil, models.NewError(models.KindCancelled, "agent queue is not accepting tasks")
		}
	}
}

func (aq *agentQueue) run() {
	for {
		it := aq.nextItem()
		if it == nil {
			return
		}
		aq.execute(it)
	}
}

// nextItem blocks until a task is available or the queue is stopping.
func (aq *agentQueue) nextItem() *item {
	for {
		aq.mu.Lock()
		for _, b := range aq.bands {
			if it := b.pop(); it != nil {
				aq.queued--
				it.state = stateRunning
				aq.running = it
				aq.notifySpaceLocked()
				aq.mu.Unlock()
				return it
			}
		}
		aq.mu.Unlock()

		select {
		case <-aq.q.quit:
			return nil
		case <-aq.wake:
		}
	}
}

func (aq *agentQueue) execute(it *item) {
	runCtx, cancel := context.WithCancel(aq.q.rootCtx)
	aq.mu.Lock()
	it.cancel = cancel
	requested := it.cancelRequested
	aq.mu.Unlock()
	if requested {
		cancel()
	}

	it.task.Run(runCtx)
	cancel()

	aq.mu.Lock()
	aq.running = nil
	it.state = stateDone
	aq.notifySpaceLocked()
	aq.mu.Unlock()
	close(it.done)
}

// cancelItem discards a queued item or cancels a running one best-effort.
func (aq *agentQueue) cancelItem(it *item) {
	aq.mu.Lock()
	switch it.state {
	case statePending:
		aq.bands[it.task.Priority.rank()].remove(it)
		aq.queued--
		it.state = stateCancelled
		aq.notifySpaceLocked()
		aq.mu.Unlock()
		close(it.done)
	case stateRunning:
		it.cancelRequested = true
		cancel := it.cancel
		aq.mu.Unlock()
		if cancel != nil {
			cancel()
		}
	default:
		aq.mu.Unlock()
	}
}

// position reports where an item stands: 0 running, 1-based while queued
// (priority bands first, FIFO approximation within the band), -1 otherwise.
func (aq *agentQueue) position(it *item) int {
	aq.mu.Lock()
	defer aq.mu.Unlock()
	switch it.state {
	case stateRunning:
		return 0
	case statePending:
	default:
		return -1
	}
	rank := it.task.Priority.rank()
	pos := 1
	for r := 0; r < rank; r++ {
		pos += aq.bands[r].size()
	}
	for _, items := range aq.bands[rank].byExec {
		for _, other := range items {
			if other != it && other.enqueuedAt.Before(it.enqueuedAt) {
				pos++
			}
		}
	}
	return pos
}

// discardQueued cancels all remaining queued items. Called after dispatchers
// exit during Stop.
func (aq *agentQueue) discardQueued() {
	aq.mu.Lock()
	var discarded []*item
	for _, b := range aq.bands {
		for it := b.pop(); it != nil; it = b.pop() {
			it.state = stateCancelled
			discarded = append(discarded, it)
		}
	}
	aq.queued = 0
	aq.mu.Unlock()
	for _, it := range discarded {
		close(it.done)
	}
}

// notifySpaceLocked wakes submitters waiting for a depth slot. Caller holds mu.
func (aq *agentQueue) notifySpaceLocked() {
	close(aq.space)
	aq.space = make(chan struct{})
}
