package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/config"
	"github.com/trinity-ai/trinity/pkg/events"
	"github.com/trinity-ai/trinity/pkg/gateway"
	"github.com/trinity-ai/trinity/pkg/models"
	"github.com/trinity-ai/trinity/pkg/notify"
	"github.com/trinity-ai/trinity/pkg/queue"
)

// memStores is an in-memory implementation of the engine's persistence
// interfaces. Save records the execution's pending events the way the real
// service persists them in the same transaction, and stores an immutable
// snapshot so concurrent readers never observe the engine's live aggregate.
type memStores struct {
	mu        sync.Mutex
	execs     map[string]*models.ProcessExecution
	defs      map[string]*models.ProcessDefinition
	approvals map[string]*models.Approval
	outputs   map[string]map[string]any
	events    []models.Event
}

func newMemStores() *memStores {
	return &memStores{
		execs:     make(map[string]*models.ProcessExecution),
		defs:      make(map[string]*models.ProcessDefinition),
		approvals: make(map[string]*models.Approval),
		outputs:   make(map[string]map[string]any),
	}
}

func (m *memStores) bundle() Stores {
	return Stores{Executions: m, Definitions: m, Approvals: m, Outputs: m}
}

func cloneExecution(exec *models.ProcessExecution) *models.ProcessExecution {
	raw, err := json.Marshal(exec)
	if err != nil {
		panic(err)
	}
	var out models.ProcessExecution
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

func (m *memStores) CreateExecution(_ context.Context, exec *models.ProcessExecution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, exec.PendingEvents()...)
	m.execs[exec.ID] = cloneExecution(exec)
	return nil
}

func (m *memStores) SaveExecution(_ context.Context, exec *models.ProcessExecution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, exec.PendingEvents()...)
	m.execs[exec.ID] = cloneExecution(exec)
	return nil
}

func (m *memStores) GetExecution(_ context.Context, id string) (*models.ProcessExecution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exec, ok := m.execs[id]
	if !ok {
		return nil, models.NewError(models.KindNotFound, "execution %s not found", id)
	}
	return cloneExecution(exec), nil
}

func (m *memStores) CountRunning(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.execs {
		if !e.Status.Terminal() {
			n++
		}
	}
	return n, nil
}

func (m *memStores) CountRunningForProcess(_ context.Context, processName string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.execs {
		if e.ProcessName == processName && !e.Status.Terminal() {
			n++
		}
	}
	return n, nil
}

func (m *memStores) GetDefinition(_ context.Context, id string) (*models.ProcessDefinition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	def, ok := m.defs[id]
	if !ok {
		return nil, models.NewError(models.KindNotFound, "definition %s not found", id)
	}
	return def, nil
}

func (m *memStores) GetPublishedDefinitionByName(_ context.Context, name string) (*models.ProcessDefinition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, def := range m.defs {
		if def.Name == name && def.Status == models.DefinitionPublished {
			return def, nil
		}
	}
	return nil, models.NewError(models.KindNotFound, "no published definition named %q", name)
}

func cloneApproval(a *models.Approval) *models.Approval {
	out := *a
	out.Approvers = append([]string(nil), a.Approvers...)
	out.Artifacts = append([]string(nil), a.Artifacts...)
	return &out
}

func (m *memStores) CreateApproval(_ context.Context, a *models.Approval) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approvals[a.ID] = cloneApproval(a)
	return nil
}

func (m *memStores) GetApproval(_ context.Context, id string) (*models.Approval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.approvals[id]
	if !ok {
		return nil, models.NewError(models.KindNotFound, "approval %s not found", id)
	}
	return cloneApproval(a), nil
}

func (m *memStores) SaveApproval(_ context.Context, a *models.Approval) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approvals[a.ID] = cloneApproval(a)
	return nil
}

func (m *memStores) PutOutput(_ context.Context, executionID, stepID string, output map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputs[executionID+"/"+stepID] = output
	return nil
}

func (m *memStores) addDefinition(def *models.ProcessDefinition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defs[def.ID] = def
}

func (m *memStores) firstApproval() (*models.Approval, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.approvals {
		return a, true
	}
	return nil, false
}

func (m *memStores) eventTypes(executionID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var types []string
	for _, evt := range m.events {
		if evt.ExecutionID == executionID {
			types = append(types, evt.Type)
		}
	}
	return types
}

func (m *memStores) executionEvents(executionID string) []models.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Event
	for _, evt := range m.events {
		if evt.ExecutionID == executionID {
			out = append(out, evt)
		}
	}
	return out
}

// fakeAgent is a programmable AgentGateway.
type fakeAgent struct {
	mu      sync.Mutex
	calls   []agentCall
	respond func(ctx context.Context, agent, message string) (*gateway.TaskResult, error)
}

type agentCall struct {
	Agent   string
	Message string
}

func (f *fakeAgent) ExecuteTask(ctx context.Context, agent, message string, _ time.Duration) (*gateway.TaskResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, agentCall{Agent: agent, Message: message})
	fn := f.respond
	f.mu.Unlock()
	if fn == nil {
		return &gateway.TaskResult{Content: "ok", Cost: 0.1}, nil
	}
	return fn(ctx, agent, message)
}

func (f *fakeAgent) IsAvailable(context.Context, string) gateway.Availability {
	return gateway.Availability{Available: true}
}

func (f *fakeAgent) NotifyAwareness(context.Context, string, map[string]any) error { return nil }

func (f *fakeAgent) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAgent) lastCall() (agentCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return agentCall{}, false
	}
	return f.calls[len(f.calls)-1], true
}

// recordSink captures notification deliveries.
type recordSink struct {
	mu         sync.Mutex
	deliveries []delivery
}

type delivery struct {
	Channels   []string
	Recipients []string
	Message    string
}

func (r *recordSink) Deliver(_ context.Context, channels, recipients []string, message string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries = append(r.deliveries, delivery{Channels: channels, Recipients: recipients, Message: message})
	return len(recipients), nil
}

type testEnv struct {
	eng    *Engine
	stores *memStores
	agent  *fakeAgent
	sink   *recordSink
}

func newTestEnv(t *testing.T, mutate ...func(engineCfg *config.EngineConfig)) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	queueCfg := &config.QueueConfig{
		MaxDepth:                8,
		Overflow:                config.OverflowQueue,
		QueueTimeout:            time.Second,
		TaskTimeout:             5 * time.Second,
		GracefulShutdownTimeout: time.Second,
	}
	q := queue.NewAgentExecutionQueue(queueCfg, logger)
	require.NoError(t, q.Start(context.Background()))
	t.Cleanup(q.Stop)

	bus := events.NewBus(256, logger)
	t.Cleanup(bus.Close)

	engineCfg := config.DefaultEngineConfig()
	for _, fn := range mutate {
		fn(engineCfg)
	}

	stores := newMemStores()
	agent := &fakeAgent{}
	sink := &recordSink{}
	notifier := notify.NewRouter(map[string]notify.Sink{"slack": sink, "webhook": sink}, logger)

	eng := New(stores.bundle(), q, agent, notifier, bus, engineCfg, queueCfg, logger)
	bus.Subscribe(eng.ChildTerminalSink())

	return &testEnv{eng: eng, stores: stores, agent: agent, sink: sink}
}

var defSeq int

func (env *testEnv) addDef(t *testing.T, name string, mutate func(def *models.ProcessDefinition), steps ...models.StepDefinition) *models.ProcessDefinition {
	t.Helper()
	defSeq++
	def := &models.ProcessDefinition{
		ID:        fmt.Sprintf("def-%d", defSeq),
		Name:      name,
		Version:   "1.0.0",
		Status:    models.DefinitionDraft,
		Steps:     steps,
		CreatedBy: "alice",
		OwnerTeam: "sre",
	}
	if mutate != nil {
		mutate(def)
	}
	require.NoError(t, def.Publish(time.Now()))
	env.stores.addDefinition(def)
	return def
}

func (env *testEnv) start(t *testing.T, def *models.ProcessDefinition, input map[string]any) string {
	t.Helper()
	id, err := env.eng.Start(context.Background(), def, input, models.TriggeredBy{Kind: models.TriggerManual, Actor: "alice"})
	require.NoError(t, err)
	return id
}

func (env *testEnv) waitStatus(t *testing.T, executionID string, want models.ExecutionStatus) *models.ProcessExecution {
	t.Helper()
	require.Eventually(t, func() bool {
		exec, err := env.stores.GetExecution(context.Background(), executionID)
		return err == nil && exec.Status == want
	}, 3*time.Second, 5*time.Millisecond, "execution %s never reached %s", executionID, want)
	exec, err := env.stores.GetExecution(context.Background(), executionID)
	require.NoError(t, err)
	return exec
}

func TestEngine_LinearProcessCompletes(t *testing.T) {
	env := newTestEnv(t)
	env.agent.respond = func(_ context.Context, agent, message string) (*gateway.TaskResult, error) {
		if agent == "triage" {
			return &gateway.TaskResult{Content: "disk full", Cost: 0.5}, nil
		}
		return &gateway.TaskResult{Content: "remediated: " + message, Cost: 0.5}, nil
	}

	triage := agentStep("triage")
	triage.AgentTask.AgentName = "triage"
	triage.AgentTask.MessageTemplate = "diagnose {{input.alert}}"
	fix := agentStep("fix", "triage")
	fix.AgentTask.AgentName = "fixer"
	fix.AgentTask.MessageTemplate = "fix: {{steps.triage.output.content}}"

	def := env.addDef(t, "incident-response", func(d *models.ProcessDefinition) {
		d.Output = &models.OutputConfig{FromStep: "fix"}
	}, triage, fix)

	id := env.start(t, def, map[string]any{"alert": "disk-pressure"})
	exec := env.waitStatus(t, id, models.ExecutionCompleted)

	assert.Equal(t, models.StepCompleted, exec.Step("triage").Status)
	assert.Equal(t, models.StepCompleted, exec.Step("fix").Status)
	assert.InDelta(t, 1.0, exec.TotalCost, 1e-9)
	assert.Equal(t, "remediated: fix: disk full", exec.Output["content"])

	call, ok := env.agent.lastCall()
	require.True(t, ok)
	assert.Equal(t, "fixer", call.Agent)
	assert.Equal(t, "fix: disk full", call.Message)

	assert.Equal(t, []string{
		models.EventProcessStarted,
		models.EventStepStarted,
		models.EventStepCompleted,
		models.EventStepStarted,
		models.EventStepCompleted,
		models.EventProcessCompleted,
	}, env.stores.eventTypes(id))

	require.Eventually(t, func() bool { return env.eng.ActiveCount() == 0 },
		time.Second, 5*time.Millisecond)
}

func TestEngine_ConditionFalseSkips(t *testing.T) {
	env := newTestEnv(t)
	env.agent.respond = func(_ context.Context, _, _ string) (*gateway.TaskResult, error) {
		return &gateway.TaskResult{Content: "ok", Output: map[string]any{"escalate": false}, Cost: 0.1}, nil
	}

	check := agentStep("check")
	escalate := agentStep("escalate", "check")
	escalate.Condition = `steps.check.output.escalate == true`

	def := env.addDef(t, "conditional", nil, check, escalate)
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionCompleted)

	assert.Equal(t, models.StepSkipped, exec.Step("escalate").Status)
	assert.Equal(t, models.SkipConditionFalse, exec.Step("escalate").SkipReason)
	assert.Equal(t, 1, env.agent.callCount())
}

func TestEngine_ExclusiveGatewayRouting(t *testing.T) {
	env := newTestEnv(t)
	env.agent.respond = func(_ context.Context, _, _ string) (*gateway.TaskResult, error) {
		return &gateway.TaskResult{Content: "ok", Output: map[string]any{"sev": "warning"}, Cost: 0.1}, nil
	}

	classify := agentStep("classify")
	route := models.StepDefinition{
		ID:           "route",
		Kind:         models.StepGateway,
		Dependencies: []string{"classify"},
		Gateway: &models.GatewayConfig{
			Type: models.GatewayExclusive,
			Routes: []models.GatewayRoute{
				{Condition: `steps.classify.output.sev == "critical"`, TargetStep: "page"},
				{TargetStep: "log"},
			},
		},
	}
	page := agentStep("page", "route")
	logStep := agentStep("log", "route")

	def := env.addDef(t, "routing", nil, classify, route, page, logStep)
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionCompleted)

	assert.Equal(t, models.StepCompleted, exec.Step("route").Status)
	assert.Equal(t, []string{"log"}, exec.Step("route").SelectedRoutes)
	assert.Equal(t, models.StepCompleted, exec.Step("log").Status)
	assert.Equal(t, models.StepSkipped, exec.Step("page").Status)
	assert.Equal(t, models.SkipGatewayNotSelected, exec.Step("page").SkipReason)
	assert.Contains(t, env.stores.eventTypes(id), models.EventGatewayEvaluated)
}

func TestEngine_ParallelBranchesRunConcurrently(t *testing.T) {
	env := newTestEnv(t)
	releaseSlow := make(chan struct{})
	env.agent.respond = func(ctx context.Context, agent, _ string) (*gateway.TaskResult, error) {
		if agent == "slow" {
			select {
			case <-releaseSlow:
			case <-ctx.Done():
				return nil, models.WrapError(models.KindCancelled, ctx.Err(), "cancelled")
			}
		}
		return &gateway.TaskResult{Content: agent, Cost: 0.1}, nil
	}

	fanOut := agentStep("fan-out")
	fast := agentStep("fast", "fan-out")
	fast.AgentTask.AgentName = "fast"
	slow := agentStep("slow", "fan-out")
	slow.AgentTask.AgentName = "slow"
	merge := agentStep("merge", "fast", "slow")

	def := env.addDef(t, "diamond", nil, fanOut, fast, slow, merge)
	id := env.start(t, def, nil)

	// The fast branch finishes while the slow branch is still held open; the
	// merge step must keep waiting for both.
	require.Eventually(t, func() bool {
		exec, err := env.stores.GetExecution(context.Background(), id)
		return err == nil && exec.Step("fast").Status == models.StepCompleted
	}, 3*time.Second, 5*time.Millisecond)
	exec, err := env.stores.GetExecution(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StepRunning, exec.Step("slow").Status)
	assert.Equal(t, models.StepPending, exec.Step("merge").Status)

	close(releaseSlow)
	exec = env.waitStatus(t, id, models.ExecutionCompleted)
	assert.Equal(t, models.StepCompleted, exec.Step("merge").Status)

	evts := env.stores.executionEvents(id)
	index := func(eventType, stepID string) int {
		for i, evt := range evts {
			if evt.Type == eventType && evt.StepID == stepID {
				return i
			}
		}
		t.Fatalf("no %s event for step %s", eventType, stepID)
		return -1
	}
	// Both branches start before either branch finishes.
	assert.Less(t, index(models.EventStepStarted, "fast"), index(models.EventStepCompleted, "fast"))
	assert.Less(t, index(models.EventStepStarted, "slow"), index(models.EventStepCompleted, "fast"))
	// The merge starts only after both branches completed.
	assert.Greater(t, index(models.EventStepStarted, "merge"), index(models.EventStepCompleted, "fast"))
	assert.Greater(t, index(models.EventStepStarted, "merge"), index(models.EventStepCompleted, "slow"))
	// Sequence numbers stay strictly monotone across interleaved branches.
	for i := 1; i < len(evts); i++ {
		assert.Greater(t, evts[i].Seq, evts[i-1].Seq)
	}
}

func TestEngine_GatewayNoMatchingRouteFailsExecution(t *testing.T) {
	env := newTestEnv(t)
	env.agent.respond = func(_ context.Context, _, _ string) (*gateway.TaskResult, error) {
		return &gateway.TaskResult{Content: "ok", Output: map[string]any{"sev": "warning"}, Cost: 0.1}, nil
	}

	classify := agentStep("classify")
	route := models.StepDefinition{
		ID:           "route",
		Kind:         models.StepGateway,
		Dependencies: []string{"classify"},
		Gateway: &models.GatewayConfig{
			Type: models.GatewayExclusive,
			Routes: []models.GatewayRoute{
				{Condition: `steps.classify.output.sev == "critical"`, TargetStep: "page"},
			},
		},
	}
	page := agentStep("page", "route")

	def := env.addDef(t, "no-route", nil, classify, route, page)
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionFailed)

	assert.Equal(t, models.KindNoMatchingRoute, exec.ErrorKind)
	assert.Equal(t, models.StepSkipped, exec.Step("page").Status)
	assert.Equal(t, models.SkipExecutionFailed, exec.Step("page").SkipReason)
}

func TestEngine_RetryThenSuccess(t *testing.T) {
	env := newTestEnv(t)
	var attempts int
	var mu sync.Mutex
	env.agent.respond = func(_ context.Context, _, _ string) (*gateway.TaskResult, error) {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n < 3 {
			return nil, models.NewError(models.KindTimeout, "agent slow")
		}
		return &gateway.TaskResult{Content: "ok", Cost: 0.2}, nil
	}

	work := agentStep("work")
	work.AgentTask.Retry = &models.RetryPolicy{
		MaxAttempts:  3,
		Backoff:      models.BackoffFixed,
		InitialDelay: 5 * time.Millisecond,
	}

	def := env.addDef(t, "flaky", nil, work)
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionCompleted)

	assert.Equal(t, models.StepCompleted, exec.Step("work").Status)
	assert.Equal(t, 2, exec.Step("work").RetryCount)
	assert.Equal(t, 3, env.agent.callCount())

	var retrying int
	for _, typ := range env.stores.eventTypes(id) {
		if typ == models.EventStepRetrying {
			retrying++
		}
	}
	assert.Equal(t, 2, retrying)
}

func TestEngine_RetriesExhaustedSkipStepPolicy(t *testing.T) {
	env := newTestEnv(t)
	env.agent.respond = func(_ context.Context, agent, _ string) (*gateway.TaskResult, error) {
		if agent == "flaky" {
			return nil, models.NewError(models.KindTimeout, "agent slow")
		}
		return &gateway.TaskResult{Content: "ok", Cost: 0.1}, nil
	}

	work := agentStep("work")
	work.AgentTask.AgentName = "flaky"
	work.AgentTask.Retry = &models.RetryPolicy{
		MaxAttempts:  2,
		Backoff:      models.BackoffFixed,
		InitialDelay: 5 * time.Millisecond,
	}
	work.AgentTask.OnError = models.OnErrorSkipStep
	after := agentStep("after", "work")

	def := env.addDef(t, "degraded", nil, work, after)
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionCompleted)

	assert.Equal(t, models.StepSkipped, exec.Step("work").Status)
	assert.Equal(t, models.SkipRetriesExhausted, exec.Step("work").SkipReason)
	assert.Equal(t, 2, exec.Step("work").RetryCount)
	assert.Equal(t, models.StepCompleted, exec.Step("after").Status)

	var retrying int
	for _, typ := range env.stores.eventTypes(id) {
		if typ == models.EventStepRetrying {
			retrying++
		}
	}
	assert.Equal(t, 2, retrying)
}

func TestEngine_RetriesExhaustedFailsExecution(t *testing.T) {
	env := newTestEnv(t)
	env.agent.respond = func(_ context.Context, _, _ string) (*gateway.TaskResult, error) {
		return nil, models.NewError(models.KindTimeout, "agent slow")
	}

	work := agentStep("work")
	work.AgentTask.Retry = &models.RetryPolicy{
		MaxAttempts:  3,
		Backoff:      models.BackoffFixed,
		InitialDelay: 5 * time.Millisecond,
	}
	after := agentStep("after", "work")

	def := env.addDef(t, "hopeless", nil, work, after)
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionFailed)

	assert.Equal(t, models.StepFailed, exec.Step("work").Status)
	assert.Equal(t, models.KindTimeout, exec.Step("work").ErrorKind)
	assert.Equal(t, models.KindTimeout, exec.ErrorKind)
	assert.Equal(t, 3, exec.Step("work").RetryCount)
	assert.Equal(t, 3, env.agent.callCount())
	assert.Equal(t, models.StepSkipped, exec.Step("after").Status)
	assert.Equal(t, models.SkipExecutionFailed, exec.Step("after").SkipReason)

	var retrying int
	for _, typ := range env.stores.eventTypes(id) {
		if typ == models.EventStepRetrying {
			retrying++
		}
	}
	assert.Equal(t, 3, retrying, "every failed attempt must emit a retry event")
}

func TestEngine_NonRetryableFailureFailsExecution(t *testing.T) {
	env := newTestEnv(t)
	env.agent.respond = func(_ context.Context, _, _ string) (*gateway.TaskResult, error) {
		return nil, models.NewError(models.KindValidation, "bad message")
	}

	work := agentStep("work")
	after := agentStep("after", "work")

	def := env.addDef(t, "doomed", nil, work, after)
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionFailed)

	assert.Equal(t, models.KindValidation, exec.ErrorKind)
	assert.Equal(t, models.StepFailed, exec.Step("work").Status)
	assert.Equal(t, models.StepSkipped, exec.Step("after").Status)
	assert.Equal(t, 1, env.agent.callCount())
}

func TestEngine_BudgetExceededFailsExecution(t *testing.T) {
	env := newTestEnv(t)
	env.agent.respond = func(_ context.Context, _, _ string) (*gateway.TaskResult, error) {
		return &gateway.TaskResult{Content: "ok", Cost: 0.8}, nil
	}

	first := agentStep("first")
	second := agentStep("second", "first")

	def := env.addDef(t, "expensive", func(d *models.ProcessDefinition) {
		d.MaxCost = 1.0
	}, first, second)
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionFailed)

	assert.Equal(t, models.KindBudgetExceeded, exec.ErrorKind)
	assert.Equal(t, models.StepCompleted, exec.Step("first").Status)
	assert.InDelta(t, 0.8, exec.TotalCost, 1e-9)
}

func TestEngine_ApprovalFlow(t *testing.T) {
	env := newTestEnv(t)

	gate := models.StepDefinition{
		ID:   "gate",
		Kind: models.StepHumanApproval,
		HumanApproval: &models.HumanApprovalConfig{
			Approvers: []string{"bob", "carol"},
			Timeout:   time.Hour,
			Title:     "Approve remediation",
		},
	}
	apply := agentStep("apply", "gate")
	apply.Condition = `steps.gate.output.decision == "approved"`

	def := env.addDef(t, "approved-change", nil, gate, apply)
	id := env.start(t, def, nil)

	env.waitStatus(t, id, models.ExecutionPaused)
	approval, ok := env.stores.firstApproval()
	require.True(t, ok)
	assert.Equal(t, models.ApprovalPending, approval.Status)
	assert.Equal(t, "gate", approval.StepID)

	t.Run("non-approver is rejected", func(t *testing.T) {
		err := env.eng.SubmitApproval(context.Background(), approval.ID, models.ApprovalApproved, "mallory", "")
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindAuthorizationDenied))
	})

	require.NoError(t, env.eng.SubmitApproval(context.Background(), approval.ID, models.ApprovalApproved, "bob", "lgtm"))
	exec := env.waitStatus(t, id, models.ExecutionCompleted)

	gateStep := exec.Step("gate")
	assert.Equal(t, models.StepCompleted, gateStep.Status)
	assert.Equal(t, "approved", gateStep.Output["decision"])
	assert.Equal(t, "bob", gateStep.Output["decided_by"])
	assert.Equal(t, models.StepCompleted, exec.Step("apply").Status)

	t.Run("second decision conflicts", func(t *testing.T) {
		err := env.eng.SubmitApproval(context.Background(), approval.ID, models.ApprovalRejected, "carol", "")
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindStateConflict))
	})
}

func TestEngine_ApprovalTimeoutSkips(t *testing.T) {
	env := newTestEnv(t)

	gate := models.StepDefinition{
		ID:   "gate",
		Kind: models.StepHumanApproval,
		HumanApproval: &models.HumanApprovalConfig{
			Approvers: []string{"bob"},
			Timeout:   30 * time.Millisecond,
			OnTimeout: models.TimeoutSkip,
		},
	}

	def := env.addDef(t, "timeout-skip", nil, gate)
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionCompleted)

	assert.Equal(t, models.StepSkipped, exec.Step("gate").Status)
	assert.Equal(t, "approval_timed_out", exec.Step("gate").SkipReason)

	approval, ok := env.stores.firstApproval()
	require.True(t, ok)
	assert.Equal(t, models.ApprovalTimedOut, approval.Status)
	assert.Contains(t, env.stores.eventTypes(id), models.EventApprovalTimedOut)
}

func TestEngine_ApprovalTimeoutRejectFailsExecution(t *testing.T) {
	env := newTestEnv(t)

	gate := models.StepDefinition{
		ID:   "gate",
		Kind: models.StepHumanApproval,
		HumanApproval: &models.HumanApprovalConfig{
			Approvers: []string{"bob"},
			Timeout:   30 * time.Millisecond,
			OnTimeout: models.TimeoutReject,
		},
	}
	publish := agentStep("publish", "gate")

	def := env.addDef(t, "timeout-reject", nil, gate, publish)
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionFailed)

	assert.Equal(t, models.StepFailed, exec.Step("gate").Status)
	assert.Equal(t, models.KindApprovalRejected, exec.Step("gate").ErrorKind)
	assert.Equal(t, models.KindApprovalRejected, exec.ErrorKind)
	assert.Equal(t, models.StepSkipped, exec.Step("publish").Status)
	assert.Equal(t, 0, env.agent.callCount(), "downstream step must not run after a rejected gate")

	types := env.stores.eventTypes(id)
	assert.Contains(t, types, models.EventApprovalTimedOut)
	assert.Contains(t, types, models.EventStepFailed)
	assert.Contains(t, types, models.EventProcessFailed)
}

func TestEngine_TimerStep(t *testing.T) {
	env := newTestEnv(t)

	wait := models.StepDefinition{
		ID:    "wait",
		Kind:  models.StepTimer,
		Timer: &models.TimerConfig{WaitDuration: 30 * time.Millisecond},
	}
	after := agentStep("after", "wait")

	def := env.addDef(t, "delayed", nil, wait, after)
	start := time.Now()
	id := env.start(t, def, nil)
	exec := env.waitStatus(t, id, models.ExecutionCompleted)

	assert.Equal(t, models.StepCompleted, exec.Step("wait").Status)
	assert.Equal(t, models.StepCompleted, exec.Step("after").Status)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestEngine_NotificationStep(t *testing.T) {
	env := newTestEnv(t)

	notifyStep := models.StepDefinition{
		ID:   "announce",
		Kind: models.StepNotification,
		Notification: &models.NotificationConfig{
			Channels:        []string{"slack"},
			Recipients:      []string{"#incidents", "{{input.oncall}}"},
			MessageTemplate: "incident {{input.id}} resolved",
		},
	}

	def := env.addDef(t, "announce", nil, notifyStep)
	id := env.start(t, def, map[string]any{"id": "INC-42", "oncall": "@dave"})
	exec := env.waitStatus(t, id, models.ExecutionCompleted)

	step := exec.Step("announce")
	assert.Equal(t, models.StepCompleted, step.Status)
	assert.EqualValues(t, 2, step.Output["delivered_count"])

	env.sink.mu.Lock()
	defer env.sink.mu.Unlock()
	require.Len(t, env.sink.deliveries, 1)
	assert.Equal(t, "incident INC-42 resolved", env.sink.deliveries[0].Message)
	assert.Equal(t, []string{"#incidents", "@dave"}, env.sink.deliveries[0].Recipients)
}

func TestEngine_SubProcess(t *testing.T) {
	env := newTestEnv(t)
	env.agent.respond = func(_ context.Context, _, message string) (*gateway.TaskResult, error) {
		return &gateway.TaskResult{
			Content: "done",
			Output:  map[string]any{"note": "handled " + message},
			Cost:    0.3,
		}, nil
	}

	childWork := agentStep("work")
	childWork.AgentTask.MessageTemplate = "{{input.ticket}}"
	env.addDef(t, "child-proc", func(d *models.ProcessDefinition) {
		d.Output = &models.OutputConfig{FromStep: "work"}
	}, childWork)

	spawn := models.StepDefinition{
		ID:   "delegate",
		Kind: models.StepSubProcess,
		SubProcess: &models.SubProcessConfig{
			ProcessName:   "child-proc",
			InputMapping:  map[string]string{"ticket": "{{input.ticket}}"},
			OutputMapping: map[string]string{"summary": "{{output.note}}"},
		},
	}

	parentDef := env.addDef(t, "parent-proc", nil, spawn)
	id := env.start(t, parentDef, map[string]any{"ticket": "T-7"})
	exec := env.waitStatus(t, id, models.ExecutionCompleted)

	step := exec.Step("delegate")
	assert.Equal(t, models.StepCompleted, step.Status)
	assert.NotEmpty(t, step.ChildExecutionID)
	assert.Equal(t, "handled T-7", step.Output["summary"])

	child, err := env.stores.GetExecution(context.Background(), step.ChildExecutionID)
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionCompleted, child.Status)
	assert.Equal(t, models.TriggerAgent, child.TriggeredBy.Kind)
	assert.Equal(t, id, child.TriggeredBy.ParentExecutionID)
}

func TestEngine_FailedChildFailsParentStep(t *testing.T) {
	env := newTestEnv(t)
	env.agent.respond = func(_ context.Context, _, _ string) (*gateway.TaskResult, error) {
		return nil, models.NewError(models.KindValidation, "child broke")
	}

	env.addDef(t, "bad-child", nil, agentStep("work"))
	spawn := models.StepDefinition{
		ID:         "delegate",
		Kind:       models.StepSubProcess,
		SubProcess: &models.SubProcessConfig{ProcessName: "bad-child"},
	}

	parentDef := env.addDef(t, "unlucky-parent", nil, spawn)
	id := env.start(t, parentDef, nil)
	exec := env.waitStatus(t, id, models.ExecutionFailed)

	assert.Equal(t, models.StepFailed, exec.Step("delegate").Status)
}

func TestEngine_Cancel(t *testing.T) {
	env := newTestEnv(t)
	started := make(chan struct{}, 1)
	env.agent.respond = func(ctx context.Context, _, _ string) (*gateway.TaskResult, error) {
		started <- struct{}{}
		<-ctx.Done()
		return nil, models.WrapError(models.KindCancelled, ctx.Err(), "task cancelled")
	}

	def := env.addDef(t, "long-running", nil, agentStep("work"))
	id := env.start(t, def, nil)

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("agent task never started")
	}

	require.NoError(t, env.eng.Cancel(context.Background(), id, "alice", "no longer needed"))
	exec := env.waitStatus(t, id, models.ExecutionCancelled)
	assert.Equal(t, models.StepSkipped, exec.Step("work").Status)
	assert.Equal(t, models.SkipExecutionCancelled, exec.Step("work").SkipReason)

	t.Run("cancelling again conflicts", func(t *testing.T) {
		err := env.eng.Cancel(context.Background(), id, "alice", "again")
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindStateConflict))
	})
}

func TestEngine_PerProcessInstanceLimit(t *testing.T) {
	env := newTestEnv(t)
	release := make(chan struct{})
	env.agent.respond = func(ctx context.Context, _, _ string) (*gateway.TaskResult, error) {
		select {
		case <-release:
			return &gateway.TaskResult{Content: "ok", Cost: 0.1}, nil
		case <-ctx.Done():
			return nil, models.WrapError(models.KindCancelled, ctx.Err(), "cancelled")
		}
	}
	defer close(release)

	def := env.addDef(t, "singleton", func(d *models.ProcessDefinition) {
		d.MaxConcurrent = 1
	}, agentStep("work"))

	env.start(t, def, nil)
	_, err := env.eng.Start(context.Background(), def, nil, models.TriggeredBy{Kind: models.TriggerManual, Actor: "alice"})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindLimitExceeded))

	var de *models.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "per_process", de.Details["scope"])
}

func TestEngine_GlobalExecutionLimit(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.EngineConfig) {
		cfg.MaxConcurrentExecutions = 1
	})
	release := make(chan struct{})
	env.agent.respond = func(ctx context.Context, _, _ string) (*gateway.TaskResult, error) {
		select {
		case <-release:
			return &gateway.TaskResult{Content: "ok", Cost: 0.1}, nil
		case <-ctx.Done():
			return nil, models.WrapError(models.KindCancelled, ctx.Err(), "cancelled")
		}
	}
	defer close(release)

	first := env.addDef(t, "proc-a", nil, agentStep("work"))
	second := env.addDef(t, "proc-b", nil, agentStep("work"))

	env.start(t, first, nil)
	_, err := env.eng.Start(context.Background(), second, nil, models.TriggeredBy{Kind: models.TriggerManual, Actor: "alice"})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindLimitExceeded))

	var de *models.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "global", de.Details["scope"])
}

func TestEngine_StartRejectsUnpublishedDefinition(t *testing.T) {
	env := newTestEnv(t)
	def := &models.ProcessDefinition{
		ID:      "draft-1",
		Name:    "draft-proc",
		Version: "1.0.0",
		Status:  models.DefinitionDraft,
		Steps:   []models.StepDefinition{agentStep("work")},
	}
	env.stores.addDefinition(def)

	_, err := env.eng.Start(context.Background(), def, nil, models.TriggeredBy{Kind: models.TriggerManual, Actor: "alice"})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindStateConflict))
}

func TestEngine_ResumeRearmsElapsedTimer(t *testing.T) {
	env := newTestEnv(t)

	wait := models.StepDefinition{
		ID:    "wait",
		Kind:  models.StepTimer,
		Timer: &models.TimerConfig{WaitDuration: time.Hour},
	}
	after := agentStep("after", "wait")
	def := env.addDef(t, "restartable", nil, wait, after)

	// Simulate a pre-crash execution persisted with an already-due timer.
	now := time.Now()
	exec := models.NewExecution("exec-resume", def, nil, models.TriggeredBy{Kind: models.TriggerManual, Actor: "alice"}, now.Add(-time.Hour))
	require.NoError(t, exec.Start(now.Add(-time.Hour)))
	require.NoError(t, exec.MarkStepRunning("wait", now.Add(-time.Hour)))
	require.NoError(t, exec.SuspendForTimer("wait", now.Add(-30*time.Minute), now.Add(-time.Hour)))
	exec.DrainEvents()
	require.NoError(t, env.stores.CreateExecution(context.Background(), exec))

	require.NoError(t, env.eng.Resume(context.Background(), "exec-resume"))
	got := env.waitStatus(t, "exec-resume", models.ExecutionCompleted)
	assert.Equal(t, models.StepCompleted, got.Step("wait").Status)
	assert.Equal(t, models.StepCompleted, got.Step("after").Status)
}
