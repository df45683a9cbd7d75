package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/audit"
	"github.com/trinity-ai/trinity/pkg/auth"
	"github.com/trinity-ai/trinity/pkg/config"
	"github.com/trinity-ai/trinity/pkg/models"
	"github.com/trinity-ai/trinity/pkg/recovery"
	"github.com/trinity-ai/trinity/pkg/services"
)

// --- in-memory fakes -------------------------------------------------------

type fakeDefinitionStore struct {
	mu   sync.Mutex
	defs map[string]*models.ProcessDefinition
}

func newFakeDefinitionStore() *fakeDefinitionStore {
	return &fakeDefinitionStore{defs: make(map[string]*models.ProcessDefinition)}
}

func (f *fakeDefinitionStore) CreateDefinition(_ context.Context, def *models.ProcessDefinition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *def
	f.defs[def.ID] = &copied
	return nil
}

func (f *fakeDefinitionStore) SaveDefinition(_ context.Context, def *models.ProcessDefinition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.defs[def.ID]; !ok {
		return models.NewError(models.KindNotFound, "definition %s not found", def.ID)
	}
	copied := *def
	f.defs[def.ID] = &copied
	return nil
}

func (f *fakeDefinitionStore) GetDefinition(_ context.Context, id string) (*models.ProcessDefinition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	def, ok := f.defs[id]
	if !ok {
		return nil, models.NewError(models.KindNotFound, "definition %s not found", id)
	}
	copied := *def
	return &copied, nil
}

func (f *fakeDefinitionStore) GetPublishedDefinitionByName(_ context.Context, name string) (*models.ProcessDefinition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, def := range f.defs {
		if def.Name == name && def.Status == models.DefinitionPublished {
			copied := *def
			return &copied, nil
		}
	}
	return nil, models.NewError(models.KindNotFound, "no published definition named %q", name)
}

func (f *fakeDefinitionStore) ListDefinitions(_ context.Context, name string, status models.DefinitionStatus, _, _ int) ([]*models.ProcessDefinition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.ProcessDefinition
	for _, def := range f.defs {
		if name != "" && def.Name != name {
			continue
		}
		if status != "" && def.Status != status {
			continue
		}
		copied := *def
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeDefinitionStore) ArchivePublished(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, def := range f.defs {
		if def.Name == name && def.Status == models.DefinitionPublished {
			def.Status = models.DefinitionArchived
		}
	}
	return nil
}

func (f *fakeDefinitionStore) DeleteDefinition(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	def, ok := f.defs[id]
	if !ok {
		return models.NewError(models.KindNotFound, "definition %s not found", id)
	}
	if def.Status != models.DefinitionDraft {
		return models.NewError(models.KindStateConflict, "only drafts can be deleted")
	}
	delete(f.defs, id)
	return nil
}

type fakeExecutionStore struct {
	mu         sync.Mutex
	execs      map[string]*models.ProcessExecution
	lastFilter services.ExecutionFilter
}

func newFakeExecutionStore() *fakeExecutionStore {
	return &fakeExecutionStore{execs: make(map[string]*models.ProcessExecution)}
}

func (f *fakeExecutionStore) GetExecution(_ context.Context, id string) (*models.ProcessExecution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	exec, ok := f.execs[id]
	if !ok {
		return nil, models.NewError(models.KindNotFound, "execution %s not found", id)
	}
	return exec, nil
}

func (f *fakeExecutionStore) ListExecutions(_ context.Context, filter services.ExecutionFilter) ([]*models.ProcessExecution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	var out []*models.ProcessExecution
	for _, exec := range f.execs {
		if filter.OwnerUser != "" && exec.OwnerUser != filter.OwnerUser {
			continue
		}
		out = append(out, exec)
	}
	return out, nil
}

func (f *fakeExecutionStore) add(exec *models.ProcessExecution) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execs[exec.ID] = exec
}

type fakeApprovalStore struct {
	mu        sync.Mutex
	approvals map[string]*models.Approval
}

func newFakeApprovalStore() *fakeApprovalStore {
	return &fakeApprovalStore{approvals: make(map[string]*models.Approval)}
}

func (f *fakeApprovalStore) GetApproval(_ context.Context, id string) (*models.Approval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.approvals[id]
	if !ok {
		return nil, models.NewError(models.KindNotFound, "approval %s not found", id)
	}
	copied := *a
	return &copied, nil
}

func (f *fakeApprovalStore) ListApprovalsForExecution(_ context.Context, executionID string) ([]*models.Approval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Approval
	for _, a := range f.approvals {
		if a.ExecutionID == executionID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeApprovalStore) ListPendingForApprover(_ context.Context, user string) ([]*models.Approval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Approval
	for _, a := range f.approvals {
		if a.Status != models.ApprovalPending {
			continue
		}
		for _, approver := range a.Approvers {
			if approver == user {
				copied := *a
				out = append(out, &copied)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeApprovalStore) add(a *models.Approval) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approvals[a.ID] = a
}

type fakeScheduleStore struct {
	mu     sync.Mutex
	scheds map[string]*models.Schedule
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{scheds: make(map[string]*models.Schedule)}
}

func (f *fakeScheduleStore) CreateSchedule(_ context.Context, sched *models.Schedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *sched
	f.scheds[sched.ID] = &copied
	return nil
}

func (f *fakeScheduleStore) GetSchedule(_ context.Context, id string) (*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sched, ok := f.scheds[id]
	if !ok {
		return nil, models.NewError(models.KindNotFound, "schedule %s not found", id)
	}
	copied := *sched
	return &copied, nil
}

func (f *fakeScheduleStore) ListSchedules(_ context.Context, processName string) ([]*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Schedule
	for _, sched := range f.scheds {
		if processName != "" && sched.ProcessName != processName {
			continue
		}
		copied := *sched
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeScheduleStore) UpdateSchedule(_ context.Context, sched *models.Schedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.scheds[sched.ID]; !ok {
		return models.NewError(models.KindNotFound, "schedule %s not found", sched.ID)
	}
	copied := *sched
	f.scheds[sched.ID] = &copied
	return nil
}

func (f *fakeScheduleStore) DeleteSchedule(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.scheds, id)
	return nil
}

type fakeAuditStore struct {
	mu      sync.Mutex
	entries []*models.AuditEntry
}

func (f *fakeAuditStore) AppendAudit(_ context.Context, entry *models.AuditEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditStore) GetAuditEntry(_ context.Context, id string) (*models.AuditEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, models.NewError(models.KindNotFound, "audit entry %s not found", id)
}

func (f *fakeAuditStore) ListAuditEntries(_ context.Context, filter models.AuditFilter, _, _ int) ([]*models.AuditEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.AuditEntry
	for _, e := range f.entries {
		if filter.Actor != "" && e.Actor != filter.Actor {
			continue
		}
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeAuditStore) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeEngine struct {
	mu        sync.Mutex
	startErr  error
	cancelErr error
	started   []models.TriggeredBy
	cancelled []string
	approvals *fakeApprovalStore
}

func (f *fakeEngine) Start(_ context.Context, _ *models.ProcessDefinition, _ map[string]any, trig models.TriggeredBy) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return "", f.startErr
	}
	f.started = append(f.started, trig)
	return "exec-123", nil
}

func (f *fakeEngine) Cancel(_ context.Context, executionID, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, executionID)
	return nil
}

func (f *fakeEngine) SubmitApproval(ctx context.Context, approvalID string, status models.ApprovalStatus, actor, comment string) error {
	a, err := f.approvals.GetApproval(ctx, approvalID)
	if err != nil {
		return err
	}
	if err := a.Decide(status, actor, comment, time.Now()); err != nil {
		return err
	}
	f.approvals.add(a)
	return nil
}

func (f *fakeEngine) ActiveCount() int { return 0 }

type fakeTrigger struct {
	mu    sync.Mutex
	fired []string
	err   error
}

func (f *fakeTrigger) TriggerScheduled(_ context.Context, sched *models.Schedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.fired = append(f.fired, sched.ID)
	return nil
}

type fakeRecovery struct {
	report *recovery.Report
}

func (f *fakeRecovery) LastReport() *recovery.Report { return f.report }

// --- harness ---------------------------------------------------------------

type testFixture struct {
	server    *Server
	defs      *fakeDefinitionStore
	execs     *fakeExecutionStore
	approvals *fakeApprovalStore
	scheds    *fakeScheduleStore
	audits    *fakeAuditStore
	engine    *fakeEngine
	trigger   *fakeTrigger
	recovery  *fakeRecovery
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	f := &testFixture{
		defs:      newFakeDefinitionStore(),
		execs:     newFakeExecutionStore(),
		approvals: newFakeApprovalStore(),
		scheds:    newFakeScheduleStore(),
		audits:    &fakeAuditStore{},
		trigger:   &fakeTrigger{},
		recovery:  &fakeRecovery{},
	}
	f.engine = &fakeEngine{approvals: f.approvals}

	cfg := &config.Config{
		System: &config.SystemConfig{ListenAddr: ":0", AllowedWSOrigins: []string{"localhost:*"}},
	}
	f.server = NewServer(cfg, Deps{
		Definitions: f.defs,
		Executions:  f.execs,
		Approvals:   f.approvals,
		Schedules:   f.scheds,
		Audits:      f.audits,
		Engine:      f.engine,
		Trigger:     f.trigger,
		Recovery:    f.recovery,
		Authz:       auth.NewService(),
		Recorder:    audit.NewRecorder(f.audits, slog.Default()),
		Logger:      slog.Default(),
	})
	f.server.MarkRecoveryDone()
	return f
}

// asUser attaches proxy identity headers.
func asUser(req *http.Request, user string, roles ...string) *http.Request {
	req.Header.Set("X-Forwarded-User", user)
	if len(roles) > 0 {
		req.Header.Set("X-Trinity-Roles", joinComma(roles))
	}
	return req
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out
}

func (f *testFixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.server.echo.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// testDef builds a one-step draft definition.
func testDef(name, version string) *models.ProcessDefinition {
	return &models.ProcessDefinition{
		ID:      uuid.New().String(),
		Name:    name,
		Version: version,
		Status:  models.DefinitionDraft,
		Steps: []models.StepDefinition{
			{
				ID:   "triage",
				Kind: models.StepAgentTask,
				AgentTask: &models.AgentTaskConfig{
					AgentName:       "triage-agent",
					MessageTemplate: "Triage {{input.subject}}",
				},
			},
		},
		CreatedBy: "alice",
		OwnerTeam: "sre",
		CreatedAt: time.Now().UTC(),
	}
}

// --- cross-cutting behavior ------------------------------------------------

func TestServer_RejectsAnonymousRequests(t *testing.T) {
	f := newTestFixture(t)

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/processes", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, string(models.KindAuthorizationDenied), body["code"])
}

func TestServer_RecoveryGateBlocksWrites(t *testing.T) {
	f := newTestFixture(t)
	f.server.recoveryDone.Store(false)

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/executions",
		map[string]any{"process_name": "x"}), "alice", "operator"))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "5", rec.Header().Get("Retry-After"))

	// Reads stay available during recovery.
	rec = f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/processes", nil), "alice", "viewer"))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_SecurityHeaders(t *testing.T) {
	f := newTestFixture(t)

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/processes", nil), "alice", "viewer"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
