package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
	"github.com/trinity-ai/trinity/pkg/recovery"
)

func publishedDef(t *testing.T, f *testFixture, name, version string) *models.ProcessDefinition {
	t.Helper()
	def := testDef(name, version)
	require.NoError(t, def.Publish(time.Now()))
	require.NoError(t, f.defs.CreateDefinition(t.Context(), def))
	return def
}

func TestTriggerExecution(t *testing.T) {
	f := newTestFixture(t)
	publishedDef(t, f, "incident-triage", "1.0.0")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/executions", map[string]any{
		"process_name": "incident-triage",
		"input":        map[string]any{"subject": "disk alert"},
	}), "alice", "operator"))
	require.Equal(t, http.StatusAccepted, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "exec-123", body["execution_id"])
	assert.Equal(t, "1.0.0", body["process_version"])

	require.Len(t, f.engine.started, 1)
	assert.Equal(t, models.TriggerManual, f.engine.started[0].Kind)
	assert.Equal(t, "alice", f.engine.started[0].Actor)
	assert.Contains(t, f.audits.actions(), "execution.triggered")
}

func TestTriggerExecutionLimitExceeded(t *testing.T) {
	f := newTestFixture(t)
	publishedDef(t, f, "incident-triage", "1.0.0")
	f.engine.startErr = models.NewError(models.KindLimitExceeded, "too many running instances of \"incident-triage\"")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/executions", map[string]any{
		"process_name": "incident-triage",
	}), "alice", "operator"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	assert.Equal(t, string(models.KindLimitExceeded), decodeBody(t, rec)["code"])
}

func TestTriggerExecutionArchivedVersion(t *testing.T) {
	f := newTestFixture(t)
	def := publishedDef(t, f, "incident-triage", "1.0.0")
	require.NoError(t, f.defs.ArchivePublished(t.Context(), def.Name))

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/executions", map[string]any{
		"process_name": "incident-triage",
		"version":      "1.0.0",
	}), "alice", "operator"))
	require.Equal(t, http.StatusGone, rec.Code)
}

func TestTriggerExecutionUnknownVersion(t *testing.T) {
	f := newTestFixture(t)
	publishedDef(t, f, "incident-triage", "1.0.0")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/executions", map[string]any{
		"process_name": "incident-triage",
		"version":      "9.9.9",
	}), "alice", "operator"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTriggerExecutionDeniedForViewer(t *testing.T) {
	f := newTestFixture(t)
	publishedDef(t, f, "incident-triage", "1.0.0")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/executions", map[string]any{
		"process_name": "incident-triage",
	}), "bob", "viewer"))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, f.engine.started)
}

func TestListExecutionsScopedForViewer(t *testing.T) {
	f := newTestFixture(t)

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/executions", nil), "bob", "viewer"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob", f.execs.lastFilter.OwnerUser)

	rec = f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/executions", nil), "root", "admin"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, f.execs.lastFilter.OwnerUser)
}

func TestGetExecutionOwnership(t *testing.T) {
	f := newTestFixture(t)
	f.execs.add(&models.ProcessExecution{ID: "exec-1", OwnerUser: "alice", Status: models.ExecutionRunning})

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/executions/exec-1", nil), "alice", "viewer"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/executions/exec-1", nil), "mallory", "viewer"))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/executions/exec-1", nil), "root", "admin"))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelExecution(t *testing.T) {
	f := newTestFixture(t)
	f.execs.add(&models.ProcessExecution{ID: "exec-1", OwnerUser: "alice", Status: models.ExecutionRunning})

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/executions/exec-1/cancel", map[string]any{
		"reason": "wrong input",
	}), "alice", "operator"))
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"exec-1"}, f.engine.cancelled)
	assert.Contains(t, f.audits.actions(), "execution.cancelled")
}

func TestCancelTerminalExecutionConflicts(t *testing.T) {
	f := newTestFixture(t)
	f.execs.add(&models.ProcessExecution{ID: "exec-1", OwnerUser: "alice", Status: models.ExecutionCompleted})
	f.engine.cancelErr = models.NewError(models.KindStateConflict, "execution exec-1 is completed")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/executions/exec-1/cancel", nil), "alice", "operator"))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecoveryStatus(t *testing.T) {
	f := newTestFixture(t)
	f.recovery.report = &recovery.Report{Scanned: 4, Resumed: 3, Failed: 1}

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/executions/recovery/status", nil), "alice", "viewer"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["done"])
	report, ok := body["report"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(4), report["scanned"])
}
