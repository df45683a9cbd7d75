package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

func seedAudit(f *testFixture) {
	now := time.Now().UTC()
	f.audits.entries = append(f.audits.entries,
		&models.AuditEntry{ID: "a-1", Timestamp: now, Actor: "alice", Action: "process.created", ResourceType: "process", ResourceID: "def-1"},
		&models.AuditEntry{ID: "a-2", Timestamp: now, Actor: "bob", Action: "execution.triggered", ResourceType: "execution", ResourceID: "exec-1"},
	)
}

func TestListAuditRequiresAdmin(t *testing.T) {
	f := newTestFixture(t)
	seedAudit(f)

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/audit", nil), "alice", "operator"))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/audit", nil), "root", "admin"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["count"])
}

func TestListAuditFilters(t *testing.T) {
	f := newTestFixture(t)
	seedAudit(f)

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/audit?actor=alice", nil), "root", "admin"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])

	rec = f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/audit?since=garbage", nil), "root", "admin"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAuditEntry(t *testing.T) {
	f := newTestFixture(t)
	seedAudit(f)

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/audit/a-1", nil), "root", "admin"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "process.created", decodeBody(t, rec)["action"])

	rec = f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/audit/nope", nil), "root", "admin"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
