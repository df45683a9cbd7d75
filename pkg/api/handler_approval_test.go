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

func pendingApproval(f *testFixture, id string, approvers ...string) *models.Approval {
	a := &models.Approval{
		ID:          id,
		ExecutionID: "exec-1",
		StepID:      "sign-off",
		Approvers:   approvers,
		Deadline:    time.Now().Add(time.Hour),
		Status:      models.ApprovalPending,
		Title:       "Deploy to production",
		RequestedAt: time.Now(),
	}
	f.approvals.add(a)
	return a
}

func TestDecideApproval(t *testing.T) {
	f := newTestFixture(t)
	pendingApproval(f, "appr-1", "alice", "bob")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/approvals/appr-1/decide", map[string]any{
		"decision": "approved",
		"comment":  "lgtm",
	}), "bob", "approver"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, string(models.ApprovalApproved), body["status"])
	assert.Equal(t, "bob", body["decided_by"])
	assert.Contains(t, f.audits.actions(), "approval.decided")
}

func TestDecideApprovalInvalidDecision(t *testing.T) {
	f := newTestFixture(t)
	pendingApproval(f, "appr-1", "bob")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/approvals/appr-1/decide", map[string]any{
		"decision": "maybe",
	}), "bob", "approver"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecideApprovalNotAnApprover(t *testing.T) {
	f := newTestFixture(t)
	pendingApproval(f, "appr-1", "alice")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/approvals/appr-1/decide", map[string]any{
		"decision": "approved",
	}), "mallory", "approver"))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, f.audits.actions(), "authorization.denied")

	got, err := f.approvals.GetApproval(t.Context(), "appr-1")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, got.Status)
}

func TestDecideApprovalTwiceConflicts(t *testing.T) {
	f := newTestFixture(t)
	pendingApproval(f, "appr-1", "alice", "bob")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/approvals/appr-1/decide", map[string]any{
		"decision": "approved",
	}), "alice", "approver"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/approvals/appr-1/decide", map[string]any{
		"decision": "rejected",
	}), "bob", "approver"))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestListPendingApprovals(t *testing.T) {
	f := newTestFixture(t)
	pendingApproval(f, "appr-1", "alice")
	pendingApproval(f, "appr-2", "bob")

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/approvals", nil), "alice", "approver"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])
}

func TestListExecutionApprovals(t *testing.T) {
	f := newTestFixture(t)
	f.execs.add(&models.ProcessExecution{ID: "exec-1", OwnerUser: "alice", Status: models.ExecutionPaused})
	pendingApproval(f, "appr-1", "bob")

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/executions/exec-1/approvals", nil), "alice", "viewer"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
}
