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

func draftBody() map[string]any {
	return map[string]any{
		"name":    "incident-triage",
		"version": "1.0.0",
		"steps": []map[string]any{
			{
				"id":   "triage",
				"kind": "agent_task",
				"agent_task": map[string]any{
					"agent_name":       "triage-agent",
					"message_template": "Triage {{input.subject}}",
				},
			},
		},
		"owner_team": "sre",
	}
}

func TestCreateProcess(t *testing.T) {
	f := newTestFixture(t)

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/processes", draftBody()), "alice", "designer"))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "incident-triage", body["name"])
	assert.Equal(t, string(models.DefinitionDraft), body["status"])
	assert.Equal(t, "alice", body["created_by"])
	assert.NotEmpty(t, body["id"])
	assert.Contains(t, f.audits.actions(), "process.created")
}

func TestCreateProcessValidation(t *testing.T) {
	f := newTestFixture(t)

	body := draftBody()
	delete(body, "version")
	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/processes", body), "alice", "designer"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(models.KindValidation), decodeBody(t, rec)["code"])
}

func TestCreateProcessDeniedForViewer(t *testing.T) {
	f := newTestFixture(t)

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/processes", draftBody()), "bob", "viewer"))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, f.audits.actions(), "authorization.denied")
}

func TestPublishProcessArchivesPredecessor(t *testing.T) {
	f := newTestFixture(t)
	ctx := t.Context()

	v1 := testDef("incident-triage", "1.0.0")
	require.NoError(t, v1.Publish(time.Now()))
	require.NoError(t, f.defs.CreateDefinition(ctx, v1))
	v2 := testDef("incident-triage", "2.0.0")
	require.NoError(t, f.defs.CreateDefinition(ctx, v2))

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/processes/"+v2.ID+"/publish", nil), "alice", "designer"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(models.DefinitionPublished), decodeBody(t, rec)["status"])

	old, err := f.defs.GetDefinition(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefinitionArchived, old.Status)
	assert.Contains(t, f.audits.actions(), "process.published")
}

func TestPublishInvalidDraft(t *testing.T) {
	f := newTestFixture(t)

	def := testDef("broken", "1.0.0")
	def.Steps[0].Dependencies = []string{"no-such-step"}
	require.NoError(t, f.defs.CreateDefinition(t.Context(), def))

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/processes/"+def.ID+"/publish", nil), "alice", "designer"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePublishedProcessConflicts(t *testing.T) {
	f := newTestFixture(t)

	def := testDef("incident-triage", "1.0.0")
	require.NoError(t, def.Publish(time.Now()))
	require.NoError(t, f.defs.CreateDefinition(t.Context(), def))

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPut, "/api/v1/processes/"+def.ID, draftBody()), "alice", "designer"))
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(models.KindStateConflict), decodeBody(t, rec)["code"])
}

func TestGetProcessNotFound(t *testing.T) {
	f := newTestFixture(t)

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/processes/nope", nil), "alice", "viewer"))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(models.KindNotFound), decodeBody(t, rec)["code"])
}

func TestDeleteDraftProcess(t *testing.T) {
	f := newTestFixture(t)

	def := testDef("scratch", "0.1.0")
	require.NoError(t, f.defs.CreateDefinition(t.Context(), def))

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodDelete, "/api/v1/processes/"+def.ID, nil), "alice", "designer"))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err := f.defs.GetDefinition(t.Context(), def.ID)
	assert.True(t, models.IsKind(err, models.KindNotFound))
}
