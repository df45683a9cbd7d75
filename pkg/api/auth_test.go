package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/auth"
	"github.com/trinity-ai/trinity/pkg/models"
)

func TestActorEncodingRoundTrip(t *testing.T) {
	id := auth.Identity{
		User:  "alice@example.com",
		Roles: []auth.Role{auth.RoleOperator, auth.RoleApprover},
		Teams: []string{"sre", "platform"},
	}
	got := decodeActor(encodeActor(id))
	assert.Equal(t, id, got)

	bare := auth.Identity{User: "bob"}
	assert.Equal(t, bare, decodeActor(encodeActor(bare)))
}

func TestChannelAuthorizer(t *testing.T) {
	execs := newFakeExecutionStore()
	execs.add(&models.ProcessExecution{ID: "exec-1", OwnerUser: "alice", Status: models.ExecutionRunning})
	authorizer := &channelAuthorizer{authz: auth.NewService(), executions: execs}
	ctx := context.Background()

	viewer := encodeActor(auth.Identity{User: "alice", Roles: []auth.Role{auth.RoleViewer}})
	stranger := encodeActor(auth.Identity{User: "mallory", Roles: []auth.Role{auth.RoleViewer}})
	admin := encodeActor(auth.Identity{User: "root", Roles: []auth.Role{auth.RoleAdmin}})

	t.Run("owner subscribes to own execution", func(t *testing.T) {
		assert.True(t, authorizer.CanSubscribe(ctx, viewer, "execution:exec-1"))
	})
	t.Run("stranger denied", func(t *testing.T) {
		assert.False(t, authorizer.CanSubscribe(ctx, stranger, "execution:exec-1"))
	})
	t.Run("unknown execution denied", func(t *testing.T) {
		assert.False(t, authorizer.CanSubscribe(ctx, viewer, "execution:nope"))
	})
	t.Run("global channel is admin only", func(t *testing.T) {
		assert.False(t, authorizer.CanSubscribe(ctx, viewer, "executions"))
		assert.True(t, authorizer.CanSubscribe(ctx, admin, "executions"))
	})
	t.Run("unknown channel denied", func(t *testing.T) {
		assert.False(t, authorizer.CanSubscribe(ctx, admin, "weird:channel"))
	})
	t.Run("anonymous denied", func(t *testing.T) {
		assert.False(t, authorizer.CanSubscribe(ctx, encodeActor(auth.Identity{}), "execution:exec-1"))
	})
}

func TestRolelessCallerDefaultsToViewer(t *testing.T) {
	f := newTestFixture(t)
	def := testDef("incident-triage", "1.0.0")
	require.NoError(t, f.defs.CreateDefinition(t.Context(), def))

	rec := f.do(t, asUser(jsonRequest(t, "POST", "/api/v1/processes", draftBody()), "carol"))
	assert.Equal(t, 403, rec.Code, "roleless callers default to viewer and cannot create")
}
