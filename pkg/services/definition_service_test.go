package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

func TestDefinitionService_CreateAndGet(t *testing.T) {
	client := newTestClient(t)
	svc := NewDefinitionService(client.Client)
	ctx := context.Background()

	def := testDefinition("incident-triage")
	require.NoError(t, svc.CreateDefinition(ctx, def))

	got, err := svc.GetDefinition(ctx, def.ID)
	require.NoError(t, err)
	assert.Equal(t, def.Name, got.Name)
	assert.Equal(t, models.DefinitionDraft, got.Status)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "triage", got.Steps[0].ID)
	assert.Equal(t, "triage-agent", got.Steps[0].AgentTask.AgentName)
	assert.Equal(t, []string{"triage"}, got.Steps[1].Dependencies)
}

func TestDefinitionService_GetMissing(t *testing.T) {
	client := newTestClient(t)
	svc := NewDefinitionService(client.Client)

	_, err := svc.GetDefinition(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindNotFound))
}

func TestDefinitionService_UniqueNameVersion(t *testing.T) {
	client := newTestClient(t)
	svc := NewDefinitionService(client.Client)
	ctx := context.Background()

	def := testDefinition("incident-triage")
	require.NoError(t, svc.CreateDefinition(ctx, def))

	dup := testDefinition("incident-triage")
	err := svc.CreateDefinition(ctx, dup)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindStateConflict))
}

func TestDefinitionService_PublishRoundTrip(t *testing.T) {
	client := newTestClient(t)
	svc := NewDefinitionService(client.Client)
	ctx := context.Background()

	def := testDefinition("incident-triage")
	require.NoError(t, svc.CreateDefinition(ctx, def))

	require.NoError(t, def.Publish(time.Now()))
	require.NoError(t, svc.SaveDefinition(ctx, def))

	got, err := svc.GetPublishedDefinitionByName(ctx, "incident-triage")
	require.NoError(t, err)
	assert.Equal(t, def.ID, got.ID)
	assert.Equal(t, models.DefinitionPublished, got.Status)
	require.NotNil(t, got.PublishedAt)
}

func TestDefinitionService_ArchivePublishedOnNewVersion(t *testing.T) {
	client := newTestClient(t)
	svc := NewDefinitionService(client.Client)
	ctx := context.Background()

	v1 := testDefinition("incident-triage")
	require.NoError(t, v1.Publish(time.Now()))
	require.NoError(t, svc.CreateDefinition(ctx, v1))

	require.NoError(t, svc.ArchivePublished(ctx, "incident-triage"))

	v2 := testDefinition("incident-triage")
	v2.Version = "2.0.0"
	require.NoError(t, v2.Publish(time.Now()))
	require.NoError(t, svc.CreateDefinition(ctx, v2))

	got, err := svc.GetPublishedDefinitionByName(ctx, "incident-triage")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", got.Version)

	old, err := svc.GetDefinition(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefinitionArchived, old.Status)
}

func TestDefinitionService_ListFilters(t *testing.T) {
	client := newTestClient(t)
	svc := NewDefinitionService(client.Client)
	ctx := context.Background()

	a := testDefinition("proc-a")
	require.NoError(t, svc.CreateDefinition(ctx, a))
	b := testDefinition("proc-b")
	require.NoError(t, b.Publish(time.Now()))
	require.NoError(t, svc.CreateDefinition(ctx, b))

	all, err := svc.ListDefinitions(ctx, "", "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	published, err := svc.ListDefinitions(ctx, "", models.DefinitionPublished, 0, 0)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "proc-b", published[0].Name)

	byName, err := svc.ListDefinitions(ctx, "proc-a", "", 0, 0)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, a.ID, byName[0].ID)
}

func TestDefinitionService_DeleteDraftOnly(t *testing.T) {
	client := newTestClient(t)
	svc := NewDefinitionService(client.Client)
	ctx := context.Background()

	draft := testDefinition("draft-proc")
	require.NoError(t, svc.CreateDefinition(ctx, draft))
	require.NoError(t, svc.DeleteDefinition(ctx, draft.ID))

	_, err := svc.GetDefinition(ctx, draft.ID)
	assert.True(t, models.IsKind(err, models.KindNotFound))

	published := testDefinition("published-proc")
	require.NoError(t, published.Publish(time.Now()))
	require.NoError(t, svc.CreateDefinition(ctx, published))

	err = svc.DeleteDefinition(ctx, published.ID)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindStateConflict))

	err = svc.DeleteDefinition(ctx, "no-such-id")
	assert.True(t, models.IsKind(err, models.KindNotFound))
}
