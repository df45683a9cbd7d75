package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

type memAuditStore struct {
	mu      sync.Mutex
	entries []*models.AuditEntry
	fail    bool
}

func (m *memAuditStore) AppendAudit(_ context.Context, entry *models.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("db down")
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memAuditStore) all() []*models.AuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.AuditEntry(nil), m.entries...)
}

func newTestRecorder(store *memAuditStore) *Recorder {
	return NewRecorder(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRecorder_Record(t *testing.T) {
	store := &memAuditStore{}
	rec := newTestRecorder(store)

	rec.Record(context.Background(), "alice", "process.published", "process", "def-1",
		map[string]any{"version": "1.0.0"},
		Meta{IP: "10.0.0.1", UserAgent: "curl/8", DataClassification: "internal"})

	entries := store.all()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "alice", e.Actor)
	assert.Equal(t, "process.published", e.Action)
	assert.Equal(t, "process", e.ResourceType)
	assert.Equal(t, "def-1", e.ResourceID)
	assert.Equal(t, "1.0.0", e.Details["version"])
	assert.Equal(t, "10.0.0.1", e.IP)
	assert.Equal(t, "internal", e.DataClassification)
	assert.Equal(t, defaultRetentionDays, e.RetentionDays)
	assert.WithinDuration(t, time.Now(), e.Timestamp, time.Minute)
}

func TestRecorder_DecisionActionsRetainLonger(t *testing.T) {
	store := &memAuditStore{}
	rec := newTestRecorder(store)

	rec.Record(context.Background(), "bob", "approval.decided", "execution", "exec-1", nil, Meta{})

	entries := store.all()
	require.Len(t, entries, 1)
	assert.Equal(t, 730, entries[0].RetentionDays)
}

func TestRecorder_RecordDenial(t *testing.T) {
	store := &memAuditStore{}
	rec := newTestRecorder(store)

	rec.RecordDenial(context.Background(), "mallory", "execution.cancel", "execution", "exec-1", "role lacks permission", Meta{})

	entries := store.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "authorization.denied", entries[0].Action)
	assert.Equal(t, "execution.cancel", entries[0].Details["permission"])
	assert.Equal(t, 730, entries[0].RetentionDays)
}

func TestRecorder_StoreFailureDoesNotPanic(t *testing.T) {
	store := &memAuditStore{fail: true}
	rec := newTestRecorder(store)

	assert.NotPanics(t, func() {
		rec.Record(context.Background(), "alice", "process.created", "process", "def-1", nil, Meta{})
	})
}

func TestSink_DerivesActorFromPayload(t *testing.T) {
	store := &memAuditStore{}
	sink := newTestRecorder(store).Sink()

	sink.Handle(models.Event{
		Type:        models.EventProcessCancelled,
		ExecutionID: "exec-1",
		Seq:         7,
		Payload:     map[string]any{"actor": "alice", "reason": "superseded"},
	})
	sink.Handle(models.Event{
		Type:        models.EventApprovalDecided,
		ExecutionID: "exec-1",
		StepID:      "gate",
		Seq:         8,
		Payload:     map[string]any{"decision": "approved", "decided_by": "bob"},
	})
	sink.Handle(models.Event{
		Type:        models.EventStepCompleted,
		ExecutionID: "exec-1",
		StepID:      "work",
		Seq:         9,
	})

	entries := store.all()
	require.Len(t, entries, 3)
	assert.Equal(t, "alice", entries[0].Actor)
	assert.Equal(t, "bob", entries[1].Actor)
	assert.Equal(t, "gate", entries[1].Details["step_id"])
	assert.Equal(t, "system", entries[2].Actor)
	assert.EqualValues(t, 9, entries[2].Details["seq"])
	assert.Equal(t, "execution", entries[2].ResourceType)
}
