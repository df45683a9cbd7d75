// Package audit writes the append-only audit trail. Entries come from two
// sources: API commands (recorded explicitly with actor and request
// metadata) and domain events (recorded by the bus sink). Entries are never
// updated; cleanup removes them only after their retention window.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trinity-ai/trinity/pkg/events"
	"github.com/trinity-ai/trinity/pkg/models"
)

// Store appends audit entries. Implemented by services.AuditService.
type Store interface {
	AppendAudit(ctx context.Context, entry *models.AuditEntry) error
}

// defaultRetentionDays applies to actions without a specific retention.
const defaultRetentionDays = 365

// actionRetentionDays extends retention for decision records.
var actionRetentionDays = map[string]int{
	"approval.decided":     730,
	"approval.timed_out":   730,
	"authorization.denied": 730,
}

// Meta carries request-scoped metadata onto an entry.
type Meta struct {
	IP                 string
	UserAgent          string
	DataClassification string
}

// Masker scrubs secret-shaped values from entry details before they are
// persisted. Implemented by masking.Service.
type Masker interface {
	MaskMap(details map[string]any) map[string]any
}

// Recorder writes audit entries. Failures are logged, never propagated:
// an audit write must not fail the command it records.
type Recorder struct {
	store  Store
	masker Masker
	logger *slog.Logger
}

// NewRecorder creates a recorder over the audit store.
func NewRecorder(store Store, logger *slog.Logger) *Recorder {
	return &Recorder{store: store, logger: logger.With("component", "audit")}
}

// SetMasker installs detail masking. Entries written before this call are
// not retroactively masked.
func (r *Recorder) SetMasker(m Masker) {
	r.masker = m
}

// Record appends one entry.
func (r *Recorder) Record(ctx context.Context, actor, action, resourceType, resourceID string, details map[string]any, meta Meta) {
	retention := defaultRetentionDays
	if d, ok := actionRetentionDays[action]; ok {
		retention = d
	}
	if r.masker != nil {
		details = r.masker.MaskMap(details)
	}
	entry := &models.AuditEntry{
		ID:                 uuid.New().String(),
		Timestamp:          time.Now().UTC(),
		Actor:              actor,
		Action:             action,
		ResourceType:       resourceType,
		ResourceID:         resourceID,
		Details:            details,
		IP:                 meta.IP,
		UserAgent:          meta.UserAgent,
		DataClassification: meta.DataClassification,
		RetentionDays:      retention,
	}
	if err := r.store.AppendAudit(ctx, entry); err != nil {
		r.logger.Error("Failed to append audit entry",
			"action", action, "resource_id", resourceID, "error", err)
	}
}

// RecordDenial audits a rejected authorization decision.
func (r *Recorder) RecordDenial(ctx context.Context, actor, permission, resourceType, resourceID, reason string, meta Meta) {
	r.Record(ctx, actor, "authorization.denied", resourceType, resourceID, map[string]any{
		"permission": permission,
		"reason":     reason,
	}, meta)
}

// Sink returns an event-bus sink that audits every domain event. The actor
// comes from the event payload when the transition was human-initiated,
// otherwise "system".
func (r *Recorder) Sink() events.Sink {
	return events.SinkFunc(func(evt models.Event) {
		actor := "system"
		if evt.Payload != nil {
			for _, key := range []string{"actor", "decided_by"} {
				if v, ok := evt.Payload[key].(string); ok && v != "" {
					actor = v
					break
				}
			}
		}
		details := map[string]any{"seq": evt.Seq}
		if evt.StepID != "" {
			details["step_id"] = evt.StepID
		}
		for k, v := range evt.Payload {
			details[k] = v
		}
		r.Record(context.Background(), actor, evt.Type, "execution", evt.ExecutionID, details, Meta{})
	})
}
