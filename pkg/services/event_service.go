package services

import (
	"context"
	"strings"
	"time"

	"github.com/trinity-ai/trinity/ent"
	"github.com/trinity-ai/trinity/ent/event"
	"github.com/trinity-ai/trinity/pkg/events"
)

// EventService queries the persisted event outbox. Event rows are written by
// ExecutionService inside the execution transaction; this service serves
// WebSocket catchup and the REST event history.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CatchupEvents returns stored events on a channel with seq > sinceSeq in
// sequence order. Only per-execution channels are backed by storage; the
// global channel is a transient copy of lifecycle events, so catchup on it
// returns nothing.
func (s *EventService) CatchupEvents(ctx context.Context, channel string, sinceSeq int64, limit int) ([]events.CatchupEvent, error) {
	executionID, ok := strings.CutPrefix(channel, "execution:")
	if !ok {
		return nil, nil
	}

	rows, err := s.client.Event.Query().
		Where(
			event.ExecutionIDEQ(executionID),
			event.SeqGT(sinceSeq),
		).
		Order(ent.Asc(event.FieldSeq)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, translate(err, "failed to query catchup events for %s", channel)
	}

	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, events.CatchupEvent{
			Seq:     row.Seq,
			Payload: eventEnvelopeFromRow(row),
		})
	}
	return out, nil
}

// ListEvents returns the full stored event stream of an execution.
func (s *EventService) ListEvents(ctx context.Context, executionID string) ([]map[string]any, error) {
	rows, err := s.client.Event.Query().
		Where(event.ExecutionIDEQ(executionID)).
		Order(ent.Asc(event.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, translate(err, "failed to list events for execution %s", executionID)
	}
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventEnvelopeFromRow(row))
	}
	return out, nil
}

// CleanupEventsForExecutions deletes the stored events of the given
// executions. Called by retention cleanup after the executions are purged.
func (s *EventService) CleanupEventsForExecutions(httpCtx context.Context, executionIDs []string) (int, error) {
	if len(executionIDs) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Event.Delete().
		Where(event.ExecutionIDIn(executionIDs...)).
		Exec(ctx)
	if err != nil {
		return 0, translate(err, "failed to cleanup events")
	}
	return n, nil
}

// eventEnvelopeFromRow mirrors the wire form broadcast on the bus so catchup
// and live events look identical to clients.
func eventEnvelopeFromRow(row *ent.Event) map[string]any {
	env := map[string]any{
		"type":         row.Type,
		"execution_id": row.ExecutionID,
		"process_id":   row.ProcessID,
		"seq":          row.Seq,
		"timestamp":    row.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if row.StepID != "" {
		env["step_id"] = row.StepID
	}
	if row.Payload != nil {
		env["payload"] = row.Payload
	}
	return env
}
