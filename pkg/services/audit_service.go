package services

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	"github.com/trinity-ai/trinity/ent"
	"github.com/trinity-ai/trinity/ent/auditentry"
	"github.com/trinity-ai/trinity/pkg/models"
)

// AuditService persists the append-only audit log. Rows are inserted and
// queried, never updated; expiry honors each row's own retention window.
type AuditService struct {
	client *ent.Client
	db     *stdsql.DB
}

// NewAuditService creates a new AuditService. The raw handle is used for the
// per-row retention delete, which Ent cannot express.
func NewAuditService(client *ent.Client, db *stdsql.DB) *AuditService {
	return &AuditService{client: client, db: db}
}

// AppendAudit inserts one audit entry.
func (s *AuditService) AppendAudit(httpCtx context.Context, entry *models.AuditEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.AuditEntry.Create().
		SetID(entry.ID).
		SetTimestamp(entry.Timestamp).
		SetActor(entry.Actor).
		SetAction(entry.Action).
		SetResourceType(entry.ResourceType).
		SetResourceID(entry.ResourceID).
		SetIP(entry.IP).
		SetUserAgent(entry.UserAgent).
		SetDataClassification(entry.DataClassification).
		SetRetentionDays(entry.RetentionDays)
	if entry.Details != nil {
		create.SetDetails(entry.Details)
	}

	if _, err := create.Save(ctx); err != nil {
		return translate(err, "failed to append audit entry %s", entry.ID)
	}
	return nil
}

// GetAuditEntry retrieves one audit entry by id.
func (s *AuditService) GetAuditEntry(ctx context.Context, id string) (*models.AuditEntry, error) {
	row, err := s.client.AuditEntry.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get audit entry %s", id)
	}
	return auditFromRow(row), nil
}

// ListAuditEntries returns entries matching the filter, newest first.
func (s *AuditService) ListAuditEntries(ctx context.Context, filter models.AuditFilter, limit, offset int) ([]*models.AuditEntry, error) {
	q := s.client.AuditEntry.Query()
	if filter.Actor != "" {
		q = q.Where(auditentry.ActorEQ(filter.Actor))
	}
	if filter.Action != "" {
		q = q.Where(auditentry.ActionEQ(filter.Action))
	}
	if filter.ResourceType != "" {
		q = q.Where(auditentry.ResourceTypeEQ(filter.ResourceType))
	}
	if filter.ResourceID != "" {
		q = q.Where(auditentry.ResourceIDEQ(filter.ResourceID))
	}
	if filter.Since != nil {
		q = q.Where(auditentry.TimestampGTE(*filter.Since))
	}
	if filter.Until != nil {
		q = q.Where(auditentry.TimestampLT(*filter.Until))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.Order(ent.Desc(auditentry.FieldTimestamp)).All(ctx)
	if err != nil {
		return nil, translate(err, "failed to list audit entries")
	}
	entries := make([]*models.AuditEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, auditFromRow(row))
	}
	return entries, nil
}

// CleanupExpiredAudit deletes entries older than their own retention window.
func (s *AuditService) CleanupExpiredAudit(httpCtx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM audit_entries
		WHERE timestamp < now() - (retention_days || ' days')::interval`)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired audit entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleaned audit entries: %w", err)
	}
	return int(n), nil
}

func auditFromRow(row *ent.AuditEntry) *models.AuditEntry {
	return &models.AuditEntry{
		ID:                 row.ID,
		Timestamp:          row.Timestamp,
		Actor:              row.Actor,
		Action:             row.Action,
		ResourceType:       row.ResourceType,
		ResourceID:         row.ResourceID,
		Details:            row.Details,
		IP:                 row.IP,
		UserAgent:          row.UserAgent,
		DataClassification: row.DataClassification,
		RetentionDays:      row.RetentionDays,
	}
}
