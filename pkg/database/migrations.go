package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates JSONB GIN indexes for PostgreSQL.
// These indexes enable efficient containment queries on event payloads and
// audit entry details.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for event payload containment queries
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_payload_gin
		ON events USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create event payload GIN index: %w", err)
	}

	// GIN index for audit detail containment queries
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_audit_entries_details_gin
		ON audit_entries USING gin(details jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create audit details GIN index: %w", err)
	}

	return nil
}

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent cannot
// express. The scheduler polls only enabled schedules, and the recovery scan
// only looks at non-terminal executions, so both get filtered indexes.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS schedules_due_scan
		ON schedules (next_fire_at)
		WHERE enabled`)
	if err != nil {
		return fmt.Errorf("failed to create due-schedule index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS process_executions_non_terminal
		ON process_executions (updated_at)
		WHERE status IN ('pending', 'running', 'paused')`)
	if err != nil {
		return fmt.Errorf("failed to create non-terminal execution index: %w", err)
	}

	return nil
}
