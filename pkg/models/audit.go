package models

import "time"

// AuditEntry is an append-only record of a state-changing action.
// Entries are never updated or deleted within their retention window.
type AuditEntry struct {
	ID                 string         `json:"id"`
	Timestamp          time.Time      `json:"timestamp"`
	Actor              string         `json:"actor"`
	Action             string         `json:"action"`
	ResourceType       string         `json:"resource_type"`
	ResourceID         string         `json:"resource_id"`
	Details            map[string]any `json:"details,omitempty"`
	IP                 string         `json:"ip,omitempty"`
	UserAgent          string         `json:"user_agent,omitempty"`
	DataClassification string         `json:"data_classification,omitempty"`
	RetentionDays      int            `json:"retention_days"`
}

// AuditFilter narrows audit queries.
type AuditFilter struct {
	Actor        string
	Action       string
	ResourceType string
	ResourceID   string
	Since        *time.Time
	Until        *time.Time
}
