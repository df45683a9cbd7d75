package api

import (
	"github.com/trinity-ai/trinity/pkg/models"
)

// createProcessRequest carries a new definition draft. The full definition
// document is embedded; ID, status and timestamps are server-assigned.
type createProcessRequest struct {
	Name               string                  `json:"name"`
	Version            string                  `json:"version"`
	Steps              []models.StepDefinition `json:"steps"`
	Triggers           []models.Trigger        `json:"triggers,omitempty"`
	Output             *models.OutputConfig    `json:"output,omitempty"`
	OwnerTeam          string                  `json:"owner_team,omitempty"`
	MaxConcurrent      int                     `json:"max_concurrent_instances,omitempty"`
	MaxCost            float64                 `json:"max_cost,omitempty"`
	Priority           string                  `json:"priority,omitempty"`
	DataClassification string                  `json:"data_classification,omitempty"`
}

// triggerExecutionRequest starts a process by name, optionally pinning a
// version. Omitting version runs the latest published one.
type triggerExecutionRequest struct {
	ProcessName string         `json:"process_name"`
	Version     string         `json:"version,omitempty"`
	Input       map[string]any `json:"input,omitempty"`
}

// cancelExecutionRequest carries the operator's reason for the audit trail.
type cancelExecutionRequest struct {
	Reason string `json:"reason,omitempty"`
}

// decideApprovalRequest records an approval decision. Decision is one of
// approved, rejected or changes_requested.
type decideApprovalRequest struct {
	Decision string `json:"decision"`
	Comment  string `json:"comment,omitempty"`
}

// createScheduleRequest registers a cron trigger for a published process.
type createScheduleRequest struct {
	ProcessName string         `json:"process_name"`
	Cron        string         `json:"cron"`
	Timezone    string         `json:"timezone,omitempty"`
	Enabled     *bool          `json:"enabled,omitempty"`
	Input       map[string]any `json:"input,omitempty"`
}
