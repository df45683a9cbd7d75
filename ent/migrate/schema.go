// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalsColumns holds the columns for the "approvals" table.
	ApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "approvers", Type: field.TypeJSON},
		{Name: "deadline", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "changes_requested", "timed_out"}, Default: "pending"},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "decided_by", Type: field.TypeString, Nullable: true},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "decision_at", Type: field.TypeTime, Nullable: true},
		{Name: "requested_at", Type: field.TypeTime},
	}
	// ApprovalsTable holds the schema information for the "approvals" table.
	ApprovalsTable = &schema.Table{
		Name:       "approvals",
		Columns:    ApprovalsColumns,
		PrimaryKey: []*schema.Column{ApprovalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approval_execution_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[1]},
			},
			{
				Name:    "approval_status_deadline",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[5], ApprovalsColumns[4]},
			},
		},
	}
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "actor", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "data_classification", Type: field.TypeString, Nullable: true},
		{Name: "retention_days", Type: field.TypeInt},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[2]},
			},
			{
				Name:    "auditentry_action",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[3]},
			},
			{
				Name:    "auditentry_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[4], AuditEntriesColumns[5]},
			},
			{
				Name:    "auditentry_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "process_id", Type: field.TypeString, Nullable: true},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_execution_id_seq",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[5]},
			},
			{
				Name:    "event_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[6]},
			},
		},
	}
	// ProcessDefinitionsColumns holds the columns for the "process_definitions" table.
	ProcessDefinitionsColumns = []*schema.Column{
		{Name: "definition_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "archived"}, Default: "draft"},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "triggers", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "owner_team", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "max_concurrent", Type: field.TypeInt, Default: 0},
		{Name: "max_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "priority", Type: field.TypeString, Nullable: true},
		{Name: "data_classification", Type: field.TypeString, Nullable: true},
	}
	// ProcessDefinitionsTable holds the schema information for the "process_definitions" table.
	ProcessDefinitionsTable = &schema.Table{
		Name:       "process_definitions",
		Columns:    ProcessDefinitionsColumns,
		PrimaryKey: []*schema.Column{ProcessDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processdefinition_name_version",
				Unique:  true,
				Columns: []*schema.Column{ProcessDefinitionsColumns[1], ProcessDefinitionsColumns[2]},
			},
			{
				Name:    "processdefinition_name_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessDefinitionsColumns[1], ProcessDefinitionsColumns[3]},
			},
			{
				Name:    "processdefinition_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessDefinitionsColumns[3]},
			},
		},
	}
	// ProcessExecutionsColumns holds the columns for the "process_executions" table.
	ProcessExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "process_id", Type: field.TypeString},
		{Name: "process_name", Type: field.TypeString},
		{Name: "process_version", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "triggered_by", Type: field.TypeJSON},
		{Name: "input_data", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "owner_team", Type: field.TypeString, Nullable: true},
		{Name: "owner_user", Type: field.TypeString, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "seq", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
	}
	// ProcessExecutionsTable holds the schema information for the "process_executions" table.
	ProcessExecutionsTable = &schema.Table{
		Name:       "process_executions",
		Columns:    ProcessExecutionsColumns,
		PrimaryKey: []*schema.Column{ProcessExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processexecution_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessExecutionsColumns[4]},
			},
			{
				Name:    "processexecution_process_name_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessExecutionsColumns[2], ProcessExecutionsColumns[4]},
			},
			{
				Name:    "processexecution_owner_user",
				Unique:  false,
				Columns: []*schema.Column{ProcessExecutionsColumns[13]},
			},
			{
				Name:    "processexecution_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessExecutionsColumns[4], ProcessExecutionsColumns[17]},
			},
			{
				Name:    "processexecution_started_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessExecutionsColumns[8]},
			},
		},
	}
	// SchedulesColumns holds the columns for the "schedules" table.
	SchedulesColumns = []*schema.Column{
		{Name: "schedule_id", Type: field.TypeString, Unique: true},
		{Name: "process_id", Type: field.TypeString},
		{Name: "process_name", Type: field.TypeString},
		{Name: "cron", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_fired_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_fire_at", Type: field.TypeTime},
		{Name: "owner_user", Type: field.TypeString},
		{Name: "owner_team", Type: field.TypeString, Nullable: true},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "lock_token", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// SchedulesTable holds the schema information for the "schedules" table.
	SchedulesTable = &schema.Table{
		Name:       "schedules",
		Columns:    SchedulesColumns,
		PrimaryKey: []*schema.Column{SchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schedule_enabled_next_fire_at",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[5], SchedulesColumns[7]},
			},
			{
				Name:    "schedule_process_name",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[2]},
			},
		},
	}
	// StepOutputsColumns holds the columns for the "step_outputs" table.
	StepOutputsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "output", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StepOutputsTable holds the schema information for the "step_outputs" table.
	StepOutputsTable = &schema.Table{
		Name:       "step_outputs",
		Columns:    StepOutputsColumns,
		PrimaryKey: []*schema.Column{StepOutputsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stepoutput_execution_id_step_id",
				Unique:  true,
				Columns: []*schema.Column{StepOutputsColumns[1], StepOutputsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalsTable,
		AuditEntriesTable,
		EventsTable,
		ProcessDefinitionsTable,
		ProcessExecutionsTable,
		SchedulesTable,
		StepOutputsTable,
	}
)

func init() {
}
