// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/trinity-ai/trinity/ent/auditentry"
	"github.com/trinity-ai/trinity/ent/event"
	"github.com/trinity-ai/trinity/ent/processdefinition"
	"github.com/trinity-ai/trinity/ent/processexecution"
	"github.com/trinity-ai/trinity/ent/schedule"
	"github.com/trinity-ai/trinity/ent/schema"
	"github.com/trinity-ai/trinity/ent/stepoutput"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalFields := schema.Approval{}.Fields()
	_ = approvalFields
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescTimestamp is the schema descriptor for timestamp field.
	auditentryDescTimestamp := auditentryFields[1].Descriptor()
	// auditentry.DefaultTimestamp holds the default value on creation for the timestamp field.
	auditentry.DefaultTimestamp = auditentryDescTimestamp.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescTimestamp is the schema descriptor for timestamp field.
	eventDescTimestamp := eventFields[5].Descriptor()
	// event.DefaultTimestamp holds the default value on creation for the timestamp field.
	event.DefaultTimestamp = eventDescTimestamp.Default.(func() time.Time)
	processdefinitionFields := schema.ProcessDefinition{}.Fields()
	_ = processdefinitionFields
	// processdefinitionDescCreatedAt is the schema descriptor for created_at field.
	processdefinitionDescCreatedAt := processdefinitionFields[9].Descriptor()
	// processdefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	processdefinition.DefaultCreatedAt = processdefinitionDescCreatedAt.Default.(func() time.Time)
	// processdefinitionDescMaxConcurrent is the schema descriptor for max_concurrent field.
	processdefinitionDescMaxConcurrent := processdefinitionFields[11].Descriptor()
	// processdefinition.DefaultMaxConcurrent holds the default value on creation for the max_concurrent field.
	processdefinition.DefaultMaxConcurrent = processdefinitionDescMaxConcurrent.Default.(int)
	// processdefinitionDescMaxCost is the schema descriptor for max_cost field.
	processdefinitionDescMaxCost := processdefinitionFields[12].Descriptor()
	// processdefinition.DefaultMaxCost holds the default value on creation for the max_cost field.
	processdefinition.DefaultMaxCost = processdefinitionDescMaxCost.Default.(float64)
	processexecutionFields := schema.ProcessExecution{}.Fields()
	_ = processexecutionFields
	// processexecutionDescTotalCost is the schema descriptor for total_cost field.
	processexecutionDescTotalCost := processexecutionFields[10].Descriptor()
	// processexecution.DefaultTotalCost holds the default value on creation for the total_cost field.
	processexecution.DefaultTotalCost = processexecutionDescTotalCost.Default.(float64)
	// processexecutionDescSeq is the schema descriptor for seq field.
	processexecutionDescSeq := processexecutionFields[16].Descriptor()
	// processexecution.DefaultSeq holds the default value on creation for the seq field.
	processexecution.DefaultSeq = processexecutionDescSeq.Default.(int64)
	// processexecutionDescUpdatedAt is the schema descriptor for updated_at field.
	processexecutionDescUpdatedAt := processexecutionFields[17].Descriptor()
	// processexecution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	processexecution.DefaultUpdatedAt = processexecutionDescUpdatedAt.Default.(func() time.Time)
	// processexecution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	processexecution.UpdateDefaultUpdatedAt = processexecutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	scheduleFields := schema.Schedule{}.Fields()
	_ = scheduleFields
	// scheduleDescEnabled is the schema descriptor for enabled field.
	scheduleDescEnabled := scheduleFields[5].Descriptor()
	// schedule.DefaultEnabled holds the default value on creation for the enabled field.
	schedule.DefaultEnabled = scheduleDescEnabled.Default.(bool)
	// scheduleDescLockToken is the schema descriptor for lock_token field.
	scheduleDescLockToken := scheduleFields[11].Descriptor()
	// schedule.DefaultLockToken holds the default value on creation for the lock_token field.
	schedule.DefaultLockToken = scheduleDescLockToken.Default.(string)
	stepoutputFields := schema.StepOutput{}.Fields()
	_ = stepoutputFields
	// stepoutputDescCreatedAt is the schema descriptor for created_at field.
	stepoutputDescCreatedAt := stepoutputFields[3].Descriptor()
	// stepoutput.DefaultCreatedAt holds the default value on creation for the created_at field.
	stepoutput.DefaultCreatedAt = stepoutputDescCreatedAt.Default.(func() time.Time)
}
