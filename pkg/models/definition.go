package models

import (
	"fmt"
	"time"
)

// DefinitionStatus is the lifecycle status of a process definition.
type DefinitionStatus string

const (
	DefinitionDraft     DefinitionStatus = "draft"
	DefinitionPublished DefinitionStatus = "published"
	DefinitionArchived  DefinitionStatus = "archived"
)

// StepKind enumerates the supported step types.
type StepKind string

const (
	StepAgentTask     StepKind = "agent_task"
	StepHumanApproval StepKind = "human_approval"
	StepGateway       StepKind = "gateway"
	StepTimer         StepKind = "timer"
	StepNotification  StepKind = "notification"
	StepSubProcess    StepKind = "sub_process"
)

// GatewayType selects the routing semantics of a gateway step.
type GatewayType string

const (
	GatewayExclusive GatewayType = "exclusive"
	GatewayParallel  GatewayType = "parallel"
	GatewayInclusive GatewayType = "inclusive"
)

// BackoffStrategy selects how retry delays grow between attempts.
type BackoffStrategy string

const (
	BackoffFixed       BackoffStrategy = "fixed"
	BackoffLinear      BackoffStrategy = "linear"
	BackoffExponential BackoffStrategy = "exponential"
)

// OnError selects what happens when a step exhausts its retries.
type OnError string

const (
	OnErrorFail     OnError = "fail"
	OnErrorSkipStep OnError = "skip_step"
)

// OnTimeout selects the outcome applied when an approval deadline passes.
type OnTimeout string

const (
	TimeoutApprove OnTimeout = "approve"
	TimeoutReject  OnTimeout = "reject"
	TimeoutSkip    OnTimeout = "skip"
)

// TriggerKind enumerates how a process definition can be started.
type TriggerKind string

const (
	TriggerManual   TriggerKind = "manual"
	TriggerSchedule TriggerKind = "schedule"
	TriggerWebhook  TriggerKind = "webhook"
	TriggerAgent    TriggerKind = "agent"
)

// Trigger declares an entry point for a process definition.
type Trigger struct {
	Kind     TriggerKind `json:"kind"`
	Cron     string      `json:"cron,omitempty"`
	Timezone string      `json:"timezone,omitempty"`
	// WebhookSlug names the webhook path segment for webhook triggers.
	WebhookSlug string `json:"webhook_slug,omitempty"`
}

// RetryPolicy declares how many attempts a step gets and with what delays.
type RetryPolicy struct {
	MaxAttempts       int             `json:"max_attempts"`
	Backoff           BackoffStrategy `json:"backoff,omitempty"`
	InitialDelay      time.Duration   `json:"initial_delay,omitempty"`
	MaxDelay          time.Duration   `json:"max_delay,omitempty"`
	RetryableKinds    []Kind          `json:"retryable_kinds,omitempty"`
	NonRetryableKinds []Kind          `json:"non_retryable_kinds,omitempty"`
}

// AgentTaskConfig configures an agent_task step.
type AgentTaskConfig struct {
	AgentName       string        `json:"agent_name"`
	MessageTemplate string        `json:"message_template"`
	Timeout         time.Duration `json:"timeout,omitempty"`
	MaxCost         float64       `json:"max_cost,omitempty"`
	Retry           *RetryPolicy  `json:"retry,omitempty"`
	OnError         OnError       `json:"on_error,omitempty"`
}

// HumanApprovalConfig configures a human_approval step.
type HumanApprovalConfig struct {
	Approvers []string      `json:"approvers"`
	Timeout   time.Duration `json:"timeout,omitempty"`
	OnTimeout OnTimeout     `json:"on_timeout,omitempty"`
	Artifacts []string      `json:"artifacts,omitempty"`
	Title     string        `json:"title,omitempty"`
}

// GatewayRoute is a single ordered route of a gateway step. A nil/empty
// condition marks the default route.
type GatewayRoute struct {
	Condition  string `json:"condition,omitempty"`
	TargetStep string `json:"target_step"`
}

// GatewayConfig configures a gateway step.
type GatewayConfig struct {
	Type   GatewayType    `json:"type"`
	Routes []GatewayRoute `json:"routes"`
}

// TimerConfig configures a timer step. Exactly one of WaitDuration or
// WaitUntil must be set.
type TimerConfig struct {
	WaitDuration time.Duration `json:"wait_duration,omitempty"`
	// WaitUntil is an expression producing an RFC3339 time or clock time.
	WaitUntil string `json:"wait_until,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
}

// NotificationConfig configures a notification step.
type NotificationConfig struct {
	Channels        []string     `json:"channels"`
	MessageTemplate string       `json:"message_template"`
	Recipients      []string     `json:"recipients"`
	Retry           *RetryPolicy `json:"retry,omitempty"`
	OnError         OnError      `json:"on_error,omitempty"`
}

// SubProcessConfig configures a sub_process step. Mappings are substitution
// templates evaluated against the parent (input) or child (output) context.
type SubProcessConfig struct {
	ProcessName   string            `json:"process_name"`
	InputMapping  map[string]string `json:"input_mapping,omitempty"`
	OutputMapping map[string]string `json:"output_mapping,omitempty"`
	OnError       OnError           `json:"on_error,omitempty"`
}

// StepDefinition is a single node of the process DAG. Exactly one of the
// kind-specific config pointers is non-nil, matching Kind.
type StepDefinition struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         StepKind `json:"kind"`
	Dependencies []string `json:"dependencies,omitempty"`
	// Condition is a boolean predicate evaluated when dependencies complete.
	Condition string `json:"condition,omitempty"`

	// InformedAgents receive event payloads for this step for situational
	// awareness without participating in it.
	InformedAgents []string `json:"informed_agents,omitempty"`

	AgentTask     *AgentTaskConfig     `json:"agent_task,omitempty"`
	HumanApproval *HumanApprovalConfig `json:"human_approval,omitempty"`
	Gateway       *GatewayConfig       `json:"gateway,omitempty"`
	Timer         *TimerConfig         `json:"timer,omitempty"`
	Notification  *NotificationConfig  `json:"notification,omitempty"`
	SubProcess    *SubProcessConfig    `json:"sub_process,omitempty"`
}

// OnErrorPolicy returns the step's on_error setting (fail when unset).
func (s *StepDefinition) OnErrorPolicy() OnError {
	var p OnError
	switch s.Kind {
	case StepAgentTask:
		if s.AgentTask != nil {
			p = s.AgentTask.OnError
		}
	case StepNotification:
		if s.Notification != nil {
			p = s.Notification.OnError
		}
	case StepSubProcess:
		if s.SubProcess != nil {
			p = s.SubProcess.OnError
		}
	}
	if p == "" {
		p = OnErrorFail
	}
	return p
}

// RetryPolicyOrDefault returns the step's retry policy, defaulting to a
// single attempt.
func (s *StepDefinition) RetryPolicyOrDefault() RetryPolicy {
	var rp *RetryPolicy
	switch s.Kind {
	case StepAgentTask:
		if s.AgentTask != nil {
			rp = s.AgentTask.Retry
		}
	case StepNotification:
		if s.Notification != nil {
			rp = s.Notification.Retry
		}
	}
	if rp == nil {
		return RetryPolicy{MaxAttempts: 1}
	}
	out := *rp
	if out.MaxAttempts < 1 {
		out.MaxAttempts = 1
	}
	if out.Backoff == "" {
		out.Backoff = BackoffFixed
	}
	if out.InitialDelay <= 0 {
		out.InitialDelay = time.Second
	}
	if out.MaxDelay <= 0 {
		out.MaxDelay = 5 * time.Minute
	}
	return out
}

// OutputConfig declares which step's output becomes the execution output.
type OutputConfig struct {
	FromStep string `json:"from_step,omitempty"`
	// Template, when set, is a substitution template rendered over the final
	// execution context instead of copying a single step output.
	Template string `json:"template,omitempty"`
}

// ProcessDefinition is the immutable-once-published aggregate describing a
// process. Mutation happens only on drafts; publishing validates the DAG and
// freezes the version.
type ProcessDefinition struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Version string           `json:"version"`
	Status  DefinitionStatus `json:"status"`

	Steps    []StepDefinition `json:"steps"`
	Triggers []Trigger        `json:"triggers,omitempty"`
	Output   *OutputConfig    `json:"output,omitempty"`

	CreatedBy          string     `json:"created_by"`
	OwnerTeam          string     `json:"owner_team"`
	CreatedAt          time.Time  `json:"created_at"`
	PublishedAt        *time.Time `json:"published_at,omitempty"`
	MaxConcurrent      int        `json:"max_concurrent_instances,omitempty"`
	// MaxCost caps the cumulative execution cost; 0 means unlimited.
	MaxCost            float64 `json:"max_cost,omitempty"`
	Priority           string  `json:"priority,omitempty"`
	DataClassification string  `json:"data_classification,omitempty"`
}

// Step returns the step definition with the given id, or nil.
func (d *ProcessDefinition) Step(id string) *StepDefinition {
	for i := range d.Steps {
		if d.Steps[i].ID == id {
			return &d.Steps[i]
		}
	}
	return nil
}

// EntrySteps returns the ids of steps with no dependencies, in definition order.
func (d *ProcessDefinition) EntrySteps() []string {
	var entries []string
	for _, s := range d.Steps {
		if len(s.Dependencies) == 0 {
			entries = append(entries, s.ID)
		}
	}
	return entries
}

// Publish transitions a draft to published after validation.
func (d *ProcessDefinition) Publish(now time.Time) error {
	if d.Status != DefinitionDraft {
		return NewError(KindStateConflict, "definition %q is %s, only drafts can be published", d.Name, d.Status)
	}
	if err := d.Validate(); err != nil {
		return err
	}
	d.Status = DefinitionPublished
	d.PublishedAt = &now
	return nil
}

// Archive transitions a published definition to archived.
func (d *ProcessDefinition) Archive() error {
	if d.Status != DefinitionPublished {
		return NewError(KindStateConflict, "definition %q is %s, only published definitions can be archived", d.Name, d.Status)
	}
	d.Status = DefinitionArchived
	return nil
}

// Validate enforces the publish-time invariants: unique step ids, known
// dependencies, acyclic DAG, resolvable gateway targets, at least one entry
// step, and well-formed kind configs.
func (d *ProcessDefinition) Validate() error {
	if d.Name == "" {
		return NewError(KindValidation, "process name is required")
	}
	if len(d.Steps) == 0 {
		return NewError(KindValidation, "process %q has no steps", d.Name)
	}

	ids := make(map[string]bool, len(d.Steps))
	for _, s := range d.Steps {
		if s.ID == "" {
			return NewError(KindValidation, "step without id in process %q", d.Name)
		}
		if ids[s.ID] {
			return NewError(KindValidation, "duplicate step id %q", s.ID)
		}
		ids[s.ID] = true
	}

	hasEntry := false
	for _, s := range d.Steps {
		if len(s.Dependencies) == 0 {
			hasEntry = true
		}
		for _, dep := range s.Dependencies {
			if !ids[dep] {
				return NewError(KindValidation, "step %q depends on unknown step %q", s.ID, dep)
			}
			if dep == s.ID {
				return NewError(KindValidation, "step %q depends on itself", s.ID)
			}
		}
		if err := s.validateConfig(ids); err != nil {
			return err
		}
	}
	if !hasEntry {
		return NewError(KindValidation, "process %q has no entry step (every step has dependencies)", d.Name)
	}

	if cycle := d.findCycle(); cycle != "" {
		return NewError(KindValidation, "dependency cycle through step %q", cycle)
	}
	return nil
}

// validateConfig checks the kind-specific config of a step.
func (s *StepDefinition) validateConfig(ids map[string]bool) error {
	switch s.Kind {
	case StepAgentTask:
		if s.AgentTask == nil || s.AgentTask.AgentName == "" {
			return NewError(KindValidation, "agent_task step %q requires agent_name", s.ID)
		}
	case StepHumanApproval:
		if s.HumanApproval == nil || len(s.HumanApproval.Approvers) == 0 {
			return NewError(KindValidation, "human_approval step %q requires approvers", s.ID)
		}
	case StepGateway:
		if s.Gateway == nil || len(s.Gateway.Routes) == 0 {
			return NewError(KindValidation, "gateway step %q requires routes", s.ID)
		}
		switch s.Gateway.Type {
		case GatewayExclusive, GatewayParallel, GatewayInclusive:
		default:
			return NewError(KindValidation, "gateway step %q has unknown type %q", s.ID, s.Gateway.Type)
		}
		for _, r := range s.Gateway.Routes {
			if !ids[r.TargetStep] {
				return NewError(KindValidation, "gateway step %q routes to unknown step %q", s.ID, r.TargetStep)
			}
		}
	case StepTimer:
		if s.Timer == nil || (s.Timer.WaitDuration <= 0 && s.Timer.WaitUntil == "") {
			return NewError(KindValidation, "timer step %q requires wait_duration or wait_until", s.ID)
		}
		if s.Timer.WaitDuration > 0 && s.Timer.WaitUntil != "" {
			return NewError(KindValidation, "timer step %q sets both wait_duration and wait_until", s.ID)
		}
	case StepNotification:
		if s.Notification == nil || len(s.Notification.Channels) == 0 {
			return NewError(KindValidation, "notification step %q requires channels", s.ID)
		}
	case StepSubProcess:
		if s.SubProcess == nil || s.SubProcess.ProcessName == "" {
			return NewError(KindValidation, "sub_process step %q requires process_name", s.ID)
		}
	default:
		return NewError(KindValidation, "step %q has unknown kind %q", s.ID, s.Kind)
	}
	return nil
}

// findCycle returns the id of a step on a dependency cycle, or "".
// Iterative DFS with three-color marking.
func (d *ProcessDefinition) findCycle() string {
	const (
		white = 0
		grey  = 1
		black = 2
	)
	color := make(map[string]int, len(d.Steps))

	var visit func(id string) string
	visit = func(id string) string {
		color[id] = grey
		step := d.Step(id)
		for _, dep := range step.Dependencies {
			switch color[dep] {
			case grey:
				return dep
			case white:
				if c := visit(dep); c != "" {
					return c
				}
			}
		}
		color[id] = black
		return ""
	}

	for _, s := range d.Steps {
		if color[s.ID] == white {
			if c := visit(s.ID); c != "" {
				return c
			}
		}
	}
	return ""
}

// VersionKey is the uniqueness key for stored definitions.
func (d *ProcessDefinition) VersionKey() string {
	return fmt.Sprintf("%s@%s", d.Name, d.Version)
}
