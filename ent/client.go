// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/trinity-ai/trinity/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/approval"
	"github.com/trinity-ai/trinity/ent/auditentry"
	"github.com/trinity-ai/trinity/ent/event"
	"github.com/trinity-ai/trinity/ent/processdefinition"
	"github.com/trinity-ai/trinity/ent/processexecution"
	"github.com/trinity-ai/trinity/ent/schedule"
	"github.com/trinity-ai/trinity/ent/stepoutput"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Approval is the client for interacting with the Approval builders.
	Approval *ApprovalClient
	// AuditEntry is the client for interacting with the AuditEntry builders.
	AuditEntry *AuditEntryClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// ProcessDefinition is the client for interacting with the ProcessDefinition builders.
	ProcessDefinition *ProcessDefinitionClient
	// ProcessExecution is the client for interacting with the ProcessExecution builders.
	ProcessExecution *ProcessExecutionClient
	// Schedule is the client for interacting with the Schedule builders.
	Schedule *ScheduleClient
	// StepOutput is the client for interacting with the StepOutput builders.
	StepOutput *StepOutputClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Approval = NewApprovalClient(c.config)
	c.AuditEntry = NewAuditEntryClient(c.config)
	c.Event = NewEventClient(c.config)
	c.ProcessDefinition = NewProcessDefinitionClient(c.config)
	c.ProcessExecution = NewProcessExecutionClient(c.config)
	c.Schedule = NewScheduleClient(c.config)
	c.StepOutput = NewStepOutputClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Approval:          NewApprovalClient(cfg),
		AuditEntry:        NewAuditEntryClient(cfg),
		Event:             NewEventClient(cfg),
		ProcessDefinition: NewProcessDefinitionClient(cfg),
		ProcessExecution:  NewProcessExecutionClient(cfg),
		Schedule:          NewScheduleClient(cfg),
		StepOutput:        NewStepOutputClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Approval:          NewApprovalClient(cfg),
		AuditEntry:        NewAuditEntryClient(cfg),
		Event:             NewEventClient(cfg),
		ProcessDefinition: NewProcessDefinitionClient(cfg),
		ProcessExecution:  NewProcessExecutionClient(cfg),
		Schedule:          NewScheduleClient(cfg),
		StepOutput:        NewStepOutputClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Approval.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Approval, c.AuditEntry, c.Event, c.ProcessDefinition, c.ProcessExecution,
		c.Schedule, c.StepOutput,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Approval, c.AuditEntry, c.Event, c.ProcessDefinition, c.ProcessExecution,
		c.Schedule, c.StepOutput,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApprovalMutation:
		return c.Approval.mutate(ctx, m)
	case *AuditEntryMutation:
		return c.AuditEntry.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *ProcessDefinitionMutation:
		return c.ProcessDefinition.mutate(ctx, m)
	case *ProcessExecutionMutation:
		return c.ProcessExecution.mutate(ctx, m)
	case *ScheduleMutation:
		return c.Schedule.mutate(ctx, m)
	case *StepOutputMutation:
		return c.StepOutput.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApprovalClient is a client for the Approval schema.
type ApprovalClient struct {
	config
}

// NewApprovalClient returns a client for the Approval from the given config.
func NewApprovalClient(c config) *ApprovalClient {
	return &ApprovalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approval.Hooks(f(g(h())))`.
func (c *ApprovalClient) Use(hooks ...Hook) {
	c.hooks.Approval = append(c.hooks.Approval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approval.Intercept(f(g(h())))`.
func (c *ApprovalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Approval = append(c.inters.Approval, interceptors...)
}

// Create returns a builder for creating a Approval entity.
func (c *ApprovalClient) Create() *ApprovalCreate {
	mutation := newApprovalMutation(c.config, OpCreate)
	return &ApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Approval entities.
func (c *ApprovalClient) CreateBulk(builders ...*ApprovalCreate) *ApprovalCreateBulk {
	return &ApprovalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalClient) MapCreateBulk(slice any, setFunc func(*ApprovalCreate, int)) *ApprovalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalCreateBulk{err: fmt.Errorf("calling to ApprovalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Approval.
func (c *ApprovalClient) Update() *ApprovalUpdate {
	mutation := newApprovalMutation(c.config, OpUpdate)
	return &ApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalClient) UpdateOne(_m *Approval) *ApprovalUpdateOne {
	mutation := newApprovalMutation(c.config, OpUpdateOne, withApproval(_m))
	return &ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalClient) UpdateOneID(id string) *ApprovalUpdateOne {
	mutation := newApprovalMutation(c.config, OpUpdateOne, withApprovalID(id))
	return &ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Approval.
func (c *ApprovalClient) Delete() *ApprovalDelete {
	mutation := newApprovalMutation(c.config, OpDelete)
	return &ApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalClient) DeleteOne(_m *Approval) *ApprovalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalClient) DeleteOneID(id string) *ApprovalDeleteOne {
	builder := c.Delete().Where(approval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalDeleteOne{builder}
}

// Query returns a query builder for Approval.
func (c *ApprovalClient) Query() *ApprovalQuery {
	return &ApprovalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApproval},
		inters: c.Interceptors(),
	}
}

// Get returns a Approval entity by its id.
func (c *ApprovalClient) Get(ctx context.Context, id string) (*Approval, error) {
	return c.Query().Where(approval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalClient) GetX(ctx context.Context, id string) *Approval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalClient) Hooks() []Hook {
	return c.hooks.Approval
}

// Interceptors returns the client interceptors.
func (c *ApprovalClient) Interceptors() []Interceptor {
	return c.inters.Approval
}

func (c *ApprovalClient) mutate(ctx context.Context, m *ApprovalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Approval mutation op: %q", m.Op())
	}
}

// AuditEntryClient is a client for the AuditEntry schema.
type AuditEntryClient struct {
	config
}

// NewAuditEntryClient returns a client for the AuditEntry from the given config.
func NewAuditEntryClient(c config) *AuditEntryClient {
	return &AuditEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditentry.Hooks(f(g(h())))`.
func (c *AuditEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditEntry = append(c.hooks.AuditEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditentry.Intercept(f(g(h())))`.
func (c *AuditEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEntry = append(c.inters.AuditEntry, interceptors...)
}

// Create returns a builder for creating a AuditEntry entity.
func (c *AuditEntryClient) Create() *AuditEntryCreate {
	mutation := newAuditEntryMutation(c.config, OpCreate)
	return &AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEntry entities.
func (c *AuditEntryClient) CreateBulk(builders ...*AuditEntryCreate) *AuditEntryCreateBulk {
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEntryClient) MapCreateBulk(slice any, setFunc func(*AuditEntryCreate, int)) *AuditEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEntryCreateBulk{err: fmt.Errorf("calling to AuditEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEntry.
func (c *AuditEntryClient) Update() *AuditEntryUpdate {
	mutation := newAuditEntryMutation(c.config, OpUpdate)
	return &AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEntryClient) UpdateOne(_m *AuditEntry) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntry(_m))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEntryClient) UpdateOneID(id string) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntryID(id))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEntry.
func (c *AuditEntryClient) Delete() *AuditEntryDelete {
	mutation := newAuditEntryMutation(c.config, OpDelete)
	return &AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEntryClient) DeleteOne(_m *AuditEntry) *AuditEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEntryClient) DeleteOneID(id string) *AuditEntryDeleteOne {
	builder := c.Delete().Where(auditentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEntryDeleteOne{builder}
}

// Query returns a query builder for AuditEntry.
func (c *AuditEntryClient) Query() *AuditEntryQuery {
	return &AuditEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEntry entity by its id.
func (c *AuditEntryClient) Get(ctx context.Context, id string) (*AuditEntry, error) {
	return c.Query().Where(auditentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEntryClient) GetX(ctx context.Context, id string) *AuditEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEntryClient) Hooks() []Hook {
	return c.hooks.AuditEntry
}

// Interceptors returns the client interceptors.
func (c *AuditEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditEntry
}

func (c *AuditEntryClient) mutate(ctx context.Context, m *AuditEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEntry mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// ProcessDefinitionClient is a client for the ProcessDefinition schema.
type ProcessDefinitionClient struct {
	config
}

// NewProcessDefinitionClient returns a client for the ProcessDefinition from the given config.
func NewProcessDefinitionClient(c config) *ProcessDefinitionClient {
	return &ProcessDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processdefinition.Hooks(f(g(h())))`.
func (c *ProcessDefinitionClient) Use(hooks ...Hook) {
	c.hooks.ProcessDefinition = append(c.hooks.ProcessDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processdefinition.Intercept(f(g(h())))`.
func (c *ProcessDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessDefinition = append(c.inters.ProcessDefinition, interceptors...)
}

// Create returns a builder for creating a ProcessDefinition entity.
func (c *ProcessDefinitionClient) Create() *ProcessDefinitionCreate {
	mutation := newProcessDefinitionMutation(c.config, OpCreate)
	return &ProcessDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessDefinition entities.
func (c *ProcessDefinitionClient) CreateBulk(builders ...*ProcessDefinitionCreate) *ProcessDefinitionCreateBulk {
	return &ProcessDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessDefinitionClient) MapCreateBulk(slice any, setFunc func(*ProcessDefinitionCreate, int)) *ProcessDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessDefinitionCreateBulk{err: fmt.Errorf("calling to ProcessDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessDefinition.
func (c *ProcessDefinitionClient) Update() *ProcessDefinitionUpdate {
	mutation := newProcessDefinitionMutation(c.config, OpUpdate)
	return &ProcessDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessDefinitionClient) UpdateOne(_m *ProcessDefinition) *ProcessDefinitionUpdateOne {
	mutation := newProcessDefinitionMutation(c.config, OpUpdateOne, withProcessDefinition(_m))
	return &ProcessDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessDefinitionClient) UpdateOneID(id string) *ProcessDefinitionUpdateOne {
	mutation := newProcessDefinitionMutation(c.config, OpUpdateOne, withProcessDefinitionID(id))
	return &ProcessDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessDefinition.
func (c *ProcessDefinitionClient) Delete() *ProcessDefinitionDelete {
	mutation := newProcessDefinitionMutation(c.config, OpDelete)
	return &ProcessDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessDefinitionClient) DeleteOne(_m *ProcessDefinition) *ProcessDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessDefinitionClient) DeleteOneID(id string) *ProcessDefinitionDeleteOne {
	builder := c.Delete().Where(processdefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessDefinitionDeleteOne{builder}
}

// Query returns a query builder for ProcessDefinition.
func (c *ProcessDefinitionClient) Query() *ProcessDefinitionQuery {
	return &ProcessDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessDefinition entity by its id.
func (c *ProcessDefinitionClient) Get(ctx context.Context, id string) (*ProcessDefinition, error) {
	return c.Query().Where(processdefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessDefinitionClient) GetX(ctx context.Context, id string) *ProcessDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessDefinitionClient) Hooks() []Hook {
	return c.hooks.ProcessDefinition
}

// Interceptors returns the client interceptors.
func (c *ProcessDefinitionClient) Interceptors() []Interceptor {
	return c.inters.ProcessDefinition
}

func (c *ProcessDefinitionClient) mutate(ctx context.Context, m *ProcessDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessDefinition mutation op: %q", m.Op())
	}
}

// ProcessExecutionClient is a client for the ProcessExecution schema.
type ProcessExecutionClient struct {
	config
}

// NewProcessExecutionClient returns a client for the ProcessExecution from the given config.
func NewProcessExecutionClient(c config) *ProcessExecutionClient {
	return &ProcessExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processexecution.Hooks(f(g(h())))`.
func (c *ProcessExecutionClient) Use(hooks ...Hook) {
	c.hooks.ProcessExecution = append(c.hooks.ProcessExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processexecution.Intercept(f(g(h())))`.
func (c *ProcessExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessExecution = append(c.inters.ProcessExecution, interceptors...)
}

// Create returns a builder for creating a ProcessExecution entity.
func (c *ProcessExecutionClient) Create() *ProcessExecutionCreate {
	mutation := newProcessExecutionMutation(c.config, OpCreate)
	return &ProcessExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessExecution entities.
func (c *ProcessExecutionClient) CreateBulk(builders ...*ProcessExecutionCreate) *ProcessExecutionCreateBulk {
	return &ProcessExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessExecutionClient) MapCreateBulk(slice any, setFunc func(*ProcessExecutionCreate, int)) *ProcessExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessExecutionCreateBulk{err: fmt.Errorf("calling to ProcessExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessExecution.
func (c *ProcessExecutionClient) Update() *ProcessExecutionUpdate {
	mutation := newProcessExecutionMutation(c.config, OpUpdate)
	return &ProcessExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessExecutionClient) UpdateOne(_m *ProcessExecution) *ProcessExecutionUpdateOne {
	mutation := newProcessExecutionMutation(c.config, OpUpdateOne, withProcessExecution(_m))
	return &ProcessExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessExecutionClient) UpdateOneID(id string) *ProcessExecutionUpdateOne {
	mutation := newProcessExecutionMutation(c.config, OpUpdateOne, withProcessExecutionID(id))
	return &ProcessExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessExecution.
func (c *ProcessExecutionClient) Delete() *ProcessExecutionDelete {
	mutation := newProcessExecutionMutation(c.config, OpDelete)
	return &ProcessExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessExecutionClient) DeleteOne(_m *ProcessExecution) *ProcessExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessExecutionClient) DeleteOneID(id string) *ProcessExecutionDeleteOne {
	builder := c.Delete().Where(processexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessExecutionDeleteOne{builder}
}

// Query returns a query builder for ProcessExecution.
func (c *ProcessExecutionClient) Query() *ProcessExecutionQuery {
	return &ProcessExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessExecution entity by its id.
func (c *ProcessExecutionClient) Get(ctx context.Context, id string) (*ProcessExecution, error) {
	return c.Query().Where(processexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessExecutionClient) GetX(ctx context.Context, id string) *ProcessExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessExecutionClient) Hooks() []Hook {
	return c.hooks.ProcessExecution
}

// Interceptors returns the client interceptors.
func (c *ProcessExecutionClient) Interceptors() []Interceptor {
	return c.inters.ProcessExecution
}

func (c *ProcessExecutionClient) mutate(ctx context.Context, m *ProcessExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessExecution mutation op: %q", m.Op())
	}
}

// ScheduleClient is a client for the Schedule schema.
type ScheduleClient struct {
	config
}

// NewScheduleClient returns a client for the Schedule from the given config.
func NewScheduleClient(c config) *ScheduleClient {
	return &ScheduleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schedule.Hooks(f(g(h())))`.
func (c *ScheduleClient) Use(hooks ...Hook) {
	c.hooks.Schedule = append(c.hooks.Schedule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schedule.Intercept(f(g(h())))`.
func (c *ScheduleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Schedule = append(c.inters.Schedule, interceptors...)
}

// Create returns a builder for creating a Schedule entity.
func (c *ScheduleClient) Create() *ScheduleCreate {
	mutation := newScheduleMutation(c.config, OpCreate)
	return &ScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Schedule entities.
func (c *ScheduleClient) CreateBulk(builders ...*ScheduleCreate) *ScheduleCreateBulk {
	return &ScheduleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduleClient) MapCreateBulk(slice any, setFunc func(*ScheduleCreate, int)) *ScheduleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduleCreateBulk{err: fmt.Errorf("calling to ScheduleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Schedule.
func (c *ScheduleClient) Update() *ScheduleUpdate {
	mutation := newScheduleMutation(c.config, OpUpdate)
	return &ScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduleClient) UpdateOne(_m *Schedule) *ScheduleUpdateOne {
	mutation := newScheduleMutation(c.config, OpUpdateOne, withSchedule(_m))
	return &ScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduleClient) UpdateOneID(id string) *ScheduleUpdateOne {
	mutation := newScheduleMutation(c.config, OpUpdateOne, withScheduleID(id))
	return &ScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Schedule.
func (c *ScheduleClient) Delete() *ScheduleDelete {
	mutation := newScheduleMutation(c.config, OpDelete)
	return &ScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduleClient) DeleteOne(_m *Schedule) *ScheduleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduleClient) DeleteOneID(id string) *ScheduleDeleteOne {
	builder := c.Delete().Where(schedule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduleDeleteOne{builder}
}

// Query returns a query builder for Schedule.
func (c *ScheduleClient) Query() *ScheduleQuery {
	return &ScheduleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSchedule},
		inters: c.Interceptors(),
	}
}

// Get returns a Schedule entity by its id.
func (c *ScheduleClient) Get(ctx context.Context, id string) (*Schedule, error) {
	return c.Query().Where(schedule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduleClient) GetX(ctx context.Context, id string) *Schedule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduleClient) Hooks() []Hook {
	return c.hooks.Schedule
}

// Interceptors returns the client interceptors.
func (c *ScheduleClient) Interceptors() []Interceptor {
	return c.inters.Schedule
}

func (c *ScheduleClient) mutate(ctx context.Context, m *ScheduleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Schedule mutation op: %q", m.Op())
	}
}

// StepOutputClient is a client for the StepOutput schema.
type StepOutputClient struct {
	config
}

// NewStepOutputClient returns a client for the StepOutput from the given config.
func NewStepOutputClient(c config) *StepOutputClient {
	return &StepOutputClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepoutput.Hooks(f(g(h())))`.
func (c *StepOutputClient) Use(hooks ...Hook) {
	c.hooks.StepOutput = append(c.hooks.StepOutput, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepoutput.Intercept(f(g(h())))`.
func (c *StepOutputClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepOutput = append(c.inters.StepOutput, interceptors...)
}

// Create returns a builder for creating a StepOutput entity.
func (c *StepOutputClient) Create() *StepOutputCreate {
	mutation := newStepOutputMutation(c.config, OpCreate)
	return &StepOutputCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepOutput entities.
func (c *StepOutputClient) CreateBulk(builders ...*StepOutputCreate) *StepOutputCreateBulk {
	return &StepOutputCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepOutputClient) MapCreateBulk(slice any, setFunc func(*StepOutputCreate, int)) *StepOutputCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepOutputCreateBulk{err: fmt.Errorf("calling to StepOutputClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepOutputCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepOutputCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepOutput.
func (c *StepOutputClient) Update() *StepOutputUpdate {
	mutation := newStepOutputMutation(c.config, OpUpdate)
	return &StepOutputUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepOutputClient) UpdateOne(_m *StepOutput) *StepOutputUpdateOne {
	mutation := newStepOutputMutation(c.config, OpUpdateOne, withStepOutput(_m))
	return &StepOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepOutputClient) UpdateOneID(id int) *StepOutputUpdateOne {
	mutation := newStepOutputMutation(c.config, OpUpdateOne, withStepOutputID(id))
	return &StepOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepOutput.
func (c *StepOutputClient) Delete() *StepOutputDelete {
	mutation := newStepOutputMutation(c.config, OpDelete)
	return &StepOutputDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepOutputClient) DeleteOne(_m *StepOutput) *StepOutputDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepOutputClient) DeleteOneID(id int) *StepOutputDeleteOne {
	builder := c.Delete().Where(stepoutput.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepOutputDeleteOne{builder}
}

// Query returns a query builder for StepOutput.
func (c *StepOutputClient) Query() *StepOutputQuery {
	return &StepOutputQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepOutput},
		inters: c.Interceptors(),
	}
}

// Get returns a StepOutput entity by its id.
func (c *StepOutputClient) Get(ctx context.Context, id int) (*StepOutput, error) {
	return c.Query().Where(stepoutput.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepOutputClient) GetX(ctx context.Context, id int) *StepOutput {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StepOutputClient) Hooks() []Hook {
	return c.hooks.StepOutput
}

// Interceptors returns the client interceptors.
func (c *StepOutputClient) Interceptors() []Interceptor {
	return c.inters.StepOutput
}

func (c *StepOutputClient) mutate(ctx context.Context, m *StepOutputMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepOutputCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepOutputUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepOutputDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepOutput mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Approval, AuditEntry, Event, ProcessDefinition, ProcessExecution, Schedule,
		StepOutput []ent.Hook
	}
	inters struct {
		Approval, AuditEntry, Event, ProcessDefinition, ProcessExecution, Schedule,
		StepOutput []ent.Interceptor
	}
)
