// Package expr evaluates the {{...}} templating surface used by process
// definitions: string substitution for messages and mappings, and boolean
// predicates for step conditions and gateway routes.
//
// Expressions are small and parsed on every call. Evaluation is pure: no
// side effects, no I/O. Unknown identifiers evaluate to missing; semantic
// misses never return an error — only syntax errors do.
package expr

import (
	"strings"
	"time"

	"github.com/trinity-ai/trinity/pkg/models"
)

// Context is the evaluation context tree:
//
//	input.*                     execution input data
//	steps.{id}.output.*         completed step outputs
//	steps.{id}.status           step status string
//	output.*                    final execution output (terminal executions)
//	now                         current wall-clock time (RFC3339)
type Context struct {
	Input  map[string]any
	Steps  map[string]StepContext
	Output map[string]any
	Now    time.Time
}

// StepContext is the per-step slice of the context tree.
type StepContext struct {
	Output map[string]any
	Status string
}

// NewContext builds an evaluation context from an execution snapshot.
func NewContext(exec *models.ProcessExecution, now time.Time) *Context {
	steps := make(map[string]StepContext, len(exec.Steps))
	for id, se := range exec.Steps {
		steps[id] = StepContext{Output: se.Output, Status: string(se.Status)}
	}
	return &Context{Input: exec.InputData, Steps: steps, Output: exec.Output, Now: now}
}

// lookup resolves a dotted path against the context tree. The second return
// is false when the path is missing.
func (c *Context) lookup(path string) (any, bool) {
	parts := strings.Split(path, ".")
	if len(parts) == 0 {
		return nil, false
	}
	switch parts[0] {
	case "now":
		if len(parts) == 1 {
			return c.Now.UTC().Format(time.RFC3339), true
		}
		return nil, false
	case "input":
		return descend(c.Input, parts[1:])
	case "output":
		return descend(c.Output, parts[1:])
	case "steps":
		if len(parts) < 3 {
			return nil, false
		}
		sc, ok := c.Steps[parts[1]]
		if !ok {
			return nil, false
		}
		switch parts[2] {
		case "status":
			return sc.Status, true
		case "output":
			if len(parts) == 3 {
				return sc.Output, sc.Output != nil
			}
			return descend(sc.Output, parts[3:])
		}
		return nil, false
	}
	return nil, false
}

// descend walks nested maps by key.
func descend(m map[string]any, keys []string) (any, bool) {
	var cur any = m
	if m == nil {
		return nil, false
	}
	for _, k := range keys {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = node[k]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
