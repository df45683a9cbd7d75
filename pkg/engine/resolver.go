package engine

import (
	"time"

	"github.com/trinity-ai/trinity/pkg/expr"
	"github.com/trinity-ai/trinity/pkg/models"
)

// skip pairs a step with the reason it should be marked skipped.
type skip struct {
	stepID string
	reason string
}

// resolution is the outcome of a ready-set computation.
type resolution struct {
	// ready lists steps to dispatch, in definition order.
	ready []string
	// skips lists steps to mark skipped before dispatching.
	skips []skip
}

// resolveReadySet computes which pending steps can run now. A step is ready
// when every predecessor is completed or skipped and its condition (if any)
// holds; condition-false and deselected gateway targets are scheduled for
// skipping instead. Deterministic: definition order.
func resolveReadySet(def *models.ProcessDefinition, exec *models.ProcessExecution, now time.Time) resolution {
	var res resolution
	ctx := expr.NewContext(exec, now)

	for _, sd := range def.Steps {
		se := exec.Step(sd.ID)
		if se == nil {
			continue
		}
		switch se.Status {
		case models.StepPending:
		case models.StepRetrying:
			// Retrying steps re-enter the ready set once their backoff
			// delay has elapsed; dependencies were satisfied on the first
			// dispatch.
			if se.NotBefore == nil || now.Before(*se.NotBefore) {
				continue
			}
			res.ready = append(res.ready, sd.ID)
			continue
		default:
			continue
		}

		if reason, blocked := skipReason(def, exec, &sd); blocked {
			if reason != "" {
				res.skips = append(res.skips, skip{stepID: sd.ID, reason: reason})
			}
			continue
		}

		if sd.Condition != "" {
			ok, err := expr.EvalPredicate(sd.Condition, ctx)
			if err != nil || !ok {
				// Unparseable conditions are caught at publish; a runtime
				// error here degrades to condition-false.
				res.skips = append(res.skips, skip{stepID: sd.ID, reason: models.SkipConditionFalse})
				continue
			}
		}

		res.ready = append(res.ready, sd.ID)
	}
	return res
}

// skipReason decides whether a pending step is blocked. Returns ("", true)
// when it must keep waiting, (reason, true) when it should be skipped, and
// ("", false) when its predecessors are satisfied.
func skipReason(def *models.ProcessDefinition, exec *models.ProcessExecution, sd *models.StepDefinition) (string, bool) {
	for _, depID := range sd.Dependencies {
		dep := exec.Step(depID)
		if dep == nil {
			return "", true
		}
		switch dep.Status {
		case models.StepCompleted:
			// A completed gateway only releases its selected targets.
			depDef := def.Step(depID)
			if depDef != nil && depDef.Kind == models.StepGateway && !routeSelected(dep.SelectedRoutes, sd.ID) {
				if gatewayTargets(depDef, sd.ID) {
					return models.SkipGatewayNotSelected, true
				}
			}
		case models.StepSkipped:
		case models.StepFailed:
			return models.SkipUpstreamFailed, true
		default:
			return "", true
		}
	}
	return "", false
}

// routeSelected reports whether stepID is among the gateway's selected routes.
func routeSelected(selected []string, stepID string) bool {
	for _, s := range selected {
		if s == stepID {
			return true
		}
	}
	return false
}

// gatewayTargets reports whether stepID is a declared route target of the
// gateway. Non-target dependents of a gateway are released unconditionally.
func gatewayTargets(gw *models.StepDefinition, stepID string) bool {
	if gw.Gateway == nil {
		return false
	}
	for _, r := range gw.Gateway.Routes {
		if r.TargetStep == stepID {
			return true
		}
	}
	return false
}
