package engine

import "github.com/trinity-ai/trinity/pkg/models"

// outcomeKind tags the variants of a dispatch outcome.
type outcomeKind int

const (
	outcomeCompleted outcomeKind = iota
	outcomeFailed
	outcomeSuspended
	outcomeRouted
)

// Suspension reasons recorded on suspended outcomes.
const (
	suspendApproval = "approval_required"
	suspendTimer    = "timer"
	suspendChild    = "child_running"
	suspendQueued   = "queued"
)

// Outcome is the tagged result of dispatching a step handler.
type Outcome struct {
	kind    outcomeKind
	output  map[string]any
	cost    float64
	err     error
	reason  string
	targets []string
}

func completed(output map[string]any, cost float64) Outcome {
	return Outcome{kind: outcomeCompleted, output: output, cost: cost}
}

func failed(err error) Outcome {
	return Outcome{kind: outcomeFailed, err: err}
}

func suspended(reason string) Outcome {
	return Outcome{kind: outcomeSuspended, reason: reason}
}

func routed(targets []string) Outcome {
	return Outcome{kind: outcomeRouted, targets: targets}
}

// failKind is the error kind of a failed outcome.
func (o Outcome) failKind() models.Kind {
	return models.KindOf(o.err)
}
