package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

func resolverDef(steps ...models.StepDefinition) *models.ProcessDefinition {
	return &models.ProcessDefinition{
		ID:      "def-1",
		Name:    "resolver-test",
		Version: "1.0.0",
		Status:  models.DefinitionPublished,
		Steps:   steps,
	}
}

func agentStep(id string, deps ...string) models.StepDefinition {
	return models.StepDefinition{
		ID:           id,
		Kind:         models.StepAgentTask,
		Dependencies: deps,
		AgentTask:    &models.AgentTaskConfig{AgentName: "worker", MessageTemplate: "go"},
	}
}

func newResolverExec(t *testing.T, def *models.ProcessDefinition) *models.ProcessExecution {
	t.Helper()
	exec := models.NewExecution("exec-1", def, nil, models.TriggeredBy{Kind: models.TriggerManual, Actor: "alice"}, time.Now())
	require.NoError(t, exec.Start(time.Now()))
	exec.DrainEvents()
	return exec
}

func TestResolveReadySet(t *testing.T) {
	now := time.Now()

	t.Run("entry steps are ready", func(t *testing.T) {
		def := resolverDef(agentStep("a"), agentStep("b"), agentStep("c", "a"))
		exec := newResolverExec(t, def)

		res := resolveReadySet(def, exec, now)
		assert.Equal(t, []string{"a", "b"}, res.ready)
		assert.Empty(t, res.skips)
	})

	t.Run("dependent waits for predecessor", func(t *testing.T) {
		def := resolverDef(agentStep("a"), agentStep("b", "a"))
		exec := newResolverExec(t, def)
		require.NoError(t, exec.MarkStepRunning("a", now))

		res := resolveReadySet(def, exec, now)
		assert.Empty(t, res.ready)
		assert.Empty(t, res.skips)
	})

	t.Run("dependent released when predecessor completes", func(t *testing.T) {
		def := resolverDef(agentStep("a"), agentStep("b", "a"))
		exec := newResolverExec(t, def)
		require.NoError(t, exec.MarkStepRunning("a", now))
		require.NoError(t, exec.CompleteStep("a", map[string]any{"x": 1}, 0, now))

		res := resolveReadySet(def, exec, now)
		assert.Equal(t, []string{"b"}, res.ready)
	})

	t.Run("dependent of failed step is skipped", func(t *testing.T) {
		def := resolverDef(agentStep("a"), agentStep("b", "a"))
		exec := newResolverExec(t, def)
		require.NoError(t, exec.MarkStepRunning("a", now))
		require.NoError(t, exec.FailStep("a", models.KindTimeout, "boom", now))

		res := resolveReadySet(def, exec, now)
		assert.Empty(t, res.ready)
		require.Len(t, res.skips, 1)
		assert.Equal(t, "b", res.skips[0].stepID)
		assert.Equal(t, models.SkipUpstreamFailed, res.skips[0].reason)
	})

	t.Run("skipped predecessor releases dependent", func(t *testing.T) {
		def := resolverDef(agentStep("a"), agentStep("b", "a"))
		exec := newResolverExec(t, def)
		require.NoError(t, exec.SkipStep("a", models.SkipConditionFalse, now))

		res := resolveReadySet(def, exec, now)
		assert.Equal(t, []string{"b"}, res.ready)
	})

	t.Run("condition false schedules skip", func(t *testing.T) {
		cond := agentStep("b", "a")
		cond.Condition = `steps.a.output.flag == true`
		def := resolverDef(agentStep("a"), cond)
		exec := newResolverExec(t, def)
		require.NoError(t, exec.MarkStepRunning("a", now))
		require.NoError(t, exec.CompleteStep("a", map[string]any{"flag": false}, 0, now))

		res := resolveReadySet(def, exec, now)
		assert.Empty(t, res.ready)
		require.Len(t, res.skips, 1)
		assert.Equal(t, models.SkipConditionFalse, res.skips[0].reason)
	})

	t.Run("condition true releases step", func(t *testing.T) {
		cond := agentStep("b", "a")
		cond.Condition = `steps.a.output.flag == true`
		def := resolverDef(agentStep("a"), cond)
		exec := newResolverExec(t, def)
		require.NoError(t, exec.MarkStepRunning("a", now))
		require.NoError(t, exec.CompleteStep("a", map[string]any{"flag": true}, 0, now))

		res := resolveReadySet(def, exec, now)
		assert.Equal(t, []string{"b"}, res.ready)
	})

	t.Run("gateway releases only selected targets", func(t *testing.T) {
		gw := models.StepDefinition{
			ID:           "route",
			Kind:         models.StepGateway,
			Dependencies: []string{"a"},
			Gateway: &models.GatewayConfig{
				Type: models.GatewayExclusive,
				Routes: []models.GatewayRoute{
					{Condition: `steps.a.output.sev == "critical"`, TargetStep: "page"},
					{TargetStep: "log"},
				},
			},
		}
		def := resolverDef(agentStep("a"), gw, agentStep("page", "route"), agentStep("log", "route"))
		exec := newResolverExec(t, def)
		require.NoError(t, exec.MarkStepRunning("a", now))
		require.NoError(t, exec.CompleteStep("a", map[string]any{"sev": "warning"}, 0, now))
		require.NoError(t, exec.MarkStepRunning("route", now))
		require.NoError(t, exec.CompleteGateway("route", []string{"log"}, now))

		res := resolveReadySet(def, exec, now)
		assert.Equal(t, []string{"log"}, res.ready)
		require.Len(t, res.skips, 1)
		assert.Equal(t, "page", res.skips[0].stepID)
		assert.Equal(t, models.SkipGatewayNotSelected, res.skips[0].reason)
	})

	t.Run("non-target dependent of gateway is released unconditionally", func(t *testing.T) {
		gw := models.StepDefinition{
			ID:   "route",
			Kind: models.StepGateway,
			Gateway: &models.GatewayConfig{
				Type:   models.GatewayExclusive,
				Routes: []models.GatewayRoute{{TargetStep: "page"}},
			},
		}
		def := resolverDef(gw, agentStep("page", "route"), agentStep("after", "route"))
		exec := newResolverExec(t, def)
		require.NoError(t, exec.MarkStepRunning("route", now))
		require.NoError(t, exec.CompleteGateway("route", []string{"page"}, now))

		res := resolveReadySet(def, exec, now)
		assert.Equal(t, []string{"page", "after"}, res.ready)
	})

	t.Run("retrying step re-enters after backoff elapses", func(t *testing.T) {
		def := resolverDef(agentStep("a"))
		exec := newResolverExec(t, def)
		require.NoError(t, exec.MarkStepRunning("a", now))
		require.NoError(t, exec.RetryStep("a", models.KindTimeout, "slow", now.Add(-time.Second), true, now))

		res := resolveReadySet(def, exec, now)
		assert.Equal(t, []string{"a"}, res.ready)
	})

	t.Run("retrying step waits for backoff", func(t *testing.T) {
		def := resolverDef(agentStep("a"))
		exec := newResolverExec(t, def)
		require.NoError(t, exec.MarkStepRunning("a", now))
		require.NoError(t, exec.RetryStep("a", models.KindTimeout, "slow", now.Add(time.Minute), true, now))

		res := resolveReadySet(def, exec, now)
		assert.Empty(t, res.ready)
	})

	t.Run("running steps are not redispatched", func(t *testing.T) {
		def := resolverDef(agentStep("a"))
		exec := newResolverExec(t, def)
		require.NoError(t, exec.MarkStepRunning("a", now))

		res := resolveReadySet(def, exec, now)
		assert.Empty(t, res.ready)
		assert.Empty(t, res.skips)
	})
}
