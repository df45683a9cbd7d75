package expr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

func testContext() *Context {
	return &Context{
		Input: map[string]any{
			"title":  "Q3 report",
			"urgent": true,
			"amount": float64(1500),
			"author": map[string]any{"name": "dana"},
		},
		Steps: map[string]StepContext{
			"review": {
				Status: "completed",
				Output: map[string]any{
					"decision": "approved",
					"score":    float64(87),
					"empty":    nil,
				},
			},
			"draft": {Status: "running"},
		},
		Now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"plain text", "no references here", "no references here"},
		{"input string", "Title: {{input.title}}", "Title: Q3 report"},
		{"nested input", "By {{input.author.name}}", "By dana"},
		{"step output", "{{steps.review.output.decision}}", "approved"},
		{"step status", "{{steps.review.status}}", "completed"},
		{"number renders without exponent", "{{input.amount}}", "1500"},
		{"bool renders literally", "{{input.urgent}}", "true"},
		{"missing path renders empty", "x{{input.nope}}y", "xy"},
		{"null renders empty", "x{{steps.review.output.empty}}y", "xy"},
		{"default pipe on missing", `{{input.nope | default:"n/a"}}`, "n/a"},
		{"default pipe ignored when present", `{{input.title | default:"n/a"}}`, "Q3 report"},
		{"now", "{{now}}", "2026-03-01T12:00:00Z"},
		{"multiple references", "{{input.title}}: {{steps.review.output.decision}}", "Q3 report: approved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(tt.template, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRender_SyntaxErrors(t *testing.T) {
	ctx := testContext()

	_, err := Render("broken {{input.title", ctx)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindExpressionError))

	_, err = Render(`{{input.title | upper}}`, ctx)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindExpressionError))

	_, err = Render(`{{input.title | default:bare}}`, ctx)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindExpressionError))
}

func TestEvalPredicate(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name     string
		expr     string
		expected bool
	}{
		{"string equality", "{{steps.review.output.decision}} == 'approved'", true},
		{"string inequality", "{{steps.review.output.decision}} != 'rejected'", true},
		{"numeric greater", "{{steps.review.output.score}} > 80", true},
		{"numeric less false", "{{steps.review.output.score}} < 50", false},
		{"numeric equality", "{{input.amount}} == 1500", true},
		{"bare bool reference", "{{input.urgent}}", true},
		{"negation", "!{{input.urgent}}", false},
		{"and", "{{input.urgent}} && {{steps.review.output.score}} >= 87", true},
		{"or short circuit", "{{input.nope}} == 'x' || {{input.urgent}}", true},
		{"parentheses", "({{input.amount}} > 1000 && {{input.urgent}}) || false", true},
		{"status comparison", "{{steps.draft.status}} == 'running'", true},
		{"bool literal compare", "{{input.urgent}} == true", true},
		{"missing compared is false", "{{input.nope}} == 'anything'", false},
		{"missing not-equal also false", "{{input.nope}} != 'anything'", false},
		{"missing ordered is false", "{{input.nope}} > 0", false},
		{"missing equals null", "{{input.nope}} == null", true},
		{"null output equals null", "{{steps.review.output.empty}} == null", true},
		{"present not null", "{{input.title}} != null", true},
		{"bare path shorthand", "steps.review.status == 'completed'", true},
		{"literal true", "true", true},
		{"literal false", "false", false},
		{"numeric string coerces", "{{steps.review.output.score}} == '87'", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvalPredicate(tt.expr, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got, tt.expr)
		})
	}
}

func TestEvalPredicate_SyntaxErrors(t *testing.T) {
	ctx := testContext()

	for _, expr := range []string{
		"",
		"{{input.title}} ==",
		"== 'x'",
		"({{input.urgent}}",
		"{{input.title}} == 'unterminated",
		"{{input.title}} @ 'x'",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := EvalPredicate(expr, ctx)
			require.Error(t, err)
			assert.True(t, models.IsKind(err, models.KindExpressionError), "expected expression_error for %q", expr)
		})
	}
}

func TestNewContext(t *testing.T) {
	now := time.Now().UTC()
	exec := &models.ProcessExecution{
		ID:        "exec-1",
		InputData: map[string]any{"k": "v"},
		Steps: map[string]*models.StepExecution{
			"a": {StepID: "a", Status: models.StepCompleted, Output: map[string]any{"r": float64(1)}},
		},
	}

	ctx := NewContext(exec, now)

	v, ok := ctx.lookup("input.k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	v, ok = ctx.lookup("steps.a.status")
	require.True(t, ok)
	assert.Equal(t, "completed", v)

	v, ok = ctx.lookup("steps.a.output.r")
	require.True(t, ok)
	assert.Equal(t, float64(1), v)

	_, ok = ctx.lookup("steps.missing.output.r")
	assert.False(t, ok)
}
