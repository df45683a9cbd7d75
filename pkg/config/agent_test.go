package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentRegistry(t *testing.T) {
	registry := NewAgentRegistry(map[string]*AgentConfig{
		"triage-agent":   {Endpoint: "http://triage:9000", Description: "Incident triage"},
		"research-agent": {Endpoint: "http://research:9000"},
	})

	t.Run("get existing", func(t *testing.T) {
		agent, err := registry.Get("triage-agent")
		require.NoError(t, err)
		assert.Equal(t, "http://triage:9000", agent.Endpoint)
		assert.Equal(t, "Incident triage", agent.Description)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := registry.Get("unknown-agent")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("has and len", func(t *testing.T) {
		assert.True(t, registry.Has("research-agent"))
		assert.False(t, registry.Has("unknown-agent"))
		assert.Equal(t, 2, registry.Len())
	})

	t.Run("names sorted", func(t *testing.T) {
		assert.Equal(t, []string{"research-agent", "triage-agent"}, registry.Names())
	})

	t.Run("endpoints map", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"triage-agent":   "http://triage:9000",
			"research-agent": "http://research:9000",
		}, registry.Endpoints())
	})

	t.Run("get all returns copy", func(t *testing.T) {
		all := registry.GetAll()
		delete(all, "triage-agent")
		assert.True(t, registry.Has("triage-agent"))
	})
}
