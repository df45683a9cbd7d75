package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorError(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name     string
		err      *ValidationError
		contains []string
	}{
		{
			name: "full error",
			err:  NewValidationError("agent", "triage-agent", "endpoint", baseErr),
			contains: []string{
				"agent",
				"triage-agent",
				"endpoint",
				"base error",
			},
		},
		{
			name: "error without field",
			err:  NewValidationError("queue", "queue", "", errors.New("invalid overflow")),
			contains: []string{
				"queue",
				"invalid overflow",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := NewValidationError("agent", "triage-agent", "endpoint", ErrMissingRequiredField)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestLoadError(t *testing.T) {
	err := NewLoadError("trinity.yaml", ErrConfigNotFound)
	assert.Contains(t, err.Error(), "trinity.yaml")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
