package models

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the platform can surface. The set is closed:
// handlers, the retry policy, and the HTTP error mapper all switch over it.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindAuthorizationDenied Kind = "authorization_denied"
	KindNotFound            Kind = "not_found"
	KindStateConflict       Kind = "state_conflict"
	KindExpressionError     Kind = "expression_error"
	KindTimeout             Kind = "timeout"
	KindRateLimit           Kind = "rate_limit"
	KindAgentUnavailable    Kind = "agent_unavailable"
	KindQueueFull           Kind = "queue_full"
	KindLimitExceeded       Kind = "limit_exceeded"
	KindBudgetExceeded      Kind = "budget_exceeded"
	KindNoMatchingRoute     Kind = "no_matching_route"
	KindApprovalRejected    Kind = "approval_rejected"
	KindCancelled           Kind = "cancelled"
	KindInternalError       Kind = "internal_error"
)

// Retryable reports whether a failure of this kind is retryable by default
// (before a step's retry policy narrows or widens the set).
func (k Kind) Retryable() bool {
	switch k {
	case KindTimeout, KindRateLimit, KindAgentUnavailable, KindQueueFull:
		return true
	default:
		return false
	}
}

// Fatal reports whether a failure of this kind aborts the execution
// regardless of retry policy.
func (k Kind) Fatal() bool {
	switch k {
	case KindBudgetExceeded, KindNoMatchingRoute, KindCancelled:
		return true
	default:
		return false
	}
}

// DomainError is the error type carried across the engine, services, and API
// layers. Details is an opaque map surfaced in the HTTP error envelope and
// the audit detail record; it must never contain execution-context secrets.
type DomainError struct {
	Kind    Kind
	Message string
	Details map[string]any
	cause   error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DomainError) Unwrap() error { return e.cause }

// NewError creates a DomainError of the given kind.
func NewError(kind Kind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates a DomainError wrapping a cause.
func WrapError(kind Kind, cause error, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// WithDetails attaches a detail map and returns the error for chaining.
func (e *DomainError) WithDetails(details map[string]any) *DomainError {
	e.Details = details
	return e
}

// KindOf extracts the Kind from an error chain. Unclassified errors map to
// KindInternalError.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternalError
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ParseKind maps a wire string to a Kind. Unknown strings map to
// KindInternalError so foreign classifications never widen the taxonomy.
func ParseKind(s string) Kind {
	switch k := Kind(s); k {
	case KindValidation, KindAuthorizationDenied, KindNotFound, KindStateConflict,
		KindExpressionError, KindTimeout, KindRateLimit, KindAgentUnavailable,
		KindQueueFull, KindLimitExceeded, KindBudgetExceeded, KindNoMatchingRoute,
		KindApprovalRejected, KindCancelled, KindInternalError:
		return k
	}
	return KindInternalError
}
