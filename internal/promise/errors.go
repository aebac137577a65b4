// Package promise implements the declarative value types of the promise
// network: Behavior, Agent, and SuperAgent. It has no knowledge of the
// Tracker or Resolver that consume these values.
package promise

import (
	"errors"
	"fmt"
)

// ErrUnknownAgent is returned by queries that require an agent or working
// agent to already exist.
var ErrUnknownAgent = errors.New("unknown agent")

// ErrReductionCycle is returned by Agent.Reduce when a provide's
// conditions cannot be rewritten to an internally-satisfied form within a
// bounded number of passes.
var ErrReductionCycle = errors.New("reduction cycle")

// ErrSchema is returned when a declaration has an unrecognized kind,
// unknown fields, or a missing required field.
var ErrSchema = errors.New("schema error")

// UnknownAgentError wraps ErrUnknownAgent with the offending name.
type UnknownAgentError struct {
	Name string
}

func (e *UnknownAgentError) Error() string {
	return fmt.Sprintf("unknown agent %q", e.Name)
}

func (e *UnknownAgentError) Unwrap() error { return ErrUnknownAgent }

// NewUnknownAgentError builds an UnknownAgentError for name.
func NewUnknownAgentError(name string) error {
	return &UnknownAgentError{Name: name}
}

// ReductionCycleError wraps ErrReductionCycle with the agent and provide
// that failed to converge.
type ReductionCycleError struct {
	AgentName   string
	ProvideName string
}

func (e *ReductionCycleError) Error() string {
	return fmt.Sprintf("reduction cycle on agent %q, provide %q", e.AgentName, e.ProvideName)
}

func (e *ReductionCycleError) Unwrap() error { return ErrReductionCycle }

// SchemaError wraps ErrSchema with a human-readable reason.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: %s", e.Reason)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// NewSchemaError builds a SchemaError with the given reason.
func NewSchemaError(reason string) error {
	return &SchemaError{Reason: reason}
}

// ParseError normalizes a collaborator's surface-syntax error (e.g. a
// yaml.TypeError from an upstream YAML tokenizer) into a type this
// package's callers can branch on without importing the collaborator's
// library directly.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// NewParseError wraps cause as a ParseError. Returns nil if cause is nil.
func NewParseError(cause error) error {
	if cause == nil {
		return nil
	}
	return &ParseError{Cause: cause}
}
