// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentParse is reported when a token matches neither a literal key
	// nor any argument type at a node. Argument types should wrap it too.
	ErrArgumentParse = errors.New("argument parse failure")

	// ErrConfiguration is returned for malformed trees, specs and options.
	ErrConfiguration = errors.New("invalid command configuration")

	// ErrIncomplete is reported when parsing stops at a node without an
	// executor.
	ErrIncomplete = errors.New("incomplete command")

	// ErrExecution is reported when an executor fails or panics.
	ErrExecution = errors.New("command execution failed")
)

// ParseError identifies the token that could not be matched and the node
// where matching stopped.
type ParseError struct {
	Token string
	Node  *Node
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q at %q", e.Token, e.Node.Name())
}

func (e *ParseError) Unwrap() error {
	return ErrArgumentParse
}

// IncompleteError identifies the node that has no executor bound.
type IncompleteError struct {
	Node *Node
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("command is incomplete at %q", e.Node.Name())
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// ExecutionError wraps a failure raised by an executor. Panic holds the
// recovered value when the executor panicked instead of returning an error.
type ExecutionError struct {
	Node  *Node
	Err   error
	Panic any
}

func (e *ExecutionError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("executor at %q panicked: %v", e.Node.Name(), e.Panic)
	}
	return fmt.Sprintf("executor at %q failed: %v", e.Node.Name(), e.Err)
}

func (e *ExecutionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExecution}
	}
	return []error{ErrExecution, e.Err}
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
