// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Dispatcher owns a command tree shared by concurrent callers. Parsing,
// suggestions and dispatch take a shared lock; Update and Replace take an
// exclusive lock so structural changes never race with parsing.
//
// Executors run without holding the lock, so they may call Update.
type Dispatcher struct {
	mu sync.RWMutex

	root *Node

	parser *Parser

	logger *slog.Logger
}

// NewDispatcher creates a dispatcher for the root node. Nil options select
// the defaults and nil logger disables logging.
func NewDispatcher(root *Node, opts *Options, logger *slog.Logger) (*Dispatcher, error) {
	if root == nil {
		return nil, fmt.Errorf("root node cannot be nil: %w", os.ErrInvalid)
	}
	parser, err := NewParser(opts)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		root:   root,
		parser: parser,
		logger: logger,
	}, nil
}

// Root returns the current root node. Callers must not modify the returned
// tree directly; use Update instead.
func (d *Dispatcher) Root() *Node {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.root
}

// Separator returns the token separator used by the dispatcher.
func (d *Dispatcher) Separator() string {
	return d.parser.tok.sep
}

func (d *Dispatcher) Parse(input string) *Result {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.parser.Parse(d.root, input)
}

func (d *Dispatcher) Suggest(input string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.parser.Parse(d.root, input).Suggest()
}

func (d *Dispatcher) Complete(line string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.parser.Complete(d.root, line)
}

func (d *Dispatcher) Usage() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Usage(d.root, d.parser.tok.sep)
}

// Update runs the function with exclusive access to the root node. Results
// parsed before the update keep the executor and params they were parsed
// with.
func (d *Dispatcher) Update(f func(root *Node) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return f(d.root)
}

// Replace swaps the whole tree, typically after a configuration reload.
func (d *Dispatcher) Replace(root *Node) error {
	if root == nil {
		return fmt.Errorf("root node cannot be nil: %w", os.ErrInvalid)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.root = root
	return nil
}

// Dispatch parses the input and executes the bound executor. Returned error
// is one of *ParseError, *IncompleteError or *ExecutionError. The dispatcher
// stays usable after any of them.
func (d *Dispatcher) Dispatch(ctx context.Context, input string, extra any) (*Result, error) {
	r := d.Parse(input)
	err := r.Execute(ctx, extra)
	if err != nil && d.logger != nil {
		d.log(ctx, input, err)
	}
	return r, err
}

func (d *Dispatcher) log(ctx context.Context, input string, err error) {
	var perr *ParseError
	var ierr *IncompleteError
	var xerr *ExecutionError
	switch {
	case errors.As(err, &perr):
		d.logger.DebugContext(ctx, "could not parse command", "input", input, "token", perr.Token, "node", perr.Node.Name())
	case errors.As(err, &ierr):
		d.logger.InfoContext(ctx, "command is incomplete", "input", input, "node", ierr.Node.Name())
	case errors.As(err, &xerr):
		d.logger.WarnContext(ctx, "command executor failed", "input", input, "node", xerr.Node.Name(), "error", err)
	default:
		d.logger.ErrorContext(ctx, "unexpected dispatch error", "input", input, "error", err)
	}
}
