// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"context"
)

// Call carries everything an executor receives for one invocation.
type Call struct {
	// Node is the terminal node the executor is bound to.
	Node *Node

	// Literals and Values are the matched literal tokens and typed argument
	// values, in input order.
	Literals []string
	Values   []any

	// Rest is the raw tail when HasRest is true.
	Rest    string
	HasRest bool

	// Params is the node's static metadata.
	Params map[string]any

	// Extra is caller supplied context, forwarded as is.
	Extra any
}

// Executor is the handler bound to a node. It is invoked when parsing
// terminates exactly at that node.
type Executor interface {
	Execute(ctx context.Context, call *Call) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, call *Call) error

func (f ExecutorFunc) Execute(ctx context.Context, call *Call) error {
	return f(ctx, call)
}

// Execute invokes the executor that was bound to the terminal node when the
// input was parsed, with the params of that moment.
//
// Returns the *ParseError for failed results, an *IncompleteError when the
// terminal node has no executor, and an *ExecutionError when the executor
// returns an error or panics. Executor failures never propagate as panics.
func (r *Result) Execute(ctx context.Context, extra any) error {
	if r.err != nil {
		return r.err
	}
	if r.executor == nil {
		return &IncompleteError{Node: r.node}
	}
	call := &Call{
		Node:     r.node,
		Literals: r.Literals(),
		Values:   r.Values(),
		Rest:     r.rest,
		HasRest:  r.hasRest,
		Params:   r.params,
		Extra:    extra,
	}
	return invoke(ctx, r.node, r.executor, call)
}

func invoke(ctx context.Context, node *Node, exec Executor, call *Call) (status error) {
	defer func() {
		if v := recover(); v != nil {
			status = &ExecutionError{Node: node, Panic: v}
		}
	}()

	if err := exec.Execute(ctx, call); err != nil {
		return &ExecutionError{Node: node, Err: err}
	}
	return nil
}
