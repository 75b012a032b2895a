// Copyright (c) 2025 BVK Chaitanya

package tree

import "slices"

// Result is an immutable snapshot of a single parse.
type Result struct {
	node *Node

	literals []string
	values   []any

	rest    string
	hasRest bool

	err *ParseError

	// executor and params are captured from the node at parse time.
	executor Executor
	params   map[string]any
}

// Node returns the terminal node, which is the node where matching failed
// for unsuccessful results.
func (r *Result) Node() *Node {
	return r.node
}

// Literals returns the matched literal tokens in input order, after case
// folding.
func (r *Result) Literals() []string {
	return slices.Clone(r.literals)
}

// Values returns the typed argument values in input order. When a non-empty
// raw tail was captured, it is the last value.
func (r *Result) Values() []any {
	return slices.Clone(r.values)
}

// Rest returns the raw tail captured by a consume-rest node. The boolean is
// false if no consume-rest node captured the input.
func (r *Result) Rest() (string, bool) {
	return r.rest, r.hasRest
}

// Err returns a *ParseError when a token could not be matched, nil
// otherwise.
func (r *Result) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

func (r *Result) Success() bool {
	return r.err == nil
}

func (r *Result) capture(tail string) {
	r.rest, r.hasRest = tail, true
	if len(tail) != 0 {
		r.values = append(r.values, tail)
	}
}
