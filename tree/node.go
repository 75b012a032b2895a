// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"fmt"
	"os"
	"slices"
)

// Node is a single element of a command tree. A node is either a literal,
// matched by exact key equality, or an argument, matched when its
// ArgumentType accepts the token.
//
// Several literal keys of one parent may refer to the same node (aliases).
// Changes to an aliased node are visible through every key.
//
// Nodes are not safe for concurrent mutation. Read-only traversal from
// multiple goroutines is safe as long as nobody modifies the tree; use a
// Dispatcher when the tree needs to change at runtime.
type Node struct {
	name string

	argType ArgumentType

	literalKeys []string
	literals    map[string]*Node

	arguments []*Node

	executor Executor

	params map[string]any

	consumeRest bool

	caseFold bool
}

// NewLiteral creates a literal node. Case folding of child tokens is
// enabled by default.
func NewLiteral(name string) *Node {
	return &Node{
		name:     name,
		literals: make(map[string]*Node),
		caseFold: true,
	}
}

// NewArgument creates an argument node matched by the input argument type.
func NewArgument(name string, typ ArgumentType) *Node {
	n := NewLiteral(name)
	n.argType = typ
	return n
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) IsArgument() bool {
	return n.argType != nil
}

func (n *Node) ArgumentType() ArgumentType {
	return n.argType
}

func (n *Node) Executor() Executor {
	return n.executor
}

func (n *Node) SetExecutor(e Executor) *Node {
	n.executor = e
	return n
}

// Params returns the static metadata forwarded to the executor. Returned map
// is shared with the node and must not be modified.
func (n *Node) Params() map[string]any {
	return n.params
}

func (n *Node) SetParams(params map[string]any) *Node {
	n.params = params
	return n
}

func (n *Node) ConsumeRest() bool {
	return n.consumeRest
}

// SetConsumeRest marks the node to capture all remaining input as one raw
// string when it is reached.
func (n *Node) SetConsumeRest(v bool) *Node {
	n.consumeRest = v
	return n
}

func (n *Node) CaseFold() bool {
	return n.caseFold
}

// SetCaseFold controls whether tokens are lower-cased before they are
// matched against this node's literal children.
func (n *Node) SetCaseFold(v bool) *Node {
	n.caseFold = v
	return n
}

// Literals returns all literal keys, including aliases, in registration
// order.
func (n *Node) Literals() []string {
	return slices.Clone(n.literalKeys)
}

// Arguments returns the argument children in match priority order.
func (n *Node) Arguments() []*Node {
	return slices.Clone(n.arguments)
}

// HasChildren returns true if the node has any literal or argument child.
func (n *Node) HasChildren() bool {
	return len(n.literals) != 0 || len(n.arguments) != 0
}

// AddLiteral registers the child under its name. Registering a key that is
// already taken is rejected with an error wrapping ErrConfiguration and
// os.ErrExist.
func (n *Node) AddLiteral(child *Node) (*Node, error) {
	if err := n.checkLiteral(child, child.name); err != nil {
		return nil, err
	}
	n.putLiteral(child.name, child)
	return child, nil
}

// AddLiteralAliases binds every input name to the same child node. Either
// all names are registered or none.
func (n *Node) AddLiteralAliases(names []string, child *Node) (*Node, error) {
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("%w: alias %q is repeated: %w", ErrConfiguration, name, os.ErrExist)
		}
		seen[name] = true
		if err := n.checkLiteral(child, name); err != nil {
			return nil, err
		}
	}
	for _, name := range names {
		n.putLiteral(name, child)
	}
	return child, nil
}

func (n *Node) checkLiteral(child *Node, key string) error {
	if child == nil {
		return fmt.Errorf("%w: nil literal node", ErrConfiguration)
	}
	if child.IsArgument() {
		return fmt.Errorf("%w: argument node %q cannot be a literal child", ErrConfiguration, child.name)
	}
	if len(key) == 0 {
		return fmt.Errorf("%w: literal key cannot be empty", ErrConfiguration)
	}
	if old, ok := n.literals[key]; ok {
		return fmt.Errorf("%w: literal %q is already registered under %q for node %q: %w",
			ErrConfiguration, key, n.name, old.name, os.ErrExist)
	}
	return nil
}

func (n *Node) putLiteral(key string, child *Node) {
	n.literalKeys = append(n.literalKeys, key)
	n.literals[key] = child
}

// AddArgument appends the child to the argument list. Earlier arguments have
// higher match priority.
func (n *Node) AddArgument(child *Node) (*Node, error) {
	if child == nil || !child.IsArgument() {
		return nil, fmt.Errorf("%w: node is not an argument", ErrConfiguration)
	}
	n.arguments = append(n.arguments, child)
	return child, nil
}

// RemoveLiteral removes every key bound to the child node and returns the
// number of keys removed.
func (n *Node) RemoveLiteral(child *Node) int {
	count := 0
	n.literalKeys = slices.DeleteFunc(n.literalKeys, func(key string) bool {
		if n.literals[key] == child {
			delete(n.literals, key)
			count++
			return true
		}
		return false
	})
	return count
}

// RemoveLiteralByName removes a single key. Other aliases of the same node
// stay registered.
func (n *Node) RemoveLiteralByName(name string) bool {
	if _, ok := n.literals[name]; !ok {
		return false
	}
	delete(n.literals, name)
	n.literalKeys = slices.DeleteFunc(n.literalKeys, func(key string) bool {
		return key == name
	})
	return true
}

// RemoveArgument removes the first occurrence of the child from the argument
// list.
func (n *Node) RemoveArgument(child *Node) bool {
	i := slices.Index(n.arguments, child)
	if i < 0 {
		return false
	}
	n.arguments = slices.Delete(n.arguments, i, i+1)
	return true
}

func (n *Node) LiteralByName(name string) (*Node, bool) {
	v, ok := n.literals[name]
	return v, ok
}

func (n *Node) ArgumentByIndex(i int) (*Node, bool) {
	if i < 0 || i >= len(n.arguments) {
		return nil, false
	}
	return n.arguments[i], true
}

func (n *Node) ArgumentByName(name string) (*Node, bool) {
	for _, v := range n.arguments {
		if v.name == name {
			return v, true
		}
	}
	return nil, false
}

// Step is one element of a fixed navigation path: a literal key or an
// argument index.
type Step struct {
	literal string
	index   int
	isIndex bool
}

// Lit returns a path step that follows a literal key.
func Lit(name string) Step {
	return Step{literal: name}
}

// Arg returns a path step that follows the argument at the index.
func Arg(index int) Step {
	return Step{index: index, isIndex: true}
}

func (s Step) String() string {
	if s.isIndex {
		return fmt.Sprintf("#%d", s.index)
	}
	return s.literal
}

func (n *Node) step(s Step) (*Node, bool) {
	if s.isIndex {
		return n.ArgumentByIndex(s.index)
	}
	return n.LiteralByName(s.literal)
}

// Lookup follows the path from this node without any matching semantics.
// Returns nil if any step does not resolve.
func (n *Node) Lookup(path ...Step) *Node {
	node := n
	for _, s := range path {
		next, ok := node.step(s)
		if !ok {
			return nil
		}
		node = next
	}
	return node
}

// LookupLast is like Lookup, but returns the last node reached when the path
// cannot be followed to the end.
func (n *Node) LookupLast(path ...Step) *Node {
	node := n
	for _, s := range path {
		next, ok := node.step(s)
		if !ok {
			return node
		}
		node = next
	}
	return node
}
