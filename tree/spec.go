// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

// Spec declares one node of a command tree and, recursively, its children.
// A non-nil Arg makes it an argument node; otherwise it is a literal node.
type Spec struct {
	Name string

	Arg ArgumentType

	// Aliases are extra literal keys registered on the parent for the same
	// node. Only valid for literal nodes.
	Aliases []string

	Executor Executor

	Children []*Spec

	// ConsumeRest overrides the default, which is true for nodes without
	// children and false otherwise.
	ConsumeRest *bool

	// CaseFold overrides case folding for this node and becomes the default
	// for its descendants.
	CaseFold *bool

	Params map[string]any
}

func Literal(name string) *Spec {
	return &Spec{Name: name}
}

func Argument(name string, typ ArgumentType) *Spec {
	return &Spec{Name: name, Arg: typ}
}

func (s *Spec) Alias(names ...string) *Spec {
	s.Aliases = append(s.Aliases, names...)
	return s
}

func (s *Spec) Exec(e Executor) *Spec {
	s.Executor = e
	return s
}

func (s *Spec) Then(children ...*Spec) *Spec {
	s.Children = append(s.Children, children...)
	return s
}

func (s *Spec) Rest(v bool) *Spec {
	s.ConsumeRest = &v
	return s
}

func (s *Spec) Fold(v bool) *Spec {
	s.CaseFold = &v
	return s
}

func (s *Spec) Param(key string, value any) *Spec {
	if s.Params == nil {
		s.Params = make(map[string]any)
	}
	s.Params[key] = value
	return s
}

// Builder compiles specs into command nodes.
type Builder struct {
	opts Options
}

// NewBuilder creates a builder. Nil options select the defaults.
func NewBuilder(opts *Options) (*Builder, error) {
	v, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}
	return &Builder{opts: *v}, nil
}

// Build compiles the spec and attaches the new node under the parent. The
// whole subtree is validated before it is attached, so the parent is left
// unchanged when an error is returned. All errors wrap ErrConfiguration.
func (b *Builder) Build(parent *Node, spec *Spec) (*Node, error) {
	if parent == nil || spec == nil {
		return nil, fmt.Errorf("%w: parent and spec are required: %w", ErrConfiguration, os.ErrInvalid)
	}
	node, err := b.compile(spec, !b.opts.CaseSensitive, nil)
	if err != nil {
		return nil, err
	}
	if err := checkAttach(parent, spec, node, nil); err != nil {
		return nil, err
	}
	attach(parent, spec, node)
	return node, nil
}

// BuildRegistry compiles a set of independent command specs under one
// shared root. Map keys name the commands and stand in for empty spec
// names. Either all commands are attached or none.
func (b *Builder) BuildRegistry(root *Node, specs map[string]*Spec) error {
	if root == nil {
		return fmt.Errorf("%w: root is required: %w", ErrConfiguration, os.ErrInvalid)
	}

	var compiled []*Spec
	var nodes []*Node
	taken := make(map[string]bool)
	for _, name := range slices.Sorted(maps.Keys(specs)) {
		spec := specs[name]
		if spec == nil {
			return configErrorf("command %q has no spec", name)
		}
		if len(spec.Name) == 0 {
			v := *spec
			v.Name = name
			spec = &v
		}
		node, err := b.compile(spec, !b.opts.CaseSensitive, nil)
		if err != nil {
			return err
		}
		if err := checkAttach(root, spec, node, taken); err != nil {
			return err
		}
		compiled = append(compiled, spec)
		nodes = append(nodes, node)
	}

	for i := range nodes {
		attach(root, compiled[i], nodes[i])
	}
	return nil
}

func (b *Builder) compile(spec *Spec, fold bool, path []string) (*Node, error) {
	if len(spec.Name) == 0 {
		return nil, configErrorf("%snode name is required", location(path))
	}
	path = append(slices.Clone(path), spec.Name)

	var node *Node
	if spec.Arg != nil {
		if len(spec.Aliases) != 0 {
			return nil, configErrorf("%saliases are not allowed on argument nodes", location(path))
		}
		node = NewArgument(spec.Name, spec.Arg)
	} else {
		node = NewLiteral(spec.Name)
	}

	if spec.CaseFold != nil {
		fold = *spec.CaseFold
	}
	node.caseFold = fold

	node.consumeRest = len(spec.Children) == 0
	if spec.ConsumeRest != nil {
		node.consumeRest = *spec.ConsumeRest
	}

	node.executor = spec.Executor
	if spec.Params != nil {
		node.params = maps.Clone(spec.Params)
	}

	for _, cspec := range spec.Children {
		if cspec == nil {
			return nil, configErrorf("%snil child spec", location(path))
		}
		child, err := b.compile(cspec, fold, path)
		if err != nil {
			return nil, err
		}
		if err := checkAttach(node, cspec, child, nil); err != nil {
			return nil, fmt.Errorf("%s%w", location(path), err)
		}
		attach(node, cspec, child)
	}
	return node, nil
}

// checkAttach verifies that the node can be attached under the parent.
// Keys already claimed by the same batch are tracked in taken when non-nil.
func checkAttach(parent *Node, spec *Spec, node *Node, taken map[string]bool) error {
	if node.IsArgument() {
		return nil
	}
	keys := append([]string{spec.Name}, spec.Aliases...)
	seen := make(map[string]bool)
	for _, key := range keys {
		if seen[key] || taken[key] {
			return fmt.Errorf("%w: literal %q is registered twice under %q: %w", ErrConfiguration, key, parent.name, os.ErrExist)
		}
		seen[key] = true
		if err := parent.checkLiteral(node, key); err != nil {
			return err
		}
	}
	if taken != nil {
		for _, key := range keys {
			taken[key] = true
		}
	}
	return nil
}

func attach(parent *Node, spec *Spec, node *Node) {
	if node.IsArgument() {
		parent.arguments = append(parent.arguments, node)
		return
	}
	parent.putLiteral(spec.Name, node)
	for _, alias := range spec.Aliases {
		parent.putLiteral(alias, node)
	}
}

func location(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return strings.Join(path, " > ") + ": "
}

// Build compiles the spec under the parent with the default options.
func Build(parent *Node, spec *Spec) (*Node, error) {
	b := &Builder{opts: Options{Separator: DefaultSeparator}}
	return b.Build(parent, spec)
}

// BuildRegistry compiles the command specs under the root with the default
// options.
func BuildRegistry(root *Node, specs map[string]*Spec) error {
	b := &Builder{opts: Options{Separator: DefaultSeparator}}
	return b.BuildRegistry(root, specs)
}
