// Copyright (c) 2025 BVK Chaitanya

package specfile

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/bvk/cmdtree/argtype"
	"github.com/bvk/cmdtree/tree"
)

// catalog is a typed wrapper over sync.Map.
type catalog[V any] struct {
	v sync.Map
}

func (c *catalog[V]) Load(key string) (value V, ok bool) {
	v, ok := c.v.Load(key)
	if !ok {
		return value, false
	}
	return v.(V), true
}

func (c *catalog[V]) LoadOrStore(key string, value V) (actual V, loaded bool) {
	a, loaded := c.v.LoadOrStore(key, value)
	return a.(V), loaded
}

func (c *catalog[V]) Delete(key string) {
	c.v.Delete(key)
}

func (c *catalog[V]) Keys() []string {
	var keys []string
	c.v.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	return keys
}

// EnumType is the argument type name that builds an argtype.Enum from the
// node's choices.
const EnumType = "enum"

// Registry resolves the argument type and executor names used in spec
// files. It is safe for concurrent use.
type Registry struct {
	argTypes  catalog[tree.ArgumentType]
	executors catalog[tree.Executor]
}

// NewRegistry returns a registry with the stock argument types: int, float,
// bool, word, decimal, uuid and duration. The "enum" type is always
// available through the choices field.
func NewRegistry() *Registry {
	r := new(Registry)
	r.argTypes.LoadOrStore("int", argtype.Int{})
	r.argTypes.LoadOrStore("float", argtype.Float{})
	r.argTypes.LoadOrStore("bool", argtype.Bool{})
	r.argTypes.LoadOrStore("word", argtype.Word{})
	r.argTypes.LoadOrStore("decimal", argtype.Decimal{})
	r.argTypes.LoadOrStore("uuid", argtype.UUID{})
	r.argTypes.LoadOrStore("duration", argtype.Duration{})
	return r
}

func (r *Registry) AddArgumentType(name string, typ tree.ArgumentType) error {
	if len(name) == 0 || name == EnumType || typ == nil {
		return fmt.Errorf("invalid argument type %q: %w", name, os.ErrInvalid)
	}
	if _, loaded := r.argTypes.LoadOrStore(name, typ); loaded {
		return fmt.Errorf("argument type %q: %w", name, os.ErrExist)
	}
	return nil
}

func (r *Registry) AddExecutor(name string, exec tree.Executor) error {
	if len(name) == 0 || exec == nil {
		return fmt.Errorf("invalid executor %q: %w", name, os.ErrInvalid)
	}
	if _, loaded := r.executors.LoadOrStore(name, exec); loaded {
		return fmt.Errorf("executor %q: %w", name, os.ErrExist)
	}
	return nil
}

func (r *Registry) RemoveExecutor(name string) {
	r.executors.Delete(name)
}

func (r *Registry) ArgumentTypes() []string {
	return r.argTypes.Keys()
}

func (r *Registry) Executors() []string {
	return r.executors.Keys()
}

func (r *Registry) argumentType(n *Node) (tree.ArgumentType, error) {
	if n.Arg == EnumType {
		if len(n.Choices) == 0 {
			return nil, fmt.Errorf("%w: enum argument %q needs choices", tree.ErrConfiguration, n.Name)
		}
		return argtype.Enum{Values: n.Choices, IgnoreCase: true}, nil
	}
	if len(n.Choices) != 0 {
		return nil, fmt.Errorf("%w: choices are only valid for enum arguments (%q)", tree.ErrConfiguration, n.Name)
	}
	typ, ok := r.argTypes.Load(n.Arg)
	if !ok {
		return nil, fmt.Errorf("%w: unknown argument type %q for %q", tree.ErrConfiguration, n.Arg, n.Name)
	}
	return typ, nil
}

func (r *Registry) executor(n *Node) (tree.Executor, error) {
	exec, ok := r.executors.Load(n.Executor)
	if !ok {
		return nil, fmt.Errorf("%w: unknown executor %q for %q", tree.ErrConfiguration, n.Executor, n.Name)
	}
	return exec, nil
}
