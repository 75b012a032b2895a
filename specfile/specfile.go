// Copyright (c) 2025 BVK Chaitanya

// Package specfile loads command trees from declarative JSON, TOML or YAML
// files.
//
// A file is a mapping from command names to node specs:
//
//	{
//	  "tp": {
//	    "name": "tp",
//	    "aliases": ["teleport"],
//	    "children": [
//	      {"name": "player", "arg": "word", "executor": "tp", "children": [
//	        {"name": "x", "arg": "int", "children": [
//	          {"name": "y", "arg": "int", "executor": "tp", "params": {"mode": "abs"}}
//	        ]}
//	      ]}
//	    ]
//	  }
//	}
//
// Argument types and executors are referred to by name and resolved through
// a Registry. An "enum" argument takes its values from the "choices" field.
// The optional "rest" and "lowercase" fields override consume-rest and case
// folding.
package specfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bvk/cmdtree/tree"
	"gopkg.in/yaml.v3"
)

// Node is the on-disk form of a tree.Spec.
type Node struct {
	Name      string         `json:"name" toml:"name" yaml:"name"`
	Arg       string         `json:"arg,omitempty" toml:"arg,omitempty" yaml:"arg,omitempty"`
	Choices   []string       `json:"choices,omitempty" toml:"choices,omitempty" yaml:"choices,omitempty"`
	Aliases   []string       `json:"aliases,omitempty" toml:"aliases,omitempty" yaml:"aliases,omitempty"`
	Executor  string         `json:"executor,omitempty" toml:"executor,omitempty" yaml:"executor,omitempty"`
	Children  []*Node        `json:"children,omitempty" toml:"children,omitempty" yaml:"children,omitempty"`
	Rest      *bool          `json:"rest,omitempty" toml:"rest,omitempty" yaml:"rest,omitempty"`
	Lowercase *bool          `json:"lowercase,omitempty" toml:"lowercase,omitempty" yaml:"lowercase,omitempty"`
	Params    map[string]any `json:"params,omitempty" toml:"params,omitempty" yaml:"params,omitempty"`
}

type Format string

const (
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf picks the file format from the file name extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported spec file extension %q", tree.ErrConfiguration, ext)
	}
}

// Unmarshal decodes the file contents. Unknown fields are rejected.
func Unmarshal(data []byte, format Format) (map[string]*Node, error) {
	var nodes map[string]*Node
	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("%w: could not decode json: %w", tree.ErrConfiguration, err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &nodes)
		if err != nil {
			return nil, fmt.Errorf("%w: could not decode toml: %w", tree.ErrConfiguration, err)
		}
		if keys := md.Undecoded(); len(keys) != 0 {
			return nil, fmt.Errorf("%w: unknown toml keys %v", tree.ErrConfiguration, keys)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("%w: could not decode yaml: %w", tree.ErrConfiguration, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", tree.ErrConfiguration, format)
	}
	return nodes, nil
}

// Compile resolves names through the registry and converts file nodes into
// tree specs.
func (r *Registry) Compile(nodes map[string]*Node) (map[string]*tree.Spec, error) {
	specs := make(map[string]*tree.Spec, len(nodes))
	for name, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("%w: command %q has no definition", tree.ErrConfiguration, name)
		}
		spec, err := r.compile(n)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", name, err)
		}
		specs[name] = spec
	}
	return specs, nil
}

func (r *Registry) compile(n *Node) (*tree.Spec, error) {
	spec := &tree.Spec{
		Name:        n.Name,
		Aliases:     n.Aliases,
		ConsumeRest: n.Rest,
		CaseFold:    n.Lowercase,
		Params:      maps.Clone(n.Params),
	}
	if len(n.Arg) != 0 {
		typ, err := r.argumentType(n)
		if err != nil {
			return nil, err
		}
		spec.Arg = typ
	} else if len(n.Choices) != 0 {
		return nil, fmt.Errorf("%w: choices are only valid for enum arguments (%q)", tree.ErrConfiguration, n.Name)
	}
	if len(n.Executor) != 0 {
		exec, err := r.executor(n)
		if err != nil {
			return nil, err
		}
		spec.Executor = exec
	}
	for _, c := range n.Children {
		if c == nil {
			return nil, fmt.Errorf("%w: empty child under %q", tree.ErrConfiguration, n.Name)
		}
		child, err := r.compile(c)
		if err != nil {
			return nil, err
		}
		spec.Children = append(spec.Children, child)
	}
	return spec, nil
}

// Decode unmarshals and compiles spec file contents.
func (r *Registry) Decode(data []byte, format Format) (map[string]*tree.Spec, error) {
	nodes, err := Unmarshal(data, format)
	if err != nil {
		return nil, err
	}
	return r.Compile(nodes)
}

// Load reads and compiles a spec file.
func (r *Registry) Load(path string) (map[string]*tree.Spec, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	specs, err := r.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// LoadRoot reads a spec file and builds a new command tree from it.
func (r *Registry) LoadRoot(path string, opts *tree.Options) (*tree.Node, error) {
	specs, err := r.Load(path)
	if err != nil {
		return nil, err
	}
	return NewRoot(specs, opts)
}

// NewRoot builds a fresh tree with all specs attached under one root.
func NewRoot(specs map[string]*tree.Spec, opts *tree.Options) (*tree.Node, error) {
	b, err := tree.NewBuilder(opts)
	if err != nil {
		return nil, err
	}
	root := tree.NewLiteral("root")
	if opts != nil && opts.CaseSensitive {
		root.SetCaseFold(false)
	}
	if err := b.BuildRegistry(root, specs); err != nil {
		return nil, err
	}
	return root, nil
}
