// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"strings"
)

// Parser matches command strings against command trees.
type Parser struct {
	opts Options

	tok *Tokenizer
}

// NewParser creates a parser. Nil options select the defaults.
func NewParser(opts *Options) (*Parser, error) {
	v, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}
	tok, err := NewTokenizer(v.Separator)
	if err != nil {
		return nil, err
	}
	return &Parser{opts: *v, tok: tok}, nil
}

func (p *Parser) Tokenizer() *Tokenizer {
	return p.tok
}

// Parse walks the tree from the input node consuming one token at a time.
//
// Literal keys are tried before arguments. Arguments are tried in their
// declaration order and the first one that accepts the token wins; there is
// no backtracking. Reaching a consume-rest node stops parsing and captures
// the remaining input verbatim. A token that matches nothing is captured as
// the start of the raw tail if the current node consumes the rest, and is a
// parse error otherwise.
func (p *Parser) Parse(root *Node, input string) *Result {
	r := new(Result)
	node := root
	remaining := input

	for {
		remaining = p.tok.Trim(remaining)
		token, rest, ok := p.tok.Next(remaining)
		if !ok {
			break
		}

		key := token
		if node.caseFold {
			key = strings.ToLower(token)
		}

		if child, ok := node.literals[key]; ok {
			r.literals = append(r.literals, key)
			node = child
		} else if child, value, ok := matchArgument(node, token); ok {
			r.values = append(r.values, value)
			node = child
		} else if node.consumeRest {
			r.capture(remaining)
			break
		} else {
			r.err = &ParseError{Token: token, Node: node}
			break
		}

		remaining = rest
		if node.consumeRest {
			r.capture(p.tok.Trim(remaining))
			break
		}
	}

	// An entry node that consumes the rest still reports an empty tail.
	if r.err == nil && !r.hasRest && node.consumeRest {
		r.capture("")
	}

	r.node = node
	r.executor, r.params = node.executor, node.params
	return r
}

func matchArgument(node *Node, token string) (*Node, any, bool) {
	for _, child := range node.arguments {
		if v, err := child.argType.Parse(token); err == nil {
			return child, v, true
		}
	}
	return nil, nil, false
}

// Parse parses the input starting at this node with the default options.
func (n *Node) Parse(input string) *Result {
	p := &Parser{
		opts: Options{Separator: DefaultSeparator},
		tok:  &Tokenizer{sep: DefaultSeparator},
	}
	return p.Parse(n, input)
}
