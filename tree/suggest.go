// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"strings"
)

// Suggest returns the completion candidates at the terminal node. Failed
// results have no suggestions.
func (r *Result) Suggest() []string {
	if r.err != nil {
		return []string{}
	}
	return Suggestions(r.node)
}

// Suggestions returns the literal keys of the node, aliases included,
// followed by the hints of each argument child in declaration order. An
// argument type without hints contributes a "<name>" placeholder.
func Suggestions(n *Node) []string {
	suggestions := n.Literals()
	for _, child := range n.arguments {
		if hints := child.argType.Suggestions(); len(hints) != 0 {
			suggestions = append(suggestions, hints...)
			continue
		}
		suggestions = append(suggestions, placeholder(child))
	}
	return suggestions
}

func placeholder(n *Node) string {
	return "<" + n.name + ">"
}

// Complete returns whole-line completions for a partially typed line, as
// expected by line editors. The last token of the line, if not terminated by
// a separator, is the prefix candidates must start with. Argument types
// without hints offer nothing, since a placeholder is not valid input.
func (p *Parser) Complete(root *Node, line string) []string {
	head, partial := line, ""
	if !strings.HasSuffix(line, p.tok.sep) {
		if i := strings.LastIndex(line, p.tok.sep); i >= 0 {
			head, partial = line[:i+len(p.tok.sep)], line[i+len(p.tok.sep):]
		} else {
			head, partial = "", line
		}
	}

	r := p.Parse(root, head)
	if !r.Success() || r.hasRest {
		return nil
	}

	node := r.node
	prefix := partial
	if node.caseFold {
		prefix = strings.ToLower(partial)
	}

	var lines []string
	for _, key := range node.literalKeys {
		if strings.HasPrefix(key, prefix) {
			lines = append(lines, head+key)
		}
	}
	lowered := strings.ToLower(partial)
	for _, child := range node.arguments {
		for _, hint := range child.argType.Suggestions() {
			if strings.HasPrefix(strings.ToLower(hint), lowered) {
				lines = append(lines, head+hint)
			}
		}
	}
	return lines
}
